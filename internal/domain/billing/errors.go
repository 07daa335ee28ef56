package billing

import (
	"errors"
	"fmt"

	vo "github.com/recero-inc/recero/internal/domain/billing/valueobjects"
)

var (
	ErrRecordNotFound          = errors.New("billing record not found")
	ErrInvalidStatusTransition = errors.New("invalid billing status transition")
)

func ErrNotDispatchable(status vo.RecordStatus) error {
	return fmt.Errorf("%w: record is %s, not standby", ErrInvalidStatusTransition, status)
}

func ErrNotCancelable(status vo.RecordStatus) error {
	return fmt.Errorf("%w: cannot cancel a %s record", ErrInvalidStatusTransition, status)
}
