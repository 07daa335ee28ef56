package pricing

import (
	"fmt"

	catalogVO "github.com/recero-inc/recero/internal/domain/catalog/valueobjects"
)

// MismatchKind identifies which submitted amount disagreed with the policy.
type MismatchKind string

const (
	KindInvalidServiceCharge MismatchKind = "invalid_service_charge"
	KindInvalidDeposit       MismatchKind = "invalid_deposit"
	KindInvalidCommission    MismatchKind = "invalid_commission"
)

// MismatchError reports a submitted amount that does not match the value the
// tiered rules compute. The orchestrator rejects the whole request on the
// first mismatch; nothing is partially applied.
type MismatchError struct {
	Kind        MismatchKind
	ServiceCode catalogVO.ServiceCode
	Field       string
	Submitted   int64
	Expected    int64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %s %s submitted=%d expected=%d",
		e.Kind, e.ServiceCode, e.Field, e.Submitted, e.Expected)
}

// UnknownServiceCodeError reports a selection referencing a code absent from
// the catalog snapshot. Treated like a pricing mismatch by callers.
type UnknownServiceCodeError struct {
	ServiceCode catalogVO.ServiceCode
}

func (e *UnknownServiceCodeError) Error() string {
	return fmt.Sprintf("unknown service code: %s", e.ServiceCode)
}
