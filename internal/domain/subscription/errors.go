package subscription

import "errors"

var (
	ErrLineNotFound        = errors.New("subscription line not found")
	ErrBatchConflict       = errors.New("concurrent batch version conflict")
	ErrInvalidBatchVersion = errors.New("invalid batch version")
)
