package valueobjects

// RecordStatus is the state of one billing attempt.
//
//	standby  -> complete | fail | canceled
//	pending  -> canceled            (or advanced by the settlement batch)
//	complete, fail                  terminal
type RecordStatus string

const (
	// RecordStatusPending defers the charge to the scheduled settlement batch.
	RecordStatusPending RecordStatus = "pending"
	// RecordStatusStandby means the record is dispatched to the gateway now.
	RecordStatusStandby RecordStatus = "standby"
	RecordStatusComplete RecordStatus = "complete"
	RecordStatusFail     RecordStatus = "fail"
	RecordStatusCanceled RecordStatus = "canceled"
)

func (s RecordStatus) IsValid() bool {
	switch s {
	case RecordStatusPending, RecordStatusStandby, RecordStatusComplete, RecordStatusFail, RecordStatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the record may never change again.
func (s RecordStatus) IsTerminal() bool {
	return s == RecordStatusComplete || s == RecordStatusFail
}

// IsCancelable reports whether cancel may transition this status.
func (s RecordStatus) IsCancelable() bool {
	return s == RecordStatusPending || s == RecordStatusStandby
}

func (s RecordStatus) String() string {
	return string(s)
}
