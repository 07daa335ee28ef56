package valueobjects

// LineStatus is the lifecycle status of a subscription line. At most one
// batch's lines may be active for a store at any time.
type LineStatus string

const (
	LineStatusPending  LineStatus = "pending"
	LineStatusActive   LineStatus = "active"
	LineStatusInactive LineStatus = "inactive"
)

func (s LineStatus) IsValid() bool {
	switch s {
	case LineStatusPending, LineStatusActive, LineStatusInactive:
		return true
	default:
		return false
	}
}

func (s LineStatus) IsActive() bool {
	return s == LineStatusActive
}

func (s LineStatus) String() string {
	return string(s)
}
