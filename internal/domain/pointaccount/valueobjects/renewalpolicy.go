package valueobjects

// RenewalPolicy decides what happens when a point account's service window
// ends.
type RenewalPolicy string

const (
	RenewalPolicyAuto   RenewalPolicy = "auto_renewal"
	RenewalPolicyManual RenewalPolicy = "manual_renewal"
	RenewalPolicyNone   RenewalPolicy = "non_renewal"
)

func (p RenewalPolicy) IsValid() bool {
	switch p {
	case RenewalPolicyAuto, RenewalPolicyManual, RenewalPolicyNone:
		return true
	default:
		return false
	}
}

func (p RenewalPolicy) String() string {
	return string(p)
}
