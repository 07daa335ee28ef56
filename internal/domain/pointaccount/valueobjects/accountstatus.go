package valueobjects

// AccountStatus is the activation state of a store's point account.
type AccountStatus string

const (
	// AccountStatusPending means the account exists but billing has not
	// settled yet.
	AccountStatusPending  AccountStatus = "pending"
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
	// AccountStatusDeleted means the store's subscription set became empty.
	// Historical balances survive deletion.
	AccountStatusDeleted AccountStatus = "deleted"
)

func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusPending, AccountStatusActive, AccountStatusInactive, AccountStatusDeleted:
		return true
	default:
		return false
	}
}

func (s AccountStatus) IsActive() bool {
	return s == AccountStatusActive
}

func (s AccountStatus) String() string {
	return string(s)
}
