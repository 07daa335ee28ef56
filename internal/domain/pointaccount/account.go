// Package pointaccount holds the per-store point account: balances, renewal
// policy and activation state. The account is only mutated as a side effect
// of billing outcomes; it is created lazily the first time a store subscribes
// to any reward service.
package pointaccount

import (
	"fmt"
	"time"

	vo "github.com/recero-inc/recero/internal/domain/pointaccount/valueobjects"
	"github.com/recero-inc/recero/internal/shared/biztime"
)

// Account is the point ledger and activation state for one store.
type Account struct {
	id               uint
	storeID          uint
	reservedPoints   int64
	reviewPoints     int64
	cumulativePoints int64
	regularPayment   int64
	status           vo.AccountStatus
	window           vo.ServiceWindow
	renewalPolicy    vo.RenewalPolicy

	createdAt  time.Time
	modifiedAt time.Time
}

// NewAccount creates a pending account for a store's first reward
// subscription. It activates only when a billing record settles.
func NewAccount(storeID uint, regularPayment, reviewPoints int64, policy vo.RenewalPolicy) (*Account, error) {
	if storeID == 0 {
		return nil, fmt.Errorf("store ID is required")
	}
	if regularPayment < 0 || reviewPoints < 0 {
		return nil, fmt.Errorf("point account amounts cannot be negative")
	}
	if !policy.IsValid() {
		return nil, fmt.Errorf("invalid renewal policy: %s", policy)
	}

	now := biztime.NowUTC()
	return &Account{
		storeID:        storeID,
		regularPayment: regularPayment,
		reviewPoints:   reviewPoints,
		status:         vo.AccountStatusPending,
		renewalPolicy:  policy,
		createdAt:      now,
		modifiedAt:     now,
	}, nil
}

// Activate opens the service window. Idempotent: activating an already
// active account with the same window only touches modifiedAt.
func (a *Account) Activate(window vo.ServiceWindow) error {
	if window.IsZero() {
		return fmt.Errorf("service window is required for activation")
	}
	a.status = vo.AccountStatusActive
	a.window = window
	a.modifiedAt = biztime.NowUTC()
	return nil
}

// Deactivate marks the account deleted when the store's subscription set
// becomes empty. Cumulative points are monotonic and survive deactivation.
func (a *Account) Deactivate() {
	a.status = vo.AccountStatusDeleted
	a.modifiedAt = biztime.NowUTC()
}

// UpdateBillingSettings refreshes the regular payment amount and review
// settings on re-registration. Status is left untouched until billing
// settles.
func (a *Account) UpdateBillingSettings(regularPayment, reviewPoints int64) error {
	if regularPayment < 0 || reviewPoints < 0 {
		return fmt.Errorf("point account amounts cannot be negative")
	}
	a.regularPayment = regularPayment
	a.reviewPoints = reviewPoints
	a.modifiedAt = biztime.NowUTC()
	return nil
}

// AccruePoints adds granted points to the cumulative total. The total never
// decreases.
func (a *Account) AccruePoints(points int64) error {
	if points < 0 {
		return fmt.Errorf("cannot accrue negative points")
	}
	a.cumulativePoints += points
	a.modifiedAt = biztime.NowUTC()
	return nil
}

func (a *Account) ID() uint                         { return a.id }
func (a *Account) StoreID() uint                    { return a.storeID }
func (a *Account) ReservedPoints() int64            { return a.reservedPoints }
func (a *Account) ReviewPoints() int64              { return a.reviewPoints }
func (a *Account) CumulativePoints() int64          { return a.cumulativePoints }
func (a *Account) RegularPaymentAmount() int64      { return a.regularPayment }
func (a *Account) Status() vo.AccountStatus         { return a.status }
func (a *Account) Window() vo.ServiceWindow         { return a.window }
func (a *Account) RenewalPolicy() vo.RenewalPolicy  { return a.renewalPolicy }
func (a *Account) CreatedAt() time.Time             { return a.createdAt }
func (a *Account) ModifiedAt() time.Time            { return a.modifiedAt }

// SetID sets the account ID after persistence.
func (a *Account) SetID(id uint) { a.id = id }

func ReconstructAccount(
	id uint,
	storeID uint,
	reservedPoints, reviewPoints, cumulativePoints, regularPayment int64,
	status vo.AccountStatus,
	window vo.ServiceWindow,
	renewalPolicy vo.RenewalPolicy,
	createdAt, modifiedAt time.Time,
) *Account {
	return &Account{
		id:               id,
		storeID:          storeID,
		reservedPoints:   reservedPoints,
		reviewPoints:     reviewPoints,
		cumulativePoints: cumulativePoints,
		regularPayment:   regularPayment,
		status:           status,
		window:           window,
		renewalPolicy:    renewalPolicy,
		createdAt:        createdAt,
		modifiedAt:       modifiedAt,
	}
}
