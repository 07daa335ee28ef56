package pointaccount

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/recero-inc/recero/internal/domain/pointaccount/valueobjects"
)

func testWindow(t *testing.T) vo.ServiceWindow {
	t.Helper()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	window, err := vo.NewServiceWindow(start, start.AddDate(0, 1, 0))
	require.NoError(t, err)
	return window
}

func TestNewAccountStartsPending(t *testing.T) {
	account, err := NewAccount(1, 2500, 5000, vo.RenewalPolicyAuto)
	require.NoError(t, err)

	assert.Equal(t, vo.AccountStatusPending, account.Status())
	assert.Equal(t, int64(2500), account.RegularPaymentAmount())
	assert.Equal(t, int64(5000), account.ReviewPoints())
	assert.True(t, account.Window().IsZero())
}

func TestNewAccountValidation(t *testing.T) {
	_, err := NewAccount(0, 2500, 5000, vo.RenewalPolicyAuto)
	assert.Error(t, err)

	_, err = NewAccount(1, -1, 5000, vo.RenewalPolicyAuto)
	assert.Error(t, err)

	_, err = NewAccount(1, 2500, 5000, vo.RenewalPolicy("weekly"))
	assert.Error(t, err)
}

func TestAccountActivateIsIdempotent(t *testing.T) {
	account, err := NewAccount(1, 2500, 5000, vo.RenewalPolicyAuto)
	require.NoError(t, err)

	window := testWindow(t)
	require.NoError(t, account.Activate(window))
	assert.Equal(t, vo.AccountStatusActive, account.Status())
	assert.True(t, account.Window().Equals(window))

	require.NoError(t, account.Activate(window))
	assert.Equal(t, vo.AccountStatusActive, account.Status())
	assert.True(t, account.Window().Equals(window))
}

func TestAccountActivateRequiresWindow(t *testing.T) {
	account, err := NewAccount(1, 2500, 5000, vo.RenewalPolicyAuto)
	require.NoError(t, err)

	assert.Error(t, account.Activate(vo.ServiceWindow{}))
	assert.Equal(t, vo.AccountStatusPending, account.Status())
}

func TestAccountDeactivatePreservesCumulativePoints(t *testing.T) {
	account, err := NewAccount(1, 2500, 5000, vo.RenewalPolicyAuto)
	require.NoError(t, err)
	require.NoError(t, account.Activate(testWindow(t)))
	require.NoError(t, account.AccruePoints(1200))
	require.NoError(t, account.AccruePoints(300))

	account.Deactivate()

	assert.Equal(t, vo.AccountStatusDeleted, account.Status())
	assert.Equal(t, int64(1500), account.CumulativePoints())
}

func TestAccountAccruePointsIsMonotonic(t *testing.T) {
	account, err := NewAccount(1, 2500, 5000, vo.RenewalPolicyAuto)
	require.NoError(t, err)

	require.NoError(t, account.AccruePoints(100))
	assert.Error(t, account.AccruePoints(-50))
	assert.Equal(t, int64(100), account.CumulativePoints())
}

func TestAccountUpdateBillingSettings(t *testing.T) {
	account, err := NewAccount(1, 2500, 5000, vo.RenewalPolicyAuto)
	require.NoError(t, err)
	require.NoError(t, account.Activate(testWindow(t)))

	require.NoError(t, account.UpdateBillingSettings(10000, 3000))
	assert.Equal(t, int64(10000), account.RegularPaymentAmount())
	assert.Equal(t, int64(3000), account.ReviewPoints())
	// Re-registration alone never changes activation state.
	assert.Equal(t, vo.AccountStatusActive, account.Status())

	assert.Error(t, account.UpdateBillingSettings(-1, 0))
}
