package usecases

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recero-inc/recero/internal/application/billing/paymentgateway"
	"github.com/recero-inc/recero/internal/domain/billing"
	billingVO "github.com/recero-inc/recero/internal/domain/billing/valueobjects"
	"github.com/recero-inc/recero/internal/domain/pointaccount"
	pointVO "github.com/recero-inc/recero/internal/domain/pointaccount/valueobjects"
)

func newTestRecord(t *testing.T, status billingVO.RecordStatus) *billing.Record {
	t.Helper()
	record, err := billing.NewRecord(1, 20240101120000, "tok-1", 2500, status, billingVO.EmptyRefundAccount(), 99)
	require.NoError(t, err)
	record.SetID(10)
	return record
}

func newTestAccount(t *testing.T) *pointaccount.Account {
	t.Helper()
	account, err := pointaccount.NewAccount(1, 2500, 5000, pointVO.RenewalPolicyAuto)
	require.NoError(t, err)
	account.SetID(5)
	return account
}

func TestDispatchBillingApprovedActivatesAccount(t *testing.T) {
	record := newTestRecord(t, billingVO.RecordStatusStandby)
	account := newTestAccount(t)

	var updatedRecord *billing.Record
	var updatedAccount *pointaccount.Account

	recordRepo := &mockRecordRepository{
		UpdateFunc: func(ctx context.Context, r *billing.Record) error {
			updatedRecord = r
			return nil
		},
	}
	accountRepo := &mockAccountRepository{
		GetByStoreIDFunc: func(ctx context.Context, storeID uint) (*pointaccount.Account, error) {
			return account, nil
		},
		UpdateFunc: func(ctx context.Context, a *pointaccount.Account) error {
			updatedAccount = a
			return nil
		},
	}
	gateway := &mockGateway{
		RequestPaymentFunc: func(ctx context.Context, req paymentgateway.PaymentRequest) paymentgateway.Result {
			return paymentgateway.Result{ResultCode: paymentgateway.ResultCodeOK, ResultMessage: "approved"}
		},
	}

	uc := NewDispatchBillingUseCase(recordRepo, accountRepo, gateway, fakeTxManager{}, 1, noopLogger{})

	result, err := uc.Execute(context.Background(), record)
	require.NoError(t, err)
	assert.True(t, result.Approved)

	require.NotNil(t, updatedRecord)
	assert.Equal(t, billingVO.RecordStatusComplete, updatedRecord.Status())
	assert.NotNil(t, updatedRecord.SettledAt())

	// The raw gateway response rides along for audit.
	var audit paymentgateway.Result
	require.NoError(t, json.Unmarshal(updatedRecord.GatewayPayload(), &audit))
	assert.Equal(t, paymentgateway.ResultCodeOK, audit.ResultCode)
	assert.Equal(t, "approved", audit.ResultMessage)

	require.NotNil(t, updatedAccount)
	assert.Equal(t, pointVO.AccountStatusActive, updatedAccount.Status())
	require.False(t, updatedAccount.Window().IsZero())
	// One month service term.
	window := updatedAccount.Window()
	assert.True(t, window.End().After(window.Start()))

	require.Len(t, gateway.PaymentCalls, 1)
	assert.Equal(t, uint(10), gateway.PaymentCalls[0].RecordID)
	assert.Equal(t, int64(2500), gateway.PaymentCalls[0].Amount)
}

func TestDispatchBillingDeclinedLeavesAccountAlone(t *testing.T) {
	record := newTestRecord(t, billingVO.RecordStatusStandby)

	accountTouched := false
	recordRepo := &mockRecordRepository{}
	accountRepo := &mockAccountRepository{
		GetByStoreIDFunc: func(ctx context.Context, storeID uint) (*pointaccount.Account, error) {
			accountTouched = true
			return nil, nil
		},
		UpdateFunc: func(ctx context.Context, a *pointaccount.Account) error {
			accountTouched = true
			return nil
		},
	}
	gateway := &mockGateway{
		RequestPaymentFunc: func(ctx context.Context, req paymentgateway.PaymentRequest) paymentgateway.Result {
			return paymentgateway.Result{
				ResultCode:    paymentgateway.ResultCodeNotOK,
				ResultMessage: "insufficient funds",
				ErrorCode:     "E4001",
			}
		},
	}

	uc := NewDispatchBillingUseCase(recordRepo, accountRepo, gateway, fakeTxManager{}, 1, noopLogger{})

	result, err := uc.Execute(context.Background(), record)
	require.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Equal(t, billingVO.RecordStatusFail, result.Record.Status())
	assert.Equal(t, "insufficient funds", result.Record.ResultMessage())
	assert.Equal(t, "E4001", result.Record.ErrorCode())
	assert.False(t, accountTouched)

	var audit paymentgateway.Result
	require.NoError(t, json.Unmarshal(result.Record.GatewayPayload(), &audit))
	assert.Equal(t, paymentgateway.ResultCodeNotOK, audit.ResultCode)
	assert.Equal(t, "E4001", audit.ErrorCode)
}

func TestDispatchBillingRejectsNonStandbyRecord(t *testing.T) {
	for _, status := range []billingVO.RecordStatus{
		billingVO.RecordStatusPending,
	} {
		record := newTestRecord(t, status)
		gateway := &mockGateway{}

		uc := NewDispatchBillingUseCase(&mockRecordRepository{}, &mockAccountRepository{}, gateway, fakeTxManager{}, 1, noopLogger{})

		_, err := uc.Execute(context.Background(), record)
		require.Error(t, err)
		// The gateway is never touched for a non-dispatchable record.
		assert.Empty(t, gateway.PaymentCalls)
	}
}

func TestDispatchBillingGatewayCalledExactlyOnce(t *testing.T) {
	record := newTestRecord(t, billingVO.RecordStatusStandby)
	account := newTestAccount(t)

	gateway := &mockGateway{}
	accountRepo := &mockAccountRepository{
		GetByStoreIDFunc: func(ctx context.Context, storeID uint) (*pointaccount.Account, error) {
			return account, nil
		},
	}

	uc := NewDispatchBillingUseCase(&mockRecordRepository{}, accountRepo, gateway, fakeTxManager{}, 1, noopLogger{})

	_, err := uc.Execute(context.Background(), record)
	require.NoError(t, err)
	assert.Len(t, gateway.PaymentCalls, 1)

	// The settled record cannot be dispatched again.
	_, err = uc.Execute(context.Background(), record)
	require.Error(t, err)
	assert.Len(t, gateway.PaymentCalls, 1)
}
