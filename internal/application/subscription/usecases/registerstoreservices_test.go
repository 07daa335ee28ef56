package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recero-inc/recero/internal/application/billing/paymentgateway"
	billingUC "github.com/recero-inc/recero/internal/application/billing/usecases"
	"github.com/recero-inc/recero/internal/domain/billing"
	billingVO "github.com/recero-inc/recero/internal/domain/billing/valueobjects"
	"github.com/recero-inc/recero/internal/domain/catalog"
	catalogVO "github.com/recero-inc/recero/internal/domain/catalog/valueobjects"
	"github.com/recero-inc/recero/internal/domain/pointaccount"
	pointVO "github.com/recero-inc/recero/internal/domain/pointaccount/valueobjects"
	"github.com/recero-inc/recero/internal/domain/subscription"
	"github.com/recero-inc/recero/internal/domain/subscription/pricing"
	"github.com/recero-inc/recero/internal/shared/errors"
)

func testCatalogRepository(t *testing.T) *mockCatalogRepository {
	t.Helper()
	now := time.Now().UTC()
	snapshot := catalog.Snapshot{}
	for code, price := range map[catalogVO.ServiceCode]int64{
		catalogVO.ServiceCodeEReceipt:      20000,
		catalogVO.ServiceCodeReviewReward:  30000,
		catalogVO.ServiceCodeReviewProject: 50000,
	} {
		snapshot[code] = catalog.ReconstructServiceDef(
			1, code, string(code), price, catalogVO.ServiceStatusOnSale, now, now,
		)
	}
	return &mockCatalogRepository{
		GetSnapshotFunc: func(ctx context.Context, codes []catalogVO.ServiceCode) (catalog.Snapshot, error) {
			return snapshot, nil
		},
	}
}

// rewardSelection is a review reward submission whose amounts match the
// default policy: 5,000 reward points price to a 500,000 deposit and a 2,500
// commission.
func rewardSelection() pricing.Selection {
	return pricing.Selection{
		catalogVO.ServiceCodeReviewReward: {
			ServiceCharge: 30000,
			RewardDeposit: 500000,
			RewardPoint:   5000,
			Commission:    2500,
		},
	}
}

func newRegisterUseCase(
	batchRepo *mockBatchRepository,
	recordRepo *mockRecordRepository,
	accountRepo *mockAccountRepository,
	catalogRepo *mockCatalogRepository,
	gateway *mockGateway,
) *RegisterStoreServicesUseCase {
	dispatch := billingUC.NewDispatchBillingUseCase(recordRepo, accountRepo, gateway, fakeTxManager{}, 1, noopLogger{})
	return NewRegisterStoreServicesUseCase(
		batchRepo, recordRepo, accountRepo, catalogRepo,
		dispatch, fakeTxManager{}, pricing.DefaultPolicy(), noopLogger{},
	)
}

// statefulAccountRepo remembers the account across the create/get/update
// calls the orchestration makes, the way a real repository would.
func statefulAccountRepo(initial *pointaccount.Account) *mockAccountRepository {
	saved := initial
	return &mockAccountRepository{
		GetByStoreIDFunc: func(ctx context.Context, storeID uint) (*pointaccount.Account, error) {
			return saved, nil
		},
		CreateFunc: func(ctx context.Context, account *pointaccount.Account) error {
			account.SetID(1)
			saved = account
			return nil
		},
		UpdateFunc: func(ctx context.Context, account *pointaccount.Account) error {
			saved = account
			return nil
		},
	}
}

func TestRegisterPayNowSettlesAndActivates(t *testing.T) {
	var created []*subscription.Line
	batchRepo := &mockBatchRepository{
		CreateLinesFunc: func(ctx context.Context, lines []*subscription.Line) error {
			created = lines
			return nil
		},
	}
	recordRepo := &mockRecordRepository{}
	accountRepo := statefulAccountRepo(nil)
	gateway := &mockGateway{}

	uc := newRegisterUseCase(batchRepo, recordRepo, accountRepo, testCatalogRepository(t), gateway)

	result, err := uc.Execute(context.Background(), RegisterStoreServicesCommand{
		StoreID:        1,
		ActorID:        99,
		Selection:      rewardSelection(),
		PaymentTokenID: "tok-1",
		PayNow:         true,
		RefundAccount:  billingVO.EmptyRefundAccount(),
	})
	require.NoError(t, err)

	assert.Positive(t, result.BatchVersion)
	require.Len(t, created, 2)
	assert.Equal(t, catalogVO.ServiceCodeEReceipt, created[0].ServiceCode())
	assert.Equal(t, int64(20000), created[0].ServiceCharge())
	assert.Equal(t, catalogVO.ServiceCodeReviewReward, created[1].ServiceCode())
	assert.Equal(t, int64(500000), created[1].RewardDeposit())
	assert.Equal(t, int64(2500), created[1].Commission())
	for _, line := range created {
		assert.Equal(t, result.BatchVersion, line.BatchVersion())
	}

	require.NotNil(t, result.Record)
	assert.Equal(t, billingVO.RecordStatusComplete, result.Record.Status())
	assert.False(t, result.BillingFailed)

	require.NotNil(t, result.Account)
	assert.Equal(t, pointVO.AccountStatusActive, result.Account.Status())
	assert.False(t, result.Account.Window().IsZero())

	require.Len(t, gateway.PaymentCalls, 1)
	assert.Equal(t, int64(2500), gateway.PaymentCalls[0].Amount)
}

func TestRegisterPayNowDeclinedKeepsSubscription(t *testing.T) {
	batchRepo := &mockBatchRepository{}
	recordRepo := &mockRecordRepository{}
	accountRepo := statefulAccountRepo(nil)
	gateway := &mockGateway{
		RequestPaymentFunc: func(ctx context.Context, req paymentgateway.PaymentRequest) paymentgateway.Result {
			return paymentgateway.Result{
				ResultCode:    paymentgateway.ResultCodeNotOK,
				ResultMessage: "card expired",
				ErrorCode:     "E2001",
			}
		},
	}

	uc := newRegisterUseCase(batchRepo, recordRepo, accountRepo, testCatalogRepository(t), gateway)

	result, err := uc.Execute(context.Background(), RegisterStoreServicesCommand{
		StoreID:        1,
		ActorID:        99,
		Selection:      rewardSelection(),
		PaymentTokenID: "tok-1",
		PayNow:         true,
		RefundAccount:  billingVO.EmptyRefundAccount(),
	})
	require.NoError(t, err)

	// The subscription committed but the charge was declined.
	assert.True(t, result.BillingFailed)
	assert.Equal(t, billingVO.RecordStatusFail, result.Record.Status())
	assert.Equal(t, "card expired", result.Record.ResultMessage())
	assert.Equal(t, pointVO.AccountStatusPending, result.Account.Status())
}

func TestRegisterWithoutPayNowLeavesRecordPending(t *testing.T) {
	recordRepo := &mockRecordRepository{}
	gateway := &mockGateway{}

	uc := newRegisterUseCase(&mockBatchRepository{}, recordRepo, statefulAccountRepo(nil), testCatalogRepository(t), gateway)

	result, err := uc.Execute(context.Background(), RegisterStoreServicesCommand{
		StoreID:        1,
		ActorID:        99,
		Selection:      rewardSelection(),
		PaymentTokenID: "tok-1",
		PayNow:         false,
		RefundAccount:  billingVO.EmptyRefundAccount(),
	})
	require.NoError(t, err)

	assert.Equal(t, billingVO.RecordStatusPending, result.Record.Status())
	assert.False(t, result.BillingFailed)
	assert.Equal(t, pointVO.AccountStatusPending, result.Account.Status())
	// The gateway is only reached by the settlement batch.
	assert.Empty(t, gateway.PaymentCalls)
}

func TestRegisterRejectsMismatchedPricing(t *testing.T) {
	linesCreated := false
	batchRepo := &mockBatchRepository{
		CreateLinesFunc: func(ctx context.Context, lines []*subscription.Line) error {
			linesCreated = true
			return nil
		},
	}
	recordCreated := false
	recordRepo := &mockRecordRepository{
		CreateFunc: func(ctx context.Context, record *billing.Record) error {
			recordCreated = true
			return nil
		},
	}
	gateway := &mockGateway{}

	sel := rewardSelection()
	line := sel[catalogVO.ServiceCodeReviewReward]
	line.Commission = 9999
	sel[catalogVO.ServiceCodeReviewReward] = line

	uc := newRegisterUseCase(batchRepo, recordRepo, statefulAccountRepo(nil), testCatalogRepository(t), gateway)

	_, err := uc.Execute(context.Background(), RegisterStoreServicesCommand{
		StoreID:        1,
		ActorID:        99,
		Selection:      sel,
		PaymentTokenID: "tok-1",
		PayNow:         true,
		RefundAccount:  billingVO.EmptyRefundAccount(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, linesCreated)
	assert.False(t, recordCreated)
	assert.Empty(t, gateway.PaymentCalls)
}

func TestRegisterEmptySelectionUnsubscribes(t *testing.T) {
	account, err := pointaccount.NewAccount(1, 2500, 5000, pointVO.RenewalPolicyAuto)
	require.NoError(t, err)
	account.SetID(1)

	priorRetired := false
	batchRepo := &mockBatchRepository{
		DeactivateAllByStoreFunc: func(ctx context.Context, storeID uint, actorID uint) (int64, error) {
			priorRetired = true
			assert.Equal(t, uint(99), actorID)
			return 2, nil
		},
	}
	openCanceled := false
	recordRepo := &mockRecordRepository{
		CancelAllOpenByStoreFunc: func(ctx context.Context, storeID uint) (int64, error) {
			openCanceled = true
			return 1, nil
		},
	}
	gateway := &mockGateway{}

	uc := newRegisterUseCase(batchRepo, recordRepo, statefulAccountRepo(account), testCatalogRepository(t), gateway)

	result, err := uc.Execute(context.Background(), RegisterStoreServicesCommand{
		StoreID: 1,
		ActorID: 99,
	})
	require.NoError(t, err)

	assert.True(t, priorRetired)
	assert.True(t, openCanceled)
	assert.Empty(t, result.Lines)
	assert.Nil(t, result.Record)
	require.NotNil(t, result.Account)
	assert.Equal(t, pointVO.AccountStatusDeleted, result.Account.Status())
	assert.Empty(t, gateway.PaymentCalls)
}

func TestRegisterMintsVersionAboveLatest(t *testing.T) {
	const latest = int64(99999999999999)
	batchRepo := &mockBatchRepository{
		LatestBatchVersionFunc: func(ctx context.Context, storeID uint) (int64, error) {
			return latest, nil
		},
	}

	uc := newRegisterUseCase(batchRepo, &mockRecordRepository{}, statefulAccountRepo(nil), testCatalogRepository(t), &mockGateway{})

	result, err := uc.Execute(context.Background(), RegisterStoreServicesCommand{
		StoreID:        1,
		ActorID:        99,
		Selection:      rewardSelection(),
		PaymentTokenID: "tok-1",
		RefundAccount:  billingVO.EmptyRefundAccount(),
	})
	require.NoError(t, err)
	assert.Equal(t, latest+1, result.BatchVersion)
}

func TestRegisterRetriesOnceOnVersionConflict(t *testing.T) {
	attempts := 0
	batchRepo := &mockBatchRepository{
		CreateLinesFunc: func(ctx context.Context, lines []*subscription.Line) error {
			attempts++
			if attempts == 1 {
				return fmt.Errorf("Duplicate entry '20240101120000-1-ERECEIPT' for key 'idx_store_batch_service'")
			}
			return nil
		},
	}

	uc := newRegisterUseCase(batchRepo, &mockRecordRepository{}, statefulAccountRepo(nil), testCatalogRepository(t), &mockGateway{})

	result, err := uc.Execute(context.Background(), RegisterStoreServicesCommand{
		StoreID:        1,
		ActorID:        99,
		Selection:      rewardSelection(),
		PaymentTokenID: "tok-1",
		RefundAccount:  billingVO.EmptyRefundAccount(),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.NotNil(t, result.Record)
}

func TestRegisterGivesUpAfterSecondConflict(t *testing.T) {
	batchRepo := &mockBatchRepository{
		CreateLinesFunc: func(ctx context.Context, lines []*subscription.Line) error {
			return fmt.Errorf("Duplicate entry '20240101120000-1-ERECEIPT' for key 'idx_store_batch_service'")
		},
	}

	uc := newRegisterUseCase(batchRepo, &mockRecordRepository{}, statefulAccountRepo(nil), testCatalogRepository(t), &mockGateway{})

	_, err := uc.Execute(context.Background(), RegisterStoreServicesCommand{
		StoreID:        1,
		ActorID:        99,
		Selection:      rewardSelection(),
		PaymentTokenID: "tok-1",
		RefundAccount:  billingVO.EmptyRefundAccount(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterReusesExistingAccount(t *testing.T) {
	account, err := pointaccount.NewAccount(1, 1000, 2000, pointVO.RenewalPolicyAuto)
	require.NoError(t, err)
	account.SetID(7)

	uc := newRegisterUseCase(&mockBatchRepository{}, &mockRecordRepository{}, statefulAccountRepo(account), testCatalogRepository(t), &mockGateway{})

	result, err := uc.Execute(context.Background(), RegisterStoreServicesCommand{
		StoreID:        1,
		ActorID:        99,
		Selection:      rewardSelection(),
		PaymentTokenID: "tok-1",
		RefundAccount:  billingVO.EmptyRefundAccount(),
	})
	require.NoError(t, err)

	// Same account, refreshed billing settings.
	assert.Equal(t, uint(7), result.Account.ID())
	assert.Equal(t, int64(2500), result.Account.RegularPaymentAmount())
	assert.Equal(t, int64(5000), result.Account.ReviewPoints())
	assert.Equal(t, pointVO.AccountStatusPending, result.Account.Status())
}

func TestRegisterToleratesAccountRefreshFailure(t *testing.T) {
	var saved *pointaccount.Account
	reads := 0
	accountRepo := &mockAccountRepository{
		GetByStoreIDFunc: func(ctx context.Context, storeID uint) (*pointaccount.Account, error) {
			reads++
			// First read: lazy creation check. Second: dispatch activation.
			// Third: the post-dispatch refresh, which fails transiently.
			if reads == 3 {
				return nil, fmt.Errorf("connection reset")
			}
			return saved, nil
		},
		CreateFunc: func(ctx context.Context, account *pointaccount.Account) error {
			account.SetID(1)
			saved = account
			return nil
		},
	}

	uc := newRegisterUseCase(&mockBatchRepository{}, &mockRecordRepository{}, accountRepo, testCatalogRepository(t), &mockGateway{})

	result, err := uc.Execute(context.Background(), RegisterStoreServicesCommand{
		StoreID:        1,
		ActorID:        99,
		Selection:      rewardSelection(),
		PaymentTokenID: "tok-1",
		PayNow:         true,
		RefundAccount:  billingVO.EmptyRefundAccount(),
	})
	// A failed refresh never fails the call: the settlement is durable.
	require.NoError(t, err)
	assert.Equal(t, 3, reads)
	assert.False(t, result.BillingFailed)
	assert.Equal(t, billingVO.RecordStatusComplete, result.Record.Status())
	require.NotNil(t, result.Account)
}

func TestRegisterTwiceMintsDistinctVersionsSameLines(t *testing.T) {
	var latest int64
	var batches [][]*subscription.Line
	batchRepo := &mockBatchRepository{
		LatestBatchVersionFunc: func(ctx context.Context, storeID uint) (int64, error) {
			return latest, nil
		},
		CreateLinesFunc: func(ctx context.Context, lines []*subscription.Line) error {
			batches = append(batches, lines)
			latest = lines[0].BatchVersion()
			return nil
		},
	}

	uc := newRegisterUseCase(batchRepo, &mockRecordRepository{}, statefulAccountRepo(nil), testCatalogRepository(t), &mockGateway{})

	cmd := RegisterStoreServicesCommand{
		StoreID:        1,
		ActorID:        99,
		Selection:      rewardSelection(),
		PaymentTokenID: "tok-1",
		RefundAccount:  billingVO.EmptyRefundAccount(),
	}
	first, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	// Re-registering the same selection is a new batch, not an update.
	assert.Greater(t, second.BatchVersion, first.BatchVersion)
	require.Len(t, batches, 2)
	require.Len(t, batches[1], len(batches[0]))
	for i := range batches[0] {
		assert.Equal(t, batches[0][i].ServiceCode(), batches[1][i].ServiceCode())
		assert.Equal(t, batches[0][i].ServiceCharge(), batches[1][i].ServiceCharge())
		assert.Equal(t, batches[0][i].RewardDeposit(), batches[1][i].RewardDeposit())
		assert.Equal(t, batches[0][i].Commission(), batches[1][i].Commission())
	}
}

func TestRegisterRequiresStoreID(t *testing.T) {
	uc := newRegisterUseCase(&mockBatchRepository{}, &mockRecordRepository{}, statefulAccountRepo(nil), testCatalogRepository(t), &mockGateway{})

	_, err := uc.Execute(context.Background(), RegisterStoreServicesCommand{ActorID: 99})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
