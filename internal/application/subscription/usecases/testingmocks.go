package usecases

import (
	"context"

	"github.com/recero-inc/recero/internal/application/billing/paymentgateway"
	"github.com/recero-inc/recero/internal/domain/billing"
	billingVO "github.com/recero-inc/recero/internal/domain/billing/valueobjects"
	"github.com/recero-inc/recero/internal/domain/catalog"
	catalogVO "github.com/recero-inc/recero/internal/domain/catalog/valueobjects"
	"github.com/recero-inc/recero/internal/domain/pointaccount"
	"github.com/recero-inc/recero/internal/domain/subscription"
	"github.com/recero-inc/recero/internal/shared/logger"
)

type mockBatchRepository struct {
	CreateLinesFunc          func(ctx context.Context, lines []*subscription.Line) error
	DeactivateAllByStoreFunc func(ctx context.Context, storeID uint, actorID uint) (int64, error)
	LatestBatchVersionFunc   func(ctx context.Context, storeID uint) (int64, error)
	GetActiveByStoreFunc     func(ctx context.Context, storeID uint) ([]*subscription.Line, error)
	GetByBatchFunc           func(ctx context.Context, storeID uint, batchVersion int64) ([]*subscription.Line, error)
}

func (m *mockBatchRepository) CreateLines(ctx context.Context, lines []*subscription.Line) error {
	if m.CreateLinesFunc != nil {
		return m.CreateLinesFunc(ctx, lines)
	}
	return nil
}

func (m *mockBatchRepository) DeactivateAllByStore(ctx context.Context, storeID uint, actorID uint) (int64, error) {
	if m.DeactivateAllByStoreFunc != nil {
		return m.DeactivateAllByStoreFunc(ctx, storeID, actorID)
	}
	return 0, nil
}

func (m *mockBatchRepository) LatestBatchVersion(ctx context.Context, storeID uint) (int64, error) {
	if m.LatestBatchVersionFunc != nil {
		return m.LatestBatchVersionFunc(ctx, storeID)
	}
	return 0, nil
}

func (m *mockBatchRepository) GetActiveByStore(ctx context.Context, storeID uint) ([]*subscription.Line, error) {
	if m.GetActiveByStoreFunc != nil {
		return m.GetActiveByStoreFunc(ctx, storeID)
	}
	return nil, nil
}

func (m *mockBatchRepository) GetByBatch(ctx context.Context, storeID uint, batchVersion int64) ([]*subscription.Line, error) {
	if m.GetByBatchFunc != nil {
		return m.GetByBatchFunc(ctx, storeID, batchVersion)
	}
	return nil, nil
}

type mockRecordRepository struct {
	CreateFunc               func(ctx context.Context, record *billing.Record) error
	UpdateFunc               func(ctx context.Context, record *billing.Record) error
	GetByIDFunc              func(ctx context.Context, id uint) (*billing.Record, error)
	GetByStoreFunc           func(ctx context.Context, storeID uint) ([]*billing.Record, error)
	ListByStatusFunc         func(ctx context.Context, status billingVO.RecordStatus, limit int) ([]*billing.Record, error)
	CancelAllOpenByStoreFunc func(ctx context.Context, storeID uint) (int64, error)
}

func (m *mockRecordRepository) Create(ctx context.Context, record *billing.Record) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	record.SetID(1)
	return nil
}

func (m *mockRecordRepository) Update(ctx context.Context, record *billing.Record) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, record)
	}
	return nil
}

func (m *mockRecordRepository) GetByID(ctx context.Context, id uint) (*billing.Record, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRecordRepository) GetByStore(ctx context.Context, storeID uint) ([]*billing.Record, error) {
	if m.GetByStoreFunc != nil {
		return m.GetByStoreFunc(ctx, storeID)
	}
	return nil, nil
}

func (m *mockRecordRepository) ListByStatus(ctx context.Context, status billingVO.RecordStatus, limit int) ([]*billing.Record, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status, limit)
	}
	return nil, nil
}

func (m *mockRecordRepository) CancelAllOpenByStore(ctx context.Context, storeID uint) (int64, error) {
	if m.CancelAllOpenByStoreFunc != nil {
		return m.CancelAllOpenByStoreFunc(ctx, storeID)
	}
	return 0, nil
}

type mockAccountRepository struct {
	CreateFunc       func(ctx context.Context, account *pointaccount.Account) error
	UpdateFunc       func(ctx context.Context, account *pointaccount.Account) error
	GetByStoreIDFunc func(ctx context.Context, storeID uint) (*pointaccount.Account, error)
}

func (m *mockAccountRepository) Create(ctx context.Context, account *pointaccount.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	account.SetID(1)
	return nil
}

func (m *mockAccountRepository) Update(ctx context.Context, account *pointaccount.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	return nil
}

func (m *mockAccountRepository) GetByStoreID(ctx context.Context, storeID uint) (*pointaccount.Account, error) {
	if m.GetByStoreIDFunc != nil {
		return m.GetByStoreIDFunc(ctx, storeID)
	}
	return nil, nil
}

type mockCatalogRepository struct {
	GetByCodeFunc   func(ctx context.Context, code catalogVO.ServiceCode) (*catalog.ServiceDef, error)
	GetSnapshotFunc func(ctx context.Context, codes []catalogVO.ServiceCode) (catalog.Snapshot, error)
	ListOnSaleFunc  func(ctx context.Context) ([]*catalog.ServiceDef, error)
}

func (m *mockCatalogRepository) GetByCode(ctx context.Context, code catalogVO.ServiceCode) (*catalog.ServiceDef, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockCatalogRepository) GetSnapshot(ctx context.Context, codes []catalogVO.ServiceCode) (catalog.Snapshot, error) {
	if m.GetSnapshotFunc != nil {
		return m.GetSnapshotFunc(ctx, codes)
	}
	return catalog.Snapshot{}, nil
}

func (m *mockCatalogRepository) ListOnSale(ctx context.Context) ([]*catalog.ServiceDef, error) {
	if m.ListOnSaleFunc != nil {
		return m.ListOnSaleFunc(ctx)
	}
	return nil, nil
}

type mockGateway struct {
	RequestPaymentFunc func(ctx context.Context, req paymentgateway.PaymentRequest) paymentgateway.Result

	PaymentCalls []paymentgateway.PaymentRequest
}

func (m *mockGateway) RequestPayment(ctx context.Context, req paymentgateway.PaymentRequest) paymentgateway.Result {
	m.PaymentCalls = append(m.PaymentCalls, req)
	if m.RequestPaymentFunc != nil {
		return m.RequestPaymentFunc(ctx, req)
	}
	return paymentgateway.Result{ResultCode: paymentgateway.ResultCodeOK}
}

func (m *mockGateway) CancelPayment(ctx context.Context, req paymentgateway.CancelRequest) paymentgateway.Result {
	return paymentgateway.Result{ResultCode: paymentgateway.ResultCodeOK}
}

// fakeTxManager runs the function directly; unit tests assert on the
// repository calls, not on transaction mechanics.
type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
