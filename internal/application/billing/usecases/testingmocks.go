package usecases

import (
	"context"

	"github.com/recero-inc/recero/internal/application/billing/paymentgateway"
	"github.com/recero-inc/recero/internal/domain/billing"
	billingVO "github.com/recero-inc/recero/internal/domain/billing/valueobjects"
	"github.com/recero-inc/recero/internal/domain/pointaccount"
	"github.com/recero-inc/recero/internal/shared/logger"
)

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

type mockGateway struct {
	RequestPaymentFunc func(ctx context.Context, req paymentgateway.PaymentRequest) paymentgateway.Result
	CancelPaymentFunc  func(ctx context.Context, req paymentgateway.CancelRequest) paymentgateway.Result

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
	if m.CancelPaymentFunc != nil {
		return m.CancelPaymentFunc(ctx, req)
	}
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
