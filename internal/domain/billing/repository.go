package billing

import (
	"context"

	vo "github.com/recero-inc/recero/internal/domain/billing/valueobjects"
)

// RecordRepository persists billing attempts.
type RecordRepository interface {
	Create(ctx context.Context, record *Record) error
	Update(ctx context.Context, record *Record) error
	GetByID(ctx context.Context, id uint) (*Record, error)
	GetByStore(ctx context.Context, storeID uint) ([]*Record, error)
	// ListByStatus returns up to limit records in the given status, oldest
	// first. The settlement batch pages through pending records with it.
	ListByStatus(ctx context.Context, status vo.RecordStatus, limit int) ([]*Record, error)
	// CancelAllOpenByStore bulk-cancels every pending or standby record for
	// the store and returns the number of rows touched. Complete and fail
	// rows are terminal and left alone.
	CancelAllOpenByStore(ctx context.Context, storeID uint) (int64, error)
}
