package subscription

import "context"

// BatchRepository persists the versioned subscription line batches.
type BatchRepository interface {
	// CreateLines inserts all lines of a new batch. A unique key over
	// (store_id, batch_version, service_code) rejects two writers racing on
	// the same version; callers detect the duplicate and retry with a fresh
	// version.
	CreateLines(ctx context.Context, lines []*Line) error
	// DeactivateAllByStore marks every non-inactive line of every batch for
	// the store as inactive and returns the number of lines touched.
	DeactivateAllByStore(ctx context.Context, storeID uint, actorID uint) (int64, error)
	// LatestBatchVersion returns the highest batch version ever minted for the
	// store, 0 when none. Inside a transaction the read takes a row lock so
	// concurrent minters are serialized.
	LatestBatchVersion(ctx context.Context, storeID uint) (int64, error)
	GetActiveByStore(ctx context.Context, storeID uint) ([]*Line, error)
	GetByBatch(ctx context.Context, storeID uint, batchVersion int64) ([]*Line, error)
}
