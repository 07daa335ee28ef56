package pointaccount

import "context"

// AccountRepository persists point accounts, one row per store.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	// GetByStoreID returns nil, nil when the store has no account yet.
	GetByStoreID(ctx context.Context, storeID uint) (*Account, error)
}
