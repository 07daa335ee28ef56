package catalog

import (
	"context"

	vo "github.com/recero-inc/recero/internal/domain/catalog/valueobjects"
)

type Repository interface {
	GetByCode(ctx context.Context, code vo.ServiceCode) (*ServiceDef, error)
	// GetSnapshot returns a stable snapshot of the definitions for the given
	// codes in one read. Codes absent from the catalog are simply missing from
	// the result; callers decide whether that is an error.
	GetSnapshot(ctx context.Context, codes []vo.ServiceCode) (Snapshot, error)
	ListOnSale(ctx context.Context) ([]*ServiceDef, error)
}
