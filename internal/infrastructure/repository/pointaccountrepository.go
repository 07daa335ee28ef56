package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/recero-inc/recero/internal/domain/pointaccount"
	"github.com/recero-inc/recero/internal/infrastructure/persistence/mappers"
	"github.com/recero-inc/recero/internal/infrastructure/persistence/models"
	"github.com/recero-inc/recero/internal/shared/db"
)

type PointAccountRepository struct {
	db *gorm.DB
}

func NewPointAccountRepository(db *gorm.DB) *PointAccountRepository {
	return &PointAccountRepository{db: db}
}

func (r *PointAccountRepository) Create(ctx context.Context, account *pointaccount.Account) error {
	model := mappers.PointAccountToModel(account)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create point account: %w", err)
	}

	account.SetID(model.ID)
	return nil
}

func (r *PointAccountRepository) Update(ctx context.Context, account *pointaccount.Account) error {
	model := mappers.PointAccountToModel(account)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PointAccountModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"reserved_points":        model.ReservedPoints,
			"review_points":          model.ReviewPoints,
			"cumulative_points":      model.CumulativePoints,
			"regular_payment_amount": model.RegularPaymentAmount,
			"status":                 model.Status,
			"renewal_policy":         model.RenewalPolicy,
			"service_start":          model.ServiceStart,
			"service_end":            model.ServiceEnd,
			"modified_at":            model.ModifiedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update point account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("point account not found: %d", model.ID)
	}

	return nil
}

// GetByStoreID returns (nil, nil) when the store has no point account yet.
func (r *PointAccountRepository) GetByStoreID(ctx context.Context, storeID uint) (*pointaccount.Account, error) {
	var model models.PointAccountModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("store_id = ?", storeID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get point account: %w", err)
	}

	return mappers.PointAccountToDomain(&model)
}
