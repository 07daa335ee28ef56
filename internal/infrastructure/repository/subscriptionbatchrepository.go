package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/recero-inc/recero/internal/domain/subscription"
	vo "github.com/recero-inc/recero/internal/domain/subscription/valueobjects"
	"github.com/recero-inc/recero/internal/infrastructure/persistence/mappers"
	"github.com/recero-inc/recero/internal/infrastructure/persistence/models"
	"github.com/recero-inc/recero/internal/shared/biztime"
	"github.com/recero-inc/recero/internal/shared/db"
)

type SubscriptionBatchRepository struct {
	db *gorm.DB
}

func NewSubscriptionBatchRepository(db *gorm.DB) *SubscriptionBatchRepository {
	return &SubscriptionBatchRepository{db: db}
}

func (r *SubscriptionBatchRepository) CreateLines(ctx context.Context, lines []*subscription.Line) error {
	if len(lines) == 0 {
		return nil
	}

	lineModels := make([]*models.SubscriptionLineModel, len(lines))
	for i, line := range lines {
		lineModels[i] = mappers.SubscriptionLineToModel(line)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(lineModels).Error; err != nil {
		return fmt.Errorf("failed to create subscription lines: %w", err)
	}

	for i, model := range lineModels {
		lines[i].SetID(model.ID)
	}

	return nil
}

func (r *SubscriptionBatchRepository) DeactivateAllByStore(ctx context.Context, storeID uint, actorID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionLineModel{}).
		Where("store_id = ? AND status <> ?", storeID, vo.LineStatusInactive.String()).
		Updates(map[string]interface{}{
			"status":      vo.LineStatusInactive.String(),
			"modified_at": biztime.NowUTC(),
			"modified_by": actorID,
		})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to deactivate subscription lines: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// LatestBatchVersion takes a row lock on the store's newest line so that
// concurrent version minting is serialized by the transaction.
func (r *SubscriptionBatchRepository) LatestBatchVersion(ctx context.Context, storeID uint) (int64, error) {
	var model models.SubscriptionLineModel

	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("store_id = ?", storeID).
		Order("batch_version DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read latest batch version: %w", err)
	}

	return model.BatchVersion, nil
}

func (r *SubscriptionBatchRepository) GetActiveByStore(ctx context.Context, storeID uint) ([]*subscription.Line, error) {
	return r.findLines(ctx, "store_id = ? AND status = ?", storeID, vo.LineStatusActive.String())
}

func (r *SubscriptionBatchRepository) GetByBatch(ctx context.Context, storeID uint, batchVersion int64) ([]*subscription.Line, error) {
	return r.findLines(ctx, "store_id = ? AND batch_version = ?", storeID, batchVersion)
}

func (r *SubscriptionBatchRepository) findLines(ctx context.Context, query string, args ...interface{}) ([]*subscription.Line, error) {
	var lineModels []models.SubscriptionLineModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where(query, args...).
		Order("service_code").
		Find(&lineModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get subscription lines: %w", err)
	}

	lines := make([]*subscription.Line, len(lineModels))
	for i := range lineModels {
		line, err := mappers.SubscriptionLineToDomain(&lineModels[i])
		if err != nil {
			return nil, err
		}
		lines[i] = line
	}

	return lines, nil
}
