package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/recero-inc/recero/internal/domain/billing"
	vo "github.com/recero-inc/recero/internal/domain/billing/valueobjects"
	"github.com/recero-inc/recero/internal/infrastructure/persistence/mappers"
	"github.com/recero-inc/recero/internal/infrastructure/persistence/models"
	"github.com/recero-inc/recero/internal/shared/biztime"
	"github.com/recero-inc/recero/internal/shared/db"
)

// BillingRecordRepository persists billing records. The refund account number
// is encrypted at rest; the codec runs on every write and read.
type BillingRecordRepository struct {
	db    *gorm.DB
	codec billing.RefundAccountCodec
}

func NewBillingRecordRepository(db *gorm.DB, codec billing.RefundAccountCodec) *BillingRecordRepository {
	return &BillingRecordRepository{db: db, codec: codec}
}

func (r *BillingRecordRepository) Create(ctx context.Context, record *billing.Record) error {
	model := mappers.BillingRecordToModel(record)

	if model.RefundAccountNumber != "" {
		encrypted, err := r.codec.Encrypt(model.RefundAccountNumber)
		if err != nil {
			return fmt.Errorf("failed to encrypt refund account: %w", err)
		}
		model.RefundAccountNumber = encrypted
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create billing record: %w", err)
	}

	record.SetID(model.ID)
	return nil
}

func (r *BillingRecordRepository) Update(ctx context.Context, record *billing.Record) error {
	model := mappers.BillingRecordToModel(record)

	if model.RefundAccountNumber != "" {
		encrypted, err := r.codec.Encrypt(model.RefundAccountNumber)
		if err != nil {
			return fmt.Errorf("failed to encrypt refund account: %w", err)
		}
		model.RefundAccountNumber = encrypted
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.BillingRecordModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":          model.Status,
			"result_message":  model.ResultMessage,
			"error_code":      model.ErrorCode,
			"gateway_payload": model.GatewayPayload,
			"settled_at":      model.SettledAt,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update billing record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return billing.ErrRecordNotFound
	}

	return nil
}

func (r *BillingRecordRepository) GetByID(ctx context.Context, id uint) (*billing.Record, error) {
	var model models.BillingRecordModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, billing.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get billing record: %w", err)
	}

	return r.toDomain(&model)
}

func (r *BillingRecordRepository) GetByStore(ctx context.Context, storeID uint) ([]*billing.Record, error) {
	var recordModels []models.BillingRecordModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("store_id = ?", storeID).
		Order("id DESC").
		Find(&recordModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get billing records: %w", err)
	}

	records := make([]*billing.Record, len(recordModels))
	for i := range recordModels {
		record, err := r.toDomain(&recordModels[i])
		if err != nil {
			return nil, err
		}
		records[i] = record
	}

	return records, nil
}

func (r *BillingRecordRepository) ListByStatus(ctx context.Context, status vo.RecordStatus, limit int) ([]*billing.Record, error) {
	var recordModels []models.BillingRecordModel

	query := db.GetTxFromContext(ctx, r.db).
		Where("status = ?", status.String()).
		Order("id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&recordModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list billing records: %w", err)
	}

	records := make([]*billing.Record, len(recordModels))
	for i := range recordModels {
		record, err := r.toDomain(&recordModels[i])
		if err != nil {
			return nil, err
		}
		records[i] = record
	}

	return records, nil
}

func (r *BillingRecordRepository) CancelAllOpenByStore(ctx context.Context, storeID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.BillingRecordModel{}).
		Where("store_id = ? AND status IN ?", storeID, []string{
			vo.RecordStatusPending.String(),
			vo.RecordStatusStandby.String(),
		}).
		Updates(map[string]interface{}{
			"status":     vo.RecordStatusCanceled.String(),
			"updated_at": biztime.NowUTC(),
		})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to cancel open billing records: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *BillingRecordRepository) toDomain(model *models.BillingRecordModel) (*billing.Record, error) {
	if model.RefundAccountNumber != "" {
		decrypted, err := r.codec.Decrypt(model.RefundAccountNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt refund account: %w", err)
		}
		model.RefundAccountNumber = decrypted
	}
	return mappers.BillingRecordToDomain(model)
}
