package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/recero-inc/recero/internal/domain/catalog"
	vo "github.com/recero-inc/recero/internal/domain/catalog/valueobjects"
	"github.com/recero-inc/recero/internal/infrastructure/persistence/mappers"
	"github.com/recero-inc/recero/internal/infrastructure/persistence/models"
	"github.com/recero-inc/recero/internal/shared/db"
)

type ServiceCatalogRepository struct {
	db *gorm.DB
}

func NewServiceCatalogRepository(db *gorm.DB) *ServiceCatalogRepository {
	return &ServiceCatalogRepository{db: db}
}

func (r *ServiceCatalogRepository) GetByCode(ctx context.Context, code vo.ServiceCode) (*catalog.ServiceDef, error) {
	var model models.ServiceModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("code = ?", code.String()).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("service not found: %s", code)
		}
		return nil, fmt.Errorf("failed to get service by code: %w", err)
	}

	return mappers.ServiceToDomain(&model)
}

func (r *ServiceCatalogRepository) GetSnapshot(ctx context.Context, codes []vo.ServiceCode) (catalog.Snapshot, error) {
	codeStrs := make([]string, len(codes))
	for i, c := range codes {
		codeStrs[i] = c.String()
	}

	var serviceModels []models.ServiceModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("code IN ?", codeStrs).
		Find(&serviceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to snapshot services: %w", err)
	}

	snapshot := make(catalog.Snapshot, len(serviceModels))
	for i := range serviceModels {
		def, err := mappers.ServiceToDomain(&serviceModels[i])
		if err != nil {
			return nil, err
		}
		snapshot[def.Code()] = def
	}

	return snapshot, nil
}

func (r *ServiceCatalogRepository) ListOnSale(ctx context.Context) ([]*catalog.ServiceDef, error) {
	var serviceModels []models.ServiceModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("status = ?", vo.ServiceStatusOnSale.String()).
		Order("code").
		Find(&serviceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	defs := make([]*catalog.ServiceDef, len(serviceModels))
	for i := range serviceModels {
		def, err := mappers.ServiceToDomain(&serviceModels[i])
		if err != nil {
			return nil, err
		}
		defs[i] = def
	}

	return defs, nil
}
