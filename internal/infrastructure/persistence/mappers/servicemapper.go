package mappers

import (
	"fmt"

	"github.com/recero-inc/recero/internal/domain/catalog"
	vo "github.com/recero-inc/recero/internal/domain/catalog/valueobjects"
	"github.com/recero-inc/recero/internal/infrastructure/persistence/models"
)

func ServiceToModel(s *catalog.ServiceDef) *models.ServiceModel {
	return &models.ServiceModel{
		ID:        s.ID(),
		Code:      s.Code().String(),
		Name:      s.Name(),
		ListPrice: s.ListPrice(),
		Status:    s.Status().String(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}

func ServiceToDomain(model *models.ServiceModel) (*catalog.ServiceDef, error) {
	code := vo.ServiceCode(model.Code)
	if !code.IsValid() {
		return nil, fmt.Errorf("invalid service code: %s", model.Code)
	}
	status := vo.ServiceStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid service status: %s", model.Status)
	}

	return catalog.ReconstructServiceDef(
		model.ID, code, model.Name, model.ListPrice, status,
		model.CreatedAt, model.UpdatedAt,
	), nil
}
