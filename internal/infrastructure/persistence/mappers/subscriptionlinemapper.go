package mappers

import (
	"fmt"

	catalogVO "github.com/recero-inc/recero/internal/domain/catalog/valueobjects"
	"github.com/recero-inc/recero/internal/domain/subscription"
	vo "github.com/recero-inc/recero/internal/domain/subscription/valueobjects"
	"github.com/recero-inc/recero/internal/infrastructure/persistence/models"
)

func SubscriptionLineToModel(l *subscription.Line) *models.SubscriptionLineModel {
	return &models.SubscriptionLineModel{
		ID:            l.ID(),
		BatchVersion:  l.BatchVersion(),
		StoreID:       l.StoreID(),
		ServiceCode:   l.ServiceCode().String(),
		ServiceCharge: l.ServiceCharge(),
		RewardDeposit: l.RewardDeposit(),
		RewardPoint:   l.RewardPoint(),
		Commission:    l.Commission(),
		Status:        l.Status().String(),
		CreatedAt:     l.CreatedAt(),
		CreatedBy:     l.CreatedBy(),
		ModifiedAt:    l.ModifiedAt(),
		ModifiedBy:    l.ModifiedBy(),
	}
}

func SubscriptionLineToDomain(model *models.SubscriptionLineModel) (*subscription.Line, error) {
	code := catalogVO.ServiceCode(model.ServiceCode)
	if !code.IsValid() {
		return nil, fmt.Errorf("invalid service code: %s", model.ServiceCode)
	}
	status := vo.LineStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid line status: %s", model.Status)
	}

	return subscription.ReconstructLine(
		model.ID, model.BatchVersion, model.StoreID, code,
		model.ServiceCharge, model.RewardDeposit, model.RewardPoint, model.Commission,
		status,
		model.CreatedAt, model.CreatedBy,
		model.ModifiedAt, model.ModifiedBy,
	), nil
}
