package mappers

import (
	"fmt"

	"github.com/recero-inc/recero/internal/domain/pointaccount"
	vo "github.com/recero-inc/recero/internal/domain/pointaccount/valueobjects"
	"github.com/recero-inc/recero/internal/infrastructure/persistence/models"
)

func PointAccountToModel(a *pointaccount.Account) *models.PointAccountModel {
	model := &models.PointAccountModel{
		ID:                   a.ID(),
		StoreID:              a.StoreID(),
		ReservedPoints:       a.ReservedPoints(),
		ReviewPoints:         a.ReviewPoints(),
		CumulativePoints:     a.CumulativePoints(),
		RegularPaymentAmount: a.RegularPaymentAmount(),
		Status:               a.Status().String(),
		RenewalPolicy:        a.RenewalPolicy().String(),
		CreatedAt:            a.CreatedAt(),
		ModifiedAt:           a.ModifiedAt(),
	}

	if window := a.Window(); !window.IsZero() {
		start := window.Start()
		end := window.End()
		model.ServiceStart = &start
		model.ServiceEnd = &end
	}

	return model
}

func PointAccountToDomain(model *models.PointAccountModel) (*pointaccount.Account, error) {
	status := vo.AccountStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid point account status: %s", model.Status)
	}
	policy := vo.RenewalPolicy(model.RenewalPolicy)
	if !policy.IsValid() {
		return nil, fmt.Errorf("invalid renewal policy: %s", model.RenewalPolicy)
	}

	window := vo.ReconstructServiceWindow(model.ServiceStart, model.ServiceEnd)

	return pointaccount.ReconstructAccount(
		model.ID, model.StoreID,
		model.ReservedPoints, model.ReviewPoints, model.CumulativePoints, model.RegularPaymentAmount,
		status, window, policy,
		model.CreatedAt, model.ModifiedAt,
	), nil
}
