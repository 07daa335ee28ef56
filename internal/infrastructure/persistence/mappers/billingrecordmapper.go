package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/recero-inc/recero/internal/domain/billing"
	vo "github.com/recero-inc/recero/internal/domain/billing/valueobjects"
	"github.com/recero-inc/recero/internal/infrastructure/persistence/models"
)

// BillingRecordToModel maps the domain record with the refund account number
// in plaintext; the repository swaps in the encrypted value before writing.
func BillingRecordToModel(r *billing.Record) *models.BillingRecordModel {
	refund := r.RefundAccount()
	return &models.BillingRecordModel{
		ID:                  r.ID(),
		StoreID:             r.StoreID(),
		BatchVersion:        r.BatchVersion(),
		PaymentTokenID:      r.PaymentTokenID(),
		Amount:              r.Amount(),
		Status:              r.Status().String(),
		RefundBankCode:      refund.BankCode(),
		RefundAccountNumber: refund.AccountNumber(),
		RefundHolderName:    refund.HolderName(),
		ResultMessage:       r.ResultMessage(),
		ErrorCode:           r.ErrorCode(),
		GatewayPayload:      datatypes.JSON(r.GatewayPayload()),
		SettledAt:           r.SettledAt(),
		CreatedAt:           r.CreatedAt(),
		CreatedBy:           r.CreatedBy(),
		UpdatedAt:           r.UpdatedAt(),
	}
}

// BillingRecordToDomain expects the model's refund account number already
// decrypted by the repository.
func BillingRecordToDomain(model *models.BillingRecordModel) (*billing.Record, error) {
	status := vo.RecordStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid billing record status: %s", model.Status)
	}

	refund := vo.ReconstructRefundAccount(
		model.RefundBankCode, model.RefundAccountNumber, model.RefundHolderName,
	)

	return billing.ReconstructRecord(
		model.ID, model.StoreID, model.BatchVersion, model.PaymentTokenID,
		model.Amount, status, refund,
		model.ResultMessage, model.ErrorCode,
		[]byte(model.GatewayPayload),
		model.SettledAt,
		model.CreatedAt, model.CreatedBy,
		model.UpdatedAt,
	), nil
}
