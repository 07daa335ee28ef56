package models

import (
	"time"

	"gorm.io/datatypes"
)

// BillingRecordModel is one billing attempt. RefundAccountNumber is stored
// encrypted through the refund account codec; GatewayPayload keeps the raw
// gateway response for audit.
type BillingRecordModel struct {
	ID                  uint   `gorm:"primaryKey"`
	StoreID             uint   `gorm:"index;not null"`
	BatchVersion        int64  `gorm:"index;not null"`
	PaymentTokenID      string `gorm:"size:64"`
	Amount              int64  `gorm:"not null"`
	Status              string `gorm:"size:16;not null;index"`
	RefundBankCode      string `gorm:"size:8"`
	RefundAccountNumber string `gorm:"size:256"`
	RefundHolderName    string `gorm:"size:64"`
	ResultMessage       string `gorm:"size:512"`
	ErrorCode           string `gorm:"size:32"`
	GatewayPayload      datatypes.JSON
	SettledAt           *time.Time
	CreatedAt           time.Time
	CreatedBy           uint
	UpdatedAt           time.Time
}

func (BillingRecordModel) TableName() string {
	return "billing_records"
}
