package models

import "time"

// SubscriptionLineModel is one subscribed service under a batch version. The
// unique key over (store_id, batch_version, service_code) is what turns two
// writers racing on the same version into a detectable duplicate-key error.
type SubscriptionLineModel struct {
	ID            uint   `gorm:"primaryKey"`
	BatchVersion  int64  `gorm:"uniqueIndex:idx_store_batch_service;not null"`
	StoreID       uint   `gorm:"uniqueIndex:idx_store_batch_service;index;not null"`
	ServiceCode   string `gorm:"uniqueIndex:idx_store_batch_service;size:16;not null"`
	ServiceCharge int64  `gorm:"not null"`
	RewardDeposit int64  `gorm:"not null"`
	RewardPoint   int64  `gorm:"not null"`
	Commission    int64  `gorm:"not null"`
	Status        string `gorm:"size:16;not null;index"`
	CreatedAt     time.Time
	CreatedBy     uint
	ModifiedAt    time.Time
	ModifiedBy    uint
}

func (SubscriptionLineModel) TableName() string {
	return "subscription_lines"
}
