package models

import "time"

type PointAccountModel struct {
	ID                   uint   `gorm:"primaryKey"`
	StoreID              uint   `gorm:"uniqueIndex;not null"`
	ReservedPoints       int64  `gorm:"not null;default:0"`
	ReviewPoints         int64  `gorm:"not null;default:0"`
	CumulativePoints     int64  `gorm:"not null;default:0"`
	RegularPaymentAmount int64  `gorm:"not null;default:0"`
	Status               string `gorm:"size:16;not null;index"`
	ServiceStart         *time.Time
	ServiceEnd           *time.Time
	RenewalPolicy        string `gorm:"size:24;not null"`
	CreatedAt            time.Time
	ModifiedAt           time.Time
}

func (PointAccountModel) TableName() string {
	return "point_accounts"
}
