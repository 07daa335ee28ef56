package models

import "time"

type ServiceModel struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"uniqueIndex;size:16;not null"`
	Name      string `gorm:"size:64;not null"`
	ListPrice int64  `gorm:"not null"`
	Status    string `gorm:"size:16;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ServiceModel) TableName() string {
	return "services"
}
