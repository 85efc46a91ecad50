package models

import (
	"gorm.io/gorm"
)

type ActivityLog struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null" validate:"required"`
	Description string `json:"description"`
	LogDate     string `json:"log_date" gorm:"index"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
