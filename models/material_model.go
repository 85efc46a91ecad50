package models

import (
	"gorm.io/gorm"
)

// Material is the master list of raw materials. Storage lots and sales
// reference a material by name.
type Material struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null" validate:"required"`
	Description string `json:"description"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
