package models

import (
	"gorm.io/gorm"
)

// Worker departments: Production, QualityControl, Storage, Maintenance,
// Administrative, Sales.
type Worker struct {
	gorm.Model
	Name       string  `json:"name" gorm:"not null" validate:"required"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary" gorm:"default:0"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Address    string  `json:"address"`
	HireDate   string  `json:"hire_date"`
	IsActive   bool    `json:"is_active" gorm:"default:true"`
	CreatedBy  int
	UpdatedBy  int
	DeletedBy  int
}
