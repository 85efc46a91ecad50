package models

import (
	"gorm.io/gorm"
)

// Expense categories: Utilities, Salaries, Maintenance, RawMaterials,
// Transportation, Administrative, Other.
type Expense struct {
	gorm.Model
	Name          string  `json:"name" gorm:"not null" validate:"required"`
	Amount        float64 `json:"amount" gorm:"default:0"`
	Category      string  `json:"category"`
	ExpenseDate   string  `json:"expense_date"`
	Description   string  `json:"description"`
	ReceiptNumber string  `json:"receipt_number"`
	Vendor        string  `json:"vendor"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}
