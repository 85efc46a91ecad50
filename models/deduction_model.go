package models

import (
	"gorm.io/gorm"
)

// SalaryDeduction is an explicit ledger entry. It is reported separately from
// the attendance-derived deduction in the monthly summary; the two are never
// merged.
type SalaryDeduction struct {
	gorm.Model
	WorkerID      uint    `json:"worker_id" gorm:"index;not null" validate:"required"`
	Amount        float64 `json:"amount" gorm:"default:0"`
	Reason        string  `json:"reason"`
	Month         string  `json:"month" gorm:"index"` // YYYY-MM
	Year          int     `json:"year"`
	DeductionDate string  `json:"deduction_date"`
	Description   string  `json:"description"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}
