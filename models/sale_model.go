package models

import (
	"factory-app/types"

	"gorm.io/gorm"
)

// Sale quantity is QuantityTons plus QuantityKg/1000. ProductName must match
// a material name; inventory is deducted from that material's lots.
type Sale struct {
	gorm.Model
	TransactionID types.SnowflakeID `json:"transaction_id" gorm:"uniqueIndex"`
	RefNo         string            `json:"ref_no" gorm:"index"`
	ProductName   string            `json:"product_name" gorm:"index;not null" validate:"required"`
	QuantityTons  float64           `json:"quantity_tons" gorm:"default:0"`
	QuantityKg    float64           `json:"quantity_kg" gorm:"default:0"`
	UnitPrice     float64           `json:"unit_price" gorm:"default:0"`
	TotalAmount   float64           `json:"total_amount" gorm:"default:0"`
	SaleDate      string            `json:"sale_date"`
	ClientName    string            `json:"client_name"`
	ClientContact string            `json:"client_contact"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}

// TotalQuantity returns the sale quantity in tons including the kg component.
func (s *Sale) TotalQuantity() float64 {
	return s.QuantityTons + s.QuantityKg/1000
}
