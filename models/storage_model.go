package models

import (
	"gorm.io/gorm"
)

// StorageItem is one purchase lot of a material. Several lots may share the
// same item name; each keeps its own quantity, price and dealer.
type StorageItem struct {
	gorm.Model
	ItemName            string  `json:"item_name" gorm:"index;not null" validate:"required"`
	QuantityInTons      float64 `json:"quantity_in_tons" gorm:"default:0"`
	PurchasePricePerTon float64 `json:"purchase_price_per_ton" gorm:"default:0"`
	DealerName          string  `json:"dealer_name"`
	DealerContact       string  `json:"dealer_contact"`
	PurchaseDate        string  `json:"purchase_date"`
	CreatedBy           int
	UpdatedBy           int
	DeletedBy           int
}
