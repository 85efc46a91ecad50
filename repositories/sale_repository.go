package repositories

import (
	"errors"
	"factory-app/models"

	"gorm.io/gorm"
)

var ErrMaterialNotFound = errors.New("material not found")

// SaleRepository handles the sale lifecycle. Every mutation wraps the sale
// write and the matching inventory move in one transaction, so a failed
// deduction never leaves an orphan sale row.
type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// SaleChanges carries a partial update. Nil fields keep the existing value.
type SaleChanges struct {
	ProductName   *string  `json:"product_name"`
	QuantityTons  *float64 `json:"quantity_tons"`
	QuantityKg    *float64 `json:"quantity_kg"`
	UnitPrice     *float64 `json:"unit_price"`
	TotalAmount   *float64 `json:"total_amount"`
	SaleDate      *string  `json:"sale_date"`
	ClientName    *string  `json:"client_name"`
	ClientContact *string  `json:"client_contact"`
}

func mergeSale(existing models.Sale, ch SaleChanges) models.Sale {
	merged := existing
	if ch.ProductName != nil {
		merged.ProductName = *ch.ProductName
	}
	if ch.QuantityTons != nil {
		merged.QuantityTons = *ch.QuantityTons
	}
	if ch.QuantityKg != nil {
		merged.QuantityKg = *ch.QuantityKg
	}
	if ch.UnitPrice != nil {
		merged.UnitPrice = *ch.UnitPrice
	}
	if ch.TotalAmount != nil {
		merged.TotalAmount = *ch.TotalAmount
	}
	if ch.SaleDate != nil {
		merged.SaleDate = *ch.SaleDate
	}
	if ch.ClientName != nil {
		merged.ClientName = *ch.ClientName
	}
	if ch.ClientContact != nil {
		merged.ClientContact = *ch.ClientContact
	}
	return merged
}

func materialExists(tx *gorm.DB, name string) error {
	var material models.Material
	if err := tx.Where("name = ?", name).First(&material).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMaterialNotFound
		}
		return err
	}
	return nil
}

// Create validates availability, persists the sale and deducts the requested
// quantity from the material's lots.
func (r *SaleRepository) Create(sale *models.Sale) error {
	requested := sale.TotalQuantity()

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := materialExists(tx, sale.ProductName); err != nil {
			return err
		}

		inv := NewInventoryRepository(tx)

		if requested > 0 {
			available, err := inv.AvailableQuantity(sale.ProductName)
			if err != nil {
				return err
			}
			if requested > available {
				return ErrInsufficientStock
			}
		}

		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		if requested > 0 {
			return inv.Deduct(sale.ProductName, requested)
		}
		return nil
	})
}

// Update merges the changes into the stored sale and moves inventory by the
// quantity delta: extra quantity is deducted, reduced quantity is returned.
func (r *SaleRepository) Update(id uint, ch SaleChanges, updatedBy int) (*models.Sale, error) {
	var merged models.Sale

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Sale
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}

		merged = mergeSale(existing, ch)
		merged.UpdatedBy = updatedBy

		if merged.ProductName != existing.ProductName {
			if err := materialExists(tx, merged.ProductName); err != nil {
				return err
			}
		}

		delta := merged.TotalQuantity() - existing.TotalQuantity()
		inv := NewInventoryRepository(tx)

		if delta > 0 {
			available, err := inv.AvailableQuantity(merged.ProductName)
			if err != nil {
				return err
			}
			if delta > available {
				return ErrInsufficientStock
			}
		}

		if err := tx.Save(&merged).Error; err != nil {
			return err
		}

		if delta > 0 {
			return inv.Deduct(merged.ProductName, delta)
		}
		if delta < 0 {
			return inv.Add(merged.ProductName, -delta)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete removes the sale and returns its full quantity to inventory.
func (r *SaleRepository) Delete(id uint, deletedBy int) (*models.Sale, error) {
	var sale models.Sale

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sale, id).Error; err != nil {
			return err
		}

		sale.DeletedBy = deletedBy
		if err := tx.Select("deleted_by").Where("id = ?", id).Updates(&sale).Error; err != nil {
			return err
		}

		if err := tx.Delete(&sale).Error; err != nil {
			return err
		}

		if qty := sale.TotalQuantity(); qty > 0 {
			return NewInventoryRepository(tx).Add(sale.ProductName, qty)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &sale, nil
}
