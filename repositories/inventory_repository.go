package repositories

import (
	"errors"
	"factory-app/models"
	"time"

	"gorm.io/gorm"
)

var ErrInsufficientStock = errors.New("insufficient stock")

// InventoryRepository tracks available quantity per material across purchase
// lots. Deduct and Add run on whatever *gorm.DB they are constructed with, so
// callers can hand in a transaction and tie inventory moves to their own writes.
type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// AvailableQuantity sums quantity_in_tons across all lots of the material.
func (r *InventoryRepository) AvailableQuantity(itemName string) (float64, error) {
	var total float64
	err := r.db.Model(&models.StorageItem{}).
		Where("item_name = ?", itemName).
		Select("COALESCE(SUM(quantity_in_tons), 0)").
		Scan(&total).Error
	return total, err
}

type lotChange struct {
	ID          uint
	NewQuantity float64
}

// applyFIFO walks lots oldest-first and plans the per-lot deductions needed to
// cover quantity. Returns the planned changes and the quantity left uncovered.
func applyFIFO(lots []models.StorageItem, quantity float64) ([]lotChange, float64) {
	remaining := quantity
	var changes []lotChange

	for _, lot := range lots {
		if remaining <= 0 {
			break
		}
		if lot.QuantityInTons <= 0 {
			continue
		}
		take := lot.QuantityInTons
		if take > remaining {
			take = remaining
		}
		changes = append(changes, lotChange{ID: lot.ID, NewQuantity: lot.QuantityInTons - take})
		remaining -= take
	}

	return changes, remaining
}

// Deduct consumes quantity tons from the material's lots, oldest lot first.
// Lots of other materials are never touched. If the lots cannot cover the full
// quantity no lot is modified and ErrInsufficientStock is returned.
func (r *InventoryRepository) Deduct(itemName string, quantity float64) error {
	var lots []models.StorageItem
	if err := r.db.Where("item_name = ? AND quantity_in_tons > 0", itemName).
		Order("created_at ASC, id ASC").
		Find(&lots).Error; err != nil {
		return err
	}

	changes, remaining := applyFIFO(lots, quantity)
	if remaining > 0 {
		return ErrInsufficientStock
	}

	for _, ch := range changes {
		if err := r.db.Model(&models.StorageItem{}).
			Where("id = ?", ch.ID).
			Update("quantity_in_tons", ch.NewQuantity).Error; err != nil {
			return err
		}
	}

	return nil
}

// Add returns quantity tons to the material, increasing the most recent lot.
// When no lot exists for the material a fresh zero-price lot is created so the
// replenishment stays attributable (sale reversals after cleanup).
func (r *InventoryRepository) Add(itemName string, quantity float64) error {
	var lot models.StorageItem
	err := r.db.Where("item_name = ?", itemName).
		Order("created_at DESC, id DESC").
		First(&lot).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			lot = models.StorageItem{
				ItemName:            itemName,
				QuantityInTons:      quantity,
				PurchasePricePerTon: 0,
				DealerName:          "(sale reversal)",
				PurchaseDate:        time.Now().Format("2006-01-02"),
			}
			return r.db.Create(&lot).Error
		}
		return err
	}

	return r.db.Model(&models.StorageItem{}).
		Where("id = ?", lot.ID).
		Update("quantity_in_tons", gorm.Expr("quantity_in_tons + ?", quantity)).Error
}

// CleanupEmptyLots removes lots whose quantity reached zero. This is an
// explicit maintenance operation, never a side effect of Deduct.
func (r *InventoryRepository) CleanupEmptyLots() (int64, error) {
	result := r.db.Where("quantity_in_tons <= 0").Delete(&models.StorageItem{})
	return result.RowsAffected, result.Error
}
