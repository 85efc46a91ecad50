package repositories

import (
	"factory-app/models"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func lot(id uint, qty float64) models.StorageItem {
	return models.StorageItem{Model: gorm.Model{ID: id}, ItemName: "Urea", QuantityInTons: qty}
}

func TestApplyFIFOConsumesOldestFirst(t *testing.T) {
	lots := []models.StorageItem{lot(1, 5), lot(2, 5)}

	changes, remaining := applyFIFO(lots, 7)

	require.Zero(t, remaining)
	require.Len(t, changes, 2)
	require.Equal(t, uint(1), changes[0].ID)
	require.Equal(t, 0.0, changes[0].NewQuantity)
	require.Equal(t, uint(2), changes[1].ID)
	require.Equal(t, 3.0, changes[1].NewQuantity)
}

func TestApplyFIFOExactlyOneLot(t *testing.T) {
	lots := []models.StorageItem{lot(1, 5), lot(2, 5)}

	changes, remaining := applyFIFO(lots, 5)

	require.Zero(t, remaining)
	require.Len(t, changes, 1)
	require.Equal(t, uint(1), changes[0].ID)
	require.Equal(t, 0.0, changes[0].NewQuantity)
}

func TestApplyFIFOInsufficientStock(t *testing.T) {
	lots := []models.StorageItem{lot(1, 5), lot(2, 5)}

	_, remaining := applyFIFO(lots, 12)

	require.Equal(t, 2.0, remaining)
}

func TestApplyFIFOSkipsEmptyLots(t *testing.T) {
	lots := []models.StorageItem{lot(1, 0), lot(2, 4)}

	changes, remaining := applyFIFO(lots, 3)

	require.Zero(t, remaining)
	require.Len(t, changes, 1)
	require.Equal(t, uint(2), changes[0].ID)
	require.Equal(t, 1.0, changes[0].NewQuantity)
}

func TestApplyFIFOZeroQuantity(t *testing.T) {
	lots := []models.StorageItem{lot(1, 5)}

	changes, remaining := applyFIFO(lots, 0)

	require.Zero(t, remaining)
	require.Empty(t, changes)
}

func TestApplyFIFONoLots(t *testing.T) {
	changes, remaining := applyFIFO(nil, 2)

	require.Equal(t, 2.0, remaining)
	require.Empty(t, changes)
}

func TestApplyFIFOFractionalTons(t *testing.T) {
	lots := []models.StorageItem{lot(1, 1.5), lot(2, 1)}

	changes, remaining := applyFIFO(lots, 2)

	require.Zero(t, remaining)
	require.Len(t, changes, 2)
	require.Equal(t, 0.0, changes[0].NewQuantity)
	require.Equal(t, 0.5, changes[1].NewQuantity)
}
