package repositories

import (
	"factory-app/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestTotalQuantityCombinesTonsAndKg(t *testing.T) {
	sale := models.Sale{QuantityTons: 2, QuantityKg: 500}
	require.Equal(t, 2.5, sale.TotalQuantity())

	sale = models.Sale{QuantityKg: 250}
	require.Equal(t, 0.25, sale.TotalQuantity())

	sale = models.Sale{QuantityTons: 3}
	require.Equal(t, 3.0, sale.TotalQuantity())
}

func TestMergeSaleKeepsUnsetFields(t *testing.T) {
	existing := models.Sale{
		ProductName: "Urea",
		QuantityTons: 2,
		TotalAmount:  1000,
		ClientName:   "Acme Farms",
	}

	merged := mergeSale(existing, SaleChanges{TotalAmount: floatPtr(1200)})

	require.Equal(t, "Urea", merged.ProductName)
	require.Equal(t, 2.0, merged.QuantityTons)
	require.Equal(t, 1200.0, merged.TotalAmount)
	require.Equal(t, "Acme Farms", merged.ClientName)
}

func TestMergeSaleOverridesAllGivenFields(t *testing.T) {
	existing := models.Sale{ProductName: "Urea", QuantityTons: 2, QuantityKg: 0}

	merged := mergeSale(existing, SaleChanges{
		ProductName:  strPtr("DAP"),
		QuantityTons: floatPtr(1),
		QuantityKg:   floatPtr(500),
	})

	require.Equal(t, "DAP", merged.ProductName)
	require.Equal(t, 1.5, merged.TotalQuantity())
}

func TestMergeSaleDeltaArithmetic(t *testing.T) {
	existing := models.Sale{ProductName: "Urea", QuantityTons: 5}

	// Increase by half a ton via kg only.
	merged := mergeSale(existing, SaleChanges{QuantityKg: floatPtr(500)})
	require.Equal(t, 0.5, merged.TotalQuantity()-existing.TotalQuantity())

	// Decrease: delta goes negative, caller returns stock.
	merged = mergeSale(existing, SaleChanges{QuantityTons: floatPtr(3)})
	require.Equal(t, -2.0, merged.TotalQuantity()-existing.TotalQuantity())

	// No quantity change, no inventory move.
	merged = mergeSale(existing, SaleChanges{ClientName: strPtr("New Buyer")})
	require.Zero(t, merged.TotalQuantity()-existing.TotalQuantity())
}
