package repositories

import (
	"factory-app/models"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildDashboardTotalsAndProfit(t *testing.T) {
	sales := []models.Sale{
		{ProductName: "Urea", QuantityTons: 2, TotalAmount: 1000, SaleDate: "2026-01-10"},
		{ProductName: "DAP", QuantityTons: 1, TotalAmount: 800, SaleDate: "2026-01-11"},
	}
	expenses := []models.Expense{
		{Name: "Diesel", Amount: 300, Category: "fuel", ExpenseDate: "2026-01-09"},
	}

	data := BuildDashboard(sales, expenses)

	require.Equal(t, 1800.0, data.TotalIncome)
	require.Equal(t, 300.0, data.TotalExpenses)
	require.Equal(t, 1500.0, data.Profit)
}

func TestBuildDashboardEmptyInput(t *testing.T) {
	data := BuildDashboard(nil, nil)

	require.Zero(t, data.TotalIncome)
	require.Zero(t, data.TotalExpenses)
	require.Zero(t, data.Profit)
	require.Empty(t, data.TopSellingProducts)
	require.Empty(t, data.TopExpenses)
	require.Empty(t, data.RecentActivity)
}

func TestBuildDashboardGroupsSalesByProduct(t *testing.T) {
	sales := []models.Sale{
		{ProductName: "Urea", QuantityTons: 2, TotalAmount: 500, SaleDate: "2026-01-01"},
		{ProductName: "Urea", QuantityTons: 1, QuantityKg: 500, TotalAmount: 400, SaleDate: "2026-01-02"},
		{ProductName: "DAP", QuantityTons: 3, TotalAmount: 2000, SaleDate: "2026-01-03"},
	}

	data := BuildDashboard(sales, nil)

	require.Len(t, data.TopSellingProducts, 2)
	require.Equal(t, "DAP", data.TopSellingProducts[0].ProductName)
	require.Equal(t, 2000.0, data.TopSellingProducts[0].TotalRevenue)
	require.Equal(t, "Urea", data.TopSellingProducts[1].ProductName)
	require.Equal(t, 3.5, data.TopSellingProducts[1].TotalSold)
	require.Equal(t, 900.0, data.TopSellingProducts[1].TotalRevenue)
}

func TestBuildDashboardTopFiveProducts(t *testing.T) {
	var sales []models.Sale
	for i := 0; i < 7; i++ {
		sales = append(sales, models.Sale{
			ProductName: fmt.Sprintf("Product-%d", i),
			TotalAmount: float64(100 * (i + 1)),
			SaleDate:    "2026-01-01",
		})
	}

	data := BuildDashboard(sales, nil)

	require.Len(t, data.TopSellingProducts, 5)
	require.Equal(t, "Product-6", data.TopSellingProducts[0].ProductName)
	require.Equal(t, "Product-2", data.TopSellingProducts[4].ProductName)
}

func TestBuildDashboardRevenueTiesKeepFirstSeenOrder(t *testing.T) {
	sales := []models.Sale{
		{ProductName: "Urea", TotalAmount: 500, SaleDate: "2026-01-01"},
		{ProductName: "DAP", TotalAmount: 500, SaleDate: "2026-01-02"},
	}

	data := BuildDashboard(sales, nil)

	require.Equal(t, "Urea", data.TopSellingProducts[0].ProductName)
	require.Equal(t, "DAP", data.TopSellingProducts[1].ProductName)
}

func TestBuildDashboardTopFiveExpenses(t *testing.T) {
	var expenses []models.Expense
	for i := 0; i < 6; i++ {
		expenses = append(expenses, models.Expense{
			Name:        fmt.Sprintf("Expense-%d", i),
			Amount:      float64(10 * (i + 1)),
			ExpenseDate: "2026-01-01",
		})
	}

	data := BuildDashboard(nil, expenses)

	require.Len(t, data.TopExpenses, 5)
	require.Equal(t, "Expense-5", data.TopExpenses[0].ExpenseName)
	require.Equal(t, 60.0, data.TopExpenses[0].Amount)
	require.Equal(t, "Expense-1", data.TopExpenses[4].ExpenseName)
}

func TestBuildDashboardRecentActivityCappedAtTen(t *testing.T) {
	var sales []models.Sale
	for i := 0; i < 8; i++ {
		sales = append(sales, models.Sale{
			ProductName: "Urea",
			TotalAmount: 100,
			SaleDate:    fmt.Sprintf("2026-01-%02d", i+1),
		})
	}
	var expenses []models.Expense
	for i := 0; i < 8; i++ {
		expenses = append(expenses, models.Expense{
			Name:        "Diesel",
			Amount:      50,
			ExpenseDate: fmt.Sprintf("2026-02-%02d", i+1),
		})
	}

	data := BuildDashboard(sales, expenses)

	require.Len(t, data.RecentActivity, 10)
	// February expenses are newer than January sales.
	for _, entry := range data.RecentActivity[:8] {
		require.Equal(t, "expense", entry.Type)
	}
}

func TestBuildDashboardActivityDescriptions(t *testing.T) {
	sales := []models.Sale{
		{ProductName: "Urea", QuantityTons: 1, QuantityKg: 500, TotalAmount: 100, SaleDate: "2026-01-01"},
	}
	expenses := []models.Expense{
		{Name: "Diesel", Amount: 50, Category: "fuel", ExpenseDate: "2026-01-02"},
	}

	data := BuildDashboard(sales, expenses)

	require.Len(t, data.RecentActivity, 2)
	require.Equal(t, "Expense: Diesel (fuel)", data.RecentActivity[0].Description)
	require.Equal(t, "Sale: Urea (1.500 tons)", data.RecentActivity[1].Description)
}

func TestBuildDashboardIsIdempotent(t *testing.T) {
	sales := []models.Sale{
		{ProductName: "Urea", QuantityTons: 2, TotalAmount: 500, SaleDate: "2026-01-01"},
	}
	expenses := []models.Expense{
		{Name: "Diesel", Amount: 300, ExpenseDate: "2026-01-02"},
	}

	first := BuildDashboard(sales, expenses)
	second := BuildDashboard(sales, expenses)

	require.Equal(t, first, second)
}
