package repositories

import (
	"factory-app/models"
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

type ProductSales struct {
	ProductName  string  `json:"product_name"`
	TotalSold    float64 `json:"total_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

type TopExpense struct {
	ExpenseName string  `json:"expense_name"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

type ActivityEntry struct {
	ID          uint    `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
}

type DashboardData struct {
	TotalIncome        float64         `json:"total_income"`
	TotalExpenses      float64         `json:"total_expenses"`
	Profit             float64         `json:"profit"`
	TopSellingProducts []ProductSales  `json:"top_selling_products"`
	TopExpenses        []TopExpense    `json:"top_expenses"`
	RecentActivity     []ActivityEntry `json:"recent_activity"`
}

const (
	topProductCount    = 5
	topExpenseCount    = 5
	recentActivitySize = 10
)

// GetDashboard reads sales and expenses, optionally narrowed to the inclusive
// [startDate, endDate] window, and recomputes the aggregates. Nothing is cached.
func (r *DashboardRepository) GetDashboard(startDate, endDate string) (*DashboardData, error) {
	salesQuery := r.db.Model(&models.Sale{})
	expenseQuery := r.db.Model(&models.Expense{})

	if startDate != "" {
		salesQuery = salesQuery.Where("sale_date >= ?", startDate)
		expenseQuery = expenseQuery.Where("expense_date >= ?", startDate)
	}
	if endDate != "" {
		salesQuery = salesQuery.Where("sale_date <= ?", endDate)
		expenseQuery = expenseQuery.Where("expense_date <= ?", endDate)
	}

	var sales []models.Sale
	if err := salesQuery.Order("created_at ASC").Find(&sales).Error; err != nil {
		return nil, err
	}

	var expenses []models.Expense
	if err := expenseQuery.Order("created_at ASC").Find(&expenses).Error; err != nil {
		return nil, err
	}

	return BuildDashboard(sales, expenses), nil
}

// BuildDashboard computes all dashboard aggregates from the given rows.
func BuildDashboard(sales []models.Sale, expenses []models.Expense) *DashboardData {
	data := &DashboardData{
		TopSellingProducts: []ProductSales{},
		TopExpenses:        []TopExpense{},
		RecentActivity:     []ActivityEntry{},
	}

	// Group sales by product, keeping first-seen order so revenue ties keep
	// insertion order after the stable sort.
	index := map[string]int{}
	for _, sale := range sales {
		data.TotalIncome += sale.TotalAmount

		i, ok := index[sale.ProductName]
		if !ok {
			i = len(data.TopSellingProducts)
			index[sale.ProductName] = i
			data.TopSellingProducts = append(data.TopSellingProducts, ProductSales{ProductName: sale.ProductName})
		}
		data.TopSellingProducts[i].TotalSold += sale.TotalQuantity()
		data.TopSellingProducts[i].TotalRevenue += sale.TotalAmount
	}

	slices.SortStableFunc(data.TopSellingProducts, func(a, b ProductSales) int {
		switch {
		case a.TotalRevenue > b.TotalRevenue:
			return -1
		case a.TotalRevenue < b.TotalRevenue:
			return 1
		default:
			return 0
		}
	})
	if len(data.TopSellingProducts) > topProductCount {
		data.TopSellingProducts = data.TopSellingProducts[:topProductCount]
	}

	sorted := make([]models.Expense, len(expenses))
	copy(sorted, expenses)
	slices.SortStableFunc(sorted, func(a, b models.Expense) int {
		switch {
		case a.Amount > b.Amount:
			return -1
		case a.Amount < b.Amount:
			return 1
		default:
			return 0
		}
	})
	for _, expense := range expenses {
		data.TotalExpenses += expense.Amount
	}
	for i, expense := range sorted {
		if i >= topExpenseCount {
			break
		}
		data.TopExpenses = append(data.TopExpenses, TopExpense{
			ExpenseName: expense.Name,
			Amount:      expense.Amount,
			Category:    expense.Category,
		})
	}

	data.Profit = data.TotalIncome - data.TotalExpenses

	for _, sale := range sales {
		data.RecentActivity = append(data.RecentActivity, ActivityEntry{
			ID:          sale.ID,
			Type:        "sale",
			Description: fmt.Sprintf("Sale: %s (%.3f tons)", sale.ProductName, sale.TotalQuantity()),
			Date:        sale.SaleDate,
			Amount:      sale.TotalAmount,
		})
	}
	for _, expense := range expenses {
		data.RecentActivity = append(data.RecentActivity, ActivityEntry{
			ID:          expense.ID,
			Type:        "expense",
			Description: fmt.Sprintf("Expense: %s (%s)", expense.Name, expense.Category),
			Date:        expense.ExpenseDate,
			Amount:      expense.Amount,
		})
	}

	// Dates are ISO strings, so lexical order is chronological order.
	slices.SortStableFunc(data.RecentActivity, func(a, b ActivityEntry) int {
		switch {
		case a.Date > b.Date:
			return -1
		case a.Date < b.Date:
			return 1
		default:
			return 0
		}
	})
	if len(data.RecentActivity) > recentActivitySize {
		data.RecentActivity = data.RecentActivity[:recentActivitySize]
	}

	return data
}
