package controllers

import (
	"errors"
	"factory-app/controllers/helpers"
	"factory-app/models"
	"fmt"
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

func (c *ExpenseController) GetAllExpenses(ctx *fiber.Ctx) error {
	query := c.DB.Order("created_at DESC")

	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if startDate := ctx.Query("start_date"); startDate != "" {
		query = query.Where("expense_date >= ?", startDate)
	}
	if endDate := ctx.Query("end_date"); endDate != "" {
		query = query.Where("expense_date <= ?", endDate)
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Expenses found", "data": expenses})
}

func (c *ExpenseController) GetExpenseByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var expense models.Expense
	if err := c.DB.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Expense found", "data": expense})
}

func (c *ExpenseController) CreateExpense(ctx *fiber.Ctx) error {
	var input struct {
		Name          string  `json:"name" validate:"required"`
		Amount        float64 `json:"amount" validate:"required,gt=0"`
		Category      string  `json:"category"`
		ExpenseDate   string  `json:"expense_date"`
		Description   string  `json:"description"`
		ReceiptNumber string  `json:"receipt_number"`
		Vendor        string  `json:"vendor"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.ExpenseDate == "" {
		input.ExpenseDate = time.Now().Format("2006-01-02")
	}

	expense := models.Expense{
		Name:          input.Name,
		Amount:        input.Amount,
		Category:      input.Category,
		ExpenseDate:   input.ExpenseDate,
		Description:   input.Description,
		ReceiptNumber: input.ReceiptNumber,
		Vendor:        input.Vendor,
		CreatedBy:     int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&expense).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.InsertActivityLog(c.DB, "Expense recorded",
		fmt.Sprintf("%s: %.2f", expense.Name, expense.Amount),
		expense.CreatedBy)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Expense created successfully", "data": expense})
}

func (c *ExpenseController) UpdateExpense(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var existing models.Expense
	if err := c.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Name          *string  `json:"name"`
		Amount        *float64 `json:"amount"`
		Category      *string  `json:"category"`
		ExpenseDate   *string  `json:"expense_date"`
		Description   *string  `json:"description"`
		ReceiptNumber *string  `json:"receipt_number"`
		Vendor        *string  `json:"vendor"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount must be positive"})
		}
		existing.Amount = *input.Amount
	}
	if input.Category != nil {
		existing.Category = *input.Category
	}
	if input.ExpenseDate != nil {
		existing.ExpenseDate = *input.ExpenseDate
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.ReceiptNumber != nil {
		existing.ReceiptNumber = *input.ReceiptNumber
	}
	if input.Vendor != nil {
		existing.Vendor = *input.Vendor
	}
	existing.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&existing).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Expense updated successfully", "data": existing})
}

func (c *ExpenseController) DeleteExpense(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var expense models.Expense
	if err := c.DB.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	expense.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&expense).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&expense).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Expense deleted successfully", "data": expense})
}
