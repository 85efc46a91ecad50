package controllers

import (
	"errors"
	"factory-app/controllers/helpers"
	"factory-app/controllers/idgen"
	"factory-app/models"
	"factory-app/repositories"
	"factory-app/services"
	"factory-app/types"
	"fmt"
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SaleController struct {
	DB *gorm.DB
}

func NewSaleController(db *gorm.DB) *SaleController {
	return &SaleController{DB: db}
}

func (c *SaleController) GetAllSales(ctx *fiber.Ctx) error {
	query := c.DB.Order("created_at DESC")

	if product := ctx.Query("product"); product != "" {
		query = query.Where("product_name = ?", product)
	}
	if startDate := ctx.Query("start_date"); startDate != "" {
		query = query.Where("sale_date >= ?", startDate)
	}
	if endDate := ctx.Query("end_date"); endDate != "" {
		query = query.Where("sale_date <= ?", endDate)
	}

	var sales []models.Sale
	if err := query.Find(&sales).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sales found", "data": sales})
}

func (c *SaleController) GetSaleByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var sale models.Sale
	if err := c.DB.First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sale not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sale found", "data": sale})
}

func (c *SaleController) CreateSale(ctx *fiber.Ctx) error {
	var input struct {
		ProductName   string  `json:"product_name" validate:"required"`
		QuantityTons  float64 `json:"quantity_tons" validate:"gte=0"`
		QuantityKg    float64 `json:"quantity_kg" validate:"gte=0"`
		TotalAmount   float64 `json:"total_amount" validate:"required,gt=0"`
		SaleDate      string  `json:"sale_date"`
		ClientName    string  `json:"client_name" validate:"required"`
		ClientContact string  `json:"client_contact"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.SaleDate == "" {
		input.SaleDate = time.Now().Format("2006-01-02")
	}

	sale := models.Sale{
		TransactionID: types.SnowflakeID(idgen.GenerateID()),
		RefNo:         idgen.SaleRefNo(),
		ProductName:   input.ProductName,
		QuantityTons:  input.QuantityTons,
		QuantityKg:    input.QuantityKg,
		TotalAmount:   input.TotalAmount,
		SaleDate:      input.SaleDate,
		ClientName:    input.ClientName,
		ClientContact: input.ClientContact,
		CreatedBy:     int(ctx.Locals("userID").(float64)),
	}

	if qty := sale.TotalQuantity(); qty > 0 {
		sale.UnitPrice = sale.TotalAmount / qty
	}

	saleRepo := repositories.NewSaleRepository(c.DB)
	if err := saleRepo.Create(&sale); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMaterialNotFound):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Product \"" + sale.ProductName + "\" not found in storage. Please add it to storage first."})
		case errors.Is(err, repositories.ErrInsufficientStock):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Insufficient stock for " + sale.ProductName})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	helpers.InsertActivityLog(c.DB, "Sale recorded",
		fmt.Sprintf("%s: %.3f tons sold to %s", sale.ProductName, sale.TotalQuantity(), sale.ClientName),
		sale.CreatedBy)

	go services.NotifyLowStock(c.DB, sale.ProductName)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sale created successfully", "data": sale})
}

func (c *SaleController) UpdateSale(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var changes repositories.SaleChanges
	if err := ctx.BodyParser(&changes); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	saleRepo := repositories.NewSaleRepository(c.DB)
	sale, err := saleRepo.Update(uint(id), changes, int(ctx.Locals("userID").(float64)))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sale not found"})
		case errors.Is(err, repositories.ErrMaterialNotFound):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Product not found in storage"})
		case errors.Is(err, repositories.ErrInsufficientStock):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Insufficient stock for requested quantity"})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sale updated successfully", "data": sale})
}

func (c *SaleController) DeleteSale(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	saleRepo := repositories.NewSaleRepository(c.DB)
	sale, err := saleRepo.Delete(uint(id), int(ctx.Locals("userID").(float64)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sale not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.InsertActivityLog(c.DB, "Sale reversed",
		fmt.Sprintf("%s: %.3f tons returned to storage", sale.ProductName, sale.TotalQuantity()),
		int(ctx.Locals("userID").(float64)))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sale deleted successfully", "data": sale})
}
