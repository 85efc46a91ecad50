package controllers

import (
	"errors"
	"factory-app/models"
	"fmt"
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DeductionController struct {
	DB *gorm.DB
}

func NewDeductionController(db *gorm.DB) *DeductionController {
	return &DeductionController{DB: db}
}

func (c *DeductionController) GetAllDeductions(ctx *fiber.Ctx) error {
	query := c.DB.Order("deduction_date DESC")

	if workerID := ctx.Query("worker_id"); workerID != "" {
		query = query.Where("worker_id = ?", workerID)
	}
	if month := ctx.Query("month"); month != "" {
		query = query.Where("month = ?", month)
	}
	if year := ctx.QueryInt("year"); year > 0 {
		query = query.Where("year = ?", year)
	}

	var deductions []models.SalaryDeduction
	if err := query.Find(&deductions).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Deductions found", "data": deductions})
}

func (c *DeductionController) GetDeductionByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var deduction models.SalaryDeduction
	if err := c.DB.First(&deduction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Deduction not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Deduction found", "data": deduction})
}

func (c *DeductionController) CreateDeduction(ctx *fiber.Ctx) error {
	var input struct {
		WorkerID      uint    `json:"worker_id" validate:"required"`
		Amount        float64 `json:"amount" validate:"required,gt=0"`
		Reason        string  `json:"reason" validate:"required"`
		DeductionDate string  `json:"deduction_date"`
		Description   string  `json:"description"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var worker models.Worker
	if err := c.DB.First(&worker, input.WorkerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if input.DeductionDate == "" {
		input.DeductionDate = time.Now().Format("2006-01-02")
	}

	date, err := time.Parse("2006-01-02", input.DeductionDate)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid deduction_date, expected YYYY-MM-DD"})
	}

	deduction := models.SalaryDeduction{
		WorkerID:      input.WorkerID,
		Amount:        input.Amount,
		Reason:        input.Reason,
		Month:         date.Format("2006-01"),
		Year:          date.Year(),
		DeductionDate: input.DeductionDate,
		Description:   input.Description,
		CreatedBy:     int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&deduction).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Deduction created successfully", "data": deduction})
}

func (c *DeductionController) UpdateDeduction(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var deduction models.SalaryDeduction
	if err := c.DB.First(&deduction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Deduction not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Amount        *float64 `json:"amount"`
		Reason        *string  `json:"reason"`
		DeductionDate *string  `json:"deduction_date"`
		Description   *string  `json:"description"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Amount != nil {
		if *input.Amount <= 0 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount must be positive"})
		}
		deduction.Amount = *input.Amount
	}
	if input.Reason != nil {
		deduction.Reason = *input.Reason
	}
	if input.DeductionDate != nil {
		date, err := time.Parse("2006-01-02", *input.DeductionDate)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid deduction_date, expected YYYY-MM-DD"})
		}
		deduction.DeductionDate = *input.DeductionDate
		deduction.Month = date.Format("2006-01")
		deduction.Year = date.Year()
	}
	if input.Description != nil {
		deduction.Description = *input.Description
	}
	deduction.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&deduction).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Deduction updated successfully", "data": deduction})
}

func (c *DeductionController) DeleteDeduction(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var deduction models.SalaryDeduction
	if err := c.DB.First(&deduction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Deduction not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	deduction.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&deduction).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&deduction).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": fmt.Sprintf("Deduction %d deleted successfully", id), "data": deduction})
}
