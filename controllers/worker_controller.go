package controllers

import (
	"errors"
	"factory-app/models"
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WorkerController struct {
	DB *gorm.DB
}

func NewWorkerController(db *gorm.DB) *WorkerController {
	return &WorkerController{DB: db}
}

func (c *WorkerController) GetAllWorkers(ctx *fiber.Ctx) error {
	query := c.DB.Order("name ASC")

	if department := ctx.Query("department"); department != "" {
		query = query.Where("department = ?", department)
	}
	if active := ctx.Query("active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	var workers []models.Worker
	if err := query.Find(&workers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Workers found", "data": workers})
}

func (c *WorkerController) GetWorkerByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var worker models.Worker
	if err := c.DB.First(&worker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Worker found", "data": worker})
}

func (c *WorkerController) CreateWorker(ctx *fiber.Ctx) error {
	var input struct {
		Name       string  `json:"name" validate:"required"`
		Position   string  `json:"position" validate:"required"`
		Department string  `json:"department"`
		Salary     float64 `json:"salary" validate:"gte=0"`
		Phone      string  `json:"phone"`
		Email      string  `json:"email"`
		Address    string  `json:"address"`
		HireDate   string  `json:"hire_date"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.HireDate == "" {
		input.HireDate = time.Now().Format("2006-01-02")
	}

	worker := models.Worker{
		Name:       input.Name,
		Position:   input.Position,
		Department: input.Department,
		Salary:     input.Salary,
		Phone:      input.Phone,
		Email:      input.Email,
		Address:    input.Address,
		HireDate:   input.HireDate,
		IsActive:   true,
		CreatedBy:  int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&worker).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Worker created successfully", "data": worker})
}

func (c *WorkerController) UpdateWorker(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var existing models.Worker
	if err := c.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Name       *string  `json:"name"`
		Position   *string  `json:"position"`
		Department *string  `json:"department"`
		Salary     *float64 `json:"salary"`
		Phone      *string  `json:"phone"`
		Email      *string  `json:"email"`
		Address    *string  `json:"address"`
		HireDate   *string  `json:"hire_date"`
		IsActive   *bool    `json:"is_active"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Position != nil {
		existing.Position = *input.Position
	}
	if input.Department != nil {
		existing.Department = *input.Department
	}
	if input.Salary != nil {
		if *input.Salary < 0 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Salary cannot be negative"})
		}
		existing.Salary = *input.Salary
	}
	if input.Phone != nil {
		existing.Phone = *input.Phone
	}
	if input.Email != nil {
		existing.Email = *input.Email
	}
	if input.Address != nil {
		existing.Address = *input.Address
	}
	if input.HireDate != nil {
		existing.HireDate = *input.HireDate
	}
	if input.IsActive != nil {
		existing.IsActive = *input.IsActive
	}
	existing.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&existing).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Worker updated successfully", "data": existing})
}

// DeleteWorker removes the worker together with their attendance and
// deduction rows so summaries never reference a missing worker.
func (c *WorkerController) DeleteWorker(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var worker models.Worker
	if err := c.DB.First(&worker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("worker_id = ?", worker.ID).Delete(&models.WorkerAttendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("worker_id = ?", worker.ID).Delete(&models.SalaryDeduction{}).Error; err != nil {
			return err
		}
		worker.DeletedBy = userID
		if err := tx.Select("deleted_by").Where("id = ?", worker.ID).Updates(&worker).Error; err != nil {
			return err
		}
		return tx.Delete(&worker).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Worker deleted successfully", "data": worker})
}
