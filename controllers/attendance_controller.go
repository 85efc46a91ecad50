package controllers

import (
	"errors"
	"factory-app/models"
	"factory-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var attendanceStatuses = map[string]bool{
	"present":  true,
	"absent":   true,
	"late":     true,
	"half-day": true,
}

func (c *AttendanceController) GetAllAttendance(ctx *fiber.Ctx) error {
	query := c.DB.Order("attendance_date DESC, worker_id ASC")

	if workerID := ctx.Query("worker_id"); workerID != "" {
		query = query.Where("worker_id = ?", workerID)
	}
	if startDate := ctx.Query("start_date"); startDate != "" {
		query = query.Where("attendance_date >= ?", startDate)
	}
	if endDate := ctx.Query("end_date"); endDate != "" {
		query = query.Where("attendance_date <= ?", endDate)
	}

	var records []models.WorkerAttendance
	if err := query.Find(&records).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Attendance records found", "data": records})
}

// GetAttendanceByDate lists every worker's record for a single day.
func (c *AttendanceController) GetAttendanceByDate(ctx *fiber.Ctx) error {
	date := ctx.Params("date")

	var records []models.WorkerAttendance
	if err := c.DB.Where("attendance_date = ?", date).Order("worker_id ASC").Find(&records).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Attendance records found", "data": records})
}

func (c *AttendanceController) CreateAttendance(ctx *fiber.Ctx) error {
	var input struct {
		WorkerID       uint    `json:"worker_id" validate:"required"`
		AttendanceDate string  `json:"attendance_date" validate:"required"`
		Status         string  `json:"status" validate:"required"`
		CheckInTime    string  `json:"check_in_time"`
		CheckOutTime   string  `json:"check_out_time"`
		HoursWorked    float64 `json:"hours_worked" validate:"gte=0"`
		OvertimeHours  float64 `json:"overtime_hours" validate:"gte=0"`
		Notes          string  `json:"notes"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !attendanceStatuses[input.Status] {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status: " + input.Status})
	}

	var worker models.Worker
	if err := c.DB.First(&worker, input.WorkerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// One record per worker per day; re-marking overwrites the earlier status.
	var record models.WorkerAttendance
	err := c.DB.Where("worker_id = ? AND attendance_date = ?", input.WorkerID, input.AttendanceDate).
		First(&record).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	record.WorkerID = input.WorkerID
	record.AttendanceDate = input.AttendanceDate
	record.Status = input.Status
	record.CheckInTime = input.CheckInTime
	record.CheckOutTime = input.CheckOutTime
	record.HoursWorked = input.HoursWorked
	record.OvertimeHours = input.OvertimeHours
	record.Notes = input.Notes

	if record.ID == 0 {
		record.CreatedBy = userID
		if err := c.DB.Create(&record).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	} else {
		record.UpdatedBy = userID
		if err := c.DB.Save(&record).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Attendance recorded successfully", "data": record})
}

func (c *AttendanceController) UpdateAttendance(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var record models.WorkerAttendance
	if err := c.DB.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Status        *string  `json:"status"`
		CheckInTime   *string  `json:"check_in_time"`
		CheckOutTime  *string  `json:"check_out_time"`
		HoursWorked   *float64 `json:"hours_worked"`
		OvertimeHours *float64 `json:"overtime_hours"`
		Notes         *string  `json:"notes"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Status != nil {
		if !attendanceStatuses[*input.Status] {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status: " + *input.Status})
		}
		record.Status = *input.Status
	}
	if input.CheckInTime != nil {
		record.CheckInTime = *input.CheckInTime
	}
	if input.CheckOutTime != nil {
		record.CheckOutTime = *input.CheckOutTime
	}
	if input.HoursWorked != nil {
		record.HoursWorked = *input.HoursWorked
	}
	if input.OvertimeHours != nil {
		record.OvertimeHours = *input.OvertimeHours
	}
	if input.Notes != nil {
		record.Notes = *input.Notes
	}
	record.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&record).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Attendance updated successfully", "data": record})
}

func (c *AttendanceController) DeleteAttendance(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var record models.WorkerAttendance
	if err := c.DB.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	record.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&record).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&record).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Attendance deleted successfully", "data": record})
}

// GetMonthlySummary returns the per-worker rollup for a calendar month.
func (c *AttendanceController) GetMonthlySummary(ctx *fiber.Ctx) error {
	workerID := ctx.QueryInt("worker_id")
	year := ctx.QueryInt("year")
	month := ctx.QueryInt("month")

	if workerID <= 0 || year <= 0 || month < 1 || month > 12 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "worker_id, year and month query parameters are required"})
	}

	summary, err := repositories.NewAttendanceRepository(c.DB).MonthlySummary(uint(workerID), year, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Summary generated", "data": summary})
}
