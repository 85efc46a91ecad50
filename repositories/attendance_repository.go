package repositories

import (
	"factory-app/models"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// MonthlySummary reports the attendance rollup for one worker and month.
// AttendanceDeduction (derived from absences) and LedgerDeductions (explicit
// salary_deductions rows) are two independent numbers; combining them is the
// caller's decision.
type MonthlySummary struct {
	TotalDaysWorked     float64 `json:"total_days_worked"`
	TotalAbsent         int     `json:"total_absent"`
	TotalLate           int     `json:"total_late"`
	TotalHours          float64 `json:"total_hours"`
	TotalOvertimeHours  float64 `json:"total_overtime_hours"`
	AttendanceDeduction float64 `json:"attendance_deduction"`
	LedgerDeductions    float64 `json:"ledger_deductions"`
}

// monthRange returns the first and last day of the calendar month, inclusive.
func monthRange(year, month int) (string, string) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}

// summarizeAttendance counts statuses and derives the salary deduction.
// The daily salary uses the fixed 30-day month the payroll sheet assumes.
func summarizeAttendance(records []models.WorkerAttendance, salary float64) MonthlySummary {
	var summary MonthlySummary

	for _, record := range records {
		switch record.Status {
		case "present":
			summary.TotalDaysWorked++
		case "absent":
			summary.TotalAbsent++
		case "late":
			summary.TotalLate++
			summary.TotalDaysWorked++
		case "half-day":
			summary.TotalDaysWorked += 0.5
		}

		summary.TotalHours += record.HoursWorked
		summary.TotalOvertimeHours += record.OvertimeHours
	}

	dailySalary := salary / 30
	summary.AttendanceDeduction = float64(summary.TotalAbsent)*dailySalary +
		float64(summary.TotalLate)*dailySalary*0.5

	return summary
}

func (r *AttendanceRepository) MonthlySummary(workerID uint, year, month int) (*MonthlySummary, error) {
	var worker models.Worker
	if err := r.db.First(&worker, workerID).Error; err != nil {
		return nil, err
	}

	start, end := monthRange(year, month)

	var records []models.WorkerAttendance
	if err := r.db.
		Where("worker_id = ? AND attendance_date >= ? AND attendance_date <= ?", workerID, start, end).
		Find(&records).Error; err != nil {
		return nil, err
	}

	summary := summarizeAttendance(records, worker.Salary)

	monthStr := fmt.Sprintf("%04d-%02d", year, month)
	var ledger float64
	if err := r.db.Model(&models.SalaryDeduction{}).
		Where("worker_id = ? AND month = ?", workerID, monthStr).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&ledger).Error; err != nil {
		return nil, err
	}
	summary.LedgerDeductions = ledger

	return &summary, nil
}
