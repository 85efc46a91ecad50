package models

import (
	"gorm.io/gorm"
)

// WorkerAttendance status: present, absent, late, half-day.
type WorkerAttendance struct {
	gorm.Model
	WorkerID       uint    `json:"worker_id" gorm:"index;not null" validate:"required"`
	AttendanceDate string  `json:"attendance_date" gorm:"index" validate:"required"`
	Status         string  `json:"status" validate:"required"`
	CheckInTime    string  `json:"check_in_time"`
	CheckOutTime   string  `json:"check_out_time"`
	HoursWorked    float64 `json:"hours_worked" gorm:"default:0"`
	OvertimeHours  float64 `json:"overtime_hours" gorm:"default:0"`
	Notes          string  `json:"notes"`
	CreatedBy      int
	UpdatedBy      int
	DeletedBy      int
}
