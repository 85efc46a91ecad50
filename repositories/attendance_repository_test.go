package repositories

import (
	"factory-app/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarizeAttendanceStatusWeights(t *testing.T) {
	records := []models.WorkerAttendance{
		{Status: "present", HoursWorked: 8},
		{Status: "present", HoursWorked: 8},
		{Status: "late", HoursWorked: 6, OvertimeHours: 1},
		{Status: "half-day", HoursWorked: 4},
		{Status: "absent"},
	}

	summary := summarizeAttendance(records, 3000)

	// Late still counts as a day worked.
	require.Equal(t, 3.5, summary.TotalDaysWorked)
	require.Equal(t, 1, summary.TotalAbsent)
	require.Equal(t, 1, summary.TotalLate)
	require.Equal(t, 26.0, summary.TotalHours)
	require.Equal(t, 1.0, summary.TotalOvertimeHours)
}

func TestSummarizeAttendanceDeductionFormula(t *testing.T) {
	records := []models.WorkerAttendance{
		{Status: "absent"},
		{Status: "absent"},
		{Status: "late"},
	}

	summary := summarizeAttendance(records, 3000)

	// Daily rate is salary/30: absences cost a full day, lates half a day.
	daily := 3000.0 / 30
	require.Equal(t, 2*daily+daily*0.5, summary.AttendanceDeduction)
}

func TestSummarizeAttendanceEmptyMonth(t *testing.T) {
	summary := summarizeAttendance(nil, 3000)

	require.Zero(t, summary.TotalDaysWorked)
	require.Zero(t, summary.TotalAbsent)
	require.Zero(t, summary.TotalLate)
	require.Zero(t, summary.AttendanceDeduction)
}

func TestSummarizeAttendanceIgnoresUnknownStatus(t *testing.T) {
	records := []models.WorkerAttendance{
		{Status: "vacation", HoursWorked: 0},
		{Status: "present", HoursWorked: 8},
	}

	summary := summarizeAttendance(records, 3000)

	require.Equal(t, 1.0, summary.TotalDaysWorked)
	require.Zero(t, summary.TotalAbsent)
}

func TestMonthRangeBoundaries(t *testing.T) {
	start, end := monthRange(2026, 2)
	require.Equal(t, "2026-02-01", start)
	require.Equal(t, "2026-02-28", end)

	start, end = monthRange(2024, 2)
	require.Equal(t, "2024-02-01", start)
	require.Equal(t, "2024-02-29", end)

	start, end = monthRange(2026, 12)
	require.Equal(t, "2026-12-01", start)
	require.Equal(t, "2026-12-31", end)
}

func TestLedgerDeductionsStaySeparate(t *testing.T) {
	records := []models.WorkerAttendance{{Status: "absent"}}

	summary := summarizeAttendance(records, 3000)
	summary.LedgerDeductions = 250

	// Two independent figures; nothing folds one into the other.
	require.Equal(t, 100.0, summary.AttendanceDeduction)
	require.Equal(t, 250.0, summary.LedgerDeductions)
}
