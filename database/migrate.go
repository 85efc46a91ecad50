// database/migrate.go
package database

import (
	"factory-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Worker{},
		&models.Material{},
		&models.StorageItem{},
		&models.Sale{},
		&models.Expense{},
		&models.SalaryDeduction{},
		&models.WorkerAttendance{},
		&models.ActivityLog{},
	)
}
