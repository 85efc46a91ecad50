package helpers

import (
	"factory-app/models"
	"time"

	"gorm.io/gorm"
)

// InsertActivityLog inserts a new activity feed record.
func InsertActivityLog(db *gorm.DB, title, description string, actor int) error {
	entry := models.ActivityLog{
		Title:       title,
		Description: description,
		LogDate:     time.Now().Format("2006-01-02"),
		CreatedBy:   actor,
	}

	if err := db.Create(&entry).Error; err != nil {
		return err
	}

	return nil
}
