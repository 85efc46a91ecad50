package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Username string `json:"username" gorm:"unique" validate:"required"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-" gorm:"not null"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}
