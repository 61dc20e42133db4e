package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name          string    `gorm:"not null" json:"name"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"` // stored lowercase
	Password      string    `gorm:"not null" json:"-"`
	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`
}
