package models

import "gorm.io/gorm"

// User represents an API account. Accounts start inactive and are
// activated through the confirmation token issued at signup.
type User struct {
	gorm.Model
	Email             string `gorm:"size:255;unique;not null"`
	PasswordHash      string `gorm:"size:255;not null"`
	Role              string `gorm:"size:50;not null;default:'user';index"`
	IsActive          bool   `gorm:"not null;default:false"`
	ConfirmationToken string `gorm:"size:36;index"`
}
