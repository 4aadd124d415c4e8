package models

import "gorm.io/gorm"

// Report is a saved snapshot of an analysis result, so a breakdown can be
// shared or revisited after the underlying data changes.
type Report struct {
	gorm.Model
	Name          string `gorm:"size:255;not null"`
	Kind          string `gorm:"size:50;not null"` // e.g. "top-field"
	Params        string `gorm:"size:512"`         // raw query string the report was built from
	Result        string `gorm:"type:jsonb"`
	RequestedByID uint   `gorm:"index"`
	RequestedBy   User   `gorm:"foreignKey:RequestedByID"`
}
