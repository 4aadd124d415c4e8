package models

import "gorm.io/gorm"

// Rating holds the critic and user review figures for a game.
// Every figure is optional; a missing value is not the same as zero.
type Rating struct {
	gorm.Model
	CriticScore *float64 `gorm:"column:critic_score"` // Aggregate score compiled by critics.
	CriticCount *float64 `gorm:"column:critic_count"` // Number of critics behind CriticScore.
	UserScore   *float64 `gorm:"column:user_score"`   // Score given by users.
	UserCount   *float64 `gorm:"column:user_count"`   // Number of users who gave the UserScore.
}
