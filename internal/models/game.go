package models

import (
	"gamesales/backend/pkg/slugify"

	"gorm.io/gorm"
)

// ESRB rating codes a game may carry. An empty string means the rating
// is unknown.
const (
	ESRBKidsToAdults   = "K-A"  // Kids to Adults, 6+
	ESRBMature         = "M"    // Mature, 17+
	ESRBRatingPending  = "RP"   // Rating Pending
	ESRBEveryone       = "E"    // Everyone
	ESRBAdultsOnly     = "AO"   // Adults Only, 18+
	ESRBEveryone10Plus = "E10+" // Everyone 10+
	ESRBEarlyChildhood = "EC"   // Early Childhood, 3+
	ESRBTeen           = "T"    // Teen, 13+
)

// ESRBRatingChoices lists every recognized ESRB rating code.
var ESRBRatingChoices = []string{
	ESRBKidsToAdults, ESRBMature, ESRBRatingPending, ESRBEveryone,
	ESRBAdultsOnly, ESRBEveryone10Plus, ESRBEarlyChildhood, ESRBTeen,
}

// IsValidESRBRating reports whether code is one of the recognized ESRB
// rating codes or empty (unknown).
func IsValidESRBRating(code string) bool {
	if code == "" {
		return true
	}
	for _, choice := range ESRBRatingChoices {
		if code == choice {
			return true
		}
	}
	return false
}

// Game represents a released video game. Its slug is derived from the name
// and platform on every save and is never settable by callers.
type Game struct {
	gorm.Model
	Slug          string  `gorm:"size:120;uniqueIndex;not null"`
	Name          string  `gorm:"size:120;not null"`
	Platform      string  `gorm:"size:30"`
	Publisher     string  `gorm:"size:30"`
	Developer     string  `gorm:"size:30"`
	Genre         string  `gorm:"size:30"`
	YearOfRelease *int    `gorm:"column:year_of_release"`
	ESRBRating    string  `gorm:"column:esrb_rating;size:4"`
	RatingID      *uint   `gorm:"index"`
	Rating        *Rating `gorm:"foreignKey:RatingID;constraint:OnDelete:SET NULL"`
}

// DeriveSlug returns the canonical slug for the game: the slugified name
// and platform joined by a hyphen.
func (g *Game) DeriveSlug() string {
	return slugify.Make(g.Name) + "-" + slugify.Make(g.Platform)
}

// BeforeSave keeps the slug in sync with the name and platform.
func (g *Game) BeforeSave(tx *gorm.DB) error {
	g.Slug = g.DeriveSlug()
	return nil
}
