package models

import (
	"fmt"

	"gorm.io/gorm"
)

// SaleInput carries everything needed to create a Sale together with its
// Game and Rating in a single step.
type SaleInput struct {
	Name          string   `json:"name" binding:"required"`
	Platform      string   `json:"platform"`
	Publisher     string   `json:"publisher"`
	Developer     string   `json:"developer"`
	Genre         string   `json:"genre"`
	YearOfRelease *int     `json:"year_of_release"`
	ESRBRating    string   `json:"esrb_rating"`
	CriticScore   *float64 `json:"critic_score"`
	CriticCount   *float64 `json:"critic_count"`
	UserScore     *float64 `json:"user_score"`
	UserCount     *float64 `json:"user_count"`
	NASales       *float64 `json:"na_sales"`
	EUSales       *float64 `json:"eu_sales"`
	JPSales       *float64 `json:"jp_sales"`
	OtherSales    *float64 `json:"other_sales"`
	GlobalSales   *float64 `json:"global_sales"`
}

// CreateSale creates the Rating, then the Game, then the Sale inside one
// transaction. A failure at any step rolls back the whole composite, so
// no partially created record set can be observed.
func CreateSale(db *gorm.DB, input SaleInput) (*Sale, error) {
	if !IsValidESRBRating(input.ESRBRating) {
		return nil, fmt.Errorf("unknown esrb rating %q", input.ESRBRating)
	}

	var sale Sale
	err := db.Transaction(func(tx *gorm.DB) error {
		rating := Rating{
			CriticScore: input.CriticScore,
			CriticCount: input.CriticCount,
			UserScore:   input.UserScore,
			UserCount:   input.UserCount,
		}
		if err := tx.Create(&rating).Error; err != nil {
			return err
		}

		game := Game{
			Name:          input.Name,
			Platform:      input.Platform,
			Publisher:     input.Publisher,
			Developer:     input.Developer,
			Genre:         input.Genre,
			YearOfRelease: input.YearOfRelease,
			ESRBRating:    input.ESRBRating,
			RatingID:      &rating.ID,
		}
		if err := tx.Create(&game).Error; err != nil {
			return err
		}
		game.Rating = &rating

		sale = Sale{
			GameID:      game.ID,
			Game:        game,
			NASales:     input.NASales,
			EUSales:     input.EUSales,
			JPSales:     input.JPSales,
			OtherSales:  input.OtherSales,
			GlobalSales: input.GlobalSales,
		}
		// The Game is already persisted; only the sale row itself is written.
		return tx.Omit("Game").Create(&sale).Error
	})
	if err != nil {
		return nil, err
	}

	return &sale, nil
}
