package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gamesales/backend/internal/models"
)

func TestGameDeriveSlug(t *testing.T) {
	tests := []struct {
		name string
		game models.Game
		want string
	}{
		{
			name: "name and platform",
			game: models.Game{Name: "Wii Sports", Platform: "Wii"},
			want: "wii-sports-wii",
		},
		{
			name: "punctuation stripped",
			game: models.Game{Name: "Grand Theft Auto: Vice City", Platform: "PS2"},
			want: "grand-theft-auto-vice-city-ps2",
		},
		{
			name: "empty platform keeps trailing segment empty",
			game: models.Game{Name: "Tetris"},
			want: "tetris-",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.game.DeriveSlug())
		})
	}
}

func TestSaleDeriveSlug(t *testing.T) {
	sale := models.Sale{Game: models.Game{Slug: "wii-sports-wii"}}
	assert.Equal(t, "wii-sports-wii-sales", sale.DeriveSlug())
}

func TestIsValidESRBRating(t *testing.T) {
	for _, code := range models.ESRBRatingChoices {
		assert.True(t, models.IsValidESRBRating(code), code)
	}
	assert.True(t, models.IsValidESRBRating(""), "unknown rating is allowed")
	assert.False(t, models.IsValidESRBRating("X"))
	assert.False(t, models.IsValidESRBRating("e")) // codes are case-sensitive
}
