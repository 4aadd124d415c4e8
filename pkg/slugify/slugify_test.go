package slugify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gamesales/backend/pkg/slugify"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Wii Sports", "wii-sports"},
		{"strips punctuation", "Grand Theft Auto: Vice City", "grand-theft-auto-vice-city"},
		{"keeps digits", "E10+", "e10"},
		{"collapses separators", "Pokemon  Red -- Blue", "pokemon-red-blue"},
		{"trims edges", "  Tetris  ", "tetris"},
		{"already clean", "ps4", "ps4"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugify.Make(tt.in))
		})
	}
}
