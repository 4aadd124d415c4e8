package sales

import (
	"strconv"
	"strings"

	"gamesales/backend/internal/models"
)

// SearchByText returns the records matching free text. Text that parses
// as an integer is an exact year-of-release match; anything else is a
// case-insensitive substring match across name, platform, publisher,
// developer and genre. The text is matched whole, never split on
// whitespace.
func SearchByText(records []models.Sale, text string) []models.Sale {
	if year, err := strconv.Atoi(text); err == nil {
		return keep(records, func(s *models.Sale) bool {
			return s.Game.YearOfRelease != nil && *s.Game.YearOfRelease == year
		})
	}

	needle := strings.ToLower(text)
	return keep(records, func(s *models.Sale) bool {
		for _, hay := range []string{
			s.Game.Name, s.Game.Platform, s.Game.Publisher, s.Game.Developer, s.Game.Genre,
		} {
			if strings.Contains(strings.ToLower(hay), needle) {
				return true
			}
		}
		return false
	})
}
