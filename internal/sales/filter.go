package sales

import (
	"errors"
	"fmt"
	"strings"

	"gamesales/backend/internal/models"
)

// ErrUnknownFilter is returned when FilterByParams sees a filter name
// outside the fixed vocabulary. Unknown names are a caller bug, never
// silently ignored.
var ErrUnknownFilter = errors.New("unknown filter")

// FilterByParams applies the named filters conjunctively and returns the
// surviving records. The filters are independent predicates, so the
// result does not depend on application order. Integer-valued filters
// propagate their parse error unchanged.
func FilterByParams(records []models.Sale, params map[string]string) ([]models.Sale, error) {
	filtered := records
	for name, value := range params {
		switch name {
		case "genre":
			filtered = keep(filtered, func(s *models.Sale) bool {
				return strings.Contains(s.Game.Genre, value)
			})
		case "esrb_rating":
			filtered = keep(filtered, func(s *models.Sale) bool {
				return strings.Contains(s.Game.ESRBRating, value)
			})
		case "yor_lt":
			year, err := parseYear(value)
			if err != nil {
				return nil, err
			}
			filtered = keep(filtered, func(s *models.Sale) bool {
				return s.Game.YearOfRelease != nil && *s.Game.YearOfRelease < year
			})
		case "yor_gt":
			year, err := parseYear(value)
			if err != nil {
				return nil, err
			}
			filtered = keep(filtered, func(s *models.Sale) bool {
				return s.Game.YearOfRelease != nil && *s.Game.YearOfRelease > year
			})
		case "year_of_release":
			year, err := parseYear(value)
			if err != nil {
				return nil, err
			}
			filtered = keep(filtered, func(s *models.Sale) bool {
				return s.Game.YearOfRelease != nil && *s.Game.YearOfRelease == year
			})
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
		}
	}

	return filtered, nil
}

// FilterNames lists the recognized filter parameter names.
var FilterNames = []string{"genre", "esrb_rating", "yor_lt", "yor_gt", "year_of_release"}

func keep(records []models.Sale, pred func(*models.Sale) bool) []models.Sale {
	out := make([]models.Sale, 0, len(records))
	for i := range records {
		if pred(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}
