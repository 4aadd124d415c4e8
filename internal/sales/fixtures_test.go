package sales_test

import (
	"gamesales/backend/internal/models"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

type saleSpec struct {
	name      string
	platform  string
	publisher string
	developer string
	genre     string
	year      *int
	esrb      string
	rating    *models.Rating
	na        *float64
	global    *float64
}

func newSale(spec saleSpec) models.Sale {
	return models.Sale{
		Game: models.Game{
			Name:          spec.name,
			Platform:      spec.platform,
			Publisher:     spec.publisher,
			Developer:     spec.developer,
			Genre:         spec.genre,
			YearOfRelease: spec.year,
			ESRBRating:    spec.esrb,
			Rating:        spec.rating,
		},
		NASales:     spec.na,
		GlobalSales: spec.global,
	}
}

// fixtureSales is a small catalog with known per-genre sales sums:
// Action 30.0, Sports 12.5, Puzzle 2.25, Racing 0 (value unknown).
func fixtureSales() []models.Sale {
	return []models.Sale{
		newSale(saleSpec{
			name: "Grand Theft Auto V", platform: "PS3", publisher: "Take-Two Interactive",
			developer: "Rockstar North", genre: "Action", year: intPtr(2013), esrb: "M",
			rating: &models.Rating{CriticScore: floatPtr(97), UserScore: floatPtr(8.2)},
			na:     floatPtr(7.01), global: floatPtr(21.4),
		}),
		newSale(saleSpec{
			name: "Wii Sports", platform: "Wii", publisher: "Nintendo",
			developer: "Nintendo EAD", genre: "Sports", year: intPtr(2006), esrb: "E",
			rating: &models.Rating{CriticScore: floatPtr(76), UserScore: floatPtr(8)},
			na:     floatPtr(41.36), global: floatPtr(12.5),
		}),
		newSale(saleSpec{
			name: "Call of Duty: Ghosts", platform: "X360", publisher: "Activision",
			developer: "Infinity Ward", genre: "Action", year: intPtr(2013), esrb: "M",
			na:   floatPtr(6.72), global: floatPtr(8.6),
		}),
		newSale(saleSpec{
			name: "Tetris", platform: "GB", publisher: "Nintendo",
			developer: "Nintendo R&D1", genre: "Puzzle", year: intPtr(1989), esrb: "E",
			global: floatPtr(2.25),
		}),
		newSale(saleSpec{
			name: "Gran Turismo", platform: "PS", publisher: "Sony Computer Entertainment",
			developer: "Polyphony Digital", genre: "Racing", year: nil, esrb: "E",
		}),
	}
}

func namesOf(records []models.Sale) []string {
	out := make([]string, 0, len(records))
	for i := range records {
		out = append(out, records[i].Game.Name)
	}
	return out
}
