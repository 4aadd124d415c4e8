package sales

import (
	"strconv"
	"strings"

	"gamesales/backend/internal/models"
)

// Public field names and the joined tables they live on. Sales figures
// live on the sales table itself and need no prefix.
var (
	gameFields   = []string{"name", "platform", "publisher", "developer", "genre", "esrb_rating", "year_of_release"}
	ratingFields = []string{"critic_score", "critic_count", "user_score", "user_count"}
)

// ScoreFields lists the rating-derived numeric columns a score summary
// can be requested for.
var ScoreFields = ratingFields

// SaleColumns lists the sales-figure columns, in output order.
var SaleColumns = []string{"na_sales", "eu_sales", "jp_sales", "other_sales", "global_sales"}

// OrderableFields lists every public field a sale listing can be sorted
// by, in display order.
var OrderableFields = []string{
	"name", "platform", "publisher", "developer", "genre", "esrb_rating", "year_of_release",
	"critic_score", "critic_count", "user_score", "user_count",
	"na_sales", "eu_sales", "jp_sales", "other_sales", "global_sales",
}

// MapField translates a public field name into the storage path used to
// reach it through the joined tables. Unrecognized names pass through
// unchanged so new columns keep working without a mapper change.
func MapField(field string) string {
	for _, f := range gameFields {
		if field == f {
			return "games." + field
		}
	}
	for _, f := range ratingFields {
		if field == f {
			return "ratings." + field
		}
	}
	return field
}

// IsOrderable reports whether field (without any descending marker) is
// one of the OrderableFields. Sort keys headed for SQL must pass this
// check; MapField alone lets unrecognized names through.
func IsOrderable(field string) bool {
	for _, f := range OrderableFields {
		if field == f {
			return true
		}
	}
	return false
}

// OrderByMapping resolves a user-supplied sort key into a storage sort
// key, falling back to def when value is empty. A leading "-" marks
// descending order and survives the mapping untouched.
func OrderByMapping(value, def string) string {
	if value == "" {
		value = def
	}

	inReverse := false
	if strings.HasPrefix(value, "-") {
		value = value[1:]
		inReverse = true
	}

	value = MapField(value)

	if inReverse {
		value = "-" + value
	}

	return value
}

// OrderClause renders a mapped sort key as a SQL ORDER BY expression,
// turning the "-" descending marker into DESC.
func OrderClause(key string) string {
	if strings.HasPrefix(key, "-") {
		return key[1:] + " DESC"
	}
	return key
}

// mapFieldToDBField is the aggregator's own mapping: every grouped field
// is reached through the game join, unconditionally. This is narrower
// than MapField and deliberately stays that way.
func mapFieldToDBField(field string) string {
	return "games." + field
}

// groupKeyFunc resolves a mapped storage path to an accessor over an
// in-memory record. The accessor's bool result is false when the value
// is unknown for that record.
func groupKeyFunc(dbField string) (func(*models.Sale) (any, bool), bool) {
	switch dbField {
	case "games.name":
		return func(s *models.Sale) (any, bool) { return s.Game.Name, true }, true
	case "games.platform":
		return func(s *models.Sale) (any, bool) { return s.Game.Platform, true }, true
	case "games.publisher":
		return func(s *models.Sale) (any, bool) { return s.Game.Publisher, true }, true
	case "games.developer":
		return func(s *models.Sale) (any, bool) { return s.Game.Developer, true }, true
	case "games.genre":
		return func(s *models.Sale) (any, bool) { return s.Game.Genre, true }, true
	case "games.esrb_rating":
		return func(s *models.Sale) (any, bool) { return s.Game.ESRBRating, true }, true
	case "games.year_of_release":
		return func(s *models.Sale) (any, bool) {
			if s.Game.YearOfRelease == nil {
				return nil, false
			}
			return *s.Game.YearOfRelease, true
		}, true
	}
	return nil, false
}

// numericColumn resolves a numeric column name to an accessor returning
// the column's value, or nil when it is unknown for that record.
func numericColumn(column string) (func(*models.Sale) *float64, bool) {
	switch column {
	case "year_of_release":
		return func(s *models.Sale) *float64 {
			if s.Game.YearOfRelease == nil {
				return nil
			}
			v := float64(*s.Game.YearOfRelease)
			return &v
		}, true
	case "critic_score":
		return ratingColumn(func(r *models.Rating) *float64 { return r.CriticScore }), true
	case "critic_count":
		return ratingColumn(func(r *models.Rating) *float64 { return r.CriticCount }), true
	case "user_score":
		return ratingColumn(func(r *models.Rating) *float64 { return r.UserScore }), true
	case "user_count":
		return ratingColumn(func(r *models.Rating) *float64 { return r.UserCount }), true
	case "na_sales":
		return func(s *models.Sale) *float64 { return s.NASales }, true
	case "eu_sales":
		return func(s *models.Sale) *float64 { return s.EUSales }, true
	case "jp_sales":
		return func(s *models.Sale) *float64 { return s.JPSales }, true
	case "other_sales":
		return func(s *models.Sale) *float64 { return s.OtherSales }, true
	case "global_sales":
		return func(s *models.Sale) *float64 { return s.GlobalSales }, true
	}
	return nil, false
}

func ratingColumn(pick func(*models.Rating) *float64) func(*models.Sale) *float64 {
	return func(s *models.Sale) *float64 {
		if s.Game.Rating == nil {
			return nil
		}
		return pick(s.Game.Rating)
	}
}

func parseYear(value string) (int, error) {
	return strconv.Atoi(value)
}
