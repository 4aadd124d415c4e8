package sales_test

import (
	"strings"
	"testing"

	"gamesales/backend/internal/sales"

	"github.com/stretchr/testify/assert"
)

func TestMapField(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"name", "games.name"},
		{"platform", "games.platform"},
		{"publisher", "games.publisher"},
		{"developer", "games.developer"},
		{"genre", "games.genre"},
		{"esrb_rating", "games.esrb_rating"},
		{"year_of_release", "games.year_of_release"},
		{"critic_score", "ratings.critic_score"},
		{"critic_count", "ratings.critic_count"},
		{"user_score", "ratings.user_score"},
		{"user_count", "ratings.user_count"},
		// Sales columns live on the sales table itself: no prefix.
		{"na_sales", "na_sales"},
		{"global_sales", "global_sales"},
		// Unrecognized names pass through unchanged.
		{"not_a_field", "not_a_field"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.want, sales.MapField(tt.field))
		})
	}
}

func TestOrderByMapping(t *testing.T) {
	t.Run("EmptyFallsBackToDefault", func(t *testing.T) {
		assert.Equal(t, "id", sales.OrderByMapping("", "id"))
	})

	t.Run("DescendingMarkerSurvivesMapping", func(t *testing.T) {
		assert.Equal(t, "-ratings.critic_score", sales.OrderByMapping("-critic_score", "id"))
		assert.Equal(t, "-games.name", sales.OrderByMapping("-name", "id"))
	})

	t.Run("RoundTripRecoversFieldName", func(t *testing.T) {
		for _, field := range []string{"name", "genre", "critic_score", "global_sales"} {
			mapped := sales.OrderByMapping("-"+field, "id")

			recovered := strings.TrimPrefix(mapped, "-")
			if i := strings.LastIndex(recovered, "."); i >= 0 {
				recovered = recovered[i+1:]
			}
			assert.Equal(t, field, recovered)
		}
	})
}

func TestIsOrderable(t *testing.T) {
	for _, field := range sales.OrderableFields {
		assert.True(t, sales.IsOrderable(field), field)
	}

	for _, field := range []string{
		"",
		"not_a_field",
		"games.name", // mapped form is not a public sort key
		"-name",      // the descending marker must be stripped first
		"(SELECT CASE WHEN id > 0 THEN id ELSE game_id END)",
		"id; DROP TABLE sales",
	} {
		assert.False(t, sales.IsOrderable(field), field)
	}
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "games.name DESC", sales.OrderClause("-games.name"))
	assert.Equal(t, "games.name", sales.OrderClause("games.name"))
	assert.Equal(t, "global_sales DESC", sales.OrderClause("-global_sales"))
}
