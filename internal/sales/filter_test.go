package sales_test

import (
	"strconv"
	"testing"

	"gamesales/backend/internal/sales"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByParams(t *testing.T) {
	records := fixtureSales()

	t.Run("NoFiltersKeepsEverything", func(t *testing.T) {
		got, err := sales.FilterByParams(records, nil)
		require.NoError(t, err)
		assert.Len(t, got, len(records))
	})

	t.Run("GenreIsCaseSensitiveSubstring", func(t *testing.T) {
		got, err := sales.FilterByParams(records, map[string]string{"genre": "Sport"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Wii Sports"}, namesOf(got))

		got, err = sales.FilterByParams(records, map[string]string{"genre": "sport"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("ESRBRatingSubstring", func(t *testing.T) {
		got, err := sales.FilterByParams(records, map[string]string{"esrb_rating": "M"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Grand Theft Auto V", "Call of Duty: Ghosts"}, namesOf(got))
	})

	t.Run("YearBoundsAreStrict", func(t *testing.T) {
		got, err := sales.FilterByParams(records, map[string]string{"yor_lt": "2006"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Tetris"}, namesOf(got))

		got, err = sales.FilterByParams(records, map[string]string{"yor_gt": "2006"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Grand Theft Auto V", "Call of Duty: Ghosts"}, namesOf(got))
	})

	t.Run("ExactYear", func(t *testing.T) {
		got, err := sales.FilterByParams(records, map[string]string{"year_of_release": "2013"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Grand Theft Auto V", "Call of Duty: Ghosts"}, namesOf(got))
	})

	t.Run("UnknownYearNeverMatches", func(t *testing.T) {
		// Gran Turismo has no release year and must not survive any year filter.
		for _, params := range []map[string]string{
			{"yor_lt": "3000"},
			{"yor_gt": "1000"},
			{"year_of_release": "1997"},
		} {
			got, err := sales.FilterByParams(records, params)
			require.NoError(t, err)
			assert.NotContains(t, namesOf(got), "Gran Turismo")
		}
	})

	t.Run("FiltersAreConjunctiveAndCommute", func(t *testing.T) {
		combined, err := sales.FilterByParams(records, map[string]string{
			"genre":  "Action",
			"yor_gt": "2006",
		})
		require.NoError(t, err)

		// Same result as applying the filters one at a time, in either order.
		step1, err := sales.FilterByParams(records, map[string]string{"genre": "Action"})
		require.NoError(t, err)
		step2, err := sales.FilterByParams(step1, map[string]string{"yor_gt": "2006"})
		require.NoError(t, err)
		assert.Equal(t, namesOf(step2), namesOf(combined))

		step1, err = sales.FilterByParams(records, map[string]string{"yor_gt": "2006"})
		require.NoError(t, err)
		step2, err = sales.FilterByParams(step1, map[string]string{"genre": "Action"})
		require.NoError(t, err)
		assert.Equal(t, namesOf(step2), namesOf(combined))
	})

	t.Run("UnknownFilterIsRejected", func(t *testing.T) {
		_, err := sales.FilterByParams(records, map[string]string{"publisher": "Nintendo"})
		assert.ErrorIs(t, err, sales.ErrUnknownFilter)

		// Valid keys alongside the unknown one don't rescue it.
		_, err = sales.FilterByParams(records, map[string]string{
			"genre":  "Action",
			"bogus":  "x",
			"yor_lt": "2010",
		})
		assert.ErrorIs(t, err, sales.ErrUnknownFilter)
	})

	t.Run("UnparseableYearPropagates", func(t *testing.T) {
		for _, name := range []string{"yor_lt", "yor_gt", "year_of_release"} {
			_, err := sales.FilterByParams(records, map[string]string{name: "two-thousand"})
			require.Error(t, err)

			var numErr *strconv.NumError
			assert.ErrorAs(t, err, &numErr)
		}
	})
}
