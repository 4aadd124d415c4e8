package sales_test

import (
	"testing"

	"gamesales/backend/internal/sales"

	"github.com/stretchr/testify/assert"
)

func TestSearchByText(t *testing.T) {
	records := fixtureSales()

	t.Run("IntegerTextMatchesYearExactly", func(t *testing.T) {
		got := sales.SearchByText(records, "2006")
		assert.Equal(t, []string{"Wii Sports"}, namesOf(got))

		got = sales.SearchByText(records, "1989")
		assert.Equal(t, []string{"Tetris"}, namesOf(got))
	})

	t.Run("TextMatchesAnyFieldCaseInsensitively", func(t *testing.T) {
		// "nintendo" appears in publisher and developer fields.
		got := sales.SearchByText(records, "nintendo")
		assert.Equal(t, []string{"Wii Sports", "Tetris"}, namesOf(got))

		// Platform match.
		got = sales.SearchByText(records, "x360")
		assert.Equal(t, []string{"Call of Duty: Ghosts"}, namesOf(got))

		// Genre match.
		got = sales.SearchByText(records, "RACING")
		assert.Equal(t, []string{"Gran Turismo"}, namesOf(got))
	})

	t.Run("TextIsNotTokenized", func(t *testing.T) {
		// The whole string must appear as a substring; no word splitting.
		got := sales.SearchByText(records, "wii sports")
		assert.Equal(t, []string{"Wii Sports"}, namesOf(got))

		got = sales.SearchByText(records, "sports wii")
		assert.Empty(t, got)
	})

	t.Run("NoMatches", func(t *testing.T) {
		assert.Empty(t, sales.SearchByText(records, "halo"))
		assert.Empty(t, sales.SearchByText(records, "1900"))
	})
}
