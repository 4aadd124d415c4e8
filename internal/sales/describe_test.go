package sales_test

import (
	"encoding/json"
	"testing"

	"gamesales/backend/internal/models"
	"gamesales/backend/internal/sales"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	t.Run("EmptyRecordSet", func(t *testing.T) {
		got := sales.Describe(nil)
		require.Len(t, got, len(sales.DescribeColumns))

		for column, stats := range got {
			assert.Equal(t, 0.0, stats.Count, column)
			assert.Nil(t, stats.Mean, column)
			assert.Nil(t, stats.Std, column)
			assert.Nil(t, stats.Min, column)
			assert.Nil(t, stats.Q25, column)
			assert.Nil(t, stats.Median, column)
			assert.Nil(t, stats.Q75, column)
			assert.Nil(t, stats.Max, column)
		}
	})

	t.Run("KnownValues", func(t *testing.T) {
		records := []models.Sale{
			newSale(saleSpec{name: "A", global: floatPtr(1)}),
			newSale(saleSpec{name: "B", global: floatPtr(2)}),
			newSale(saleSpec{name: "C", global: floatPtr(3)}),
			newSale(saleSpec{name: "D", global: floatPtr(4)}),
		}
		stats := sales.Describe(records)["global_sales"]

		assert.Equal(t, 4.0, stats.Count)
		require.NotNil(t, stats.Mean)
		assert.Equal(t, 2.5, *stats.Mean)
		require.NotNil(t, stats.Std)
		assert.Equal(t, 1.29, *stats.Std) // sample std of 1..4
		assert.Equal(t, 1.0, *stats.Min)
		assert.Equal(t, 1.75, *stats.Q25) // linear interpolation
		assert.Equal(t, 2.5, *stats.Median)
		assert.Equal(t, 3.25, *stats.Q75)
		assert.Equal(t, 4.0, *stats.Max)
	})

	t.Run("SingleValueHasNoStd", func(t *testing.T) {
		records := []models.Sale{newSale(saleSpec{name: "A", global: floatPtr(7)})}
		stats := sales.Describe(records)["global_sales"]

		assert.Equal(t, 1.0, stats.Count)
		require.NotNil(t, stats.Mean)
		assert.Equal(t, 7.0, *stats.Mean)
		assert.Nil(t, stats.Std)
		assert.Equal(t, 7.0, *stats.Min)
		assert.Equal(t, 7.0, *stats.Max)
	})

	t.Run("MissingRatingSubRecord", func(t *testing.T) {
		// Records without a Rating contribute nothing to the rating columns.
		stats := sales.Describe(fixtureSales())
		assert.Equal(t, 2.0, stats["critic_score"].Count)
		assert.Equal(t, 0.0, stats["critic_count"].Count)
		assert.Nil(t, stats["critic_count"].Mean)
	})

	t.Run("YearIsANumericColumn", func(t *testing.T) {
		stats := sales.Describe(fixtureSales())["year_of_release"]
		assert.Equal(t, 4.0, stats.Count)
		require.NotNil(t, stats.Mean)
		assert.Equal(t, 2005.25, *stats.Mean)
		assert.Equal(t, 11.32, *stats.Std)
	})

	t.Run("MarshalsNullMarkersNotNaN", func(t *testing.T) {
		raw, err := json.Marshal(sales.Describe(nil)["global_sales"])
		require.NoError(t, err)
		assert.JSONEq(t, `{"count": 0, "mean": null, "std": null, "min": null,
			"25%": null, "50%": null, "75%": null, "max": null}`, string(raw))
	})
}

func TestColumnSummary(t *testing.T) {
	t.Run("KnownColumn", func(t *testing.T) {
		stats, err := sales.ColumnSummary(fixtureSales(), "user_score")
		require.NoError(t, err)
		assert.Equal(t, 2.0, stats.Count)
		require.NotNil(t, stats.Mean)
		assert.Equal(t, 8.1, *stats.Mean)
	})

	t.Run("UnknownColumn", func(t *testing.T) {
		_, err := sales.ColumnSummary(fixtureSales(), "metascore")
		assert.Error(t, err)
	})
}
