package sales

import (
	"fmt"
	"math"
	"sort"

	"gamesales/backend/internal/models"
)

// ColumnStats is the describe summary for one numeric column. Pointer
// fields are null when the column has no known values; std additionally
// needs at least two of them.
type ColumnStats struct {
	Count  float64  `json:"count"`
	Mean   *float64 `json:"mean"`
	Std    *float64 `json:"std"`
	Min    *float64 `json:"min"`
	Q25    *float64 `json:"25%"`
	Median *float64 `json:"50%"`
	Q75    *float64 `json:"75%"`
	Max    *float64 `json:"max"`
}

// DescribeColumns lists the numeric columns summarized by Describe.
var DescribeColumns = []string{
	"year_of_release",
	"critic_score", "critic_count", "user_score", "user_count",
	"na_sales", "eu_sales", "jp_sales", "other_sales", "global_sales",
}

// Describe computes count, mean, sample standard deviation, min,
// quartiles and max for every numeric column over the records, each
// rounded to 2 decimals. Unknown values are excluded; a column with none
// left reports count 0 and null for everything else.
func Describe(records []models.Sale) map[string]ColumnStats {
	out := make(map[string]ColumnStats, len(DescribeColumns))
	for _, column := range DescribeColumns {
		getter, _ := numericColumn(column)
		out[column] = summarize(collect(records, getter))
	}
	return out
}

// ColumnSummary computes the describe statistics for a single numeric
// column. Unknown column names are an error.
func ColumnSummary(records []models.Sale, column string) (ColumnStats, error) {
	getter, ok := numericColumn(column)
	if !ok {
		return ColumnStats{}, fmt.Errorf("unknown column %q", column)
	}
	return summarize(collect(records, getter)), nil
}

// SaleTotals sums every sales column over the records, skipping unknown
// values, each total rounded to 2 decimals.
func SaleTotals(records []models.Sale) map[string]float64 {
	out := make(map[string]float64, len(SaleColumns))
	for _, column := range SaleColumns {
		getter, _ := numericColumn(column)
		var sum float64
		for i := range records {
			if v := getter(&records[i]); v != nil {
				sum += *v
			}
		}
		out[column] = round2(sum)
	}
	return out
}

func collect(records []models.Sale, getter func(*models.Sale) *float64) []float64 {
	xs := make([]float64, 0, len(records))
	for i := range records {
		if v := getter(&records[i]); v != nil {
			xs = append(xs, *v)
		}
	}
	return xs
}

func summarize(xs []float64) ColumnStats {
	stats := ColumnStats{Count: float64(len(xs))}
	if len(xs) == 0 {
		return stats
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	m := mean(xs)
	stats.Mean = round2p(m)
	if len(xs) > 1 {
		stats.Std = round2p(sampleStd(xs, m))
	}
	stats.Min = round2p(sorted[0])
	stats.Q25 = round2p(percentile(sorted, 0.25))
	stats.Median = round2p(percentile(sorted, 0.50))
	stats.Q75 = round2p(percentile(sorted, 0.75))
	stats.Max = round2p(sorted[len(sorted)-1])
	return stats
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleStd is the n-1 (sample) standard deviation.
func sampleStd(xs []float64, m float64) float64 {
	var sq float64
	for _, x := range xs {
		d := x - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(xs)-1))
}

// percentile interpolates linearly between the closest ranks of an
// already sorted sample.
func percentile(sorted []float64, p float64) float64 {
	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round2p(v float64) *float64 {
	r := round2(v)
	return &r
}
