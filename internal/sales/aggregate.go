package sales

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"gamesales/backend/internal/models"
)

// ErrNegativeN is returned when a top-N request asks for a negative
// number of groups.
var ErrNegativeN = errors.New("n must not be negative")

// TopFieldEntry is one group in a breakdown by field. It marshals with
// the grouped field name as the key, e.g. {"genre": "Action", "count": 12.5}.
type TopFieldEntry struct {
	Field string
	Key   any
	Count float64
}

// MarshalJSON emits the dynamic-key object shape the API exposes.
func (e TopFieldEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		e.Field: e.Key,
		"count": e.Count,
	})
}

// TopNFieldsForSaleType groups the records by a game field, sums the
// chosen sales column per group and returns the n largest groups in
// descending order of their sum, rounded to 2 decimals.
//
// Records with an unknown group key are dropped, and unknown sales values
// are skipped by the sum. Ties keep the order the groups were first seen
// in; that tie-break is part of the contract. n larger than the number of
// groups returns them all, n == 0 returns none.
func TopNFieldsForSaleType(records []models.Sale, field, saleType string, n int) ([]TopFieldEntry, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeN, n)
	}

	getter, ok := numericColumn(saleType)
	if !ok {
		return nil, fmt.Errorf("unknown sale type %q", saleType)
	}

	entries, err := groupBy(records, field, func(s *models.Sale, sum float64) float64 {
		if v := getter(s); v != nil {
			return sum + *v
		}
		return sum
	})
	if err != nil {
		return nil, err
	}

	sortAndRound(entries)

	if n < len(entries) {
		entries = entries[:n]
	}
	return entries, nil
}

// GamesByField counts records per value of a game field and returns all
// groups in descending order of their count, ties in first-seen order.
func GamesByField(records []models.Sale, field string) ([]TopFieldEntry, error) {
	entries, err := groupBy(records, field, func(_ *models.Sale, sum float64) float64 {
		return sum + 1
	})
	if err != nil {
		return nil, err
	}

	sortAndRound(entries)
	return entries, nil
}

// YearCount is the number of games released in one year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// GamesAnnually counts records per year of release, in ascending year
// order. Records with an unknown year are dropped.
func GamesAnnually(records []models.Sale) []YearCount {
	counts := make(map[int]int)
	for i := range records {
		if y := records[i].Game.YearOfRelease; y != nil {
			counts[*y]++
		}
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]YearCount, 0, len(years))
	for _, y := range years {
		out = append(out, YearCount{Year: y, Count: counts[y]})
	}
	return out
}

// groupBy folds the records into per-group accumulators, keyed by the
// game-joined value of field, preserving first-seen group order.
func groupBy(records []models.Sale, field string, fold func(*models.Sale, float64) float64) ([]TopFieldEntry, error) {
	dbField := mapFieldToDBField(field)
	keyOf, ok := groupKeyFunc(dbField)
	if !ok {
		return nil, fmt.Errorf("cannot group by field %q", field)
	}

	sums := make(map[any]int) // group key -> index into entries
	entries := make([]TopFieldEntry, 0)
	for i := range records {
		key, known := keyOf(&records[i])
		if !known {
			continue
		}
		idx, seen := sums[key]
		if !seen {
			idx = len(entries)
			sums[key] = idx
			entries = append(entries, TopFieldEntry{Field: field, Key: key})
		}
		entries[idx].Count = fold(&records[i], entries[idx].Count)
	}
	return entries, nil
}

func sortAndRound(entries []TopFieldEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	for i := range entries {
		entries[i].Count = round2(entries[i].Count)
	}
}
