package query

import "math"

// Sum totals a numeric field over records. Non-finite values contribute
// nothing so partial records cannot poison a rollup.
func Sum[T any](records []T, field func(T) float64) float64 {
	var total float64
	for _, record := range records {
		v := field(record)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		total += v
	}
	return total
}

// SumBy totals a numeric field partitioned by a categorical key, e.g. income
// versus expense.
func SumBy[T any, K comparable](records []T, key func(T) K, field func(T) float64) map[K]float64 {
	totals := make(map[K]float64)
	for _, record := range records {
		v := field(record)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		totals[key(record)] += v
	}
	return totals
}

// GroupBy buckets records by a categorical key. Every canonical value gets a
// key even when its bucket is empty, so kanban columns always render.
// Records carrying a non-canonical key are still grouped under their own key;
// grouping never drops records.
func GroupBy[T any, K comparable](records []T, key func(T) K, canonical []K) map[K][]T {
	groups := make(map[K][]T, len(canonical))
	for _, k := range canonical {
		groups[k] = []T{}
	}
	for _, record := range records {
		k := key(record)
		groups[k] = append(groups[k], record)
	}
	return groups
}
