package query

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Description string
	Category    string
	Amount      float64
	Date        time.Time
	Pending     bool
}

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func sampleRecords() []record {
	return []record{
		{Description: "Website redesign", Category: "Services", Amount: 7500, Date: day(1)},
		{Description: "Office rent", Category: "Overheads", Amount: 2500, Date: day(3), Pending: true},
		{Description: "SEO retainer", Category: "Services", Amount: 900, Date: day(5)},
		{Description: "Server hosting", Category: "Infrastructure", Amount: 120.5, Date: day(5), Pending: true},
		{Description: "Brand photography", Category: "Services", Amount: 15000, Date: day(9)},
	}
}

func amountBuckets() []Bucket {
	return []Bucket{
		{Label: "Under $1K", Min: 0, Max: 1000},
		{Label: "$1K-$5K", Min: 1000, Max: 5000},
		{Label: "$5K-$10K", Min: 5000, Max: 10000},
		{Label: "$10K+", Min: 10000, Unbounded: true},
	}
}

func TestTextSearchMatchesAnyField(t *testing.T) {
	records := sampleRecords()
	search := TextSearch[record]{
		Query: "serv",
		Fields: []func(record) string{
			func(r record) string { return r.Description },
			func(r record) string { return r.Category },
		},
	}

	filtered := Apply(records, search)

	require.Len(t, filtered, 4)
	assert.Equal(t, "Website redesign", filtered[0].Description)
	assert.Equal(t, "Server hosting", filtered[2].Description)
}

func TestTextSearchEmptyQueryMatchesAll(t *testing.T) {
	records := sampleRecords()
	search := TextSearch[record]{Query: "   ", Fields: []func(record) string{
		func(r record) string { return r.Description },
	}}

	assert.Equal(t, records, Apply(records, search))
}

func TestEnumEqualsSentinelDisablesFilter(t *testing.T) {
	records := sampleRecords()
	category := func(r record) string { return r.Category }

	all := Apply(records, EnumEquals[record]{Selected: All, Field: category})
	assert.Len(t, all, len(records))

	services := Apply(records, EnumEquals[record]{Selected: "Services", Field: category})
	assert.Len(t, services, 3)
}

func TestAmountBucketBoundaries(t *testing.T) {
	buckets := amountBuckets()
	cases := []struct {
		amount float64
		label  string
	}{
		{0, "Under $1K"},
		{999.99, "Under $1K"},
		{1000, "$1K-$5K"},
		{7500, "$5K-$10K"},
		{10000, "$10K+"},
		{250000, "$10K+"},
	}
	for _, tc := range cases {
		matches := 0
		for _, b := range buckets {
			if b.Contains(tc.amount) {
				matches++
				assert.Equal(t, tc.label, b.Label, "amount %.2f", tc.amount)
			}
		}
		assert.Equal(t, 1, matches, "amount %.2f should match exactly one bucket", tc.amount)
	}
}

func TestAmountBucketRejectsNonFinite(t *testing.T) {
	b := Bucket{Label: "Under $1K", Min: 0, Max: 1000}
	assert.False(t, b.Contains(math.NaN()))
	assert.False(t, b.Contains(math.Inf(1)))
}

func TestDateRangeInclusiveAndPreset(t *testing.T) {
	records := sampleRecords()
	field := func(r record) time.Time { return r.Date }

	ranged := Apply(records, DateRange[record]{From: day(3), To: day(5), Field: field})
	require.Len(t, ranged, 3)
	assert.Equal(t, "Office rent", ranged[0].Description)

	disabled := Apply(records, DateRange[record]{Preset: PresetAll, From: day(3), To: day(5), Field: field})
	assert.Len(t, disabled, len(records))
}

func TestDateRangeExcludesMalformedDates(t *testing.T) {
	records := append(sampleRecords(), record{Description: "No date", Amount: 50})
	field := func(r record) time.Time { return r.Date }

	filtered := Apply(records, DateRange[record]{From: day(1), To: day(31), Field: field})
	assert.Len(t, filtered, 5)
}

func TestToggle(t *testing.T) {
	records := sampleRecords()
	pending := Toggle[record]{Enabled: true, Predicate: func(r record) bool { return r.Pending }}

	assert.Len(t, Apply(records, pending), 2)

	pending.Enabled = false
	assert.Len(t, Apply(records, pending), len(records))
}

func TestApplyIsIdempotent(t *testing.T) {
	records := sampleRecords()
	criteria := []Criterion[record]{
		TextSearch[record]{Query: "e", Fields: []func(record) string{func(r record) string { return r.Description }}},
		EnumEquals[record]{Selected: "Services", Field: func(r record) string { return r.Category }},
	}

	once := Apply(records, criteria...)
	twice := Apply(once, criteria...)
	assert.Equal(t, once, twice)
}

func TestApplyIsMonotonic(t *testing.T) {
	records := sampleRecords()
	base := []Criterion[record]{
		TextSearch[record]{Query: "e", Fields: []func(record) string{func(r record) string { return r.Description }}},
	}
	narrowed := append(append([]Criterion[record]{}, base...),
		AmountBucket[record]{Selected: "$5K-$10K", Buckets: amountBuckets(), Field: func(r record) float64 { return r.Amount }})

	assert.LessOrEqual(t, len(Apply(records, narrowed...)), len(Apply(records, base...)))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	snapshot := append([]record{}, records...)

	Apply(records, EnumEquals[record]{Selected: "Services", Field: func(r record) string { return r.Category }})
	assert.Equal(t, snapshot, records)
}

func TestSumSkipsNonFinite(t *testing.T) {
	records := append(sampleRecords(), record{Description: "Broken", Amount: math.NaN()})
	total := Sum(records, func(r record) float64 { return r.Amount })
	assert.InDelta(t, 26020.5, total, 0.001)
}

func TestSumByPartitionsByKey(t *testing.T) {
	records := sampleRecords()
	totals := SumBy(records, func(r record) string { return r.Category }, func(r record) float64 { return r.Amount })

	assert.InDelta(t, 23400, totals["Services"], 0.001)
	assert.InDelta(t, 2500, totals["Overheads"], 0.001)
	assert.InDelta(t, 120.5, totals["Infrastructure"], 0.001)
}

func TestGroupByCanonicalKeysAlwaysPresent(t *testing.T) {
	records := sampleRecords()
	canonical := []string{"Services", "Overheads", "Infrastructure", "Payroll"}
	groups := GroupBy(records, func(r record) string { return r.Category }, canonical)

	require.Len(t, groups, len(canonical))
	assert.Empty(t, groups["Payroll"])
	assert.NotNil(t, groups["Payroll"])
	assert.Len(t, groups["Services"], 3)
}

func TestGroupByNeverDropsOrDuplicates(t *testing.T) {
	records := sampleRecords()
	groups := GroupBy(records, func(r record) string { return r.Category }, []string{"Services"})

	grouped := 0
	var groupedSum float64
	for _, bucket := range groups {
		grouped += len(bucket)
		groupedSum += Sum(bucket, func(r record) float64 { return r.Amount })
	}
	assert.Equal(t, len(records), grouped)
	assert.InDelta(t, Sum(records, func(r record) float64 { return r.Amount }), groupedSum, 0.001)
}
