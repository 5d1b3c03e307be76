// Package query implements the filter pipeline shared by every list screen:
// free-text search, enum dropdowns with an "All" sentinel, amount buckets,
// date ranges, and boolean toggles, composed with logical AND.
package query

import (
	"math"
	"strings"
	"time"
)

// All is the sentinel dropdown value that disables an enum filter.
const All = "All"

// PresetAll is the sentinel date-range preset that disables the range filter
// regardless of its bounds.
const PresetAll = "all"

// Criterion is a single named filter condition over records of type T.
// Inactive criteria match everything.
type Criterion[T any] interface {
	Active() bool
	Match(record T) bool
}

// TextSearch matches records whose configured string fields contain the
// query, case-insensitively. A record matches if ANY field contains it.
type TextSearch[T any] struct {
	Query  string
	Fields []func(T) string
}

func (s TextSearch[T]) Active() bool {
	return strings.TrimSpace(s.Query) != ""
}

func (s TextSearch[T]) Match(record T) bool {
	q := strings.ToLower(strings.TrimSpace(s.Query))
	for _, field := range s.Fields {
		if strings.Contains(strings.ToLower(field(record)), q) {
			return true
		}
	}
	return false
}

// EnumEquals matches records whose field equals the selected value.
// Empty selection or the All sentinel disables the filter.
type EnumEquals[T any] struct {
	Selected string
	Field    func(T) string
}

func (e EnumEquals[T]) Active() bool {
	return e.Selected != "" && e.Selected != All
}

func (e EnumEquals[T]) Match(record T) bool {
	return e.Field(record) == e.Selected
}

// Bucket is a named numeric sub-range. Bounds are half-open, lower inclusive
// and upper exclusive, except an unbounded top bucket.
type Bucket struct {
	Label     string
	Min       float64
	Max       float64
	Unbounded bool
}

// Contains reports whether v falls inside the bucket. Non-finite values
// never match.
func (b Bucket) Contains(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	if v < b.Min {
		return false
	}
	return b.Unbounded || v < b.Max
}

// AmountBucket matches records whose numeric field falls inside the selected
// named bucket. An unknown bucket label matches nothing.
type AmountBucket[T any] struct {
	Selected string
	Buckets  []Bucket
	Field    func(T) float64
}

func (a AmountBucket[T]) Active() bool {
	return a.Selected != "" && a.Selected != All
}

func (a AmountBucket[T]) Match(record T) bool {
	for _, b := range a.Buckets {
		if b.Label == a.Selected {
			return b.Contains(a.Field(record))
		}
	}
	return false
}

// DateRange matches records whose date field falls within [From, To],
// inclusive at both ends. A zero From or To leaves that end open. The
// PresetAll preset disables the filter entirely; records with a zero date
// are excluded rather than crashing the pipeline.
type DateRange[T any] struct {
	Preset string
	From   time.Time
	To     time.Time
	Field  func(T) time.Time
}

func (d DateRange[T]) Active() bool {
	if d.Preset == PresetAll {
		return false
	}
	return !d.From.IsZero() || !d.To.IsZero()
}

func (d DateRange[T]) Match(record T) bool {
	t := d.Field(record)
	if t.IsZero() {
		return false
	}
	if !d.From.IsZero() && t.Before(d.From) {
		return false
	}
	if !d.To.IsZero() && t.After(d.To) {
		return false
	}
	return true
}

// Toggle restricts records to a fixed predicate when enabled and imposes no
// restriction otherwise.
type Toggle[T any] struct {
	Enabled   bool
	Predicate func(T) bool
}

func (t Toggle[T]) Active() bool {
	return t.Enabled && t.Predicate != nil
}

func (t Toggle[T]) Match(record T) bool {
	return t.Predicate(record)
}

// Apply returns the records matching every active criterion, preserving the
// original relative order. The input slice is never mutated.
func Apply[T any](records []T, criteria ...Criterion[T]) []T {
	active := criteria[:0:0]
	for _, c := range criteria {
		if c != nil && c.Active() {
			active = append(active, c)
		}
	}
	filtered := make([]T, 0, len(records))
	for _, record := range records {
		matched := true
		for _, c := range active {
			if !c.Match(record) {
				matched = false
				break
			}
		}
		if matched {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
