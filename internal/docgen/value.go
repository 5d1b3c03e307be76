package docgen

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/number"
)

// Kind identifies the semantic type of a substitution value, which decides
// how the token is formatted.
type Kind int

const (
	// KindText values substitute verbatim.
	KindText Kind = iota
	// KindCurrency values render with the document currency symbol and two
	// decimal places.
	KindCurrency
	// KindNumber values render with locale thousands separators.
	KindNumber
	// KindDate values render as "02 Jan 2006".
	KindDate
)

// Value is one typed substitution datum.
type Value struct {
	kind   Kind
	text   string
	number float64
	date   time.Time
}

// Data maps placeholder names to their substitution values.
type Data map[string]Value

// Text wraps a plain string value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Currency wraps a monetary amount.
func Currency(v float64) Value { return Value{kind: KindCurrency, number: v} }

// Number wraps a plain numeric value.
func Number(v float64) Value { return Value{kind: KindNumber, number: v} }

// Date wraps a calendar date.
func Date(t time.Time) Value { return Value{kind: KindDate, date: t} }

func (v Value) isEmpty() bool {
	switch v.kind {
	case KindText:
		return strings.TrimSpace(v.text) == ""
	case KindDate:
		return v.date.IsZero()
	default:
		return false
	}
}

func (r *Renderer) formatValue(v Value, currencySymbol string) string {
	switch v.kind {
	case KindCurrency:
		return currencySymbol + r.printer.Sprintf("%.2f", v.number)
	case KindNumber:
		return r.printer.Sprint(number.Decimal(v.number))
	case KindDate:
		return v.date.Format("02 Jan 2006")
	default:
		return v.text
	}
}

// Merge overlays extra onto data, returning a new map. Later values win.
func Merge(data Data, extra Data) Data {
	merged := make(Data, len(data)+len(extra))
	for k, v := range data {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// Tint derives a translucent variant of a hex color, used for section header
// backgrounds. Colors that fail to parse fall back to transparent.
func Tint(hex string, opacity float64) string {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return "transparent"
	}
	var red, green, blue int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &red, &green, &blue); err != nil {
		return "transparent"
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", red, green, blue, opacity)
}
