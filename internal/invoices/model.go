package invoices

import (
	"time"

	"github.com/vantage-suite/vantage/internal/docgen"
)

// Status is the stored lifecycle state of an invoice. Overdue is not a stored
// status: it is derived from the due date and only ever reported through
// EffectiveStatus.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"

	// StatusOverdue is derived, never stored and never a transition target.
	StatusOverdue Status = "overdue"
)

// Statuses lists the canonical stored statuses for grouped rollups.
var Statuses = []Status{StatusDraft, StatusSent, StatusPaid, StatusCancelled}

// LineItem is one billed line. The amount is always derived from quantity
// and rate; there is no stored amount field to drift out of sync.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitRate    float64 `json:"unit_rate"`
}

// Amount returns quantity x unit rate.
func (li LineItem) Amount() float64 {
	return li.Quantity * li.UnitRate
}

// Invoice is a billing document issued to a client.
type Invoice struct {
	ID             string     `json:"id"`
	Number         string     `json:"number"`
	ClientName     string     `json:"client_name"`
	ClientEmail    string     `json:"client_email,omitempty"`
	IssueDate      time.Time  `json:"issue_date"`
	DueDate        time.Time  `json:"due_date"`
	Currency       string     `json:"currency"`
	CurrencySymbol string     `json:"currency_symbol"`
	TaxRate        float64    `json:"tax_rate"`
	LineItems      []LineItem `json:"line_items"`
	Status         Status     `json:"status"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Totals computes the invoice rollup (subtotal, CGST/SGST split, grand
// total) from the line items.
func (inv Invoice) Totals() docgen.Rollup {
	items := make([]docgen.LineItem, len(inv.LineItems))
	for i, li := range inv.LineItems {
		items[i] = docgen.LineItem{Description: li.Description, Quantity: li.Quantity, UnitRate: li.UnitRate}
	}
	return docgen.ComputeRollup(items, inv.TaxRate)
}

// EffectiveStatus reports the status as shown on screens: a sent invoice past
// its due date reads as overdue.
func (inv Invoice) EffectiveStatus(now time.Time) Status {
	if inv.Status == StatusSent && !inv.DueDate.IsZero() && inv.DueDate.Before(now) {
		return StatusOverdue
	}
	return inv.Status
}

// canTransition encodes the allowed stored-status moves:
// draft -> sent -> (paid | cancelled), plus cancelling an unsent draft.
func canTransition(from, to Status) bool {
	switch from {
	case StatusDraft:
		return to == StatusSent || to == StatusCancelled
	case StatusSent:
		return to == StatusPaid || to == StatusCancelled
	default:
		return false
	}
}
