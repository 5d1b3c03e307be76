package tax

import "time"

// Type is the filing cadence of a compliance record.
type Type string

const (
	TypeMonthly   Type = "monthly"
	TypeQuarterly Type = "quarterly"
	TypeAnnual    Type = "annual"
)

// Status is the stored filing state. Overdue is never stored; it is derived
// from the due date of a still-pending record (see EffectiveStatus).
type Status string

const (
	StatusPending Status = "pending"
	StatusFiled   Status = "filed"
	StatusPaid    Status = "paid"

	// StatusOverdue is derived only.
	StatusOverdue Status = "overdue"
)

// Record is one tax filing obligation for a period.
type Record struct {
	ID      string     `json:"id"`
	Period  string     `json:"period"`
	Type    Type       `json:"type"`
	Status  Status     `json:"status"`
	DueDate time.Time  `json:"due_date"`
	Amount  float64    `json:"amount"`
	FiledAt *time.Time `json:"filed_at,omitempty"`
	PaidAt  *time.Time `json:"paid_at,omitempty"`
}

// EffectiveStatus reports the status screens show: a pending record past its
// due date reads as overdue.
func (r Record) EffectiveStatus(now time.Time) Status {
	if r.Status == StatusPending && !r.DueDate.IsZero() && r.DueDate.Before(now) {
		return StatusOverdue
	}
	return r.Status
}
