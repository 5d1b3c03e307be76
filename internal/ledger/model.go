package ledger

import "time"

// Direction determines the signed effect of an entry on day-book totals.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

// Status is the settlement state of a day-book entry.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
)

// Entry is a single day-book record. Amount is always non-negative; the
// direction decides whether it counts as income or expense. Entries are never
// mutated in place: corrections append a reversing entry and old entries are
// archived, not deleted.
type Entry struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Direction   Direction `json:"direction"`
	Status      Status    `json:"status"`
	Reverses    string    `json:"reverses,omitempty"`
	Archived    bool      `json:"archived,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Categories is the canonical category list used for grouped totals.
var Categories = []string{
	"Client Work",
	"Retainers",
	"Product Sales",
	"Payroll",
	"Rent & Utilities",
	"Software",
	"Travel",
	"Miscellaneous",
}
