package ledger

import "time"

// ListRequest carries the day-book screen's filter criteria.
type ListRequest struct {
	Search      string
	Category    string
	Direction   string
	Status      string
	DatePreset  string
	DateFrom    time.Time
	DateTo      time.Time
	PendingOnly bool
	Page        int
	PerPage     int
}

// AppendRequest creates a new day-book entry.
type AppendRequest struct {
	Date        time.Time `json:"date" validate:"required"`
	Description string    `json:"description" validate:"required,max=200"`
	Category    string    `json:"category" validate:"required"`
	Amount      float64   `json:"amount" validate:"gte=0"`
	Direction   Direction `json:"direction" validate:"required,oneof=income expense"`
	Status      Status    `json:"status" validate:"omitempty,oneof=completed pending failed"`
}

// Summary is the daily income/expense rollup shown above the day-book list.
type Summary struct {
	Date          time.Time `json:"date"`
	TotalIncome   float64   `json:"total_income"`
	TotalExpenses float64   `json:"total_expenses"`
	NetAmount     float64   `json:"net_amount"`
	Outcome       string    `json:"outcome"`
}

// ListResult pairs the filtered entries with their aggregates.
type ListResult struct {
	Entries        []Entry            `json:"entries"`
	Total          int                `json:"total"`
	IncomeTotal    float64            `json:"income_total"`
	ExpenseTotal   float64            `json:"expense_total"`
	CategoryTotals map[string]float64 `json:"category_totals"`
}
