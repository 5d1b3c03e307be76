package invoices

import "time"

// LineItemRequest is the editable shape of a billed line. Amounts are never
// accepted from the client; they are recomputed from quantity and rate.
type LineItemRequest struct {
	Description string  `json:"description" validate:"required,max=200"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	UnitRate    float64 `json:"unit_rate" validate:"gte=0"`
}

// CreateRequest creates a draft invoice.
type CreateRequest struct {
	ClientName     string            `json:"client_name" validate:"required,max=120"`
	ClientEmail    string            `json:"client_email" validate:"omitempty,email"`
	IssueDate      time.Time         `json:"issue_date" validate:"required"`
	DueDate        time.Time         `json:"due_date" validate:"required"`
	Currency       string            `json:"currency" validate:"required,len=3"`
	CurrencySymbol string            `json:"currency_symbol" validate:"required,max=4"`
	TaxRate        float64           `json:"tax_rate" validate:"gte=0,lte=100"`
	LineItems      []LineItemRequest `json:"line_items" validate:"required,min=1,dive"`
	Notes          string            `json:"notes" validate:"max=500"`
}

// UpdateRequest edits a draft invoice. Nil fields keep their current value.
type UpdateRequest struct {
	ClientName  *string            `json:"client_name,omitempty" validate:"omitempty,max=120"`
	ClientEmail *string            `json:"client_email,omitempty" validate:"omitempty,email"`
	DueDate     *time.Time         `json:"due_date,omitempty"`
	TaxRate     *float64           `json:"tax_rate,omitempty" validate:"omitempty,gte=0,lte=100"`
	LineItems   *[]LineItemRequest `json:"line_items,omitempty" validate:"omitempty,min=1,dive"`
	Notes       *string            `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ListRequest carries the invoice list screen's filters.
type ListRequest struct {
	Search       string
	Status       string
	AmountBucket string
	DatePreset   string
	DateFrom     time.Time
	DateTo       time.Time
}

// InvoiceView decorates an invoice with its derived figures for listings.
type InvoiceView struct {
	Invoice
	EffectiveStatus Status  `json:"effective_status"`
	Subtotal        float64 `json:"subtotal"`
	GrandTotal      float64 `json:"grand_total"`
}

// ListResult pairs filtered invoices with the status rollups the screen shows.
type ListResult struct {
	Invoices     []InvoiceView  `json:"invoices"`
	Total        int            `json:"total"`
	StatusCounts map[Status]int `json:"status_counts"`
	Outstanding  float64        `json:"outstanding"`
	OverdueCount int            `json:"overdue_count"`
}
