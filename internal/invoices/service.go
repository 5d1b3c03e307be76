package invoices

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vantage-suite/vantage/internal/query"
	"github.com/vantage-suite/vantage/internal/shared"
)

var (
	// ErrMissingEmail is returned when sending an invoice without a client email.
	ErrMissingEmail = errors.New("client email required to send invoice")
	// ErrNotEditable is returned when editing an invoice past draft.
	ErrNotEditable = errors.New("only draft invoices can be edited")
)

// amountBuckets are the invoice amount filter ranges, keyed on grand total.
var amountBuckets = []query.Bucket{
	{Label: "Under $1K", Min: 0, Max: 1000},
	{Label: "$1K-$5K", Min: 1000, Max: 5000},
	{Label: "$5K-$10K", Min: 5000, Max: 10000},
	{Label: "$10K+", Min: 10000, Unbounded: true},
}

// Service implements invoice operations.
type Service struct {
	repo           Repository
	cache          shared.CacheInvalidator
	defaultSymbol  string
	defaultTaxRate float64
	now            func() time.Time
}

// NewService constructs an invoice service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SetCacheInvalidator registers a cache to bump after successful writes.
func (s *Service) SetCacheInvalidator(cache shared.CacheInvalidator) {
	s.cache = cache
}

// SetDocumentDefaults seeds the currency symbol and tax rate applied to
// create requests that leave them zero-valued.
func (s *Service) SetDocumentDefaults(symbol string, taxRate float64) {
	s.defaultSymbol = symbol
	s.defaultTaxRate = taxRate
}

func (s *Service) bumpCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Invalidate(ctx)
}

// List returns filtered invoices with derived figures and status rollups.
// Status filtering understands the derived overdue value.
func (s *Service) List(ctx context.Context, req ListRequest) (*ListResult, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	now := s.now()

	filtered := query.Apply(invoices,
		query.TextSearch[Invoice]{Query: req.Search, Fields: []func(Invoice) string{
			func(inv Invoice) string { return inv.Number },
			func(inv Invoice) string { return inv.ClientName },
		}},
		query.EnumEquals[Invoice]{Selected: req.Status, Field: func(inv Invoice) string {
			return string(inv.EffectiveStatus(now))
		}},
		query.AmountBucket[Invoice]{Selected: req.AmountBucket, Buckets: amountBuckets, Field: func(inv Invoice) float64 {
			return inv.Totals().GrandTotal
		}},
		query.DateRange[Invoice]{Preset: req.DatePreset, From: req.DateFrom, To: req.DateTo, Field: func(inv Invoice) time.Time {
			return inv.IssueDate
		}},
	)

	result := &ListResult{
		Invoices:     make([]InvoiceView, 0, len(filtered)),
		Total:        len(filtered),
		StatusCounts: make(map[Status]int, len(Statuses)),
	}
	for _, status := range Statuses {
		result.StatusCounts[status] = 0
	}
	for _, inv := range filtered {
		totals := inv.Totals()
		effective := inv.EffectiveStatus(now)
		result.Invoices = append(result.Invoices, InvoiceView{
			Invoice:         inv,
			EffectiveStatus: effective,
			Subtotal:        totals.Subtotal,
			GrandTotal:      totals.GrandTotal,
		})
		result.StatusCounts[inv.Status]++
		if effective == StatusOverdue {
			result.OverdueCount++
		}
		if inv.Status == StatusSent {
			result.Outstanding += totals.GrandTotal
		}
	}
	return result, nil
}

// Get returns one invoice.
func (s *Service) Get(ctx context.Context, id string) (*Invoice, error) {
	return s.repo.Get(ctx, id)
}

// Create records a new draft invoice with a generated document number.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Invoice, error) {
	if req.CurrencySymbol == "" {
		req.CurrencySymbol = s.defaultSymbol
	}
	if req.TaxRate == 0 {
		req.TaxRate = s.defaultTaxRate
	}
	if err := shared.ValidateStruct(req); err != nil {
		return nil, err
	}

	number, err := s.repo.GenerateNumber(ctx, req.IssueDate.Year())
	if err != nil {
		return nil, fmt.Errorf("generate invoice number: %w", err)
	}

	now := s.now()
	invoice := Invoice{
		ID:             "inv-" + uuid.NewString(),
		Number:         number,
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		IssueDate:      req.IssueDate,
		DueDate:        req.DueDate,
		Currency:       req.Currency,
		CurrencySymbol: req.CurrencySymbol,
		TaxRate:        req.TaxRate,
		LineItems:      mapLineItems(req.LineItems),
		Status:         StatusDraft,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	s.bumpCache(ctx)
	return &invoice, nil
}

// Update edits a draft invoice. Line item amounts are always recomputed from
// quantity and rate because they are derived, never stored.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Invoice, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return nil, err
	}
	invoice, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if invoice.Status != StatusDraft {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotEditable, invoice.Number, invoice.Status)
	}

	if req.ClientName != nil {
		invoice.ClientName = *req.ClientName
	}
	if req.ClientEmail != nil {
		invoice.ClientEmail = *req.ClientEmail
	}
	if req.DueDate != nil {
		invoice.DueDate = *req.DueDate
	}
	if req.TaxRate != nil {
		invoice.TaxRate = *req.TaxRate
	}
	if req.LineItems != nil {
		invoice.LineItems = mapLineItems(*req.LineItems)
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	invoice.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, *invoice); err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	s.bumpCache(ctx)
	return invoice, nil
}

// Send marks a draft invoice as sent. A missing client email surfaces as an
// error for the UI to present, never a silent no-op.
func (s *Service) Send(ctx context.Context, id string) (*Invoice, error) {
	invoice, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if invoice.ClientEmail == "" {
		return nil, ErrMissingEmail
	}
	return s.transition(ctx, invoice, StatusSent)
}

// Transition moves an invoice to a new stored status, enforcing the
// lifecycle. Overdue is rejected because it is derived, not stored.
func (s *Service) Transition(ctx context.Context, id string, to Status) (*Invoice, error) {
	invoice, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return s.transition(ctx, invoice, to)
}

func (s *Service) transition(ctx context.Context, invoice *Invoice, to Status) (*Invoice, error) {
	if !canTransition(invoice.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", shared.ErrInvalidStatus, invoice.Status, to)
	}
	invoice.Status = to
	invoice.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, *invoice); err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	s.bumpCache(ctx)
	return invoice, nil
}

func mapLineItems(reqs []LineItemRequest) []LineItem {
	items := make([]LineItem, len(reqs))
	for i, r := range reqs {
		items[i] = LineItem{Description: r.Description, Quantity: r.Quantity, UnitRate: r.UnitRate}
	}
	return items
}
