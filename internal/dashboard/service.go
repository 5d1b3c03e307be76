package dashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/vantage-suite/vantage/internal/appointments"
	"github.com/vantage-suite/vantage/internal/invoices"
	"github.com/vantage-suite/vantage/internal/leads"
	"github.com/vantage-suite/vantage/internal/ledger"
	"github.com/vantage-suite/vantage/internal/tax"
)

// Summary is the landing-screen KPI block, computed across every domain
// repository.
type Summary struct {
	Revenue              float64   `json:"revenue"`
	Expenses             float64   `json:"expenses"`
	Net                  float64   `json:"net"`
	Outcome              string    `json:"outcome"`
	Outstanding          float64   `json:"outstanding"`
	OverdueInvoices      int       `json:"overdue_invoices"`
	PipelineValue        float64   `json:"pipeline_value"`
	OpenLeads            int       `json:"open_leads"`
	UpcomingAppointments int       `json:"upcoming_appointments"`
	TaxLiability         float64   `json:"tax_liability"`
	GeneratedAt          time.Time `json:"generated_at"`
}

// Service assembles the dashboard from the domain services, with a versioned
// cache in front of the fan-out.
type Service struct {
	ledger       *ledger.Service
	invoices     *invoices.Service
	tax          *tax.Service
	leads        *leads.Service
	appointments *appointments.Service
	cache        *Cache
	group        singleflight.Group
	now          func() time.Time
}

// NewService constructs the dashboard service. cache may be nil.
func NewService(led *ledger.Service, inv *invoices.Service, tx *tax.Service, ld *leads.Service, appt *appointments.Service, cache *Cache) *Service {
	return &Service{
		ledger:       led,
		invoices:     inv,
		tax:          tx,
		leads:        ld,
		appointments: appt,
		cache:        cache,
		now:          time.Now,
	}
}

// Summary returns the KPI block, served from cache when fresh. Concurrent
// cache misses for the same key collapse into one recompute.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	key, err := s.cache.BuildKey(ctx, "dashboard", "summary")
	if err != nil {
		return nil, fmt.Errorf("build cache key: %w", err)
	}
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		var summary Summary
		err := s.cache.FetchJSON(ctx, key, &summary, func(ctx context.Context) (interface{}, error) {
			return s.compute(ctx)
		})
		if err != nil {
			return nil, err
		}
		return &summary, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Summary), nil
}

// Invalidate bumps the cache version after a record mutation elsewhere.
func (s *Service) Invalidate(ctx context.Context) error {
	return s.cache.Bump(ctx)
}

func (s *Service) compute(ctx context.Context) (*Summary, error) {
	summary := &Summary{GeneratedAt: s.now().UTC()}

	book, err := s.ledger.List(ctx, ledger.ListRequest{})
	if err != nil {
		return nil, fmt.Errorf("ledger rollup: %w", err)
	}
	summary.Revenue = book.IncomeTotal
	summary.Expenses = book.ExpenseTotal
	summary.Net = book.IncomeTotal - book.ExpenseTotal
	switch {
	case summary.Net > 0:
		summary.Outcome = "Profit"
	case summary.Net < 0:
		summary.Outcome = "Loss"
	default:
		summary.Outcome = "Break-even"
	}

	receivables, err := s.invoices.List(ctx, invoices.ListRequest{})
	if err != nil {
		return nil, fmt.Errorf("invoice rollup: %w", err)
	}
	summary.Outstanding = receivables.Outstanding
	summary.OverdueInvoices = receivables.OverdueCount

	board, err := s.leads.Board(ctx, leads.ListRequest{})
	if err != nil {
		return nil, fmt.Errorf("pipeline rollup: %w", err)
	}
	summary.PipelineValue = board.PipelineValue
	summary.OpenLeads = board.TotalLeads
	for _, col := range board.Columns {
		if col.Stage == leads.StageClosedWon {
			summary.OpenLeads -= col.Count
		}
	}

	upcoming, err := s.appointments.List(ctx, appointments.ListRequest{Upcoming: true})
	if err != nil {
		return nil, fmt.Errorf("appointments rollup: %w", err)
	}
	summary.UpcomingAppointments = len(upcoming)

	compliance, err := s.tax.Summarize(ctx)
	if err != nil {
		return nil, fmt.Errorf("tax rollup: %w", err)
	}
	summary.TaxLiability = compliance.TotalLiability

	return summary, nil
}
