package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vantage-suite/vantage/internal/query"
	"github.com/vantage-suite/vantage/internal/shared"
)

// Service implements the day-book operations.
type Service struct {
	repo  Repository
	cache shared.CacheInvalidator
	now   func() time.Time
}

// NewService constructs a day-book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SetCacheInvalidator registers a cache to bump after successful writes.
func (s *Service) SetCacheInvalidator(cache shared.CacheInvalidator) {
	s.cache = cache
}

func (s *Service) bumpCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	// A failed bump only delays freshness until TTL; the write itself stands.
	_ = s.cache.Invalidate(ctx)
}

// List returns active entries matching the request filters, in their original
// order, together with the aggregates the screen shows.
func (s *Service) List(ctx context.Context, req ListRequest) (*ListResult, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	filtered := query.Apply(entries,
		query.Toggle[Entry]{Enabled: true, Predicate: func(e Entry) bool { return !e.Archived }},
		query.TextSearch[Entry]{Query: req.Search, Fields: []func(Entry) string{
			func(e Entry) string { return e.Description },
			func(e Entry) string { return e.Category },
		}},
		query.EnumEquals[Entry]{Selected: req.Category, Field: func(e Entry) string { return e.Category }},
		query.EnumEquals[Entry]{Selected: req.Direction, Field: func(e Entry) string { return string(e.Direction) }},
		query.EnumEquals[Entry]{Selected: req.Status, Field: func(e Entry) string { return string(e.Status) }},
		query.DateRange[Entry]{Preset: req.DatePreset, From: req.DateFrom, To: req.DateTo, Field: func(e Entry) time.Time { return e.Date }},
		query.Toggle[Entry]{Enabled: req.PendingOnly, Predicate: func(e Entry) bool { return e.Status == StatusPending }},
	)

	byDirection := query.SumBy(filtered,
		func(e Entry) Direction { return e.Direction },
		func(e Entry) float64 { return e.Amount })

	result := &ListResult{
		Entries:      filtered,
		Total:        len(filtered),
		IncomeTotal:  byDirection[DirectionIncome],
		ExpenseTotal: byDirection[DirectionExpense],
		CategoryTotals: query.SumBy(filtered,
			func(e Entry) string { return e.Category },
			func(e Entry) float64 { return e.Amount }),
	}
	if req.PerPage > 0 {
		p := shared.NewPagination(req.Page, req.PerPage, len(filtered))
		result.Entries = shared.Slice(filtered, p)
	}
	return result, nil
}

// DailySummary computes the income, expense, and net totals for one day.
func (s *Service) DailySummary(ctx context.Context, date time.Time) (*Summary, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	day := date.Truncate(24 * time.Hour)
	filtered := query.Apply(entries,
		query.Toggle[Entry]{Enabled: true, Predicate: func(e Entry) bool { return !e.Archived }},
		query.DateRange[Entry]{From: day, To: day, Field: func(e Entry) time.Time { return e.Date }},
	)

	byDirection := query.SumBy(filtered,
		func(e Entry) Direction { return e.Direction },
		func(e Entry) float64 { return e.Amount })

	summary := &Summary{
		Date:          day,
		TotalIncome:   byDirection[DirectionIncome],
		TotalExpenses: byDirection[DirectionExpense],
	}
	summary.NetAmount = summary.TotalIncome - summary.TotalExpenses
	switch {
	case summary.NetAmount > 0:
		summary.Outcome = "Profit"
	case summary.NetAmount < 0:
		summary.Outcome = "Loss"
	default:
		summary.Outcome = "Break-even"
	}
	return summary, nil
}

// Append records a new entry.
func (s *Service) Append(ctx context.Context, req AppendRequest) (*Entry, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = StatusCompleted
	}
	entry := Entry{
		ID:          "led-" + uuid.NewString(),
		Date:        req.Date.Truncate(24 * time.Hour),
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		Direction:   req.Direction,
		Status:      status,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("append entry: %w", err)
	}
	s.bumpCache(ctx)
	return &entry, nil
}

// Reverse corrects an entry by appending a compensating record in the
// opposite direction. The original entry is left untouched.
func (s *Service) Reverse(ctx context.Context, id string) (*Entry, error) {
	original, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	direction := DirectionExpense
	if original.Direction == DirectionExpense {
		direction = DirectionIncome
	}
	reversal := Entry{
		ID:          "led-" + uuid.NewString(),
		Date:        s.now().Truncate(24 * time.Hour),
		Description: "Reversal of " + original.Description,
		Category:    original.Category,
		Amount:      original.Amount,
		Direction:   direction,
		Status:      StatusCompleted,
		Reverses:    original.ID,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Append(ctx, reversal); err != nil {
		return nil, fmt.Errorf("append reversal: %w", err)
	}
	s.bumpCache(ctx)
	return &reversal, nil
}

// Archive hides an entry from listings without deleting it.
func (s *Service) Archive(ctx context.Context, id string) error {
	if err := s.repo.SetArchived(ctx, id, true); err != nil {
		return fmt.Errorf("archive entry: %w", err)
	}
	s.bumpCache(ctx)
	return nil
}
