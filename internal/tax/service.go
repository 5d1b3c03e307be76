package tax

import (
	"context"
	"fmt"
	"time"

	"github.com/vantage-suite/vantage/internal/query"
	"github.com/vantage-suite/vantage/internal/shared"
)

// ListRequest carries the compliance screen's filters. Status understands
// the derived overdue value.
type ListRequest struct {
	Search string
	Type   string
	Status string
}

// RecordView decorates a record with its derived status.
type RecordView struct {
	Record
	EffectiveStatus Status `json:"effective_status"`
}

// Summary is the compliance dashboard rollup.
type Summary struct {
	PendingCount   int      `json:"pending_count"`
	FiledCount     int      `json:"filed_count"`
	PaidCount      int      `json:"paid_count"`
	OverdueCount   int      `json:"overdue_count"`
	TotalLiability float64  `json:"total_liability"`
	UpcomingIDs    []string `json:"upcoming_ids"`
}

// Service implements tax compliance operations.
type Service struct {
	repo  Repository
	cache shared.CacheInvalidator
	now   func() time.Time
}

// NewService constructs a compliance service.
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
	_ = s.cache.Invalidate(ctx)
}

// List returns records matching the filters, with derived statuses.
func (s *Service) List(ctx context.Context, req ListRequest) ([]RecordView, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tax records: %w", err)
	}
	now := s.now()

	filtered := query.Apply(records,
		query.TextSearch[Record]{Query: req.Search, Fields: []func(Record) string{
			func(r Record) string { return r.Period },
		}},
		query.EnumEquals[Record]{Selected: req.Type, Field: func(r Record) string { return string(r.Type) }},
		query.EnumEquals[Record]{Selected: req.Status, Field: func(r Record) string {
			return string(r.EffectiveStatus(now))
		}},
	)

	views := make([]RecordView, len(filtered))
	for i, rec := range filtered {
		views[i] = RecordView{Record: rec, EffectiveStatus: rec.EffectiveStatus(now)}
	}
	return views, nil
}

// Summarize rolls up filing state across all records. Liability counts only
// amounts not yet paid; upcoming lists pending records due within 30 days.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tax records: %w", err)
	}
	now := s.now()
	horizon := now.Add(30 * 24 * time.Hour)

	summary := &Summary{UpcomingIDs: []string{}}
	for _, rec := range records {
		switch rec.EffectiveStatus(now) {
		case StatusPending:
			summary.PendingCount++
		case StatusFiled:
			summary.FiledCount++
		case StatusPaid:
			summary.PaidCount++
		case StatusOverdue:
			summary.OverdueCount++
		}
		if rec.Status != StatusPaid {
			summary.TotalLiability += rec.Amount
		}
		if rec.Status == StatusPending && !rec.DueDate.Before(now) && rec.DueDate.Before(horizon) {
			summary.UpcomingIDs = append(summary.UpcomingIDs, rec.ID)
		}
	}
	return summary, nil
}

// MarkFiled records a filing. Only pending (including overdue-pending)
// records can be filed.
func (s *Service) MarkFiled(ctx context.Context, id string) (*Record, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tax record: %w", err)
	}
	if rec.Status != StatusPending {
		return nil, fmt.Errorf("%w: %s -> %s", shared.ErrInvalidStatus, rec.Status, StatusFiled)
	}
	now := s.now()
	rec.Status = StatusFiled
	rec.FiledAt = &now
	if err := s.repo.Update(ctx, *rec); err != nil {
		return nil, fmt.Errorf("update tax record: %w", err)
	}
	s.bumpCache(ctx)
	return rec, nil
}

// MarkPaid records payment of a filed return.
func (s *Service) MarkPaid(ctx context.Context, id string) (*Record, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tax record: %w", err)
	}
	if rec.Status != StatusFiled {
		return nil, fmt.Errorf("%w: %s -> %s", shared.ErrInvalidStatus, rec.Status, StatusPaid)
	}
	now := s.now()
	rec.Status = StatusPaid
	rec.PaidAt = &now
	if err := s.repo.Update(ctx, *rec); err != nil {
		return nil, fmt.Errorf("update tax record: %w", err)
	}
	s.bumpCache(ctx)
	return rec, nil
}
