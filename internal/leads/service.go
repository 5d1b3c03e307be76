package leads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vantage-suite/vantage/internal/query"
	"github.com/vantage-suite/vantage/internal/shared"
)

// ErrTerminalStage is returned when moving a lead out of Closed Won.
var ErrTerminalStage = errors.New("closed won is terminal")

// valueBuckets are the deal-size filter ranges for the pipeline list.
var valueBuckets = []query.Bucket{
	{Label: "Under $5K", Min: 0, Max: 5000},
	{Label: "$5K-$15K", Min: 5000, Max: 15000},
	{Label: "$15K-$50K", Min: 15000, Max: 50000},
	{Label: "$50K+", Min: 50000, Unbounded: true},
}

// ListRequest carries the pipeline list filters.
type ListRequest struct {
	Search      string
	Priority    string
	Stage       string
	ValueBucket string
}

// CreateRequest adds a new lead at the top of the pipeline.
type CreateRequest struct {
	Title        string    `json:"title" validate:"required,max=120"`
	ContactName  string    `json:"contact_name" validate:"required,max=120"`
	Company      string    `json:"company" validate:"max=120"`
	Value        float64   `json:"value" validate:"gte=0"`
	Priority     Priority  `json:"priority" validate:"required,oneof=Hot Warm Cold"`
	Probability  int       `json:"probability" validate:"gte=0,lte=100"`
	FollowUpDate time.Time `json:"follow_up_date"`
}

// Column is one kanban column of the pipeline board.
type Column struct {
	Stage         Stage   `json:"stage"`
	Leads         []Lead  `json:"leads"`
	Count         int     `json:"count"`
	TotalValue    float64 `json:"total_value"`
	WeightedValue float64 `json:"weighted_value"`
}

// Board is the kanban view: one column per canonical stage, in pipeline
// order, empty columns included.
type Board struct {
	Columns       []Column `json:"columns"`
	TotalLeads    int      `json:"total_leads"`
	PipelineValue float64  `json:"pipeline_value"`
}

// Service implements the lead pipeline operations.
type Service struct {
	repo  Repository
	cache shared.CacheInvalidator
	now   func() time.Time
}

// NewService constructs a pipeline service.
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

// Board groups leads into kanban columns. Every stage is present even when
// empty, and each lead lands in exactly one column.
func (s *Service) Board(ctx context.Context, req ListRequest) (*Board, error) {
	filtered, err := s.list(ctx, req)
	if err != nil {
		return nil, err
	}

	groups := query.GroupBy(filtered, func(l Lead) Stage { return l.Stage }, Stages)

	board := &Board{Columns: make([]Column, 0, len(Stages))}
	for _, stage := range Stages {
		bucket := groups[stage]
		col := Column{
			Stage:         stage,
			Leads:         bucket,
			Count:         len(bucket),
			TotalValue:    query.Sum(bucket, func(l Lead) float64 { return l.Value }),
			WeightedValue: query.Sum(bucket, func(l Lead) float64 { return l.WeightedValue() }),
		}
		board.Columns = append(board.Columns, col)
		board.TotalLeads += col.Count
		// Pipeline value excludes already-won deals.
		if stage != StageClosedWon {
			board.PipelineValue += col.TotalValue
		}
	}
	return board, nil
}

// List returns leads matching the filters in their original order.
func (s *Service) List(ctx context.Context, req ListRequest) ([]Lead, error) {
	return s.list(ctx, req)
}

func (s *Service) list(ctx context.Context, req ListRequest) ([]Lead, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return query.Apply(all,
		query.TextSearch[Lead]{Query: req.Search, Fields: []func(Lead) string{
			func(l Lead) string { return l.Title },
			func(l Lead) string { return l.ContactName },
			func(l Lead) string { return l.Company },
		}},
		query.EnumEquals[Lead]{Selected: req.Priority, Field: func(l Lead) string { return string(l.Priority) }},
		query.EnumEquals[Lead]{Selected: req.Stage, Field: func(l Lead) string { return string(l.Stage) }},
		query.AmountBucket[Lead]{Selected: req.ValueBucket, Buckets: valueBuckets, Field: func(l Lead) float64 { return l.Value }},
	), nil
}

// Create adds a lead in the New Leads stage.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Lead, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return nil, err
	}
	lead := Lead{
		ID:           "lead-" + uuid.NewString(),
		Title:        req.Title,
		ContactName:  req.ContactName,
		Company:      req.Company,
		Value:        req.Value,
		Priority:     req.Priority,
		Stage:        StageNew,
		Probability:  req.Probability,
		CreatedDate:  s.now().Truncate(24 * time.Hour),
		FollowUpDate: req.FollowUpDate,
	}
	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}
	s.bumpCache(ctx)
	return &lead, nil
}

// Move places a lead in another pipeline stage. Closed Won is terminal and
// the target stage must be canonical; a lead is never in two columns.
func (s *Service) Move(ctx context.Context, id string, to Stage) (*Lead, error) {
	if !validStage(to) {
		return nil, fmt.Errorf("%w: unknown stage %q", shared.ErrInvalidStatus, to)
	}
	lead, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}
	if lead.Stage == StageClosedWon && to != StageClosedWon {
		return nil, ErrTerminalStage
	}
	lead.Stage = to
	if to == StageClosedWon {
		lead.Probability = 100
	}
	if err := s.repo.Update(ctx, *lead); err != nil {
		return nil, fmt.Errorf("update lead: %w", err)
	}
	s.bumpCache(ctx)
	return lead, nil
}
