package admin

import (
	"context"
	"fmt"

	"github.com/vantage-suite/vantage/internal/query"
	"github.com/vantage-suite/vantage/internal/shared"
)

// ListRequest carries the tenant list filters.
type ListRequest struct {
	Search string
	Plan   string
	Status string
}

// PlatformSummary is the owner-console rollup over every tenant.
type PlatformSummary struct {
	TenantCount  int            `json:"tenant_count"`
	StatusCounts map[Status]int `json:"status_counts"`
	PlanCounts   map[Plan]int   `json:"plan_counts"`
	TotalMRR     float64        `json:"total_mrr"`
	ModuleUsage  map[string]int `json:"module_usage"`
}

// Service implements the platform owner console operations.
type Service struct {
	repo Repository
}

// NewService constructs an admin service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns tenants matching the filters in their original order.
func (s *Service) List(ctx context.Context, req ListRequest) ([]Tenant, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	return query.Apply(all,
		query.TextSearch[Tenant]{Query: req.Search, Fields: []func(Tenant) string{
			func(t Tenant) string { return t.Name },
			func(t Tenant) string { return t.OwnerEmail },
		}},
		query.EnumEquals[Tenant]{Selected: req.Plan, Field: func(t Tenant) string { return string(t.Plan) }},
		query.EnumEquals[Tenant]{Selected: req.Status, Field: func(t Tenant) string { return string(t.Status) }},
	), nil
}

// Summarize rolls up the platform view. Every canonical status and plan is
// present in the counts even when zero.
func (s *Service) Summarize(ctx context.Context) (*PlatformSummary, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	summary := &PlatformSummary{
		TenantCount:  len(all),
		StatusCounts: make(map[Status]int, len(Statuses)),
		PlanCounts:   make(map[Plan]int, len(Plans)),
		ModuleUsage:  make(map[string]int),
	}
	for _, status := range Statuses {
		summary.StatusCounts[status] = 0
	}
	for _, plan := range Plans {
		summary.PlanCounts[plan] = 0
	}
	for _, t := range all {
		summary.StatusCounts[t.Status]++
		summary.PlanCounts[t.Plan]++
		summary.TotalMRR += t.MRR
		for _, module := range t.Modules {
			summary.ModuleUsage[module]++
		}
	}
	return summary, nil
}

// Suspend takes a tenant off the platform until reactivated.
func (s *Service) Suspend(ctx context.Context, id string) (*Tenant, error) {
	return s.setStatus(ctx, id, StatusSuspended)
}

// Activate restores a suspended or trial tenant to active.
func (s *Service) Activate(ctx context.Context, id string) (*Tenant, error) {
	return s.setStatus(ctx, id, StatusActive)
}

func (s *Service) setStatus(ctx context.Context, id string, to Status) (*Tenant, error) {
	tenant, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	if tenant.Status == to {
		return nil, fmt.Errorf("%w: tenant already %s", shared.ErrInvalidStatus, to)
	}
	tenant.Status = to
	if err := s.repo.Update(ctx, *tenant); err != nil {
		return nil, fmt.Errorf("update tenant: %w", err)
	}
	return tenant, nil
}
