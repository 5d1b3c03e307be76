package admin

import (
	"context"
	"sync"
	"time"

	"github.com/vantage-suite/vantage/internal/shared"
)

// Repository is the persistence boundary for tenants.
type Repository interface {
	List(ctx context.Context) ([]Tenant, error)
	Get(ctx context.Context, id string) (*Tenant, error)
	Update(ctx context.Context, t Tenant) error
}

type memoryRepository struct {
	mu      sync.RWMutex
	tenants []Tenant
}

// NewMemoryRepository returns a repository preloaded with seed tenants.
func NewMemoryRepository() Repository {
	return &memoryRepository{tenants: seedTenants()}
}

func (r *memoryRepository) List(ctx context.Context) ([]Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tenant, len(r.tenants))
	copy(out, r.tenants)
	return out, nil
}

func (r *memoryRepository) Get(ctx context.Context, id string) (*Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tenants {
		if t.ID == id {
			cp := t
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryRepository) Update(ctx context.Context, t Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tenants {
		if r.tenants[i].ID == t.ID {
			r.tenants[i] = t
			return nil
		}
	}
	return shared.ErrNotFound
}

func joined(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedTenants() []Tenant {
	return []Tenant{
		{ID: "ten-7001", Name: "Meridian Textiles", OwnerEmail: "accounts@meridiantextiles.example", Plan: PlanGrowth, Status: StatusActive, JoinedDate: joined(2024, time.June, 3), MRR: 149, Modules: []string{"accounting", "sales"}},
		{ID: "ten-7002", Name: "Banyan Foods", OwnerEmail: "owner@banyanfoods.example", Plan: PlanStarter, Status: StatusActive, JoinedDate: joined(2024, time.September, 12), MRR: 49, Modules: []string{"accounting"}},
		{ID: "ten-7003", Name: "Oakline Realty", OwnerEmail: "finance@oakline.example", Plan: PlanEnterprise, Status: StatusActive, JoinedDate: joined(2023, time.November, 20), MRR: 399, Modules: []string{"accounting", "sales", "reports"}},
		{ID: "ten-7004", Name: "Halcyon Fitness", OwnerEmail: "hello@halcyonfit.example", Plan: PlanStarter, Status: StatusTrial, JoinedDate: joined(2025, time.March, 1), MRR: 0, Modules: []string{"sales"}},
		{ID: "ten-7005", Name: "Crestpoint Legal", OwnerEmail: "admin@crestpoint.example", Plan: PlanGrowth, Status: StatusTrial, JoinedDate: joined(2025, time.February, 24), MRR: 0, Modules: []string{"accounting", "sales"}},
		{ID: "ten-7006", Name: "Juniper Interiors", OwnerEmail: "billing@juniperinteriors.example", Plan: PlanStarter, Status: StatusSuspended, JoinedDate: joined(2024, time.April, 8), MRR: 49, Modules: []string{"accounting"}},
	}
}
