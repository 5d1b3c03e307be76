package leads

import (
	"context"
	"sync"

	"github.com/vantage-suite/vantage/internal/shared"
)

// Repository is the persistence boundary for pipeline leads.
type Repository interface {
	List(ctx context.Context) ([]Lead, error)
	Get(ctx context.Context, id string) (*Lead, error)
	Create(ctx context.Context, lead Lead) error
	Update(ctx context.Context, lead Lead) error
}

type memoryRepository struct {
	mu    sync.RWMutex
	leads []Lead
}

// NewMemoryRepository returns a repository preloaded with seed leads.
func NewMemoryRepository() Repository {
	return &memoryRepository{leads: seedLeads()}
}

func (r *memoryRepository) List(ctx context.Context) ([]Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Lead, len(r.leads))
	copy(out, r.leads)
	return out, nil
}

func (r *memoryRepository) Get(ctx context.Context, id string) (*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, lead := range r.leads {
		if lead.ID == id {
			cp := lead
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryRepository) Create(ctx context.Context, lead Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append(r.leads, lead)
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, lead Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.leads {
		if r.leads[i].ID == lead.ID {
			r.leads[i] = lead
			return nil
		}
	}
	return shared.ErrNotFound
}
