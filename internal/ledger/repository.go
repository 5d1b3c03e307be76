package ledger

import (
	"context"
	"sync"

	"github.com/vantage-suite/vantage/internal/shared"
)

// Repository is the persistence boundary for day-book entries. The suite
// ships with a seeded in-memory implementation; a real backing store slots in
// behind the same interface.
type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	Get(ctx context.Context, id string) (*Entry, error)
	Append(ctx context.Context, entry Entry) error
	SetArchived(ctx context.Context, id string, archived bool) error
}

type memoryRepository struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryRepository returns a repository preloaded with seed data.
func NewMemoryRepository() Repository {
	return &memoryRepository{entries: seedEntries()}
}

func (r *memoryRepository) List(ctx context.Context) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *memoryRepository) Get(ctx context.Context, id string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entry := range r.entries {
		if entry.ID == id {
			e := entry
			return &e, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryRepository) Append(ctx context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memoryRepository) SetArchived(ctx context.Context, id string, archived bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries[i].Archived = archived
			return nil
		}
	}
	return shared.ErrNotFound
}
