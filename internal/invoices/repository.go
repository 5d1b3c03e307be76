package invoices

import (
	"context"
	"fmt"
	"sync"

	"github.com/vantage-suite/vantage/internal/shared"
)

// Repository is the persistence boundary for invoices.
type Repository interface {
	List(ctx context.Context) ([]Invoice, error)
	Get(ctx context.Context, id string) (*Invoice, error)
	Create(ctx context.Context, invoice Invoice) error
	Update(ctx context.Context, invoice Invoice) error
	GenerateNumber(ctx context.Context, year int) (string, error)
}

type memoryRepository struct {
	mu       sync.RWMutex
	invoices []Invoice
	sequence int
}

// NewMemoryRepository returns a repository preloaded with seed invoices.
func NewMemoryRepository() Repository {
	seeded := seedInvoices()
	return &memoryRepository{invoices: seeded, sequence: len(seeded)}
}

func (r *memoryRepository) List(ctx context.Context) ([]Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Invoice, len(r.invoices))
	copy(out, r.invoices)
	return out, nil
}

func (r *memoryRepository) Get(ctx context.Context, id string) (*Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inv := range r.invoices {
		if inv.ID == id {
			cp := inv
			cp.LineItems = append([]LineItem{}, inv.LineItems...)
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryRepository) Create(ctx context.Context, invoice Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices = append(r.invoices, invoice)
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, invoice Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.invoices {
		if r.invoices[i].ID == invoice.ID {
			r.invoices[i] = invoice
			return nil
		}
	}
	return shared.ErrNotFound
}

func (r *memoryRepository) GenerateNumber(ctx context.Context, year int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sequence++
	return fmt.Sprintf("INV-%d-%04d", year, r.sequence), nil
}
