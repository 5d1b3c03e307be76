package tax

import (
	"context"
	"sync"
	"time"

	"github.com/vantage-suite/vantage/internal/shared"
)

// Repository is the persistence boundary for tax compliance records.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id string) (*Record, error)
	Update(ctx context.Context, record Record) error
}

type memoryRepository struct {
	mu      sync.RWMutex
	records []Record
}

// NewMemoryRepository returns a repository preloaded with seed records.
func NewMemoryRepository() Repository {
	return &memoryRepository{records: seedRecords()}
}

func (r *memoryRepository) List(ctx context.Context) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *memoryRepository) Get(ctx context.Context, id string) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.ID == id {
			cp := rec
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryRepository) Update(ctx context.Context, record Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == record.ID {
			r.records[i] = record
			return nil
		}
	}
	return shared.ErrNotFound
}

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedRecords() []Record {
	february := seedDate(2025, time.March, 11)
	return []Record{
		{ID: "tax-3001", Period: "Jan 2025", Type: TypeMonthly, Status: StatusPaid, DueDate: seedDate(2025, time.February, 11), Amount: 4820, FiledAt: &february, PaidAt: &february},
		{ID: "tax-3002", Period: "Feb 2025", Type: TypeMonthly, Status: StatusPending, DueDate: seedDate(2025, time.March, 11), Amount: 5330},
		{ID: "tax-3003", Period: "Mar 2025", Type: TypeMonthly, Status: StatusPending, DueDate: seedDate(2025, time.April, 11), Amount: 5110},
		{ID: "tax-3004", Period: "Q4 FY24-25", Type: TypeQuarterly, Status: StatusFiled, DueDate: seedDate(2025, time.April, 18), Amount: 15260, FiledAt: &february},
		{ID: "tax-3005", Period: "FY 2024-25", Type: TypeAnnual, Status: StatusPending, DueDate: seedDate(2025, time.July, 31), Amount: 61040},
	}
}
