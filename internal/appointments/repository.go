package appointments

import (
	"context"
	"sync"
	"time"

	"github.com/vantage-suite/vantage/internal/shared"
)

// Repository is the persistence boundary for appointments.
type Repository interface {
	List(ctx context.Context) ([]Appointment, error)
	Get(ctx context.Context, id string) (*Appointment, error)
	Create(ctx context.Context, appt Appointment) error
	Update(ctx context.Context, appt Appointment) error
}

type memoryRepository struct {
	mu    sync.RWMutex
	appts []Appointment
}

// NewMemoryRepository returns a repository preloaded with seed appointments.
func NewMemoryRepository() Repository {
	return &memoryRepository{appts: seedAppointments()}
}

func (r *memoryRepository) List(ctx context.Context) ([]Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Appointment, len(r.appts))
	copy(out, r.appts)
	return out, nil
}

func (r *memoryRepository) Get(ctx context.Context, id string) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, appt := range r.appts {
		if appt.ID == id {
			cp := appt
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryRepository) Create(ctx context.Context, appt Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appts = append(r.appts, appt)
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, appt Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appts {
		if r.appts[i].ID == appt.ID {
			r.appts[i] = appt
			return nil
		}
	}
	return shared.ErrNotFound
}

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedAppointments() []Appointment {
	return []Appointment{
		{ID: "appt-5001", Title: "Kickoff call - brand identity", ClientName: "Meridian Textiles", Date: seedDate(2025, time.March, 17), Time: "10:00", DurationMinutes: 60, MeetingType: TypeVideoCall, Status: StatusConfirmed, Priority: PriorityHigh, LeadRef: "lead-4012"},
		{ID: "appt-5002", Title: "Proposal walkthrough", ClientName: "Crestpoint Legal", Date: seedDate(2025, time.March, 17), Time: "14:30", DurationMinutes: 45, MeetingType: TypeInPerson, Status: StatusScheduled, Priority: PriorityHigh, LeadRef: "lead-4014"},
		{ID: "appt-5003", Title: "Monthly retainer review", ClientName: "Banyan Foods", Date: seedDate(2025, time.March, 18), Time: "11:00", DurationMinutes: 30, MeetingType: TypePhoneCall, Status: StatusScheduled, Priority: PriorityMedium},
		{ID: "appt-5004", Title: "Analytics migration demo", ClientName: "Oakline Realty", Date: seedDate(2025, time.March, 19), Time: "16:00", DurationMinutes: 60, MeetingType: TypeVideoCall, Status: StatusRescheduled, Priority: PriorityMedium, LeadRef: "lead-4010", Notes: "Moved from 14 Mar at client request."},
		{ID: "appt-5005", Title: "Design review - event microsite", ClientName: "Halcyon Fitness", Date: seedDate(2025, time.March, 14), Time: "09:30", DurationMinutes: 45, MeetingType: TypeVideoCall, Status: StatusCompleted, Priority: PriorityLow, LeadRef: "lead-4004"},
		{ID: "appt-5006", Title: "Budget discussion", ClientName: "Sana Iyer", Date: seedDate(2025, time.March, 13), Time: "15:00", DurationMinutes: 30, MeetingType: TypePhoneCall, Status: StatusCancelled, Priority: PriorityLow},
	}
}
