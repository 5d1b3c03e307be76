package appointments

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vantage-suite/vantage/internal/query"
	"github.com/vantage-suite/vantage/internal/shared"
)

// ListRequest carries the schedule list filters.
type ListRequest struct {
	Search      string
	MeetingType string
	Status      string
	Priority    string
	DatePreset  string
	From        time.Time
	To          time.Time
	Upcoming    bool
}

// CreateRequest books a new appointment.
type CreateRequest struct {
	Title           string      `json:"title" validate:"required,max=120"`
	ClientName      string      `json:"client_name" validate:"required,max=120"`
	Date            time.Time   `json:"date" validate:"required"`
	Time            string      `json:"time" validate:"required"`
	DurationMinutes int         `json:"duration_minutes" validate:"gt=0"`
	MeetingType     MeetingType `json:"meeting_type" validate:"required,oneof=In-Person 'Video Call' 'Phone Call'"`
	Priority        Priority    `json:"priority" validate:"required,oneof=High Medium Low"`
	LeadRef         string      `json:"lead_ref"`
	Notes           string      `json:"notes"`
}

// RescheduleRequest moves an appointment to a new slot.
type RescheduleRequest struct {
	Date time.Time `json:"date" validate:"required"`
	Time string    `json:"time" validate:"required"`
}

// Day is one date of the grouped schedule view, appointments sorted by
// start time and then priority.
type Day struct {
	Date         time.Time     `json:"date"`
	Appointments []Appointment `json:"appointments"`
}

// Schedule is the day-grouped view with status rollups over the filtered
// set. Every canonical status appears in the counts even when zero.
type Schedule struct {
	Days         []Day          `json:"days"`
	Total        int            `json:"total"`
	StatusCounts map[Status]int `json:"status_counts"`
}

// Service implements the appointment operations.
type Service struct {
	repo  Repository
	cache shared.CacheInvalidator
	now   func() time.Time
}

// NewService constructs an appointments service.
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

// List returns appointments matching the filters in their original order.
func (s *Service) List(ctx context.Context, req ListRequest) ([]Appointment, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	today := s.now().Truncate(24 * time.Hour)
	return query.Apply(all,
		query.TextSearch[Appointment]{Query: req.Search, Fields: []func(Appointment) string{
			func(a Appointment) string { return a.Title },
			func(a Appointment) string { return a.ClientName },
		}},
		query.EnumEquals[Appointment]{Selected: req.MeetingType, Field: func(a Appointment) string { return string(a.MeetingType) }},
		query.EnumEquals[Appointment]{Selected: req.Status, Field: func(a Appointment) string { return string(a.Status) }},
		query.EnumEquals[Appointment]{Selected: req.Priority, Field: func(a Appointment) string { return string(a.Priority) }},
		query.DateRange[Appointment]{Preset: req.DatePreset, From: req.From, To: req.To, Field: func(a Appointment) time.Time { return a.Date }},
		query.Toggle[Appointment]{Enabled: req.Upcoming, Predicate: func(a Appointment) bool {
			return !a.Date.Before(today) && a.Status != StatusCancelled && a.Status != StatusCompleted
		}},
	), nil
}

// Schedule groups the filtered appointments by calendar date, days
// ascending, each day ordered by start time.
func (s *Service) Schedule(ctx context.Context, req ListRequest) (*Schedule, error) {
	filtered, err := s.List(ctx, req)
	if err != nil {
		return nil, err
	}

	groups := query.GroupBy(filtered, func(a Appointment) time.Time { return a.Date }, nil)
	dates := make([]time.Time, 0, len(groups))
	for date := range groups {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	counts := make(map[Status]int, len(Statuses))
	for _, status := range Statuses {
		counts[status] = 0
	}
	for _, appt := range filtered {
		counts[appt.Status]++
	}

	schedule := &Schedule{Days: make([]Day, 0, len(dates)), Total: len(filtered), StatusCounts: counts}
	for _, date := range dates {
		day := Day{Date: date, Appointments: groups[date]}
		sort.SliceStable(day.Appointments, func(i, j int) bool {
			return day.Appointments[i].Time < day.Appointments[j].Time
		})
		schedule.Days = append(schedule.Days, day)
	}
	return schedule, nil
}

// Get returns one appointment.
func (s *Service) Get(ctx context.Context, id string) (*Appointment, error) {
	appt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

// Create books a new appointment in the Scheduled status.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Appointment, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return nil, err
	}
	appt := Appointment{
		ID:              "appt-" + uuid.NewString(),
		Title:           req.Title,
		ClientName:      req.ClientName,
		Date:            req.Date.Truncate(24 * time.Hour),
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		MeetingType:     req.MeetingType,
		Status:          StatusScheduled,
		Priority:        req.Priority,
		LeadRef:         req.LeadRef,
		Notes:           req.Notes,
	}
	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	s.bumpCache(ctx)
	return &appt, nil
}

// UpdateStatus sets a new scheduling status. Any status may move to any
// other, but the target must be canonical.
func (s *Service) UpdateStatus(ctx context.Context, id string, to Status) (*Appointment, error) {
	if !validStatus(to) {
		return nil, fmt.Errorf("%w: unknown status %q", shared.ErrInvalidStatus, to)
	}
	appt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	appt.Status = to
	if err := s.repo.Update(ctx, *appt); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	s.bumpCache(ctx)
	return appt, nil
}

// Reschedule moves an appointment to a new date and time and flags it as
// Rescheduled.
func (s *Service) Reschedule(ctx context.Context, id string, req RescheduleRequest) (*Appointment, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return nil, err
	}
	appt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	appt.Date = req.Date.Truncate(24 * time.Hour)
	appt.Time = req.Time
	appt.Status = StatusRescheduled
	if err := s.repo.Update(ctx, *appt); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	s.bumpCache(ctx)
	return appt, nil
}
