package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantage-suite/vantage/internal/query"
	"github.com/vantage-suite/vantage/internal/shared"
)

var fixedNow = time.Date(2025, time.March, 17, 8, 0, 0, 0, time.UTC)

func newTestService() *Service {
	svc := NewService(NewMemoryRepository())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestScheduleGroupsByDay(t *testing.T) {
	svc := newTestService()

	schedule, err := svc.Schedule(context.Background(), ListRequest{DatePreset: query.PresetAll})
	require.NoError(t, err)

	assert.Equal(t, 6, schedule.Total)
	require.Len(t, schedule.Days, 5)

	// Days ascend and each day's appointments order by start time.
	for i := 1; i < len(schedule.Days); i++ {
		assert.True(t, schedule.Days[i-1].Date.Before(schedule.Days[i].Date))
	}
	march17 := schedule.Days[2]
	require.Equal(t, time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC), march17.Date)
	require.Len(t, march17.Appointments, 2)
	assert.Equal(t, "appt-5001", march17.Appointments[0].ID)
	assert.Equal(t, "appt-5002", march17.Appointments[1].ID)
}

func TestScheduleStatusCountsIncludeEmpty(t *testing.T) {
	svc := newTestService()

	schedule, err := svc.Schedule(context.Background(), ListRequest{})
	require.NoError(t, err)

	require.Len(t, schedule.StatusCounts, len(Statuses))
	assert.Equal(t, 2, schedule.StatusCounts[StatusScheduled])
	assert.Equal(t, 1, schedule.StatusCounts[StatusConfirmed])
	assert.Equal(t, 0, schedule.StatusCounts[StatusInProgress])
}

func TestListUpcomingExcludesPastAndClosed(t *testing.T) {
	svc := newTestService()

	appts, err := svc.List(context.Background(), ListRequest{Upcoming: true})
	require.NoError(t, err)

	require.Len(t, appts, 4)
	for _, appt := range appts {
		assert.False(t, appt.Date.Before(fixedNow.Truncate(24*time.Hour)))
		assert.NotEqual(t, StatusCancelled, appt.Status)
		assert.NotEqual(t, StatusCompleted, appt.Status)
	}
}

func TestListFilters(t *testing.T) {
	svc := newTestService()

	byType, err := svc.List(context.Background(), ListRequest{MeetingType: string(TypePhoneCall)})
	require.NoError(t, err)
	require.Len(t, byType, 2)

	// "All" sentinel leaves every record in place.
	all, err := svc.List(context.Background(), ListRequest{MeetingType: query.All, Status: query.All, Priority: query.All})
	require.NoError(t, err)
	assert.Len(t, all, 6)

	bySearch, err := svc.List(context.Background(), ListRequest{Search: "  PROPOSAL "})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "appt-5002", bySearch[0].ID)

	inRange, err := svc.List(context.Background(), ListRequest{
		From: time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, inRange, 3)
}

func TestUpdateStatusFreeForm(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Completed back to Confirmed is allowed; there is no enforced ordering.
	appt, err := svc.UpdateStatus(ctx, "appt-5005", StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, appt.Status)

	_, err = svc.UpdateStatus(ctx, "appt-5005", Status("Archived"))
	assert.ErrorIs(t, err, shared.ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, "appt-9999", StatusConfirmed)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestReschedule(t *testing.T) {
	svc := newTestService()

	appt, err := svc.Reschedule(context.Background(), "appt-5002", RescheduleRequest{
		Date: time.Date(2025, time.March, 21, 0, 0, 0, 0, time.UTC),
		Time: "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusRescheduled, appt.Status)
	assert.Equal(t, "09:00", appt.Time)
	assert.Equal(t, time.Date(2025, time.March, 21, 0, 0, 0, 0, time.UTC), appt.Date)
}

func TestCreateStartsScheduled(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	appt, err := svc.Create(ctx, CreateRequest{
		Title:           "Scope review",
		ClientName:      "Crestpoint Legal",
		Date:            time.Date(2025, time.March, 24, 0, 0, 0, 0, time.UTC),
		Time:            "13:00",
		DurationMinutes: 30,
		MeetingType:     TypeVideoCall,
		Priority:        PriorityMedium,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, appt.Status)

	appts, err := svc.List(ctx, ListRequest{})
	require.NoError(t, err)
	assert.Len(t, appts, 7)

	_, err = svc.Create(ctx, CreateRequest{
		Title:           "Zero length",
		ClientName:      "Nobody",
		Date:            time.Date(2025, time.March, 24, 0, 0, 0, 0, time.UTC),
		Time:            "13:00",
		DurationMinutes: 0,
		MeetingType:     TypeVideoCall,
		Priority:        PriorityLow,
	})
	assert.ErrorIs(t, err, shared.ErrValidation)
}
