package tax

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantage-suite/vantage/internal/shared"
)

func newTestService() *Service {
	svc := NewService(NewMemoryRepository())
	svc.now = func() time.Time {
		return time.Date(2025, time.March, 20, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestOverdueIsDerivedNotStored(t *testing.T) {
	svc := newTestService()

	// Feb 2025 is pending with a due date of 11 Mar, past the fixed clock.
	views, err := svc.List(context.Background(), ListRequest{Status: string(StatusOverdue)})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "tax-3002", views[0].ID)
	assert.Equal(t, StatusOverdue, views[0].EffectiveStatus)
	// The stored status stays pending.
	assert.Equal(t, StatusPending, views[0].Status)
}

func TestListFilterByType(t *testing.T) {
	svc := newTestService()

	views, err := svc.List(context.Background(), ListRequest{Type: string(TypeMonthly)})
	require.NoError(t, err)
	assert.Len(t, views, 3)
}

func TestSummarize(t *testing.T) {
	svc := newTestService()

	summary, err := svc.Summarize(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.PendingCount)
	assert.Equal(t, 1, summary.FiledCount)
	assert.Equal(t, 1, summary.PaidCount)
	assert.Equal(t, 1, summary.OverdueCount)
	// Everything except the paid Jan return still counts as liability.
	assert.InDelta(t, 86740, summary.TotalLiability, 0.001)
	// Mar 2025 (due 11 Apr) is inside the 30-day window; FY annual is not.
	assert.Equal(t, []string{"tax-3003"}, summary.UpcomingIDs)
}

func TestMarkFiledThenPaid(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Paying before filing is rejected.
	_, err := svc.MarkPaid(ctx, "tax-3002")
	assert.ErrorIs(t, err, shared.ErrInvalidStatus)

	rec, err := svc.MarkFiled(ctx, "tax-3002")
	require.NoError(t, err)
	assert.Equal(t, StatusFiled, rec.Status)
	require.NotNil(t, rec.FiledAt)

	rec, err = svc.MarkPaid(ctx, "tax-3002")
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, rec.Status)

	// Filing twice is rejected.
	_, err = svc.MarkFiled(ctx, "tax-3002")
	assert.ErrorIs(t, err, shared.ErrInvalidStatus)
}
