package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantage-suite/vantage/internal/query"
	"github.com/vantage-suite/vantage/internal/shared"
)

func TestListFilters(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	all, err := svc.List(ctx, ListRequest{Plan: query.All, Status: query.All})
	require.NoError(t, err)
	assert.Len(t, all, 6)

	trials, err := svc.List(ctx, ListRequest{Status: string(StatusTrial)})
	require.NoError(t, err)
	require.Len(t, trials, 2)

	starterActive, err := svc.List(ctx, ListRequest{Plan: string(PlanStarter), Status: string(StatusActive)})
	require.NoError(t, err)
	require.Len(t, starterActive, 1)
	assert.Equal(t, "ten-7002", starterActive[0].ID)

	byEmail, err := svc.List(ctx, ListRequest{Search: "crestpoint"})
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "ten-7005", byEmail[0].ID)
}

func TestPlatformSummary(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	summary, err := svc.Summarize(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, summary.TenantCount)
	require.Len(t, summary.StatusCounts, len(Statuses))
	assert.Equal(t, 3, summary.StatusCounts[StatusActive])
	assert.Equal(t, 2, summary.StatusCounts[StatusTrial])
	assert.Equal(t, 1, summary.StatusCounts[StatusSuspended])

	require.Len(t, summary.PlanCounts, len(Plans))
	assert.Equal(t, 3, summary.PlanCounts[PlanStarter])

	// Trials do not bill yet.
	assert.InDelta(t, 149+49+399+49, summary.TotalMRR, 0.001)

	assert.Equal(t, 5, summary.ModuleUsage["accounting"])
	assert.Equal(t, 4, summary.ModuleUsage["sales"])
	assert.Equal(t, 1, summary.ModuleUsage["reports"])
}

func TestSuspendAndActivate(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	tenant, err := svc.Suspend(ctx, "ten-7002")
	require.NoError(t, err)
	assert.Equal(t, StatusSuspended, tenant.Status)

	// Suspending twice is a no-op the caller should know about.
	_, err = svc.Suspend(ctx, "ten-7002")
	assert.ErrorIs(t, err, shared.ErrInvalidStatus)

	tenant, err = svc.Activate(ctx, "ten-7002")
	require.NoError(t, err)
	assert.Equal(t, StatusActive, tenant.Status)

	_, err = svc.Activate(ctx, "ten-9999")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
