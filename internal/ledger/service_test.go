package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySummaryScenario(t *testing.T) {
	// Seed data for 15 Mar 2025: income 15000+5000+3750, expenses 4500+2500+1099.
	svc := NewService(NewMemoryRepository())

	summary, err := svc.DailySummary(context.Background(), time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.InDelta(t, 23750, summary.TotalIncome, 0.001)
	assert.InDelta(t, 8099, summary.TotalExpenses, 0.001)
	assert.InDelta(t, 15651, summary.NetAmount, 0.001)
	assert.Equal(t, "Profit", summary.Outcome)
}

func TestDailySummaryLossDay(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	summary, err := svc.DailySummary(context.Background(), time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.InDelta(t, -420, summary.NetAmount, 0.001)
	assert.Equal(t, "Loss", summary.Outcome)
}

func TestListFiltersCompose(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	result, err := svc.List(context.Background(), ListRequest{
		Search:    "retainer",
		Direction: string(DirectionIncome),
	})
	require.NoError(t, err)

	require.Len(t, result.Entries, 2)
	assert.InDelta(t, 17000, result.IncomeTotal, 0.001)
	assert.Zero(t, result.ExpenseTotal)
}

func TestListPendingToggle(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	result, err := svc.List(context.Background(), ListRequest{PendingOnly: true})
	require.NoError(t, err)

	require.Len(t, result.Entries, 1)
	assert.Equal(t, "led-1007", result.Entries[0].ID)
}

func TestReverseAppendsCompensatingEntry(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	reversal, err := svc.Reverse(ctx, "led-1001")
	require.NoError(t, err)
	assert.Equal(t, DirectionExpense, reversal.Direction)
	assert.InDelta(t, 15000, reversal.Amount, 0.001)
	assert.Equal(t, "led-1001", reversal.Reverses)

	// Original stays untouched.
	original, err := repo.Get(ctx, "led-1001")
	require.NoError(t, err)
	assert.Equal(t, DirectionIncome, original.Direction)
}

func TestArchiveHidesEntryFromListings(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	before, err := svc.List(ctx, ListRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.Archive(ctx, "led-1008"))

	after, err := svc.List(ctx, ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, before.Total-1, after.Total)
}

func TestAppendTimedEntryCountsTowardItsDay(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	// RFC3339 input may carry a time-of-day; the entry still belongs to 20 Mar.
	entry, err := svc.Append(ctx, AppendRequest{
		Date:        time.Date(2025, time.March, 20, 10, 0, 0, 0, time.UTC),
		Description: "Morning consultation",
		Category:    "Consulting",
		Amount:      1000,
		Direction:   DirectionIncome,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC), entry.Date)

	summary, err := svc.DailySummary(ctx, time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.InDelta(t, 1000, summary.TotalIncome, 0.001)
}

func TestAppendRejectsNegativeAmount(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, err := svc.Append(context.Background(), AppendRequest{
		Date:        time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC),
		Description: "Bad entry",
		Category:    "Miscellaneous",
		Amount:      -10,
		Direction:   DirectionExpense,
	})
	assert.Error(t, err)
}
