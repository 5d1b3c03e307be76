package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantage-suite/vantage/internal/appointments"
	"github.com/vantage-suite/vantage/internal/invoices"
	"github.com/vantage-suite/vantage/internal/leads"
	"github.com/vantage-suite/vantage/internal/ledger"
	"github.com/vantage-suite/vantage/internal/tax"
)

type fixture struct {
	svc    *Service
	ledger *ledger.Service
	leads  *leads.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	led := ledger.NewService(ledger.NewMemoryRepository())
	inv := invoices.NewService(invoices.NewMemoryRepository())
	tx := tax.NewService(tax.NewMemoryRepository())
	ld := leads.NewService(leads.NewMemoryRepository())
	appt := appointments.NewService(appointments.NewMemoryRepository())

	svc := NewService(led, inv, tx, ld, appt, NewCache(client, time.Minute))
	return fixture{svc: svc, ledger: led, leads: ld}
}

func TestSummaryAggregatesAcrossModules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	summary, err := f.svc.Summary(ctx)
	require.NoError(t, err)

	book, err := f.ledger.List(ctx, ledger.ListRequest{})
	require.NoError(t, err)
	assert.InDelta(t, book.IncomeTotal, summary.Revenue, 0.001)
	assert.InDelta(t, book.ExpenseTotal, summary.Expenses, 0.001)
	assert.InDelta(t, summary.Revenue-summary.Expenses, summary.Net, 0.001)

	// Seeded receivables: two sent invoices worth 5900 and 12000.
	assert.InDelta(t, 17900, summary.Outstanding, 0.001)
	assert.Equal(t, 2, summary.OverdueInvoices)

	board, err := f.leads.Board(ctx, leads.ListRequest{})
	require.NoError(t, err)
	assert.InDelta(t, board.PipelineValue, summary.PipelineValue, 0.001)
	assert.Equal(t, 18, summary.OpenLeads)

	assert.InDelta(t, 86740, summary.TaxLiability, 0.001)
}

func TestSummaryIsCachedUntilInvalidated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	before, err := f.svc.Summary(ctx)
	require.NoError(t, err)

	_, err = f.ledger.Append(ctx, ledger.AppendRequest{
		Description: "Rush logo delivery",
		Category:    "Design Services",
		Direction:   ledger.DirectionIncome,
		Amount:      1000,
		Date:        time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	cached, err := f.svc.Summary(ctx)
	require.NoError(t, err)
	assert.InDelta(t, before.Revenue, cached.Revenue, 0.001)

	require.NoError(t, f.svc.Invalidate(ctx))

	fresh, err := f.svc.Summary(ctx)
	require.NoError(t, err)
	assert.InDelta(t, before.Revenue+1000, fresh.Revenue, 0.001)
}

func TestMutationsBumpCacheWhenWired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// The runtime wires every domain service back to the dashboard cache.
	f.ledger.SetCacheInvalidator(f.svc)
	f.leads.SetCacheInvalidator(f.svc)

	before, err := f.svc.Summary(ctx)
	require.NoError(t, err)

	_, err = f.ledger.Append(ctx, ledger.AppendRequest{
		Description: "Brand audit",
		Category:    "Consulting",
		Direction:   ledger.DirectionIncome,
		Amount:      2500,
		Date:        time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	fresh, err := f.svc.Summary(ctx)
	require.NoError(t, err)
	assert.InDelta(t, before.Revenue+2500, fresh.Revenue, 0.001)

	_, err = f.leads.Create(ctx, leads.CreateRequest{
		Title:       "Packaging refresh",
		ContactName: "Dana Wu",
		Value:       4000,
		Priority:    leads.PriorityWarm,
		Probability: 40,
	})
	require.NoError(t, err)

	after, err := f.svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, fresh.OpenLeads+1, after.OpenLeads)
	assert.InDelta(t, fresh.PipelineValue+4000, after.PipelineValue, 0.001)
}
