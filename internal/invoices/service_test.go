package invoices

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantage-suite/vantage/internal/docgen"
	"github.com/vantage-suite/vantage/internal/shared"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func newTestService() *Service {
	svc := NewService(NewMemoryRepository())
	svc.now = fixedNow
	return svc
}

func TestInvoiceTotalsScenario(t *testing.T) {
	inv := Invoice{
		TaxRate: 18,
		LineItems: []LineItem{
			{Description: "Website design and build", Quantity: 1, UnitRate: 15000},
			{Description: "Hosting setup", Quantity: 1, UnitRate: 3500},
		},
	}

	totals := inv.Totals()
	assert.InDelta(t, 18500, totals.Subtotal, 0.001)
	assert.InDelta(t, 1665, totals.CGST, 0.001)
	assert.InDelta(t, 1665, totals.SGST, 0.001)
	assert.InDelta(t, 21830, totals.GrandTotal, 0.001)
}

func TestEffectiveStatusDerivesOverdue(t *testing.T) {
	inv := Invoice{Status: StatusSent, DueDate: time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, StatusOverdue, inv.EffectiveStatus(fixedNow()))
	assert.Equal(t, StatusSent, inv.EffectiveStatus(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))

	inv.Status = StatusPaid
	assert.Equal(t, StatusPaid, inv.EffectiveStatus(fixedNow()))
}

func TestListDerivedOverdueFilterAndRollups(t *testing.T) {
	svc := newTestService()

	// inv-2002 (due 4 Mar) is overdue at the fixed clock; inv-2004 (due 22 Mar) is not.
	result, err := svc.List(context.Background(), ListRequest{Status: string(StatusOverdue)})
	require.NoError(t, err)
	require.Len(t, result.Invoices, 1)
	assert.Equal(t, "inv-2002", result.Invoices[0].ID)
	assert.Equal(t, StatusOverdue, result.Invoices[0].EffectiveStatus)

	all, err := svc.List(context.Background(), ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 5, all.Total)
	assert.Equal(t, 1, all.OverdueCount)
	assert.Equal(t, 2, all.StatusCounts[StatusSent])
	assert.Equal(t, 1, all.StatusCounts[StatusDraft])
	// Outstanding = grand totals of sent invoices: 5900 (INR) + 12000.
	assert.InDelta(t, 17900, all.Outstanding, 0.001)
}

func TestListAmountBucket(t *testing.T) {
	svc := newTestService()

	result, err := svc.List(context.Background(), ListRequest{AmountBucket: "$5K-$10K"})
	require.NoError(t, err)

	for _, inv := range result.Invoices {
		assert.GreaterOrEqual(t, inv.GrandTotal, 5000.0)
		assert.Less(t, inv.GrandTotal, 10000.0)
	}
	require.Len(t, result.Invoices, 3)
}

func TestCreateGeneratesNumberAndDraftStatus(t *testing.T) {
	svc := newTestService()

	invoice, err := svc.Create(context.Background(), CreateRequest{
		ClientName:     "New Horizon Media",
		IssueDate:      time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2025, time.March, 29, 0, 0, 0, 0, time.UTC),
		Currency:       "USD",
		CurrencySymbol: "$",
		LineItems:      []LineItemRequest{{Description: "Campaign design", Quantity: 1, UnitRate: 2000}},
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-0006", invoice.Number)
	assert.Equal(t, StatusDraft, invoice.Status)
}

func TestCreateAppliesDocumentDefaults(t *testing.T) {
	svc := newTestService()
	svc.SetDocumentDefaults("₹", 18)

	invoice, err := svc.Create(context.Background(), CreateRequest{
		ClientName: "New Horizon Media",
		IssueDate:  time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2025, time.March, 29, 0, 0, 0, 0, time.UTC),
		Currency:   "INR",
		LineItems:  []LineItemRequest{{Description: "Campaign design", Quantity: 1, UnitRate: 2000}},
	})
	require.NoError(t, err)
	assert.Equal(t, "₹", invoice.CurrencySymbol)
	assert.InDelta(t, 18, invoice.TaxRate, 0.001)
}

func TestCreateWithoutSymbolOrDefaultFailsValidation(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), CreateRequest{
		ClientName: "New Horizon Media",
		IssueDate:  time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2025, time.March, 29, 0, 0, 0, 0, time.UTC),
		Currency:   "INR",
		LineItems:  []LineItemRequest{{Description: "Campaign design", Quantity: 1, UnitRate: 2000}},
	})
	assert.Error(t, err)
}

func TestUpdateRecomputesDerivedAmounts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	lines := []LineItemRequest{{Description: "Brand workshop", Quantity: 3, UnitRate: 2400}}
	invoice, err := svc.Update(ctx, "inv-2003", UpdateRequest{LineItems: &lines})
	require.NoError(t, err)

	assert.InDelta(t, 7200, invoice.LineItems[0].Amount(), 0.001)
	assert.InDelta(t, 7200, invoice.Totals().Subtotal, 0.001)
}

func TestUpdateRejectsNonDraft(t *testing.T) {
	svc := newTestService()

	name := "Renamed"
	_, err := svc.Update(context.Background(), "inv-2002", UpdateRequest{ClientName: &name})
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestSendRequiresClientEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// inv-2003 is a draft with no client email on file.
	_, err := svc.Send(ctx, "inv-2003")
	assert.ErrorIs(t, err, ErrMissingEmail)

	email := "hello@halcyonfitness.example"
	_, err = svc.Update(ctx, "inv-2003", UpdateRequest{ClientEmail: &email})
	require.NoError(t, err)

	invoice, err := svc.Send(ctx, "inv-2003")
	require.NoError(t, err)
	assert.Equal(t, StatusSent, invoice.Status)
}

func TestTransitionLifecycle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Sent invoices can be paid.
	invoice, err := svc.Transition(ctx, "inv-2004", StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, invoice.Status)

	// Paid is terminal.
	_, err = svc.Transition(ctx, "inv-2004", StatusCancelled)
	assert.ErrorIs(t, err, shared.ErrInvalidStatus)

	// Overdue is derived, never a transition target.
	_, err = svc.Transition(ctx, "inv-2002", StatusOverdue)
	assert.ErrorIs(t, err, shared.ErrInvalidStatus)
}

func TestRenderDocumentContainsTotalsAndLines(t *testing.T) {
	svc := newTestService()
	invoice, err := svc.Get(context.Background(), "inv-2001")
	require.NoError(t, err)

	out := RenderDocument(docgen.NewRenderer(), *invoice)

	assert.Contains(t, out, "INV-2025-0001")
	assert.Contains(t, out, "Meridian Textiles")
	assert.Contains(t, out, "₹18,500.00")
	assert.Contains(t, out, "₹1,665.00")
	assert.Contains(t, out, "₹21,830.00")
	assert.Contains(t, out, "Website design and build")

	// Deterministic output.
	assert.Equal(t, out, RenderDocument(docgen.NewRenderer(), *invoice))
}
