package proposals

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
	svc.now = func() time.Time { return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestListRollups(t *testing.T) {
	svc := newTestService()

	result, err := svc.List(context.Background(), ListRequest{})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Total)
	assert.InDelta(t, 106430, result.TotalValue, 0.001)
	assert.InDelta(t, 18000, result.WonValue, 0.001)

	// Every canonical status is a key even when its count is zero.
	require.Len(t, result.StatusCounts, len(Statuses))
	assert.Equal(t, 1, result.StatusCounts[StatusDraft])
	assert.Equal(t, 0, result.StatusCounts[StatusRejected])

	drafts, err := svc.List(context.Background(), ListRequest{Status: string(StatusDraft)})
	require.NoError(t, err)
	require.Len(t, drafts.Proposals, 1)
	assert.Equal(t, "prop-6003", drafts.Proposals[0].ID)
	assert.InDelta(t, 6600, drafts.Proposals[0].Subtotal, 0.001)
}

func TestCreateSeedsLibraryPages(t *testing.T) {
	svc := newTestService()

	p, err := svc.Create(context.Background(), CreateRequest{
		Title:          "Warehouse Automation Study",
		ClientName:     "Crestpoint Legal",
		Amount:         40000,
		CurrencySymbol: "$",
		TaxRate:        18,
		Items:          []ItemRequest{{Description: "Discovery", Quantity: 1, UnitRate: 40000}},
	})
	require.NoError(t, err)

	assert.Equal(t, StatusDraft, p.Status)
	require.Len(t, p.Pages, len(defaultPageTypes))
	for i, page := range p.Pages {
		assert.Equal(t, i+1, page.Order)
		assert.Equal(t, defaultPageTypes[i], page.PageType)
		assert.NotEmpty(t, page.Content)
	}
}

func TestCreateAppliesDocumentDefaults(t *testing.T) {
	svc := newTestService()
	svc.SetDocumentDefaults("₹", 18)

	p, err := svc.Create(context.Background(), CreateRequest{
		Title:      "Warehouse Automation Study",
		ClientName: "Crestpoint Legal",
		Amount:     40000,
		Items:      []ItemRequest{{Description: "Discovery", Quantity: 1, UnitRate: 40000}},
	})
	require.NoError(t, err)
	assert.Equal(t, "₹", p.CurrencySymbol)
	assert.InDelta(t, 18, p.TaxRate, 0.001)
}

func TestUpdatePageDraftOnly(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	content := `<div class="custom"><p>Hosting handled by {{clientName}}.</p></div>`
	p, err := svc.UpdatePage(ctx, "prop-6003", "page-scope", UpdatePageRequest{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, content, p.Pages[2].Content)

	// prop-6002 is already sent.
	_, err = svc.UpdatePage(ctx, "prop-6002", "page-scope", UpdatePageRequest{Content: &content})
	assert.ErrorIs(t, err, ErrNotEditable)

	_, err = svc.UpdatePage(ctx, "prop-6003", "page-missing", UpdatePageRequest{Content: &content})
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestReorderPageKeepsOrdersDense(t *testing.T) {
	svc := newTestService()

	p, err := svc.ReorderPage(context.Background(), "prop-6003", "page-commercials", 2)
	require.NoError(t, err)

	got := make([]PageType, 0, len(p.Pages))
	for i, page := range p.Pages {
		assert.Equal(t, i+1, page.Order)
		got = append(got, page.PageType)
	}
	assert.Equal(t, []PageType{PageCover, PageCommercials, PageObjectives, PageScope, PageTimeline, PageThankYou}, got)
}

func TestAddPage(t *testing.T) {
	svc := newTestService()

	p, err := svc.AddPage(context.Background(), "prop-6003", PageCustom)
	require.NoError(t, err)
	require.Len(t, p.Pages, len(defaultPageTypes)+1)
	last := p.Pages[len(p.Pages)-1]
	assert.Equal(t, PageCustom, last.PageType)
	assert.Equal(t, len(p.Pages), last.Order)

	_, err = svc.AddPage(context.Background(), "prop-6003", PageType("appendix"))
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestTransitionLifecycle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.Transition(ctx, "prop-6003", StatusSent)
	require.NoError(t, err)
	assert.Equal(t, StatusSent, p.Status)

	p, err = svc.Transition(ctx, "prop-6003", StatusViewed)
	require.NoError(t, err)
	p, err = svc.Transition(ctx, "prop-6003", StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, p.Status)

	// Accepted is terminal.
	_, err = svc.Transition(ctx, "prop-6003", StatusDraft)
	assert.ErrorIs(t, err, shared.ErrInvalidStatus)

	// Skipping viewed is not allowed.
	_, err = svc.Transition(ctx, "prop-6002", StatusAccepted)
	assert.ErrorIs(t, err, shared.ErrInvalidStatus)
}

func TestRenderDocument(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	html, err := svc.RenderDocument(ctx, "prop-6001")
	require.NoError(t, err)

	assert.Contains(t, html, "Submitted to Meridian Textiles")
	assert.Contains(t, html, "₹18,500.00")
	assert.Contains(t, html, "₹1,665.00")
	assert.Contains(t, html, "₹21,830.00")
	assert.Contains(t, html, "09 Apr 2025")

	again, err := svc.RenderDocument(ctx, "prop-6001")
	require.NoError(t, err)
	assert.Equal(t, html, again)
}

func TestRenderPagePreview(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	html, err := svc.RenderPage(ctx, "prop-6001", "page-cover")
	require.NoError(t, err)
	assert.Contains(t, html, "Brand Identity Refresh")
	assert.NotContains(t, html, "Grand Total")

	_, err = svc.RenderPage(ctx, "prop-6001", "page-missing")
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestRenderLeavesUnknownTokensLiteral(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	content := `<p>Contract ref {{contractRef}} for {{clientName}}.</p>`
	_, err := svc.UpdatePage(ctx, "prop-6003", "page-scope", UpdatePageRequest{Content: &content})
	require.NoError(t, err)

	html, err := svc.RenderPage(ctx, "prop-6003", "page-scope")
	require.NoError(t, err)
	assert.Contains(t, html, "{{contractRef}}")
	assert.Contains(t, html, "Halcyon Fitness")
}
