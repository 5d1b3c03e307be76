package proposals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vantage-suite/vantage/internal/docgen"
	"github.com/vantage-suite/vantage/internal/query"
	"github.com/vantage-suite/vantage/internal/shared"
)

// ErrNotEditable is returned when mutating pages of a proposal that already
// left draft.
var ErrNotEditable = errors.New("only draft proposals can be edited")

// ErrPageNotFound indicates the page id is not part of the proposal.
var ErrPageNotFound = errors.New("page not found")

// ListRequest carries the proposal list filters.
type ListRequest struct {
	Search string
	Status string
}

// ItemRequest is one commercials line item.
type ItemRequest struct {
	Description string  `json:"description" validate:"required,max=200"`
	Quantity    float64 `json:"quantity" validate:"gt=0"`
	UnitRate    float64 `json:"unit_rate" validate:"gte=0"`
}

// CreateRequest starts a draft proposal with the library page sequence.
type CreateRequest struct {
	Title          string        `json:"title" validate:"required,max=160"`
	ClientName     string        `json:"client_name" validate:"required,max=120"`
	LeadRef        string        `json:"lead_ref"`
	Amount         float64       `json:"amount" validate:"gte=0"`
	CurrencySymbol string        `json:"currency_symbol" validate:"required"`
	TaxRate        float64       `json:"tax_rate" validate:"gte=0,lte=100"`
	ValidUntil     time.Time     `json:"valid_until"`
	Items          []ItemRequest `json:"items" validate:"dive"`
}

// UpdatePageRequest edits one page; nil fields are left untouched.
type UpdatePageRequest struct {
	Title   *string       `json:"title"`
	Content *string       `json:"content"`
	Style   *docgen.Style `json:"style"`
}

// ProposalView is a proposal row with its derived document totals.
type ProposalView struct {
	Proposal
	Subtotal   float64 `json:"subtotal"`
	GrandTotal float64 `json:"grand_total"`
}

// ListResult is the filtered proposal list with its rollups.
type ListResult struct {
	Proposals    []ProposalView `json:"proposals"`
	Total        int            `json:"total"`
	StatusCounts map[Status]int `json:"status_counts"`
	TotalValue   float64        `json:"total_value"`
	WonValue     float64        `json:"won_value"`
}

// Service implements the proposal builder operations.
type Service struct {
	repo           Repository
	renderer       *docgen.Renderer
	defaultSymbol  string
	defaultTaxRate float64
	now            func() time.Time
}

// NewService constructs a proposal service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, renderer: docgen.NewRenderer(), now: time.Now}
}

// SetDocumentDefaults seeds the currency symbol and tax rate applied to
// create requests that leave them zero-valued.
func (s *Service) SetDocumentDefaults(symbol string, taxRate float64) {
	s.defaultSymbol = symbol
	s.defaultTaxRate = taxRate
}

// List returns proposals matching the filters plus status and value rollups
// over the filtered set.
func (s *Service) List(ctx context.Context, req ListRequest) (*ListResult, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	filtered := query.Apply(all,
		query.TextSearch[Proposal]{Query: req.Search, Fields: []func(Proposal) string{
			func(p Proposal) string { return p.Title },
			func(p Proposal) string { return p.ClientName },
		}},
		query.EnumEquals[Proposal]{Selected: req.Status, Field: func(p Proposal) string { return string(p.Status) }},
	)

	counts := make(map[Status]int, len(Statuses))
	for _, status := range Statuses {
		counts[status] = 0
	}
	result := &ListResult{Proposals: make([]ProposalView, 0, len(filtered)), Total: len(filtered), StatusCounts: counts}
	for _, p := range filtered {
		rollup := docgen.ComputeRollup(p.Items, p.TaxRate)
		result.Proposals = append(result.Proposals, ProposalView{Proposal: p, Subtotal: rollup.Subtotal, GrandTotal: rollup.GrandTotal})
		result.StatusCounts[p.Status]++
		result.TotalValue += p.Amount
		if p.Status == StatusAccepted {
			result.WonValue += p.Amount
		}
	}
	return result, nil
}

// Get returns one proposal with its pages.
func (s *Service) Get(ctx context.Context, id string) (*Proposal, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get proposal: %w", err)
	}
	return p, nil
}

// Create starts a draft whose pages are seeded from the page library in the
// default order.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Proposal, error) {
	if req.CurrencySymbol == "" {
		req.CurrencySymbol = s.defaultSymbol
	}
	if req.TaxRate == 0 {
		req.TaxRate = s.defaultTaxRate
	}
	if err := shared.ValidateStruct(req); err != nil {
		return nil, err
	}
	items := make([]docgen.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, docgen.LineItem{Description: item.Description, Quantity: item.Quantity, UnitRate: item.UnitRate})
	}
	p := Proposal{
		ID:             "prop-" + uuid.NewString(),
		Title:          req.Title,
		ClientName:     req.ClientName,
		LeadRef:        req.LeadRef,
		Amount:         req.Amount,
		CurrencySymbol: req.CurrencySymbol,
		TaxRate:        req.TaxRate,
		Status:         StatusDraft,
		ValidUntil:     req.ValidUntil,
		CreatedDate:    s.now().Truncate(24 * time.Hour),
		Pages:          libraryPages(defaultDesign),
		Items:          items,
		Design:         defaultDesign,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create proposal: %w", err)
	}
	return &p, nil
}

// UpdatePage edits a page's title, content or style while the proposal is
// still a draft.
func (s *Service) UpdatePage(ctx context.Context, id, pageID string, req UpdatePageRequest) (*Proposal, error) {
	p, err := s.editable(ctx, id)
	if err != nil {
		return nil, err
	}
	idx := pageIndex(p.Pages, pageID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, pageID)
	}
	if req.Title != nil {
		p.Pages[idx].Title = *req.Title
	}
	if req.Content != nil {
		p.Pages[idx].Content = *req.Content
	}
	if req.Style != nil {
		p.Pages[idx].Style = *req.Style
	}
	if err := s.repo.Update(ctx, *p); err != nil {
		return nil, fmt.Errorf("update proposal: %w", err)
	}
	return p, nil
}

// AddPage appends a page of the given type from the library, after the
// current last page.
func (s *Service) AddPage(ctx context.Context, id string, pt PageType) (*Proposal, error) {
	layout, ok := pageLibrary[pt]
	if !ok {
		return nil, fmt.Errorf("%w: unknown page type %q", shared.ErrValidation, pt)
	}
	p, err := s.editable(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Pages = append(p.Pages, Page{
		ID:       "page-" + uuid.NewString(),
		Title:    layout.Title,
		PageType: pt,
		Content:  layout.Content,
		Order:    len(p.Pages) + 1,
		Style:    p.Design.Style(),
	})
	if err := s.repo.Update(ctx, *p); err != nil {
		return nil, fmt.Errorf("update proposal: %w", err)
	}
	return p, nil
}

// ReorderPage moves a page to the given 1-based position and renumbers the
// sequence so orders stay dense.
func (s *Service) ReorderPage(ctx context.Context, id, pageID string, position int) (*Proposal, error) {
	p, err := s.editable(ctx, id)
	if err != nil {
		return nil, err
	}
	idx := pageIndex(p.Pages, pageID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, pageID)
	}
	if position < 1 {
		position = 1
	}
	if position > len(p.Pages) {
		position = len(p.Pages)
	}
	page := p.Pages[idx]
	rest := append(append([]Page{}, p.Pages[:idx]...), p.Pages[idx+1:]...)
	pages := append(append(append([]Page{}, rest[:position-1]...), page), rest[position-1:]...)
	for i := range pages {
		pages[i].Order = i + 1
	}
	p.Pages = pages
	if err := s.repo.Update(ctx, *p); err != nil {
		return nil, fmt.Errorf("update proposal: %w", err)
	}
	return p, nil
}

// Transition moves the proposal along its lifecycle.
func (s *Service) Transition(ctx context.Context, id string, to Status) (*Proposal, error) {
	if !validStatus(to) {
		return nil, fmt.Errorf("%w: unknown status %q", shared.ErrInvalidStatus, to)
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get proposal: %w", err)
	}
	if !canTransition(p.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", shared.ErrInvalidStatus, p.Status, to)
	}
	p.Status = to
	if err := s.repo.Update(ctx, *p); err != nil {
		return nil, fmt.Errorf("update proposal: %w", err)
	}
	return p, nil
}

// RenderDocument renders the full proposal, pages ascending by order.
func (s *Service) RenderDocument(ctx context.Context, id string) (string, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get proposal: %w", err)
	}
	return s.renderer.Render(toTemplate(*p), documentData(s.renderer, *p)), nil
}

// RenderPage renders a single page for the builder's one-page preview.
func (s *Service) RenderPage(ctx context.Context, id, pageID string) (string, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get proposal: %w", err)
	}
	out, err := s.renderer.RenderSection(toTemplate(*p), pageID, documentData(s.renderer, *p))
	if err != nil {
		if errors.Is(err, docgen.ErrSectionNotFound) {
			return "", fmt.Errorf("%w: %s", ErrPageNotFound, pageID)
		}
		return "", fmt.Errorf("render page: %w", err)
	}
	return out, nil
}

func (s *Service) editable(ctx context.Context, id string) (*Proposal, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get proposal: %w", err)
	}
	if p.Status != StatusDraft {
		return nil, ErrNotEditable
	}
	return p, nil
}

func pageIndex(pages []Page, pageID string) int {
	for i, page := range pages {
		if page.ID == pageID {
			return i
		}
	}
	return -1
}

func toTemplate(p Proposal) docgen.Template {
	sections := make([]docgen.Section, 0, len(p.Pages))
	for _, page := range p.Pages {
		sections = append(sections, docgen.Section{
			ID:      page.ID,
			Title:   page.Title,
			Order:   page.Order,
			Style:   page.Style,
			Content: page.Content,
		})
	}
	return docgen.Template{Name: p.Title, CurrencySymbol: p.CurrencySymbol, Sections: sections}
}

// documentData builds the substitution context shared by every page.
// Rollups are computed once per document, not per page.
func documentData(r *docgen.Renderer, p Proposal) docgen.Data {
	var rows strings.Builder
	for _, item := range p.Items {
		rows.WriteString(r.Substitute(lineRowContent, docgen.Data{
			"description": docgen.Text(item.Description),
			"quantity":    docgen.Number(item.Quantity),
			"rate":        docgen.Currency(item.UnitRate),
			"amount":      docgen.Currency(item.Amount()),
		}, p.CurrencySymbol))
	}
	return docgen.ComputeRollup(p.Items, p.TaxRate).Inject(docgen.Data{
		"proposalTitle": docgen.Text(p.Title),
		"clientName":    docgen.Text(p.ClientName),
		"preparedDate":  docgen.Date(p.CreatedDate),
		"amount":        docgen.Currency(p.Amount),
		"validUntil":    docgen.Date(p.ValidUntil),
		"lineRows":      docgen.Text(rows.String()),
	})
}
