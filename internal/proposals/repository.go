package proposals

import (
	"context"
	"sync"
	"time"

	"github.com/vantage-suite/vantage/internal/docgen"
	"github.com/vantage-suite/vantage/internal/shared"
)

// Repository is the persistence boundary for proposals.
type Repository interface {
	List(ctx context.Context) ([]Proposal, error)
	Get(ctx context.Context, id string) (*Proposal, error)
	Create(ctx context.Context, p Proposal) error
	Update(ctx context.Context, p Proposal) error
}

type memoryRepository struct {
	mu        sync.RWMutex
	proposals []Proposal
}

// NewMemoryRepository returns a repository preloaded with seed proposals.
func NewMemoryRepository() Repository {
	return &memoryRepository{proposals: seedProposals()}
}

func (r *memoryRepository) List(ctx context.Context) ([]Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Proposal, len(r.proposals))
	copy(out, r.proposals)
	return out, nil
}

func (r *memoryRepository) Get(ctx context.Context, id string) (*Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.proposals {
		if p.ID == id {
			cp := p
			cp.Pages = append([]Page(nil), p.Pages...)
			cp.Items = append([]docgen.LineItem(nil), p.Items...)
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryRepository) Create(ctx context.Context, p Proposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.proposals = append(r.proposals, p)
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, p Proposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.proposals {
		if r.proposals[i].ID == p.ID {
			r.proposals[i] = p
			return nil
		}
	}
	return shared.ErrNotFound
}

var defaultDesign = DesignSettings{
	FontFamily:      "Georgia, 'Times New Roman', serif",
	FontSize:        "15px",
	TextColor:       "#232a35",
	BackgroundColor: "#ffffff",
	HeaderColor:     "#0f6f5c",
}

func libraryPages(design DesignSettings) []Page {
	pages := make([]Page, 0, len(defaultPageTypes))
	for i, pt := range defaultPageTypes {
		layout := pageLibrary[pt]
		pages = append(pages, Page{
			ID:       "page-" + string(pt),
			Title:    layout.Title,
			PageType: pt,
			Content:  layout.Content,
			Order:    i + 1,
			Style:    design.Style(),
		})
	}
	return pages
}

func seedProposals() []Proposal {
	return []Proposal{
		{
			ID:             "prop-6001",
			Title:          "Brand Identity Refresh",
			ClientName:     "Meridian Textiles",
			LeadRef:        "lead-4012",
			Amount:         21830,
			CurrencySymbol: "₹",
			TaxRate:        18,
			Status:         StatusViewed,
			ValidUntil:     time.Date(2025, time.April, 9, 0, 0, 0, 0, time.UTC),
			CreatedDate:    time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
			Pages:          libraryPages(defaultDesign),
			Items: []docgen.LineItem{
				{Description: "Brand identity design", Quantity: 1, UnitRate: 15000},
				{Description: "Stationery kit", Quantity: 1, UnitRate: 3500},
			},
			Design: defaultDesign,
		},
		{
			ID:             "prop-6002",
			Title:          "Analytics Platform Migration",
			ClientName:     "Oakline Realty",
			LeadRef:        "lead-4010",
			Amount:         60000,
			CurrencySymbol: "$",
			TaxRate:        18,
			Status:         StatusSent,
			ValidUntil:     time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC),
			CreatedDate:    time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
			Pages:          libraryPages(defaultDesign),
			Items: []docgen.LineItem{
				{Description: "Migration and cutover", Quantity: 1, UnitRate: 42000},
				{Description: "Dashboard build", Quantity: 4, UnitRate: 4500},
			},
			Design: defaultDesign,
		},
		{
			ID:             "prop-6003",
			Title:          "Event Microsite",
			ClientName:     "Halcyon Fitness",
			LeadRef:        "lead-4004",
			Amount:         6600,
			CurrencySymbol: "$",
			TaxRate:        18,
			Status:         StatusDraft,
			ValidUntil:     time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC),
			CreatedDate:    time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC),
			Pages:          libraryPages(defaultDesign),
			Items: []docgen.LineItem{
				{Description: "Microsite design and build", Quantity: 1, UnitRate: 6600},
			},
			Design: defaultDesign,
		},
		{
			ID:             "prop-6004",
			Title:          "Quarterly Content Retainer",
			ClientName:     "Banyan Foods",
			Amount:         18000,
			CurrencySymbol: "₹",
			TaxRate:        18,
			Status:         StatusAccepted,
			ValidUntil:     time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
			CreatedDate:    time.Date(2025, time.February, 18, 0, 0, 0, 0, time.UTC),
			Pages:          libraryPages(defaultDesign),
			Items: []docgen.LineItem{
				{Description: "Monthly content production", Quantity: 3, UnitRate: 6000},
			},
			Design: defaultDesign,
		},
	}
}
