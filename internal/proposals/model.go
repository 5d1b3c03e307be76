package proposals

import (
	"time"

	"github.com/vantage-suite/vantage/internal/docgen"
)

// Status is the proposal lifecycle state.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusViewed   Status = "viewed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// Statuses is the canonical status list for grouped rollups.
var Statuses = []Status{StatusDraft, StatusSent, StatusViewed, StatusAccepted, StatusRejected, StatusExpired}

// PageType selects which library layout seeds a page's content.
type PageType string

const (
	PageCover       PageType = "cover"
	PageObjectives  PageType = "objectives"
	PageScope       PageType = "scope"
	PageCommercials PageType = "commercials"
	PageTimeline    PageType = "timeline"
	PageThankYou    PageType = "thankyou"
	PageCustom      PageType = "custom"
)

// Page is one ordered page of a proposal document. Content carries
// {{token}} placeholders and is only ever string-substituted, never
// executed.
type Page struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	PageType PageType     `json:"page_type"`
	Content  string       `json:"content"`
	Order    int          `json:"order"`
	Style    docgen.Style `json:"style"`
}

// DesignSettings is the document-wide theme applied to new pages.
type DesignSettings struct {
	FontFamily      string `json:"font_family"`
	FontSize        string `json:"font_size"`
	TextColor       string `json:"text_color"`
	BackgroundColor string `json:"background_color"`
	HeaderColor     string `json:"header_color"`
	LogoDataURL     string `json:"logo_data_url,omitempty"`
}

// Style converts the design settings to a per-section style.
func (d DesignSettings) Style() docgen.Style {
	return docgen.Style{
		FontFamily:      d.FontFamily,
		FontSize:        d.FontSize,
		TextColor:       d.TextColor,
		BackgroundColor: d.BackgroundColor,
		HeaderColor:     d.HeaderColor,
	}
}

// Proposal is a multi-page client document tied to a pipeline deal. Amount
// is the headline deal value; the commercials page itemizes it through
// Items, whose totals are derived at render time.
type Proposal struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	ClientName     string            `json:"client_name"`
	LeadRef        string            `json:"lead_ref,omitempty"`
	Amount         float64           `json:"amount"`
	CurrencySymbol string            `json:"currency_symbol"`
	TaxRate        float64           `json:"tax_rate"`
	Status         Status            `json:"status"`
	ValidUntil     time.Time         `json:"valid_until"`
	CreatedDate    time.Time         `json:"created_date"`
	Pages          []Page            `json:"pages"`
	Items          []docgen.LineItem `json:"items"`
	Design         DesignSettings    `json:"design"`
}

// canTransition encodes the lifecycle: draft -> sent -> viewed ->
// accepted | rejected, with expiry possible once sent. Accepted, rejected
// and expired are terminal.
func canTransition(from, to Status) bool {
	switch from {
	case StatusDraft:
		return to == StatusSent
	case StatusSent:
		return to == StatusViewed || to == StatusExpired
	case StatusViewed:
		return to == StatusAccepted || to == StatusRejected || to == StatusExpired
	default:
		return false
	}
}

func validStatus(s Status) bool {
	for _, status := range Statuses {
		if status == s {
			return true
		}
	}
	return false
}
