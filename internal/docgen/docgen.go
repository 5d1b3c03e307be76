// Package docgen renders data-bound documents (invoices, multi-page
// proposals) from declarative templates. A template is an ordered sequence of
// markup fragments carrying {{token}} placeholders; rendering substitutes
// tokens with formatted values and concatenates the sections into a single
// markup string ready for on-screen preview or PDF conversion.
package docgen

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrSectionNotFound indicates a requested section id is not in the template.
var ErrSectionNotFound = errors.New("section not found")

// Style carries the per-section theme applied when a section is rendered.
type Style struct {
	FontFamily      string `json:"font_family"`
	FontSize        string `json:"font_size"`
	TextColor       string `json:"text_color"`
	BackgroundColor string `json:"background_color"`
	HeaderColor     string `json:"header_color"`
}

// Section is one ordered fragment of a document. Content is never executed,
// only string-substituted and emitted as markup.
type Section struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Order   int    `json:"order"`
	Style   Style  `json:"style"`
	Content string `json:"content"`
}

// Template is a named, ordered collection of sections sharing a currency.
type Template struct {
	Name           string    `json:"name"`
	CurrencySymbol string    `json:"currency_symbol"`
	Sections       []Section `json:"sections"`
}

var tokenPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// Renderer substitutes placeholder tokens and assembles document markup.
type Renderer struct {
	printer *message.Printer
}

// NewRenderer constructs a renderer with English locale number formatting.
func NewRenderer() *Renderer {
	return &Renderer{printer: message.NewPrinter(language.English)}
}

// Render substitutes data into every section and concatenates them in
// ascending order. Order ties are resolved by insertion order. The same
// template and data always yield byte-identical output.
func (r *Renderer) Render(tpl Template, data Data) string {
	sections := orderedSections(tpl.Sections)
	var b strings.Builder
	b.WriteString(`<div class="document">`)
	b.WriteString("\n")
	for _, section := range sections {
		b.WriteString(r.renderSection(tpl, section, data))
	}
	b.WriteString("</div>\n")
	return b.String()
}

// RenderSection renders a single section for one-page preview.
func (r *Renderer) RenderSection(tpl Template, id string, data Data) (string, error) {
	for _, section := range tpl.Sections {
		if section.ID == id {
			return r.renderSection(tpl, section, data), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrSectionNotFound, id)
}

func (r *Renderer) renderSection(tpl Template, section Section, data Data) string {
	// The header tint is derived once per section render, never per line.
	headerTint := Tint(section.Style.HeaderColor, 0.12)

	var b strings.Builder
	b.WriteString(fmt.Sprintf(`<section id=%q style=%q>`, section.ID, sectionStyle(section.Style)))
	b.WriteString("\n")
	if section.Title != "" {
		b.WriteString(fmt.Sprintf(`<h2 style="color:%s;background-color:%s">%s</h2>`,
			section.Style.HeaderColor, headerTint, section.Title))
		b.WriteString("\n")
	}
	b.WriteString(r.Substitute(section.Content, data, tpl.CurrencySymbol))
	b.WriteString("\n</section>\n")
	return b.String()
}

// Substitute replaces {{token}} markers in content with formatted values from
// data. Tokens with no value, or whose value is empty, are left as literal
// {{token}} text.
func (r *Renderer) Substitute(content string, data Data, currencySymbol string) string {
	return tokenPattern.ReplaceAllStringFunc(content, func(token string) string {
		name := tokenPattern.FindStringSubmatch(token)[1]
		value, ok := data[name]
		if !ok || value.isEmpty() {
			return token
		}
		return r.formatValue(value, currencySymbol)
	})
}

func sectionStyle(s Style) string {
	var parts []string
	if s.FontFamily != "" {
		parts = append(parts, "font-family:"+s.FontFamily)
	}
	if s.FontSize != "" {
		parts = append(parts, "font-size:"+s.FontSize)
	}
	if s.TextColor != "" {
		parts = append(parts, "color:"+s.TextColor)
	}
	if s.BackgroundColor != "" {
		parts = append(parts, "background-color:"+s.BackgroundColor)
	}
	return strings.Join(parts, ";")
}

func orderedSections(sections []Section) []Section {
	ordered := append([]Section{}, sections...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})
	return ordered
}
