package invoices

import (
	"strings"

	"github.com/vantage-suite/vantage/internal/docgen"
)

var invoiceStyle = docgen.Style{
	FontFamily:  "Helvetica, Arial, sans-serif",
	FontSize:    "14px",
	TextColor:   "#1d2433",
	HeaderColor: "#1f6feb",
}

const lineRowContent = `<tr><td>{{description}}</td><td class="num">{{quantity}}</td><td class="num">{{rate}}</td><td class="num">{{amount}}</td></tr>`

func invoiceTemplate(symbol string) docgen.Template {
	return docgen.Template{
		Name:           "invoice",
		CurrencySymbol: symbol,
		Sections: []docgen.Section{
			{
				ID: "header", Title: "Tax Invoice", Order: 1, Style: invoiceStyle,
				Content: `<p><strong>{{number}}</strong></p>` +
					`<p>Billed to {{clientName}}</p>` +
					`<p>Issued {{issueDate}} &middot; Due {{dueDate}}</p>`,
			},
			{
				ID: "items", Order: 2, Style: invoiceStyle,
				Content: `<table class="items"><thead><tr><th>Description</th><th>Qty</th><th>Rate</th><th>Amount</th></tr></thead>` +
					`<tbody>{{lineRows}}</tbody></table>`,
			},
			{
				ID: "totals", Order: 3, Style: invoiceStyle,
				Content: `<table class="totals">` +
					`<tr><td>Subtotal</td><td class="num">{{subtotal}}</td></tr>` +
					`<tr><td>CGST ({{taxRate}}% / 2)</td><td class="num">{{cgst}}</td></tr>` +
					`<tr><td>SGST ({{taxRate}}% / 2)</td><td class="num">{{sgst}}</td></tr>` +
					`<tr><td><strong>Grand Total</strong></td><td class="num"><strong>{{grandTotal}}</strong></td></tr>` +
					`</table>`,
			},
			{
				ID: "footer", Order: 4, Style: invoiceStyle,
				Content: `<p class="notes">{{notes}}</p><p>Thank you for your business.</p>`,
			},
		},
	}
}

// RenderDocument renders the printable invoice markup via the document
// engine. Rollups are computed once and shared by every section.
func RenderDocument(r *docgen.Renderer, inv Invoice) string {
	tpl := invoiceTemplate(inv.CurrencySymbol)

	var rows strings.Builder
	for _, item := range inv.LineItems {
		rows.WriteString(r.Substitute(lineRowContent, docgen.Data{
			"description": docgen.Text(item.Description),
			"quantity":    docgen.Number(item.Quantity),
			"rate":        docgen.Currency(item.UnitRate),
			"amount":      docgen.Currency(item.Amount()),
		}, inv.CurrencySymbol))
	}

	data := inv.Totals().Inject(docgen.Data{
		"number":     docgen.Text(inv.Number),
		"clientName": docgen.Text(inv.ClientName),
		"issueDate":  docgen.Date(inv.IssueDate),
		"dueDate":    docgen.Date(inv.DueDate),
		"lineRows":   docgen.Text(rows.String()),
		"notes":      docgen.Text(inv.Notes),
	})
	return r.Render(tpl, data)
}
