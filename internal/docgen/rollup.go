package docgen

// LineItem is the minimal billed-line shape the rollup computation needs.
// Amount is always derived from quantity and rate, never stored.
type LineItem struct {
	Description string
	Quantity    float64
	UnitRate    float64
}

// Amount returns the derived line amount.
func (li LineItem) Amount() float64 {
	return li.Quantity * li.UnitRate
}

// Rollup carries the document-level aggregates computed once per render and
// made available to every section's substitution context.
type Rollup struct {
	Subtotal   float64
	TaxRate    float64
	CGST       float64
	SGST       float64
	GrandTotal float64
}

// ComputeRollup totals the line items and splits tax evenly across the dual
// CGST/SGST components.
func ComputeRollup(items []LineItem, taxRate float64) Rollup {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount()
	}
	half := (subtotal * taxRate / 100) / 2
	return Rollup{
		Subtotal:   subtotal,
		TaxRate:    taxRate,
		CGST:       half,
		SGST:       half,
		GrandTotal: subtotal + half + half,
	}
}

// Inject adds the rollup fields to a substitution context.
func (r Rollup) Inject(data Data) Data {
	return Merge(data, Data{
		"subtotal":   Currency(r.Subtotal),
		"taxRate":    Number(r.TaxRate),
		"cgst":       Currency(r.CGST),
		"sgst":       Currency(r.SGST),
		"grandTotal": Currency(r.GrandTotal),
	})
}
