package invoices

import "time"

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedInvoices() []Invoice {
	return []Invoice{
		{
			ID: "inv-2001", Number: "INV-2025-0001",
			ClientName: "Meridian Textiles", ClientEmail: "accounts@meridiantextiles.example",
			IssueDate: seedDate(2025, time.February, 10), DueDate: seedDate(2025, time.February, 24),
			Currency: "INR", CurrencySymbol: "₹", TaxRate: 18,
			LineItems: []LineItem{
				{Description: "Website design and build", Quantity: 1, UnitRate: 15000},
				{Description: "Hosting setup", Quantity: 1, UnitRate: 3500},
			},
			Status:    StatusPaid,
			CreatedAt: seedDate(2025, time.February, 10), UpdatedAt: seedDate(2025, time.February, 20),
		},
		{
			ID: "inv-2002", Number: "INV-2025-0002",
			ClientName: "Banyan Foods", ClientEmail: "finance@banyanfoods.example",
			IssueDate: seedDate(2025, time.February, 18), DueDate: seedDate(2025, time.March, 4),
			Currency: "INR", CurrencySymbol: "₹", TaxRate: 18,
			LineItems: []LineItem{
				{Description: "SEO retainer - February", Quantity: 1, UnitRate: 5000},
			},
			Status:    StatusSent,
			CreatedAt: seedDate(2025, time.February, 18), UpdatedAt: seedDate(2025, time.February, 18),
		},
		{
			ID: "inv-2003", Number: "INV-2025-0003",
			ClientName: "Halcyon Fitness",
			IssueDate:  seedDate(2025, time.March, 5), DueDate: seedDate(2025, time.March, 19),
			Currency: "USD", CurrencySymbol: "$", TaxRate: 0,
			LineItems: []LineItem{
				{Description: "Brand workshop", Quantity: 2, UnitRate: 2400},
				{Description: "Logo refresh", Quantity: 1, UnitRate: 1800},
			},
			Status:    StatusDraft,
			CreatedAt: seedDate(2025, time.March, 5), UpdatedAt: seedDate(2025, time.March, 5),
		},
		{
			ID: "inv-2004", Number: "INV-2025-0004",
			ClientName: "Oakline Realty", ClientEmail: "billing@oaklinerealty.example",
			IssueDate: seedDate(2025, time.March, 8), DueDate: seedDate(2025, time.March, 22),
			Currency: "USD", CurrencySymbol: "$", TaxRate: 0,
			LineItems: []LineItem{
				{Description: "Quarterly analytics retainer", Quantity: 3, UnitRate: 4000},
			},
			Status:    StatusSent,
			CreatedAt: seedDate(2025, time.March, 8), UpdatedAt: seedDate(2025, time.March, 8),
		},
		{
			ID: "inv-2005", Number: "INV-2025-0005",
			ClientName: "Crestpoint Legal", ClientEmail: "ap@crestpointlegal.example",
			IssueDate: seedDate(2025, time.January, 20), DueDate: seedDate(2025, time.February, 3),
			Currency: "USD", CurrencySymbol: "$", TaxRate: 0,
			LineItems: []LineItem{
				{Description: "Content strategy sprint", Quantity: 1, UnitRate: 7500},
			},
			Status: StatusCancelled, Notes: "Engagement cancelled before kickoff.",
			CreatedAt: seedDate(2025, time.January, 20), UpdatedAt: seedDate(2025, time.January, 28),
		},
	}
}
