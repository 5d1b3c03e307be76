package ledger

import "time"

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// seedEntries mirrors a typical mid-March trading day plus surrounding
// activity so list filters and daily summaries have data to chew on.
func seedEntries() []Entry {
	day := seedDate(2025, time.March, 15)
	created := day.Add(9 * time.Hour)
	return []Entry{
		{ID: "led-1001", Date: day, Description: "Website project milestone - Meridian Textiles", Category: "Client Work", Amount: 15000, Direction: DirectionIncome, Status: StatusCompleted, CreatedAt: created},
		{ID: "led-1002", Date: day, Description: "Monthly SEO retainer - Banyan Foods", Category: "Retainers", Amount: 5000, Direction: DirectionIncome, Status: StatusCompleted, CreatedAt: created},
		{ID: "led-1003", Date: day, Description: "Template pack sales", Category: "Product Sales", Amount: 3750, Direction: DirectionIncome, Status: StatusCompleted, CreatedAt: created},
		{ID: "led-1004", Date: day, Description: "Contractor payout - design sprint", Category: "Payroll", Amount: 4500, Direction: DirectionExpense, Status: StatusCompleted, CreatedAt: created},
		{ID: "led-1005", Date: day, Description: "Office rent - March", Category: "Rent & Utilities", Amount: 2500, Direction: DirectionExpense, Status: StatusCompleted, CreatedAt: created},
		{ID: "led-1006", Date: day, Description: "Design tool subscriptions", Category: "Software", Amount: 1099, Direction: DirectionExpense, Status: StatusCompleted, CreatedAt: created},
		{ID: "led-1007", Date: seedDate(2025, time.March, 12), Description: "Brand workshop deposit - Halcyon Fitness", Category: "Client Work", Amount: 8200, Direction: DirectionIncome, Status: StatusPending, CreatedAt: seedDate(2025, time.March, 12)},
		{ID: "led-1008", Date: seedDate(2025, time.March, 10), Description: "Client dinner - prospect meeting", Category: "Travel", Amount: 420, Direction: DirectionExpense, Status: StatusCompleted, CreatedAt: seedDate(2025, time.March, 10)},
		{ID: "led-1009", Date: seedDate(2025, time.March, 8), Description: "Refunded deposit - cancelled engagement", Category: "Miscellaneous", Amount: 1500, Direction: DirectionExpense, Status: StatusFailed, CreatedAt: seedDate(2025, time.March, 8)},
		{ID: "led-1010", Date: seedDate(2025, time.February, 28), Description: "Quarterly analytics retainer - Oakline Realty", Category: "Retainers", Amount: 12000, Direction: DirectionIncome, Status: StatusCompleted, CreatedAt: seedDate(2025, time.February, 28)},
	}
}
