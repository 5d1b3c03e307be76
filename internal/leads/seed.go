package leads

import "time"

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// seedLeads distributes twenty opportunities across the five pipeline stages.
func seedLeads() []Lead {
	return []Lead{
		// New Leads
		{ID: "lead-4001", Title: "Corporate website revamp", ContactName: "Priya Nair", Company: "Meridian Textiles", Value: 24000, Priority: PriorityHot, Stage: StageNew, Probability: 10, CreatedDate: seedDate(2025, time.March, 12), FollowUpDate: seedDate(2025, time.March, 18)},
		{ID: "lead-4002", Title: "Product photography package", ContactName: "Dev Kapoor", Company: "Banyan Foods", Value: 4800, Priority: PriorityWarm, Stage: StageNew, Probability: 10, CreatedDate: seedDate(2025, time.March, 11), FollowUpDate: seedDate(2025, time.March, 19)},
		{ID: "lead-4003", Title: "Email marketing setup", ContactName: "Sana Iyer", Value: 2500, Priority: PriorityCold, Stage: StageNew, Probability: 5, CreatedDate: seedDate(2025, time.March, 10), FollowUpDate: seedDate(2025, time.March, 24)},
		{ID: "lead-4004", Title: "Event microsite", ContactName: "Rahul Menon", Company: "Halcyon Fitness", Value: 7500, Priority: PriorityWarm, Stage: StageNew, Probability: 15, CreatedDate: seedDate(2025, time.March, 9), FollowUpDate: seedDate(2025, time.March, 20)},
		{ID: "lead-4005", Title: "App store screenshots", ContactName: "Lena Thomas", Value: 1800, Priority: PriorityCold, Stage: StageNew, Probability: 5, CreatedDate: seedDate(2025, time.March, 8), FollowUpDate: seedDate(2025, time.March, 25)},
		{ID: "lead-4006", Title: "Packaging redesign", ContactName: "Arman Shah", Company: "Banyan Foods", Value: 12500, Priority: PriorityHot, Stage: StageNew, Probability: 20, CreatedDate: seedDate(2025, time.March, 7), FollowUpDate: seedDate(2025, time.March, 17)},
		// Qualified
		{ID: "lead-4007", Title: "SEO retainer upgrade", ContactName: "Dev Kapoor", Company: "Banyan Foods", Value: 9000, Priority: PriorityHot, Stage: StageQualified, Probability: 35, CreatedDate: seedDate(2025, time.March, 3), FollowUpDate: seedDate(2025, time.March, 16)},
		{ID: "lead-4008", Title: "Landing page sprint", ContactName: "Maya Pillai", Value: 5200, Priority: PriorityWarm, Stage: StageQualified, Probability: 30, CreatedDate: seedDate(2025, time.March, 2), FollowUpDate: seedDate(2025, time.March, 21)},
		{ID: "lead-4009", Title: "Social media calendar", ContactName: "Noor Sheikh", Value: 3600, Priority: PriorityWarm, Stage: StageQualified, Probability: 30, CreatedDate: seedDate(2025, time.February, 27), FollowUpDate: seedDate(2025, time.March, 15)},
		{ID: "lead-4010", Title: "Analytics migration", ContactName: "Tom Varghese", Company: "Oakline Realty", Value: 14000, Priority: PriorityHot, Stage: StageQualified, Probability: 40, CreatedDate: seedDate(2025, time.February, 25), FollowUpDate: seedDate(2025, time.March, 14)},
		{ID: "lead-4011", Title: "Recruitment microsite", ContactName: "Grace D'Souza", Value: 6400, Priority: PriorityCold, Stage: StageQualified, Probability: 25, CreatedDate: seedDate(2025, time.February, 22), FollowUpDate: seedDate(2025, time.March, 28)},
		// Proposal
		{ID: "lead-4012", Title: "Brand identity system", ContactName: "Priya Nair", Company: "Meridian Textiles", Value: 32000, Priority: PriorityHot, Stage: StageProposal, Probability: 60, CreatedDate: seedDate(2025, time.February, 18), FollowUpDate: seedDate(2025, time.March, 13)},
		{ID: "lead-4013", Title: "Quarterly content retainer", ContactName: "Sana Iyer", Value: 18000, Priority: PriorityWarm, Stage: StageProposal, Probability: 55, CreatedDate: seedDate(2025, time.February, 15), FollowUpDate: seedDate(2025, time.March, 22)},
		{ID: "lead-4014", Title: "E-commerce build", ContactName: "Vikram Rao", Company: "Crestpoint Legal", Value: 45000, Priority: PriorityHot, Stage: StageProposal, Probability: 50, CreatedDate: seedDate(2025, time.February, 12), FollowUpDate: seedDate(2025, time.March, 12)},
		{ID: "lead-4015", Title: "Podcast production", ContactName: "Lena Thomas", Value: 8800, Priority: PriorityCold, Stage: StageProposal, Probability: 45, CreatedDate: seedDate(2025, time.February, 10), FollowUpDate: seedDate(2025, time.March, 30)},
		// Negotiation
		{ID: "lead-4016", Title: "Annual design partnership", ContactName: "Tom Varghese", Company: "Oakline Realty", Value: 60000, Priority: PriorityHot, Stage: StageNegotiation, Probability: 75, CreatedDate: seedDate(2025, time.February, 5), FollowUpDate: seedDate(2025, time.March, 11)},
		{ID: "lead-4017", Title: "Conference booth design", ContactName: "Rahul Menon", Company: "Halcyon Fitness", Value: 9500, Priority: PriorityWarm, Stage: StageNegotiation, Probability: 70, CreatedDate: seedDate(2025, time.February, 2), FollowUpDate: seedDate(2025, time.March, 10)},
		{ID: "lead-4018", Title: "Onboarding video series", ContactName: "Maya Pillai", Value: 16500, Priority: PriorityWarm, Stage: StageNegotiation, Probability: 80, CreatedDate: seedDate(2025, time.January, 28), FollowUpDate: seedDate(2025, time.March, 9)},
		// Closed Won
		{ID: "lead-4019", Title: "Website design and build", ContactName: "Priya Nair", Company: "Meridian Textiles", Value: 18500, Priority: PriorityHot, Stage: StageClosedWon, Probability: 100, CreatedDate: seedDate(2025, time.January, 15), FollowUpDate: seedDate(2025, time.February, 10)},
		{ID: "lead-4020", Title: "Content strategy sprint", ContactName: "Vikram Rao", Company: "Crestpoint Legal", Value: 7500, Priority: PriorityWarm, Stage: StageClosedWon, Probability: 100, CreatedDate: seedDate(2025, time.January, 10), FollowUpDate: seedDate(2025, time.January, 30)},
	}
}
