package leads

import "time"

// Stage is one step of the ordered sales pipeline. A lead sits in exactly
// one stage at a time; the stage decides which kanban column renders it.
type Stage string

const (
	StageNew         Stage = "New Leads"
	StageQualified   Stage = "Qualified"
	StageProposal    Stage = "Proposal"
	StageNegotiation Stage = "Negotiation"
	StageClosedWon   Stage = "Closed Won"
)

// Stages is the canonical pipeline order. Closed Won is terminal.
var Stages = []Stage{StageNew, StageQualified, StageProposal, StageNegotiation, StageClosedWon}

// Priority is the follow-up temperature of a lead.
type Priority string

const (
	PriorityHot  Priority = "Hot"
	PriorityWarm Priority = "Warm"
	PriorityCold Priority = "Cold"
)

// Lead is one opportunity in the pipeline.
type Lead struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ContactName  string    `json:"contact_name"`
	Company      string    `json:"company,omitempty"`
	Value        float64   `json:"value"`
	Priority     Priority  `json:"priority"`
	Stage        Stage     `json:"stage"`
	Probability  int       `json:"probability"`
	CreatedDate  time.Time `json:"created_date"`
	FollowUpDate time.Time `json:"follow_up_date"`
}

// WeightedValue is the deal value discounted by its win probability.
func (l Lead) WeightedValue() float64 {
	return l.Value * float64(l.Probability) / 100
}

// validStage reports whether s is one of the canonical pipeline stages.
func validStage(s Stage) bool {
	for _, stage := range Stages {
		if stage == s {
			return true
		}
	}
	return false
}
