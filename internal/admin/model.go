package admin

import "time"

// Plan is the subscription tier a tenant pays for.
type Plan string

const (
	PlanStarter    Plan = "Starter"
	PlanGrowth     Plan = "Growth"
	PlanEnterprise Plan = "Enterprise"
)

// Plans is the canonical plan list.
var Plans = []Plan{PlanStarter, PlanGrowth, PlanEnterprise}

// Status is the tenant account state.
type Status string

const (
	StatusActive    Status = "active"
	StatusTrial     Status = "trial"
	StatusSuspended Status = "suspended"
)

// Statuses is the canonical status list for grouped rollups.
var Statuses = []Status{StatusActive, StatusTrial, StatusSuspended}

// Tenant is one business account on the platform.
type Tenant struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	OwnerEmail string    `json:"owner_email"`
	Plan       Plan      `json:"plan"`
	Status     Status    `json:"status"`
	JoinedDate time.Time `json:"joined_date"`
	MRR        float64   `json:"mrr"`
	Modules    []string  `json:"modules"`
}
