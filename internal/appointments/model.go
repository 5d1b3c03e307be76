package appointments

import "time"

// MeetingType is how the appointment is held.
type MeetingType string

const (
	TypeInPerson  MeetingType = "In-Person"
	TypeVideoCall MeetingType = "Video Call"
	TypePhoneCall MeetingType = "Phone Call"
)

// Status is the scheduling state. Unlike invoices there is no enforced
// ordering: any status may move to any other via explicit user action.
type Status string

const (
	StatusScheduled   Status = "Scheduled"
	StatusConfirmed   Status = "Confirmed"
	StatusInProgress  Status = "In Progress"
	StatusCompleted   Status = "Completed"
	StatusCancelled   Status = "Cancelled"
	StatusRescheduled Status = "Rescheduled"
)

// Statuses is the canonical status list for grouped rollups.
var Statuses = []Status{StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusRescheduled}

// Priority orders the day view.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Appointment is one scheduled client meeting, optionally linked to a
// pipeline lead.
type Appointment struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	ClientName      string      `json:"client_name"`
	Date            time.Time   `json:"date"`
	Time            string      `json:"time"`
	DurationMinutes int         `json:"duration_minutes"`
	MeetingType     MeetingType `json:"meeting_type"`
	Status          Status      `json:"status"`
	Priority        Priority    `json:"priority"`
	LeadRef         string      `json:"lead_ref,omitempty"`
	Notes           string      `json:"notes,omitempty"`
}

func validStatus(s Status) bool {
	for _, status := range Statuses {
		if status == s {
			return true
		}
	}
	return false
}
