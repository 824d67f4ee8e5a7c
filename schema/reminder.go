package schema

import "time"

type ReminderType string

const (
	ReminderReading    ReminderType = "reading"
	ReminderMedication ReminderType = "medication"
	ReminderCustom     ReminderType = "custom"
)

type ReminderPriority string

const (
	PriorityHigh   ReminderPriority = "high"
	PriorityMedium ReminderPriority = "medium"
	PriorityLow    ReminderPriority = "low"
)

// Rank orders priorities from high to low
func (p ReminderPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Reminder is computed on every request and never persisted.
type Reminder struct {
	ID            string           `json:"id"`
	Type          ReminderType     `json:"type"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	ScheduledTime time.Time        `json:"scheduled_time"`
	Priority      ReminderPriority `json:"priority"`
}
