package schema

import "time"

const (
	MedicationLogCollection = "medication_logs"
)

type MedicationStatus string

const (
	MedicationTaken   MedicationStatus = "taken"
	MedicationSkipped MedicationStatus = "skipped"
	MedicationMissed  MedicationStatus = "missed"
)

func (s MedicationStatus) Valid() bool {
	switch s {
	case MedicationTaken, MedicationSkipped, MedicationMissed:
		return true
	}
	return false
}

type MedicationLog struct {
	ID            string           `json:"id" bson:"_id"`
	UserID        string           `json:"user_id" bson:"user_id"`
	Name          string           `json:"name" bson:"name"`
	Status        MedicationStatus `json:"status" bson:"status"`
	ScheduledTime time.Time        `json:"scheduled_time" bson:"scheduled_time"`
	TakenAt       *time.Time       `json:"taken_at,omitempty" bson:"taken_at,omitempty"`
}
