package schema

import "time"

type AccountRole string

const (
	RolePatient AccountRole = "patient"
	RoleDoctor  AccountRole = "doctor"
)

// Account is a user known by the api. The ID is the subject of the token
// issued by the hosted authentication service.
type Account struct {
	ID        string      `json:"id" gorm:"primary_key"`
	Role      AccountRole `json:"role" gorm:"not null;default:'patient'"`
	Timezone  string      `json:"timezone" gorm:"not null;default:'GMT+0'"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type PatientStatus string

const (
	PatientStatusStable        PatientStatus = "stable"
	PatientStatusNeedsFollowUp PatientStatus = "needs_follow_up"
	PatientStatusPriority      PatientStatus = "priority"
)

func (s PatientStatus) Valid() bool {
	switch s {
	case PatientStatusStable, PatientStatusNeedsFollowUp, PatientStatusPriority:
		return true
	}
	return false
}

// CareTeamMember links a doctor to a patient. Memberships are managed
// elsewhere. A doctor only updates the status and the notes of a patient.
type CareTeamMember struct {
	PatientID   string        `json:"patient_id" gorm:"primary_key"`
	DoctorID    string        `json:"doctor_id" gorm:"primary_key"`
	Status      PatientStatus `json:"patient_status" gorm:"not null;default:'stable'"`
	DoctorNotes *string       `json:"doctor_notes"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// PatientOverview is a row of the patient list of a doctor
type PatientOverview struct {
	PatientID     string        `json:"patient_id"`
	Status        PatientStatus `json:"patient_status"`
	LatestReading *Reading      `json:"latest_reading"`
}
