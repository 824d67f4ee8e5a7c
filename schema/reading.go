package schema

import (
	"errors"
	"time"
)

const (
	ReadingCollection = "bp_readings"
)

// Accepted ranges of a blood pressure reading
const (
	MinSystolic  = 70
	MaxSystolic  = 250
	MinDiastolic = 40
	MaxDiastolic = 150
	MinHeartRate = 40
	MaxHeartRate = 200
)

var (
	ErrSystolicOutOfRange  = errors.New("Systolic must be between 70 and 250 mmHg")
	ErrDiastolicOutOfRange = errors.New("Diastolic must be between 40 and 150 mmHg")
	ErrHeartRateOutOfRange = errors.New("Heart rate must be between 40 and 200 bpm")
	ErrDiastolicNotLower   = errors.New("Diastolic must be lower than systolic")
)

type ReadingSource string

const (
	ReadingSourceManual    ReadingSource = "manual"
	ReadingSourceBluetooth ReadingSource = "bluetooth"
)

// Reading is a single blood pressure measurement. It is immutable once stored.
type Reading struct {
	ID        string        `json:"id" bson:"_id"`
	UserID    string        `json:"user_id" bson:"user_id"`
	Systolic  int           `json:"systolic" bson:"systolic"`
	Diastolic int           `json:"diastolic" bson:"diastolic"`
	HeartRate int           `json:"heart_rate" bson:"heart_rate"`
	Timestamp time.Time     `json:"timestamp" bson:"timestamp"`
	Notes     *string       `json:"notes,omitempty" bson:"notes,omitempty"`
	Source    ReadingSource `json:"source" bson:"source"`
}

// Validate rejects readings which are out of the physically plausible ranges.
// The first violated rule is returned.
func (r Reading) Validate() error {
	if r.Systolic < MinSystolic || r.Systolic > MaxSystolic {
		return ErrSystolicOutOfRange
	}

	if r.Diastolic < MinDiastolic || r.Diastolic > MaxDiastolic {
		return ErrDiastolicOutOfRange
	}

	if r.HeartRate < MinHeartRate || r.HeartRate > MaxHeartRate {
		return ErrHeartRateOutOfRange
	}

	if r.Diastolic >= r.Systolic {
		return ErrDiastolicNotLower
	}

	return nil
}
