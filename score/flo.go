package score

import (
	"time"

	"github.com/bitmark-inc/flo-api/bp"
	"github.com/bitmark-inc/flo-api/schema"
	"github.com/bitmark-inc/flo-api/stats"
)

// Defaults substituted when a whole collection is empty. A partially filled
// collection is always averaged as it is.
const (
	DefaultSystolic   = 120.0
	DefaultDiastolic  = 80.0
	DefaultHeartRate  = 70.0
	DefaultSteps      = 5000.0
	DefaultSleepHours = 7.0
	DefaultAdherence  = 1.0
)

const (
	Window           = 7 * 24 * time.Hour
	DateFormat       = "2006-01-02"
	TrendThreshold   = 5
	FloExplanation   = "Based on your last 7 days of readings, activity, and habits."
	minVariabilitySz = 3
)

// Input is the trailing 7-day data of a user
type Input struct {
	Readings       []schema.Reading
	Steps          []float64
	SleepHours     []float64
	MedicationLogs []schema.MedicationLog
}

// Aggregates are the window aggregates the sub-scores are derived from. A nil
// field means that the source collection was empty.
type Aggregates struct {
	AvgSystolic   *float64
	AvgDiastolic  *float64
	AvgHeartRate  *float64
	AvgSteps      *float64
	AvgSleepHours *float64
	Adherence     *float64

	Systolic []float64
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func meanOrNil(values []float64) *float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return nil
	}
	return &m
}

// Aggregate reduces the raw collections into averages
func Aggregate(in Input) Aggregates {
	systolic := make([]float64, 0, len(in.Readings))
	diastolic := make([]float64, 0, len(in.Readings))
	heartRate := make([]float64, 0, len(in.Readings))
	for _, r := range in.Readings {
		systolic = append(systolic, float64(r.Systolic))
		diastolic = append(diastolic, float64(r.Diastolic))
		heartRate = append(heartRate, float64(r.HeartRate))
	}

	a := Aggregates{
		AvgSystolic:   meanOrNil(systolic),
		AvgDiastolic:  meanOrNil(diastolic),
		AvgHeartRate:  meanOrNil(heartRate),
		AvgSteps:      meanOrNil(in.Steps),
		AvgSleepHours: meanOrNil(in.SleepHours),
		Systolic:      systolic,
	}

	if total := len(in.MedicationLogs); total > 0 {
		taken := 0
		for _, l := range in.MedicationLogs {
			if l.Status == schema.MedicationTaken {
				taken++
			}
		}
		rate := float64(taken) / float64(total)
		a.Adherence = &rate
	}

	return a
}

// BPScore scores the average blood pressure, 0 to 25
func BPScore(avgSystolic, avgDiastolic float64) int {
	switch bp.ClassifyAverage(avgSystolic, avgDiastolic) {
	case bp.Crisis:
		return 0
	case bp.Stage2:
		return 5
	case bp.Stage1:
		return 12
	case bp.Elevated:
		return 20
	default:
		return 25
	}
}

// VariabilityScore scores the spread of systolic values, 0 to 15. Less than
// three values is not enough to judge and gets the full score.
func VariabilityScore(systolic []float64) int {
	if len(systolic) < minVariabilitySz {
		return 15
	}

	sd, _ := stats.StdDev(systolic)
	switch {
	case sd <= 5:
		return 15
	case sd <= 10:
		return 12
	case sd <= 15:
		return 8
	case sd <= 20:
		return 4
	default:
		return 0
	}
}

// HeartRateScore scores the average heart rate, 0 to 15
func HeartRateScore(avg float64) int {
	switch {
	case avg >= 50 && avg <= 85:
		return 15
	case avg >= 45 && avg <= 90:
		return 12
	case avg >= 40 && avg <= 100:
		return 8
	default:
		return 4
	}
}

// ActivityScore scores the average daily steps, 0 to 20
func ActivityScore(avgSteps float64) int {
	switch {
	case avgSteps >= 10000:
		return 20
	case avgSteps >= 7500:
		return 16
	case avgSteps >= 5000:
		return 12
	case avgSteps >= 2500:
		return 8
	default:
		return 4
	}
}

// SleepScore scores the average sleep hours, 0 to 15
func SleepScore(avgHours float64) int {
	switch {
	case avgHours >= 7 && avgHours <= 9:
		return 15
	case avgHours >= 6 && avgHours <= 10:
		return 12
	case avgHours >= 5 && avgHours <= 11:
		return 8
	default:
		return 4
	}
}

// MedicationScore scores the ratio of taken doses, 0 to 10
func MedicationScore(adherence float64) int {
	switch {
	case adherence >= 0.95:
		return 10
	case adherence >= 0.85:
		return 8
	case adherence >= 0.70:
		return 6
	case adherence >= 0.50:
		return 3
	default:
		return 0
	}
}

// Components applies the defaults and computes every sub-score
func Components(a Aggregates) schema.ScoreComponents {
	return schema.ScoreComponents{
		BP:                  BPScore(orDefault(a.AvgSystolic, DefaultSystolic), orDefault(a.AvgDiastolic, DefaultDiastolic)),
		BPVariability:       VariabilityScore(a.Systolic),
		HeartRate:           HeartRateScore(orDefault(a.AvgHeartRate, DefaultHeartRate)),
		Activity:            ActivityScore(orDefault(a.AvgSteps, DefaultSteps)),
		Sleep:               SleepScore(orDefault(a.AvgSleepHours, DefaultSleepHours)),
		MedicationAdherence: MedicationScore(orDefault(a.Adherence, DefaultAdherence)),
	}
}

// Calculate computes the Flo Score of a user for the calendar day of now in
// loc. The previous score is the latest stored score of an earlier day.
func Calculate(userID string, in Input, previous *schema.FloScore, now time.Time, loc *time.Location) schema.FloScore {
	if loc == nil {
		loc = time.UTC
	}

	components := Components(Aggregate(in))
	total := Total(components)

	return schema.FloScore{
		UserID:       userID,
		Score:        total,
		Trend:        Trend(total, previous),
		Components:   components,
		Explanation:  FloExplanation,
		Date:         now.In(loc).Format(DateFormat),
		CalculatedAt: now,
	}
}
