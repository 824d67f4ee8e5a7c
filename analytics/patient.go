// Package analytics derives the clinician view of a patient from the readings
// of the last two weeks.
package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/bitmark-inc/flo-api/bp"
	"github.com/bitmark-inc/flo-api/schema"
	"github.com/bitmark-inc/flo-api/stats"
)

const (
	CurrentWindow  = 7 * 24 * time.Hour
	PreviousWindow = 14 * 24 * time.Hour

	// two readings a day over the current window
	ExpectedReadings = 14

	TrendThreshold      = 5
	HighVariability     = 15
	ModerateVariability = 8
)

// Calculate returns the metrics of a patient. current holds the readings of
// the last 7 days and previous those of the 7 days before. It returns nil when
// there is no current reading.
func Calculate(current, previous []schema.Reading, floScore *int, now time.Time) *schema.PatientMetrics {
	if len(current) == 0 {
		return nil
	}

	systolic := make([]float64, 0, len(current))
	diastolic := make([]float64, 0, len(current))
	heartRate := make([]float64, 0, len(current))
	last := current[0].Timestamp
	for _, r := range current {
		systolic = append(systolic, float64(r.Systolic))
		diastolic = append(diastolic, float64(r.Diastolic))
		heartRate = append(heartRate, float64(r.HeartRate))
		if r.Timestamp.After(last) {
			last = r.Timestamp
		}
	}

	avgSystolic := roundedMean(systolic)
	avgDiastolic := roundedMean(diastolic)
	sd, _ := stats.StdDev(systolic)

	return &schema.PatientMetrics{
		AvgSystolic:    avgSystolic,
		AvgDiastolic:   avgDiastolic,
		AvgHeartRate:   roundedMean(heartRate),
		RiskLevel:      RiskLevel(bp.Classify(avgSystolic, avgDiastolic).Category),
		Trend:          Trend(avgSystolic, previous),
		Variability:    VariabilityLevel(sd),
		ReadingsCount:  len(current),
		FloScore:       floScore,
		LastReadingAge: LastReadingAge(last, now),
		Compliance:     Compliance(len(current)),
	}
}

func roundedMean(values []float64) int {
	m, _ := stats.Mean(values)
	return int(math.Round(m))
}

// RiskLevel maps a blood pressure category to a clinical risk level
func RiskLevel(c bp.Category) schema.RiskLevel {
	switch c {
	case bp.Crisis, bp.Stage2:
		return schema.RiskHigh
	case bp.Stage1, bp.Elevated:
		return schema.RiskModerate
	default:
		return schema.RiskLow
	}
}

// Trend compares the rounded current systolic average to the mean systolic
// of the previous week.
func Trend(avgSystolic int, previous []schema.Reading) schema.PatientTrend {
	if len(previous) == 0 {
		return schema.PatientStable
	}

	values := make([]float64, 0, len(previous))
	for _, r := range previous {
		values = append(values, float64(r.Systolic))
	}
	previousAvg, _ := stats.Mean(values)

	switch stats.TrendFromDelta(float64(avgSystolic)-previousAvg, TrendThreshold, true) {
	case stats.Down:
		return schema.PatientImproving
	case stats.Up:
		return schema.PatientWorsening
	default:
		return schema.PatientStable
	}
}

func VariabilityLevel(stdDev float64) schema.Variability {
	switch {
	case stdDev > HighVariability:
		return schema.VariabilityHigh
	case stdDev > ModerateVariability:
		return schema.VariabilityModerate
	default:
		return schema.VariabilityLow
	}
}

// LastReadingAge humanizes the time elapsed since the last reading
func LastReadingAge(last, now time.Time) string {
	hours := int(math.Floor(now.Sub(last).Hours()))
	switch {
	case hours < 1:
		return "Just now"
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	default:
		return fmt.Sprintf("%dd ago", hours/24)
	}
}

// Compliance is the percentage of expected readings taken, capped at 100
func Compliance(count int) int {
	c := int(math.Round(float64(count) / ExpectedReadings * 100))
	if c > 100 {
		return 100
	}
	return c
}
