package alert

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/bitmark-inc/flo-api/bp"
	"github.com/bitmark-inc/flo-api/schema"
)

const (
	Window               = 30 * 24 * time.Hour
	PersistentHighWindow = 7 * 24 * time.Hour
	MissingWindow        = 3 * 24 * time.Hour

	PersistentHighMinReadings = 3
	PersistentHighRatio       = 0.7
)

// Evaluate applies every rule to the readings of the last 30 days and returns
// the proposed alerts. The alerts have no id yet. A window without readings
// produces no alert at all.
func Evaluate(readings []schema.Reading, now time.Time) []schema.Alert {
	alerts := make([]schema.Alert, 0)

	since := now.Add(-Window)
	sorted := make([]schema.Reading, 0, len(readings))
	for _, r := range readings {
		if !r.Timestamp.Before(since) {
			sorted = append(sorted, r)
		}
	}

	if len(sorted) == 0 {
		return alerts
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})

	if a := crisis(sorted[0], now); a != nil {
		alerts = append(alerts, *a)
	}

	if a := persistentHigh(sorted, now); a != nil {
		alerts = append(alerts, *a)
	}

	if a := missingReadings(sorted, now); a != nil {
		alerts = append(alerts, *a)
	}

	return alerts
}

func crisis(latest schema.Reading, now time.Time) *schema.Alert {
	if bp.Classify(latest.Systolic, latest.Diastolic).Category != bp.Crisis {
		return nil
	}

	return &schema.Alert{
		UserID:   latest.UserID,
		Type:     schema.AlertCrisis,
		Severity: schema.SeverityCritical,
		Message: fmt.Sprintf("Critical: Your latest reading (%d/%d) indicates a hypertensive crisis. Seek immediate medical attention.",
			latest.Systolic, latest.Diastolic),
		CreatedAt: now,
	}
}

// persistentHigh does not fire below three readings in the window
func persistentHigh(sorted []schema.Reading, now time.Time) *schema.Alert {
	since := now.Add(-PersistentHighWindow)

	total, high := 0, 0
	for _, r := range sorted {
		if r.Timestamp.Before(since) {
			break
		}
		total++
		if bp.Classify(r.Systolic, r.Diastolic).Category.High() {
			high++
		}
	}

	if total < PersistentHighMinReadings {
		return nil
	}

	if high < int(math.Ceil(float64(total)*PersistentHighRatio)) {
		return nil
	}

	return &schema.Alert{
		UserID:   sorted[0].UserID,
		Type:     schema.AlertPersistentHigh,
		Severity: schema.SeverityHigh,
		Message: fmt.Sprintf("%d of your last %d readings show elevated blood pressure. Consider consulting your doctor.",
			high, total),
		CreatedAt: now,
	}
}

func missingReadings(sorted []schema.Reading, now time.Time) *schema.Alert {
	if !sorted[0].Timestamp.Before(now.Add(-MissingWindow)) {
		return nil
	}

	return &schema.Alert{
		UserID:    sorted[0].UserID,
		Type:      schema.AlertMissingReadings,
		Severity:  schema.SeverityLow,
		Message:   "No readings recorded in the last 3 days. Remember to track your blood pressure regularly.",
		CreatedAt: now,
	}
}
