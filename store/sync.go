package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/flo-api/alert"
	"github.com/bitmark-inc/flo-api/schema"
	"github.com/bitmark-inc/flo-api/score"
)

// Syncer recalculates the derived records of a user from the raw data
type Syncer interface {
	SyncFloScore(userID string, now time.Time, loc *time.Location) (*schema.FloScore, *schema.FloScore, error)
	SyncAlerts(userID string, now time.Time) ([]schema.Alert, error)
}

func metricValues(metrics []schema.WearableMetric, t schema.MetricType) []float64 {
	values := make([]float64, 0)
	for _, m := range metrics {
		if m.MetricType == t {
			values = append(values, m.Value)
		}
	}
	return values
}

// SyncFloScore calculates the Flo Score of the day of now in loc, saves it
// and returns it together with the score of the latest earlier day.
func (m *mongoDB) SyncFloScore(userID string, now time.Time, loc *time.Location) (*schema.FloScore, *schema.FloScore, error) {
	if loc == nil {
		loc = time.UTC
	}
	since := now.Add(-score.Window)
	date := now.In(loc).Format(score.DateFormat)

	var (
		readings []schema.Reading
		metrics  []schema.WearableMetric
		meds     []schema.MedicationLog
		previous *schema.FloScore
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		readings, err = m.GetReadings(userID, since, now, 0)
		return
	})
	g.Go(func() (err error) {
		metrics, err = m.GetWearableMetrics(userID, []schema.MetricType{schema.MetricSteps, schema.MetricSleepDuration}, since)
		return
	})
	g.Go(func() (err error) {
		meds, err = m.GetMedicationLogs(userID, since, now)
		return
	})
	g.Go(func() (err error) {
		previous, err = m.GetPreviousFloScore(userID, date)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("load flo score input: %w", err)
	}

	current := score.Calculate(userID, score.Input{
		Readings:       readings,
		Steps:          metricValues(metrics, schema.MetricSteps),
		SleepHours:     metricValues(metrics, schema.MetricSleepDuration),
		MedicationLogs: meds,
	}, previous, now, loc)

	if err := m.UpsertFloScore(current); err != nil {
		return nil, nil, err
	}

	log.WithField("prefix", mongoLogPrefix).WithFields(log.Fields{
		"user_id": userID,
		"date":    current.Date,
		"score":   current.Score,
	}).Debug("flo score synced")

	return &current, previous, nil
}

// SyncAlerts evaluates the alert rules for a user and saves the alerts which
// are not duplicates of recent unread ones. It returns the saved alerts.
func (m *mongoDB) SyncAlerts(userID string, now time.Time) ([]schema.Alert, error) {
	var (
		readings []schema.Reading
		existing []schema.Alert
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		readings, err = m.GetReadings(userID, now.Add(-alert.Window), now, 0)
		return
	})
	g.Go(func() (err error) {
		existing, err = m.GetRecentUnreadAlerts(userID, now.Add(-alert.DedupWindow))
		return
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load alert input: %w", err)
	}

	alerts := alert.Deduplicate(alert.Evaluate(readings, now), existing, now)
	for i := range alerts {
		alerts[i].ID = uuid.New().String()
		alerts[i].UserID = userID
	}

	if err := m.AddAlerts(alerts); err != nil {
		return nil, err
	}

	return alerts, nil
}
