package score

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/bitmark-inc/flo-api/background"
	"github.com/bitmark-inc/flo-api/external/onesignal"
	"github.com/bitmark-inc/flo-api/schema"
	floscore "github.com/bitmark-inc/flo-api/score"
)

// now is alias of `time.Now` so that tests can fix the clock.
// Do not run the test cases of this package in parallel.
var now = time.Now

// ScoreResult is the outcome of a flo score calculation
type ScoreResult struct {
	Score         int
	PreviousScore *int
	BandChanged   bool
}

// CalculateFloScoreActivity calculates and saves today's Flo Score of a user
// in the timezone of the user.
func (s *FloScoreWorker) CalculateFloScoreActivity(ctx context.Context, userID string) (*ScoreResult, error) {
	logger := activity.GetLogger(ctx)

	loc, err := background.AccountLocation(s.core, userID)
	if err != nil {
		return nil, err
	}

	current, previous, err := s.mongo.SyncFloScore(userID, now(), loc)
	if err != nil {
		return nil, err
	}

	result := &ScoreResult{Score: current.Score}
	if previous != nil {
		p := previous.Score
		result.PreviousScore = &p
		result.BandChanged = floscore.CheckBandChange(previous.Score, current.Score)
	}

	// a user hears about a band change at most once per local day
	if result.BandChanged {
		lastNudge, err := s.mongo.GetLastNudge(userID, schema.NudgeScoreBandChange)
		if err != nil {
			return nil, err
		}

		if sameDate(lastNudge, now(), loc) {
			logger.Info("Band change notified today", zap.String("userID", userID), zap.Time("lastNudge", lastNudge))
			result.BandChanged = false
		}
	}

	logger.Info("Flo score calculated",
		zap.String("userID", userID),
		zap.Int("score", current.Score),
		zap.Bool("bandChanged", result.BandChanged))

	return result, nil
}

func sameDate(a, b time.Time, loc *time.Location) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	y1, m1, d1 := a.In(loc).Date()
	y2, m2, d2 := b.In(loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// SyncAlertsActivity generates the alerts of a user and returns the new ones
func (s *FloScoreWorker) SyncAlertsActivity(ctx context.Context, userID string) ([]schema.Alert, error) {
	return s.mongo.SyncAlerts(userID, now())
}

func (s *FloScoreWorker) notify(ctx context.Context, userID, msgType string, data background.TemplateData, extra map[string]interface{}) error {
	logger := activity.GetLogger(ctx)

	headings, contents, err := background.LocalizedMessage(msgType, data)
	if err != nil {
		logger.Error("can not generate notification message", zap.String("type", msgType), zap.Error(err))
		return err
	}

	if err := s.NotificationCenter.NotifyAccountByText(userID, headings, contents, extra); err != nil {
		if !onesignal.IsErrAllPlayersNotSubscribed(err) {
			return err
		}
		logger.Warn("account is not subscribed in onesignal", zap.String("userID", userID))
	}

	return nil
}

// NotifyFloScoreActivity tells a user that the band of the Flo Score changed
func (s *FloScoreWorker) NotifyFloScoreActivity(ctx context.Context, userID string, current int) error {
	band := floscore.BandOf(current)
	if err := s.notify(ctx, userID, "score_band_change", func(lang string) map[string]interface{} {
		return map[string]interface{}{
			"Score": current,
			"Band":  background.BandName(lang, band),
		}
	}, map[string]interface{}{
		"notification_type": "FLO_SCORE_BAND_CHANGE",
		"score":             current,
		"band":              band,
	}); err != nil {
		return err
	}

	return s.mongo.UpdateLastNudge(userID, schema.NudgeScoreBandChange, now())
}

// NotifyAlertsActivity pushes the critical alerts to a user
func (s *FloScoreWorker) NotifyAlertsActivity(ctx context.Context, userID string, alerts []schema.Alert) error {
	for _, a := range alerts {
		msgType := "health_alert"
		var reading string
		if a.Type == schema.AlertCrisis {
			msgType = "crisis_alert"
			if r, err := s.mongo.GetLatestReading(userID); err == nil && r != nil {
				reading = fmt.Sprintf("%d/%d", r.Systolic, r.Diastolic)
			}
		}

		message := a.Message
		if err := s.notify(ctx, userID, msgType, func(string) map[string]interface{} {
			return map[string]interface{}{
				"Reading": reading,
				"Message": message,
			}
		}, map[string]interface{}{
			"notification_type": "HEALTH_ALERT",
			"alert_id":          a.ID,
			"alert_type":        a.Type,
		}); err != nil {
			return err
		}
	}

	return nil
}
