package nudge

import (
	"context"
	"time"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/bitmark-inc/flo-api/background"
	"github.com/bitmark-inc/flo-api/external/onesignal"
	"github.com/bitmark-inc/flo-api/reminder"
	"github.com/bitmark-inc/flo-api/schema"
)

const ReminderNudgeInterval = 8 * time.Hour

// now is alias of `time.Now` so that tests can fix the clock.
// Do not run the test cases of this package in parallel.
var now = time.Now

// PendingReminderActivity returns the reminder of the highest priority for a
// user, or nil if there is nothing to push. A user is nudged at most once
// every eight hours.
func (n *NudgeWorker) PendingReminderActivity(ctx context.Context, userID string) (*schema.Reminder, error) {
	logger := activity.GetLogger(ctx)
	current := now()

	lastNudge, err := n.mongo.GetLastNudge(userID, schema.NudgeReadingReminder)
	if err != nil {
		return nil, err
	}

	if current.Sub(lastNudge) < ReminderNudgeInterval {
		logger.Info("reminder nudged recently", zap.String("userID", userID), zap.Time("lastNudge", lastNudge))
		return nil, nil
	}

	loc, err := background.AccountLocation(n.core, userID)
	if err != nil {
		return nil, err
	}

	readings, err := n.mongo.GetReadings(userID, current.Add(-reminder.HistoryWindow), current, 0)
	if err != nil {
		return nil, err
	}

	reminders := reminder.FromReadings(readings, current, loc)
	if len(reminders) == 0 {
		return nil, nil
	}

	return &reminders[0], nil
}

// NotifyReminderActivity pushes a reminder to a user
func (n *NudgeWorker) NotifyReminderActivity(ctx context.Context, userID string, r schema.Reminder) error {
	logger := activity.GetLogger(ctx)

	headings, contents, err := background.LocalizedMessage("reading_reminder", func(string) map[string]interface{} {
		return map[string]interface{}{
			"Title":   r.Title,
			"Message": r.Message,
		}
	})
	if err != nil {
		logger.Error("can not generate reminder message", zap.Error(err))
		return err
	}

	if err := n.NotificationCenter.NotifyAccountByText(userID, headings, contents,
		map[string]interface{}{
			"notification_type": "READING_REMINDER",
			"reminder_id":       r.ID,
			"priority":          r.Priority,
		},
	); err != nil {
		if !onesignal.IsErrAllPlayersNotSubscribed(err) {
			return err
		}
		logger.Warn("account is not subscribed in onesignal", zap.String("userID", userID))
	}

	return n.mongo.UpdateLastNudge(userID, schema.NudgeReadingReminder, now())
}
