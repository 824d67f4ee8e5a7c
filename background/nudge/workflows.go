package nudge

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/bitmark-inc/flo-api/schema"
	"github.com/bitmark-inc/flo-api/utils"
)

const (
	ReminderCheckInterval = time.Hour
)

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// ReminderNudgeWorkflow checks the reminders of a user every hour and pushes
// the one of the highest priority. Signals only keep the workflow running.
func (n *NudgeWorker) ReminderNudgeWorkflow(ctx workflow.Context, userID string) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	signalChan := workflow.GetSignalChannel(ctx, utils.ReminderNudgeSignalName)
	defer signalChan.Close()

	logger := workflow.GetLogger(ctx)
	selector := workflow.NewSelector(ctx)

	fired := false
	timerFuture := workflow.NewTimer(ctx, ReminderCheckInterval)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		fired = true
		logger.Info("Start periodically reminder check")
	})

	selector.AddReceive(signalChan, func(c workflow.Channel, more bool) {
		signalChan.Receive(ctx, nil)
	})

	for !fired {
		selector.Select(ctx)
	}

	var reminder *schema.Reminder
	if err := workflow.ExecuteActivity(ctx, n.PendingReminderActivity, userID).Get(ctx, &reminder); err != nil {
		logger.Error("Fail to check reminders for user", zap.Error(err), zap.String("userID", userID))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, n.ReminderNudgeWorkflow, userID)
	}

	if reminder != nil {
		if err := workflow.ExecuteActivity(ctx, n.NotifyReminderActivity, userID, *reminder).Get(ctx, nil); err != nil {
			logger.Error("Fail to notify user", zap.Error(err))
			sentry.CaptureException(err)
		}
	}

	return workflow.NewContinueAsNewError(ctx, n.ReminderNudgeWorkflow, userID)
}
