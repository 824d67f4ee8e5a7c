package score

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/bitmark-inc/flo-api/schema"
	"github.com/bitmark-inc/flo-api/utils"
)

const FloScoreCheckInterval = 24 * time.Hour

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// FloScoreWorkflow recalculates the Flo Score of a user once a day, or
// earlier when signaled, and syncs the alerts of the user.
func (s *FloScoreWorker) FloScoreWorkflow(ctx workflow.Context, userID string) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	signalChan := workflow.GetSignalChannel(ctx, utils.FloScoreSignalName)
	defer signalChan.Close()

	logger := workflow.GetLogger(ctx)
	selector := workflow.NewSelector(ctx)

	timerCancelCtx, cancelTimerHandler := workflow.WithCancel(ctx)
	timerFuture := workflow.NewTimer(timerCancelCtx, FloScoreCheckInterval)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		logger.Info("Start daily flo score update")
	})

	selector.AddReceive(signalChan, func(c workflow.Channel, more bool) {
		cancelTimerHandler()
		signalChan.Receive(ctx, nil)
		logger.Info("Start flo score update by signal")
	})

	selector.Select(ctx)

	var result ScoreResult
	if err := workflow.ExecuteActivity(ctx, s.CalculateFloScoreActivity, userID).Get(ctx, &result); err != nil {
		logger.Error("Fail to calculate flo score", zap.Error(err), zap.String("userID", userID))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, s.FloScoreWorkflow, userID)
	}

	if result.BandChanged {
		if err := workflow.ExecuteActivity(ctx, s.NotifyFloScoreActivity, userID, result.Score).Get(ctx, nil); err != nil {
			logger.Error("Fail to notify flo score change", zap.Error(err))
			sentry.CaptureException(err)
		}
	}

	alerts := make([]schema.Alert, 0)
	if err := workflow.ExecuteActivity(ctx, s.SyncAlertsActivity, userID).Get(ctx, &alerts); err != nil {
		logger.Error("Fail to sync alerts", zap.Error(err), zap.String("userID", userID))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, s.FloScoreWorkflow, userID)
	}

	critical := CriticalAlerts(alerts)
	if len(critical) > 0 {
		if err := workflow.ExecuteActivity(ctx, s.NotifyAlertsActivity, userID, critical).Get(ctx, nil); err != nil {
			logger.Error("Fail to notify critical alerts", zap.Error(err))
			sentry.CaptureException(err)
		}
	}

	return workflow.NewContinueAsNewError(ctx, s.FloScoreWorkflow, userID)
}

// CriticalAlerts filters the alerts of critical severity
func CriticalAlerts(alerts []schema.Alert) []schema.Alert {
	critical := make([]schema.Alert, 0)
	for _, a := range alerts {
		if a.Severity == schema.SeverityCritical {
			critical = append(critical, a)
		}
	}
	return critical
}
