package utils

import (
	"context"
	"fmt"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/bitmark-inc/flo-api/external/cadence"
)

// The names are duplicated from the background packages, which import utils.
const (
	ScoreTaskListName = "flo-score-tasks"
	NudgeTaskListName = "flo-nudge-tasks"

	FloScoreWorkflowName      = "FloScoreWorkflow"
	FloScoreSignalName        = "floScoreCheckSignal"
	ReminderNudgeWorkflowName = "ReminderNudgeWorkflow"
	ReminderNudgeSignalName   = "reminderCheckSignal"
)

func FloScoreWorkflowID(userID string) string {
	return fmt.Sprintf("flo-score-%s", userID)
}

func ReminderNudgeWorkflowID(userID string) string {
	return fmt.Sprintf("reminder-nudge-%s", userID)
}

// TriggerFloScoreUpdate is a helper function to send a signal to
// trigger the workflow to recalculate the Flo Score of users.
func TriggerFloScoreUpdate(client cadence.WorkflowClient, c context.Context, userIDs []string) error {
	for _, u := range userIDs {
		if _, err := client.SignalWithStartWorkflow(c,
			FloScoreWorkflowID(u), FloScoreSignalName, nil,
			cadenceClient.StartWorkflowOptions{
				ID:                           FloScoreWorkflowID(u),
				TaskList:                     ScoreTaskListName,
				ExecutionStartToCloseTimeout: 25 * time.Hour,
				WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
			}, FloScoreWorkflowName, u); err != nil {
			return err
		}
	}
	return nil
}

// TriggerReminderNudge makes sure the hourly reminder workflow of a user is running
func TriggerReminderNudge(client cadence.WorkflowClient, c context.Context, userID string) error {
	_, err := client.SignalWithStartWorkflow(c,
		ReminderNudgeWorkflowID(userID), ReminderNudgeSignalName, nil,
		cadenceClient.StartWorkflowOptions{
			ID:                           ReminderNudgeWorkflowID(userID),
			TaskList:                     NudgeTaskListName,
			ExecutionStartToCloseTimeout: 2 * time.Hour,
			WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
		}, ReminderNudgeWorkflowName, userID)
	return err
}
