package nudge

import (
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/bitmark-inc/flo-api/background"
	"github.com/bitmark-inc/flo-api/store"
	"github.com/bitmark-inc/flo-api/utils"
)

const TaskListName = utils.NudgeTaskListName

type NudgeWorker struct {
	background.Background
	domain string
	mongo  store.MongoStore
	core   store.FloCore
}

func NewNudgeWorker(domain string, mongo store.MongoStore, core store.FloCore, nc background.NotificationCenter) *NudgeWorker {
	return &NudgeWorker{
		Background: background.Background{NotificationCenter: nc},
		domain:     domain,
		mongo:      mongo,
		core:       core,
	}
}

func (n *NudgeWorker) Register() {
	workflow.RegisterWithOptions(n.ReminderNudgeWorkflow, workflow.RegisterOptions{Name: utils.ReminderNudgeWorkflowName})

	activity.RegisterWithOptions(n.PendingReminderActivity, activity.RegisterOptions{Name: "PendingReminderActivity"})
	activity.RegisterWithOptions(n.NotifyReminderActivity, activity.RegisterOptions{Name: "NotifyReminderActivity"})
}

func (n *NudgeWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	workerOptions := worker.Options{
		Logger:       logger,
		MetricsScope: tally.NewTestScope(TaskListName, map[string]string{}),
	}

	worker := worker.New(
		service,
		n.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
