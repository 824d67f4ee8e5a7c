package score

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

const TaskListName = utils.ScoreTaskListName

type FloScoreWorker struct {
	background.Background
	domain string
	mongo  store.MongoStore
	core   store.FloCore
}

func NewFloScoreWorker(domain string, mongo store.MongoStore, core store.FloCore, nc background.NotificationCenter) *FloScoreWorker {
	return &FloScoreWorker{
		Background: background.Background{NotificationCenter: nc},
		domain:     domain,
		mongo:      mongo,
		core:       core,
	}
}

func (s *FloScoreWorker) Register() {
	workflow.RegisterWithOptions(s.FloScoreWorkflow, workflow.RegisterOptions{Name: utils.FloScoreWorkflowName})

	activity.RegisterWithOptions(s.CalculateFloScoreActivity, activity.RegisterOptions{Name: "CalculateFloScoreActivity"})
	activity.RegisterWithOptions(s.SyncAlertsActivity, activity.RegisterOptions{Name: "SyncAlertsActivity"})
	activity.RegisterWithOptions(s.NotifyFloScoreActivity, activity.RegisterOptions{Name: "NotifyFloScoreActivity"})
	activity.RegisterWithOptions(s.NotifyAlertsActivity, activity.RegisterOptions{Name: "NotifyAlertsActivity"})
}

func (s *FloScoreWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	workerOptions := worker.Options{
		Logger:       logger,
		MetricsScope: tally.NewTestScope(TaskListName, map[string]string{}),
	}

	worker := worker.New(
		service,
		s.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
