package cadence

import (
	"context"

	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/client"
	"go.uber.org/cadence/workflow"
	"go.uber.org/yarpc"
	"go.uber.org/yarpc/transport/tchannel"
)

const (
	ClientName     = "flo-worker"
	CadenceService = "cadence-frontend"
)

//go:generate mockgen -source=client.go -destination=../../mocks/cadence.go -package=mocks

// WorkflowClient is the part of the cadence client the api relies on
type WorkflowClient interface {
	StartWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (*workflow.Execution, error)
	SignalWithStartWorkflow(ctx context.Context,
		workflowID string, signalName string, signalArg interface{},
		options client.StartWorkflowOptions, workflow interface{}, workflowArgs ...interface{}) (*workflow.Execution, error)
}

type CadenceClient struct {
	client client.Client
}

func BuildCadenceServiceClient(hostPort string) workflowserviceclient.Interface {
	ch, err := tchannel.NewChannelTransport(tchannel.ServiceName(ClientName))
	if err != nil {
		panic("Failed to setup tchannel")
	}
	dispatcher := yarpc.NewDispatcher(yarpc.Config{
		Name: ClientName,
		Outbounds: yarpc.Outbounds{
			CadenceService: {Unary: ch.NewSingleOutbound(hostPort)},
		},
	})
	if err := dispatcher.Start(); err != nil {
		panic("Failed to start dispatcher")
	}

	return workflowserviceclient.New(dispatcher.ClientConfig(CadenceService))
}

// NewClient returns a workflow client of a domain whose payloads are msgpack encoded
func NewClient(service workflowserviceclient.Interface, domain string) *CadenceClient {
	return &CadenceClient{
		client: client.NewClient(
			service,
			domain,
			&client.Options{
				MetricsScope:  tally.NoopScope,
				DataConverter: NewMsgPackDataConverter(),
			},
		),
	}
}

func (c *CadenceClient) StartWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (*workflow.Execution, error) {
	return c.client.StartWorkflow(ctx, options, workflow, args...)
}

func (c *CadenceClient) SignalWithStartWorkflow(ctx context.Context,
	workflowID string, signalName string, signalArg interface{},
	options client.StartWorkflowOptions, workflow interface{}, workflowArgs ...interface{}) (*workflow.Execution, error) {
	return c.client.SignalWithStartWorkflow(ctx, workflowID, signalName, signalArg, options, workflow, workflowArgs...)
}
