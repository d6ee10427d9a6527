// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provisioner

import (
	"context"
	"fmt"

	tt "github.com/aws-samples/eventbridge-api-destination-provisioner/types"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	PropConnectionArn     string = "ConnectionArn"
	PropApiDestinationArn string = "ApiDestinationArn"
	PropEventBusArn       string = "EventBusArn"
	PropRuleArn           string = "RuleArn"
	PropScheduleArn       string = "ScheduleArn"
	PropScheduleName      string = "ScheduleName"
)

// ClientsProvider builds the clients for the region a plan targets.
type ClientsProvider func(ctx context.Context, region string) (*Clients, error)

// Handler implements CloudFormation custom resource extension interface.
type Handler struct {
	clientsProvider ClientsProvider
	newLogger       func(event *cfn.Event) *zap.Logger
}

func NewHandler(clientsProvider ClientsProvider) *Handler {
	return &Handler{
		clientsProvider: clientsProvider,
		newLogger:       initializeLogger,
	}
}

// Entrypoint for handling custom resource managed by this extension.
func (h *Handler) Handle(ctx context.Context, event cfn.Event) (string, map[string]interface{}, error) {
	var physicalResourceID string
	var props map[string]interface{}
	var err error

	logger := h.newLogger(&event)
	defer logger.Sync()
	logger.Info("Start", zap.Any("ResourceProperties", event.ResourceProperties), zap.Any("OldResourceProperties", event.OldResourceProperties))

	switch event.RequestType {
	case cfn.RequestCreate:
		// CFN requires PhysicalResourceID even for error results.
		physicalResourceID, props, err = h.provision(ctx, event, uuid.NewString(), logger)
	case cfn.RequestUpdate:
		physicalResourceID, props, err = h.provision(ctx, event, event.PhysicalResourceID, logger)
	case cfn.RequestDelete:
		// Provisioned resources are left in place.
		logger.Info("Delete requested, nothing to remove")
		physicalResourceID = event.PhysicalResourceID
	default:
		err = fmt.Errorf("unknown request type: %v", event.RequestType)
	}
	return physicalResourceID, props, logAndEchoError(err, logger)
}

func (h *Handler) provision(ctx context.Context, event cfn.Event, rid string, logger *zap.Logger) (string, map[string]interface{}, error) {
	plan, err := tt.NewPlan(event.ResourceProperties)
	if err != nil {
		return rid, nil, errors.WithStack(err)
	}
	clients, err := h.clientsProvider(ctx, plan.Region)
	if err != nil {
		return rid, nil, errors.WithStack(err)
	}
	res := NewSequencer(clients, plan, logger).Run(ctx)

	props := make(map[string]interface{})
	if res.Connection != nil {
		props[PropConnectionArn] = res.Connection.Arn
	}
	if res.ApiDestination != nil {
		props[PropApiDestinationArn] = res.ApiDestination.Arn
	}
	if res.EventBus != nil {
		props[PropEventBusArn] = res.EventBus.Arn
	}
	if res.Rule != nil {
		props[PropRuleArn] = res.Rule.Arn
	}
	if res.Schedule != nil {
		props[PropScheduleArn] = res.Schedule.Arn
		props[PropScheduleName] = res.Schedule.Name
	}
	// A stack never completes with missing resources.
	if n := res.Failed(); n > 0 {
		return rid, props, errors.Errorf("%d provisioning step(s) failed", n)
	}
	return rid, props, nil
}

func logAndEchoError(err error, logger *zap.Logger) error {
	if err == nil {
		return err
	}
	logger.Error("Failed to process request", zap.Error(err))
	var oerr *smithy.OperationError
	if errors.As(err, &oerr) {
		if oerr.Unwrap() != nil {
			logger.Error("Smithy Operation Error", zap.Error(oerr))
		}
	}
	return err
}

func initializeLogger(event *cfn.Event) *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger.With(
		zap.String("StackID", event.StackID),
		zap.String("LogicalResourceID", event.LogicalResourceID),
		zap.String("PhysicalResourceID", event.PhysicalResourceID),
		zap.String("RequestID", event.RequestID),
		zap.String("ResourceType", event.ResourceType),
		zap.String("RequestType", string(event.RequestType)),
	)
}
