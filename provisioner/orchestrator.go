// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provisioner

import (
	"context"

	"go.uber.org/zap"
)

// OrchestratorService ensures each EventBridge resource exists. Every method
// lists the existing resources first and only creates when no resource with
// the same name (case-insensitive) exists. Nothing is ever updated.
type OrchestratorService interface {
	EnsureConnection(ctx context.Context, name string) (*Connection, error)
	EnsureApiDestination(ctx context.Context, req ApiDestinationRequest) (*ApiDestination, error)
	EnsureEventBus(ctx context.Context, name string) (*EventBus, error)
	EnsureRule(ctx context.Context, req RuleRequest) (*Rule, error)
	EnsureBusSchedule(ctx context.Context, req BusScheduleRequest) (*Schedule, error)
	EnsureApiDestinationSchedule(ctx context.Context, req ApiDestinationScheduleRequest) (*Schedule, error)
}

type Connection struct {
	Name    string
	Arn     string
	State   string
	Created bool
}

type ApiDestination struct {
	Name     string
	Arn      string
	State    string
	Endpoint string
	Created  bool
}

type EventBus struct {
	Name    string
	Arn     string
	Created bool
}

type Rule struct {
	Name          string
	Arn           string
	EventBusName  string
	TargetID      string
	TargetCreated bool
	Created       bool
}

type Schedule struct {
	Name       string
	Arn        string
	Expression string
	TargetArn  string
	Created    bool
}

type orchestrator struct {
	eventBridgeClient EventBridgeClient
	schedulerClient   SchedulerClient
	gatewayResolver   GatewayResolverService
	apiKeySource      ApiKeySource
	logger            *zap.Logger
}

func newOrchestrator(eventBridgeClient EventBridgeClient, schedulerClient SchedulerClient, gatewayResolver GatewayResolverService, apiKeySource ApiKeySource, logger *zap.Logger) *orchestrator {
	return &orchestrator{
		eventBridgeClient: eventBridgeClient,
		schedulerClient:   schedulerClient,
		gatewayResolver:   gatewayResolver,
		apiKeySource:      apiKeySource,
		logger:            logger,
	}
}
