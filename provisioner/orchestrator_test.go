// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provisioner

import (
	"context"
	"strings"
	"testing"

	"github.com/aws-samples/eventbridge-api-destination-provisioner/provisioner/mocks"
	tt "github.com/aws-samples/eventbridge-api-destination-provisioner/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigatewayv2"
	agtypes "github.com/aws/aws-sdk-go-v2/service/apigatewayv2/types"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	ebtypes "github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/aws/aws-sdk-go-v2/service/scheduler"
	schedtypes "github.com/aws/aws-sdk-go-v2/service/scheduler/types"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testConnectionArn  = "arn:aws:events:us-east-2:123456789012:connection/event-bridge-connection/1"
	testDestinationArn = "arn:aws:events:us-east-2:123456789012:api-destination/event-bridge-api-dest/1"
	testBusArn         = "arn:aws:events:us-east-2:123456789012:event-bus/invoke-api-dest-rule-bus"
	testRuleArn        = "arn:aws:events:us-east-2:123456789012:rule/invoke-api-dest-rule-bus/invoke-api-dest-rule"
	testRuleRoleArn    = "arn:aws:iam::123456789012:role/scheduler-invoke-api-destination-role"
	testSchedRoleArn   = "arn:aws:iam::123456789012:role/scheduler-putevents-sqs-role"
	testEndpoint       = "https://abc.execute-api.us-east-2.amazonaws.com"
)

type orchestratorMocks struct {
	eventBridge    *mocks.MockEventBridgeClient
	scheduler      *mocks.MockSchedulerClient
	apiGateway     *mocks.MockApiGatewayClient
	secretsManager *mocks.MockSecretsManagerClient
}

func newTestOrchestrator(ctrl *gomock.Controller, logger *zap.Logger, secretID string) (*orchestrator, *orchestratorMocks) {
	m := &orchestratorMocks{
		eventBridge:    mocks.NewMockEventBridgeClient(ctrl),
		scheduler:      mocks.NewMockSchedulerClient(ctrl),
		apiGateway:     mocks.NewMockApiGatewayClient(ctrl),
		secretsManager: mocks.NewMockSecretsManagerClient(ctrl),
	}
	o := newOrchestrator(
		m.eventBridge,
		m.scheduler,
		newGatewayResolver(m.apiGateway, "", "", logger),
		newApiKeySource(m.secretsManager, secretID, logger),
		logger,
	)
	return o, m
}

func expectGateway(m *orchestratorMocks) {
	m.apiGateway.EXPECT().GetApis(gomock.Any(), gomock.Any()).Return(&apigatewayv2.GetApisOutput{
		Items: []agtypes.Api{{Name: aws.String("transfers-api"), ApiEndpoint: aws.String(testEndpoint), ApiId: aws.String("abc")}},
	}, nil).AnyTimes()
}

func TestEnsureConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	ctx := context.TODO()

	t.Run("Absent connection is created with a fresh key", func(t *testing.T) {
		o, m := newTestOrchestrator(ctrl, logger, "")
		m.eventBridge.EXPECT().ListConnections(gomock.Any(), gomock.Any()).Return(&eventbridge.ListConnectionsOutput{
			Connections: []ebtypes.Connection{{Name: aws.String("other-connection")}},
		}, nil)
		var input *eventbridge.CreateConnectionInput
		m.eventBridge.EXPECT().CreateConnection(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *eventbridge.CreateConnectionInput, _ ...func(*eventbridge.Options)) (*eventbridge.CreateConnectionOutput, error) {
				input = in
				return &eventbridge.CreateConnectionOutput{
					ConnectionArn:   aws.String(testConnectionArn),
					ConnectionState: ebtypes.ConnectionStateAuthorizing,
				}, nil
			})
		c, err := o.EnsureConnection(ctx, "event-bridge-connection")
		require.NoError(t, err)
		assert.Equal(t, &Connection{Name: "event-bridge-connection", Arn: testConnectionArn, State: "AUTHORIZING", Created: true}, c)
		require.NotNil(t, input)
		assert.Equal(t, ebtypes.ConnectionAuthorizationTypeApiKey, input.AuthorizationType)
		assert.Equal(t, "x-api-key", aws.ToString(input.AuthParameters.ApiKeyAuthParameters.ApiKeyName))
		assert.NotEmpty(t, aws.ToString(input.AuthParameters.ApiKeyAuthParameters.ApiKeyValue))
	})

	t.Run("Existing connection is described and never recreated", func(t *testing.T) {
		o, m := newTestOrchestrator(ctrl, logger, "api-key")
		gomock.InOrder(
			m.eventBridge.EXPECT().ListConnections(gomock.Any(), &eventbridge.ListConnectionsInput{}).Return(&eventbridge.ListConnectionsOutput{
				Connections: []ebtypes.Connection{{Name: aws.String("unrelated")}},
				NextToken:   aws.String("p2"),
			}, nil),
			m.eventBridge.EXPECT().ListConnections(gomock.Any(), &eventbridge.ListConnectionsInput{NextToken: aws.String("p2")}).Return(&eventbridge.ListConnectionsOutput{
				Connections: []ebtypes.Connection{{Name: aws.String("Event-Bridge-Connection"), ConnectionArn: aws.String(testConnectionArn)}},
			}, nil),
		)
		m.eventBridge.EXPECT().DescribeConnection(gomock.Any(), &eventbridge.DescribeConnectionInput{Name: aws.String("Event-Bridge-Connection")}).
			Return(&eventbridge.DescribeConnectionOutput{ConnectionArn: aws.String(testConnectionArn), ConnectionState: ebtypes.ConnectionStateAuthorized}, nil)
		m.eventBridge.EXPECT().CreateConnection(gomock.Any(), gomock.Any()).Times(0)
		m.secretsManager.EXPECT().GetSecretValue(gomock.Any(), gomock.Any()).Times(0)
		c, err := o.EnsureConnection(ctx, "event-bridge-connection")
		require.NoError(t, err)
		assert.False(t, c.Created)
		assert.Equal(t, "AUTHORIZED", c.State)
		assert.Equal(t, testConnectionArn, c.Arn)
	})

	t.Run("Listing failure", func(t *testing.T) {
		o, m := newTestOrchestrator(ctrl, logger, "")
		m.eventBridge.EXPECT().ListConnections(gomock.Any(), gomock.Any()).Return(nil, errors.New("throttled"))
		_, err := o.EnsureConnection(ctx, "event-bridge-connection")
		assert.True(t, tt.IsProviderError(err))
	})
}

func TestEnsureApiDestination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	ctx := context.TODO()
	req := ApiDestinationRequest{Name: "event-bridge-api-dest", ConnectionArn: testConnectionArn}

	t.Run("Absent destination is created", func(t *testing.T) {
		o, m := newTestOrchestrator(ctrl, logger, "")
		expectGateway(m)
		m.eventBridge.EXPECT().ListApiDestinations(gomock.Any(), gomock.Any()).Return(&eventbridge.ListApiDestinationsOutput{}, nil)
		m.eventBridge.EXPECT().CreateApiDestination(gomock.Any(), &eventbridge.CreateApiDestinationInput{
			Name:                         aws.String("event-bridge-api-dest"),
			ConnectionArn:                aws.String(testConnectionArn),
			InvocationEndpoint:           aws.String(testEndpoint + "/dev/log"),
			HttpMethod:                   ebtypes.ApiDestinationHttpMethodPost,
			Description:                  aws.String("API Destination to call external API"),
			InvocationRateLimitPerSecond: aws.Int32(5),
		}).Return(&eventbridge.CreateApiDestinationOutput{
			ApiDestinationArn:   aws.String(testDestinationArn),
			ApiDestinationState: ebtypes.ApiDestinationStateActive,
		}, nil)
		d, err := o.EnsureApiDestination(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, &ApiDestination{
			Name:     "event-bridge-api-dest",
			Arn:      testDestinationArn,
			State:    "ACTIVE",
			Endpoint: testEndpoint + "/dev/log",
			Created:  true,
		}, d)
	})

	t.Run("Existing destination is reused", func(t *testing.T) {
		o, m := newTestOrchestrator(ctrl, logger, "")
		expectGateway(m)
		m.eventBridge.EXPECT().ListApiDestinations(gomock.Any(), gomock.Any()).Return(&eventbridge.ListApiDestinationsOutput{
			ApiDestinations: []ebtypes.ApiDestination{{
				Name:                aws.String("EVENT-BRIDGE-API-DEST"),
				ApiDestinationArn:   aws.String(testDestinationArn),
				ApiDestinationState: ebtypes.ApiDestinationStateActive,
				InvocationEndpoint:  aws.String(testEndpoint + "/dev/log"),
			}},
		}, nil)
		m.eventBridge.EXPECT().CreateApiDestination(gomock.Any(), gomock.Any()).Times(0)
		d, err := o.EnsureApiDestination(ctx, req)
		require.NoError(t, err)
		assert.False(t, d.Created)
		assert.Equal(t, testDestinationArn, d.Arn)
	})

	t.Run("Missing HTTP API", func(t *testing.T) {
		o, m := newTestOrchestrator(ctrl, logger, "")
		m.apiGateway.EXPECT().GetApis(gomock.Any(), gomock.Any()).Return(&apigatewayv2.GetApisOutput{}, nil)
		m.eventBridge.EXPECT().ListApiDestinations(gomock.Any(), gomock.Any()).Times(0)
		_, err := o.EnsureApiDestination(ctx, req)
		assert.True(t, errors.Is(err, tt.ErrNotFound))
	})

	t.Run("Absent destination without connection", func(t *testing.T) {
		o, m := newTestOrchestrator(ctrl, logger, "")
		expectGateway(m)
		m.eventBridge.EXPECT().ListApiDestinations(gomock.Any(), gomock.Any()).Return(&eventbridge.ListApiDestinationsOutput{}, nil)
		m.eventBridge.EXPECT().CreateApiDestination(gomock.Any(), gomock.Any()).Times(0)
		_, err := o.EnsureApiDestination(ctx, ApiDestinationRequest{Name: "event-bridge-api-dest"})
		assert.True(t, errors.Is(err, tt.ErrInvalidArgument))
	})
}

func TestEnsureEventBus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	ctx := context.TODO()
	type testCase struct {
		name        string
		listed      []ebtypes.EventBus
		createErr   error
		expectWrite bool
		expected    *EventBus
		expectedErr error
	}
	cases := []testCase{
		{
			name:        "Absent bus is created",
			listed:      []ebtypes.EventBus{{Name: aws.String("default")}},
			expectWrite: true,
			expected:    &EventBus{Name: "invoke-api-dest-rule-bus", Arn: testBusArn, Created: true},
		},
		{
			name:     "Existing bus is reused",
			listed:   []ebtypes.EventBus{{Name: aws.String("Invoke-Api-Dest-Rule-Bus"), Arn: aws.String(testBusArn)}},
			expected: &EventBus{Name: "Invoke-Api-Dest-Rule-Bus", Arn: testBusArn},
		},
		{
			name:        "Bus created concurrently",
			expectWrite: true,
			createErr:   &ebtypes.ResourceAlreadyExistsException{Message: aws.String("exists")},
			expectedErr: tt.ErrAlreadyExists,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o, m := newTestOrchestrator(ctrl, logger, "")
			m.eventBridge.EXPECT().ListEventBuses(gomock.Any(), gomock.Any()).Return(&eventbridge.ListEventBusesOutput{EventBuses: c.listed}, nil)
			if c.expectWrite {
				var out *eventbridge.CreateEventBusOutput
				if c.createErr == nil {
					out = &eventbridge.CreateEventBusOutput{EventBusArn: aws.String(testBusArn)}
				}
				m.eventBridge.EXPECT().CreateEventBus(gomock.Any(), &eventbridge.CreateEventBusInput{Name: aws.String("invoke-api-dest-rule-bus")}).Return(out, c.createErr)
			}
			b, err := o.EnsureEventBus(ctx, "invoke-api-dest-rule-bus")
			if c.expectedErr != nil {
				assert.True(t, errors.Is(err, c.expectedErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expected, b)
		})
	}
}

func TestEnsureRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	ctx := context.TODO()
	req := RuleRequest{
		Name:              "invoke-api-dest-rule",
		EventBusName:      "invoke-api-dest-rule-bus",
		ApiDestinationArn: testDestinationArn,
		RoleArn:           testRuleRoleArn,
	}
	putTargets := &eventbridge.PutTargetsInput{
		Rule:         aws.String("invoke-api-dest-rule"),
		EventBusName: aws.String("invoke-api-dest-rule-bus"),
		Targets: []ebtypes.Target{{
			Id:        aws.String("ApiDestinationTarget"),
			Arn:       aws.String(testDestinationArn),
			RoleArn:   aws.String(testRuleRoleArn),
			InputPath: aws.String("$.detail"),
		}},
	}
	existingRule := &eventbridge.ListRulesOutput{Rules: []ebtypes.Rule{{
		Name: aws.String("invoke-api-dest-rule"),
		Arn:  aws.String(testRuleArn),
	}}}

	t.Run("Absent rule is created with its target", func(t *testing.T) {
		o, m := newTestOrchestrator(ctrl, logger, "")
		m.eventBridge.EXPECT().ListRules(gomock.Any(), &eventbridge.ListRulesInput{EventBusName: aws.String("invoke-api-dest-rule-bus")}).
			Return(&eventbridge.ListRulesOutput{}, nil)
		gomock.InOrder(
			m.eventBridge.EXPECT().PutRule(gomock.Any(), &eventbridge.PutRuleInput{
				Name:         aws.String("invoke-api-dest-rule"),
				EventBusName: aws.String("invoke-api-dest-rule-bus"),
				EventPattern: aws.String(`{"source":["com.app.scheduler"]}`),
				State:        ebtypes.RuleStateEnabled,
			}).Return(&eventbridge.PutRuleOutput{RuleArn: aws.String(testRuleArn)}, nil),
			m.eventBridge.EXPECT().PutTargets(gomock.Any(), putTargets).Return(&eventbridge.PutTargetsOutput{}, nil),
		)
		m.eventBridge.EXPECT().ListTargetsByRule(gomock.Any(), gomock.Any()).Times(0)
		r, err := o.EnsureRule(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, &Rule{
			Name:          "invoke-api-dest-rule",
			Arn:           testRuleArn,
			EventBusName:  "invoke-api-dest-rule-bus",
			TargetID:      "ApiDestinationTarget",
			TargetCreated: true,
			Created:       true,
		}, r)
	})

	t.Run("Existing rule with target is left alone", func(t *testing.T) {
		o, m := newTestOrchestrator(ctrl, logger, "")
		m.eventBridge.EXPECT().ListRules(gomock.Any(), gomock.Any()).Return(existingRule, nil)
		m.eventBridge.EXPECT().ListTargetsByRule(gomock.Any(), gomock.Any()).Return(&eventbridge.ListTargetsByRuleOutput{
			Targets: []ebtypes.Target{{Id: aws.String("ApiDestinationTarget"), Arn: aws.String(testDestinationArn)}},
		}, nil)
		m.eventBridge.EXPECT().PutRule(gomock.Any(), gomock.Any()).Times(0)
		m.eventBridge.EXPECT().PutTargets(gomock.Any(), gomock.Any()).Times(0)
		r, err := o.EnsureRule(ctx, req)
		require.NoError(t, err)
		assert.False(t, r.Created)
		assert.False(t, r.TargetCreated)
		assert.Equal(t, testRuleArn, r.Arn)
	})

	t.Run("Existing rule without target gets only the target", func(t *testing.T) {
		o, m := newTestOrchestrator(ctrl, logger, "")
		m.eventBridge.EXPECT().ListRules(gomock.Any(), gomock.Any()).Return(existingRule, nil)
		m.eventBridge.EXPECT().ListTargetsByRule(gomock.Any(), &eventbridge.ListTargetsByRuleInput{
			Rule:         aws.String("invoke-api-dest-rule"),
			EventBusName: aws.String("invoke-api-dest-rule-bus"),
		}).Return(&eventbridge.ListTargetsByRuleOutput{
			Targets: []ebtypes.Target{{Id: aws.String("SomethingElse")}},
		}, nil)
		m.eventBridge.EXPECT().PutRule(gomock.Any(), gomock.Any()).Times(0)
		m.eventBridge.EXPECT().PutTargets(gomock.Any(), putTargets).Return(&eventbridge.PutTargetsOutput{}, nil)
		r, err := o.EnsureRule(ctx, req)
		require.NoError(t, err)
		assert.False(t, r.Created)
		assert.True(t, r.TargetCreated)
	})

	t.Run("Rejected target entry", func(t *testing.T) {
		o, m := newTestOrchestrator(ctrl, logger, "")
		m.eventBridge.EXPECT().ListRules(gomock.Any(), gomock.Any()).Return(&eventbridge.ListRulesOutput{}, nil)
		m.eventBridge.EXPECT().PutRule(gomock.Any(), gomock.Any()).Return(&eventbridge.PutRuleOutput{RuleArn: aws.String(testRuleArn)}, nil)
		m.eventBridge.EXPECT().PutTargets(gomock.Any(), gomock.Any()).Return(&eventbridge.PutTargetsOutput{
			FailedEntryCount: 1,
			FailedEntries: []ebtypes.PutTargetsResultEntry{{
				TargetId:     aws.String("ApiDestinationTarget"),
				ErrorCode:    aws.String("ValidationException"),
				ErrorMessage: aws.String("role cannot be assumed"),
			}},
		}, nil)
		_, err := o.EnsureRule(ctx, req)
		require.Error(t, err)
		assert.True(t, tt.IsProviderError(err))
		assert.Contains(t, err.Error(), "role cannot be assumed")
	})

	t.Run("Missing destination ARN fails the target", func(t *testing.T) {
		o, m := newTestOrchestrator(ctrl, logger, "")
		m.eventBridge.EXPECT().ListRules(gomock.Any(), gomock.Any()).Return(&eventbridge.ListRulesOutput{}, nil)
		m.eventBridge.EXPECT().PutRule(gomock.Any(), gomock.Any()).Return(&eventbridge.PutRuleOutput{RuleArn: aws.String(testRuleArn)}, nil)
		m.eventBridge.EXPECT().PutTargets(gomock.Any(), gomock.Any()).Times(0)
		noDest := req
		noDest.ApiDestinationArn = ""
		_, err := o.EnsureRule(ctx, noDest)
		assert.True(t, errors.Is(err, tt.ErrInvalidArgument))
	})
}

func TestEnsureBusSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	ctx := context.TODO()
	req := BusScheduleRequest{
		Name:         "event-schedule-bus",
		EventBusName: "invoke-api-dest-rule-bus",
		Region:       "us-east-2",
		AccountID:    "123456789012",
		RoleArn:      testSchedRoleArn,
	}

	t.Run("Absent schedule targets the bus", func(t *testing.T) {
		o, m := newTestOrchestrator(ctrl, logger, "")
		m.scheduler.EXPECT().ListSchedules(gomock.Any(), &scheduler.ListSchedulesInput{GroupName: aws.String("default")}).
			Return(&scheduler.ListSchedulesOutput{}, nil)
		m.scheduler.EXPECT().CreateSchedule(gomock.Any(), &scheduler.CreateScheduleInput{
			Name:               aws.String("event-schedule-bus"),
			GroupName:          aws.String("default"),
			ScheduleExpression: aws.String("rate(1 minutes)"),
			FlexibleTimeWindow: &schedtypes.FlexibleTimeWindow{Mode: schedtypes.FlexibleTimeWindowModeOff},
			State:              schedtypes.ScheduleStateEnabled,
			Target: &schedtypes.Target{
				Arn:     aws.String(testBusArn),
				RoleArn: aws.String(testSchedRoleArn),
				Input:   aws.String(`{"message":"Scheduler Calling API"}`),
				EventBridgeParameters: &schedtypes.EventBridgeParameters{
					DetailType: aws.String("ScheduledEvent"),
					Source:     aws.String("com.app.scheduler"),
				},
			},
		}).Return(&scheduler.CreateScheduleOutput{ScheduleArn: aws.String("arn:aws:scheduler:us-east-2:123456789012:schedule/default/event-schedule-bus")}, nil)
		s, err := o.EnsureBusSchedule(ctx, req)
		require.NoError(t, err)
		assert.True(t, s.Created)
		assert.Equal(t, testBusArn, s.TargetArn)
		assert.Equal(t, "rate(1 minutes)", s.Expression)
	})

	t.Run("Existing schedule is reused", func(t *testing.T) {
		o, m := newTestOrchestrator(ctrl, logger, "")
		m.scheduler.EXPECT().ListSchedules(gomock.Any(), gomock.Any()).Return(&scheduler.ListSchedulesOutput{
			Schedules: []schedtypes.ScheduleSummary{{
				Name:   aws.String("event-schedule-bus"),
				Arn:    aws.String("arn:aws:scheduler:us-east-2:123456789012:schedule/default/event-schedule-bus"),
				Target: &schedtypes.TargetSummary{Arn: aws.String(testBusArn)},
			}},
		}, nil)
		m.scheduler.EXPECT().CreateSchedule(gomock.Any(), gomock.Any()).Times(0)
		s, err := o.EnsureBusSchedule(ctx, req)
		require.NoError(t, err)
		assert.False(t, s.Created)
		assert.Equal(t, testBusArn, s.TargetArn)
	})

	t.Run("Uniquified names differ between runs", func(t *testing.T) {
		o, m := newTestOrchestrator(ctrl, logger, "")
		m.scheduler.EXPECT().ListSchedules(gomock.Any(), gomock.Any()).Times(0)
		var names []string
		m.scheduler.EXPECT().CreateSchedule(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *scheduler.CreateScheduleInput, _ ...func(*scheduler.Options)) (*scheduler.CreateScheduleOutput, error) {
				names = append(names, aws.ToString(in.Name))
				return &scheduler.CreateScheduleOutput{ScheduleArn: aws.String("arn")}, nil
			}).Times(2)
		unique := req
		unique.Uniquify = true
		_, err := o.EnsureBusSchedule(ctx, unique)
		require.NoError(t, err)
		_, err = o.EnsureBusSchedule(ctx, unique)
		require.NoError(t, err)
		require.Len(t, names, 2)
		assert.NotEqual(t, names[0], names[1])
		for _, n := range names {
			assert.True(t, strings.HasPrefix(n, "event-schedule-bus-"))
			assert.Len(t, n, len("event-schedule-bus-")+8)
		}
	})

	t.Run("Invalid expression makes no call", func(t *testing.T) {
		o, m := newTestOrchestrator(ctrl, logger, "")
		m.scheduler.EXPECT().ListSchedules(gomock.Any(), gomock.Any()).Times(0)
		m.scheduler.EXPECT().CreateSchedule(gomock.Any(), gomock.Any()).Times(0)
		bad := req
		bad.Expression = "every minute"
		_, err := o.EnsureBusSchedule(ctx, bad)
		assert.True(t, errors.Is(err, tt.ErrInvalidArgument))
	})

	t.Run("Conflict on create", func(t *testing.T) {
		o, m := newTestOrchestrator(ctrl, logger, "")
		m.scheduler.EXPECT().ListSchedules(gomock.Any(), gomock.Any()).Return(&scheduler.ListSchedulesOutput{}, nil)
		m.scheduler.EXPECT().CreateSchedule(gomock.Any(), gomock.Any()).Return(nil, &schedtypes.ConflictException{Message: aws.String("exists")})
		_, err := o.EnsureBusSchedule(ctx, req)
		assert.True(t, errors.Is(err, tt.ErrAlreadyExists))
	})
}

func TestEnsureApiDestinationSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	o, m := newTestOrchestrator(ctrl, logger, "")
	m.scheduler.EXPECT().ListSchedules(gomock.Any(), &scheduler.ListSchedulesInput{GroupName: aws.String("default")}).
		Return(&scheduler.ListSchedulesOutput{}, nil)
	m.scheduler.EXPECT().CreateSchedule(gomock.Any(), &scheduler.CreateScheduleInput{
		Name:               aws.String("event-schedule-api-dest"),
		GroupName:          aws.String("default"),
		ScheduleExpression: aws.String("rate(2 minutes)"),
		FlexibleTimeWindow: &schedtypes.FlexibleTimeWindow{
			Mode:                   schedtypes.FlexibleTimeWindowModeFlexible,
			MaximumWindowInMinutes: aws.Int32(5),
		},
		State: schedtypes.ScheduleStateEnabled,
		Target: &schedtypes.Target{
			Arn:     aws.String("arn:aws:scheduler:::aws-sdk:eventbridge:describeApiDestination"),
			RoleArn: aws.String(testSchedRoleArn),
			Input:   aws.String(`{"Name":"event-bridge-api-dest"}`),
			RetryPolicy: &schedtypes.RetryPolicy{
				MaximumRetryAttempts:     aws.Int32(2),
				MaximumEventAgeInSeconds: aws.Int32(3600),
			},
		},
	}).Return(&scheduler.CreateScheduleOutput{ScheduleArn: aws.String("arn:aws:scheduler:us-east-2:123456789012:schedule/default/event-schedule-api-dest")}, nil)

	s, err := o.EnsureApiDestinationSchedule(context.TODO(), ApiDestinationScheduleRequest{
		Name:               "event-schedule-api-dest",
		ApiDestinationName: "event-bridge-api-dest",
		RoleArn:            testSchedRoleArn,
	})
	require.NoError(t, err)
	assert.True(t, s.Created)
	assert.Equal(t, "arn:aws:scheduler:::aws-sdk:eventbridge:describeApiDestination", s.TargetArn)
}

func TestEnsureApiDestinationScheduleActionAndPartition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	o, m := newTestOrchestrator(ctrl, zap.NewNop(), "")
	m.scheduler.EXPECT().ListSchedules(gomock.Any(), gomock.Any()).Return(&scheduler.ListSchedulesOutput{}, nil)
	m.scheduler.EXPECT().CreateSchedule(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *scheduler.CreateScheduleInput, _ ...func(*scheduler.Options)) (*scheduler.CreateScheduleOutput, error) {
			assert.Equal(t, "default", aws.ToString(in.GroupName))
			assert.Equal(t, "arn:aws-us-gov:scheduler:::aws-sdk:eventbridge:putEvents", aws.ToString(in.Target.Arn))
			return &scheduler.CreateScheduleOutput{ScheduleArn: aws.String("arn")}, nil
		})

	s, err := o.EnsureApiDestinationSchedule(context.TODO(), ApiDestinationScheduleRequest{
		Name:               "event-schedule-api-dest",
		ApiDestinationName: "event-bridge-api-dest",
		Action:             "putEvents",
		Partition:          "aws-us-gov",
		RoleArn:            "arn:aws-us-gov:iam::123456789012:role/scheduler",
	})
	require.NoError(t, err)
	assert.Equal(t, "arn:aws-us-gov:scheduler:::aws-sdk:eventbridge:putEvents", s.TargetArn)
}
