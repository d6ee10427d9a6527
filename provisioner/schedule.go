// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provisioner

import (
	"context"
	"encoding/json"

	tt "github.com/aws-samples/eventbridge-api-destination-provisioner/types"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/scheduler"
	schedtypes "github.com/aws/aws-sdk-go-v2/service/scheduler/types"
	"github.com/pkg/errors"
)

const (
	DefaultBusScheduleExpression         = "rate(1 minutes)"
	DefaultDestinationScheduleExpression = "rate(2 minutes)"
	DefaultDestinationScheduleAction     = "describeApiDestination"

	ScheduledEventDetailType = "ScheduledEvent"
	busScheduleInput         = `{"message":"Scheduler Calling API"}`

	// Schedules live in the account's default group.
	defaultScheduleGroup = "default"

	scheduleRetryAttempts     = 2
	scheduleMaxEventAge       = 3600
	scheduleFlexibleWindowMin = 5
)

type BusScheduleRequest struct {
	Name         string
	Expression   string
	EventBusName string
	// EventBusArn is used as is when set. Otherwise it is built from the
	// partition, region and account.
	EventBusArn string
	Partition   string
	Region      string
	AccountID   string
	RoleArn     string
	Uniquify    bool
}

type ApiDestinationScheduleRequest struct {
	Name               string
	Expression         string
	ApiDestinationName string
	Action             string
	RoleArn            string
	// Partition of the universal target ARN. Empty means "aws".
	Partition string
	Uniquify  bool
}

func (o *orchestrator) EnsureBusSchedule(ctx context.Context, req BusScheduleRequest) (*Schedule, error) {
	if req.Expression == "" {
		req.Expression = DefaultBusScheduleExpression
	}
	targetArn := req.EventBusArn
	if targetArn == "" {
		if req.AccountID == "" || req.EventBusName == "" {
			return nil, tt.InvalidArgumentf("schedule %s needs an event bus ARN or account and bus name", req.Name)
		}
		if req.Partition == "" {
			req.Partition = "aws"
		}
		targetArn = tt.EventBusArn(req.Partition, req.Region, req.AccountID, req.EventBusName)
	}

	return o.ensureSchedule(ctx, req.Name, req.Uniquify, &scheduler.CreateScheduleInput{
		ScheduleExpression: aws.String(req.Expression),
		FlexibleTimeWindow: &schedtypes.FlexibleTimeWindow{
			Mode: schedtypes.FlexibleTimeWindowModeOff,
		},
		State: schedtypes.ScheduleStateEnabled,
		Target: &schedtypes.Target{
			Arn:     aws.String(targetArn),
			RoleArn: aws.String(req.RoleArn),
			Input:   aws.String(busScheduleInput),
			EventBridgeParameters: &schedtypes.EventBridgeParameters{
				DetailType: aws.String(ScheduledEventDetailType),
				Source:     aws.String(ScheduledEventSource),
			},
		},
	})
}

// EnsureApiDestinationSchedule creates a schedule whose universal target calls
// an EventBridge API action with the destination name as input.
func (o *orchestrator) EnsureApiDestinationSchedule(ctx context.Context, req ApiDestinationScheduleRequest) (*Schedule, error) {
	if req.Expression == "" {
		req.Expression = DefaultDestinationScheduleExpression
	}
	if req.Action == "" {
		req.Action = DefaultDestinationScheduleAction
	}
	input, err := json.Marshal(map[string]string{"Name": req.ApiDestinationName})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return o.ensureSchedule(ctx, req.Name, req.Uniquify, &scheduler.CreateScheduleInput{
		ScheduleExpression: aws.String(req.Expression),
		FlexibleTimeWindow: &schedtypes.FlexibleTimeWindow{
			Mode:                   schedtypes.FlexibleTimeWindowModeFlexible,
			MaximumWindowInMinutes: aws.Int32(scheduleFlexibleWindowMin),
		},
		State: schedtypes.ScheduleStateEnabled,
		Target: &schedtypes.Target{
			Arn:     aws.String(tt.UniversalTargetArn(req.Partition, "eventbridge", req.Action)),
			RoleArn: aws.String(req.RoleArn),
			Input:   aws.String(string(input)),
			RetryPolicy: &schedtypes.RetryPolicy{
				MaximumRetryAttempts:     aws.Int32(scheduleRetryAttempts),
				MaximumEventAgeInSeconds: aws.Int32(scheduleMaxEventAge),
			},
		},
	})
}

func (o *orchestrator) ensureSchedule(ctx context.Context, name string, uniquify bool, in *scheduler.CreateScheduleInput) (*Schedule, error) {
	expr := aws.ToString(in.ScheduleExpression)
	if err := tt.ValidateScheduleExpression(expr); err != nil {
		return nil, errors.WithStack(err)
	}
	if aws.ToString(in.Target.RoleArn) == "" {
		return nil, tt.InvalidArgumentf("schedule %s needs a role ARN", name)
	}

	if uniquify {
		name = uniqueScheduleName(name)
	} else {
		existing, err := o.findSchedule(ctx, name)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if existing != nil {
			s := &Schedule{
				Name:       aws.ToString(existing.Name),
				Arn:        aws.ToString(existing.Arn),
				Expression: expr,
			}
			if existing.Target != nil {
				s.TargetArn = aws.ToString(existing.Target.Arn)
			}
			o.logger.Sugar().Infow("Retry Handled", "Operation", "CreateSchedule", "ScheduleName", s.Name, "ScheduleArn", s.Arn)
			return s, nil
		}
	}

	in.Name = aws.String(name)
	in.GroupName = aws.String(defaultScheduleGroup)
	o.logger.Sugar().Infow("Start Operation", "Name", "CreateSchedule", "ScheduleName", name, "Expression", expr, "TargetArn", aws.ToString(in.Target.Arn))
	out, err := o.schedulerClient.CreateSchedule(ctx, in)
	if err != nil {
		var ce *schedtypes.ConflictException
		if errors.As(err, &ce) {
			return nil, tt.AlreadyExistsf("schedule %s", name)
		}
		return nil, tt.NewProviderError("CreateSchedule", err)
	}
	s := &Schedule{
		Name:       name,
		Arn:        aws.ToString(out.ScheduleArn),
		Expression: expr,
		TargetArn:  aws.ToString(in.Target.Arn),
		Created:    true,
	}
	o.logger.Sugar().Infow("Created schedule", "ScheduleName", s.Name, "ScheduleArn", s.Arn)
	return s, nil
}

func (o *orchestrator) findSchedule(ctx context.Context, name string) (*schedtypes.ScheduleSummary, error) {
	o.logger.Sugar().Infow("Start Operation", "Name", "ListSchedules")
	var nextToken *string
	for {
		out, err := o.schedulerClient.ListSchedules(ctx, &scheduler.ListSchedulesInput{
			GroupName: aws.String(defaultScheduleGroup),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, tt.NewProviderError("ListSchedules", err)
		}
		for i := range out.Schedules {
			if sameName(aws.ToString(out.Schedules[i].Name), name) {
				return &out.Schedules[i], nil
			}
		}
		if aws.ToString(out.NextToken) == "" {
			return nil, nil
		}
		nextToken = out.NextToken
	}
}
