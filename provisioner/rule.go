// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provisioner

import (
	"context"
	"encoding/json"
	"fmt"

	tt "github.com/aws-samples/eventbridge-api-destination-provisioner/types"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	ebtypes "github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/pkg/errors"
)

const (
	ScheduledEventSource = "com.app.scheduler"
	RuleTargetID         = "ApiDestinationTarget"
	ruleTargetInputPath  = "$.detail"
	defaultEventBusName  = "default"
)

type RuleRequest struct {
	Name              string
	EventBusName      string
	ApiDestinationArn string
	// RoleArn is the role EventBridge assumes to invoke the destination.
	RoleArn string
}

type eventPattern struct {
	Source []string `json:"source"`
}

// RuleEventPattern is the filter every provisioned rule carries.
func RuleEventPattern() string {
	buf, _ := json.Marshal(eventPattern{Source: []string{ScheduledEventSource}})
	return string(buf)
}

// EnsureRule creates the rule when it is missing from the bus and then makes
// sure the API destination target is attached. An existing rule is never
// modified; only a missing target is added.
func (o *orchestrator) EnsureRule(ctx context.Context, req RuleRequest) (*Rule, error) {
	if req.EventBusName == "" {
		req.EventBusName = defaultEventBusName
	}
	existing, err := o.findRule(ctx, req.Name, req.EventBusName)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	r := &Rule{
		Name:         req.Name,
		EventBusName: req.EventBusName,
		TargetID:     RuleTargetID,
	}
	if existing != nil {
		r.Name = aws.ToString(existing.Name)
		r.Arn = aws.ToString(existing.Arn)
		o.logger.Sugar().Infow("Retry Handled", "Operation", "PutRule", "RuleName", r.Name, "RuleArn", r.Arn, "EventBusName", r.EventBusName)
		attached, err := o.hasTarget(ctx, r.Name, r.EventBusName, RuleTargetID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if attached {
			o.logger.Sugar().Infow("Retry Handled", "Operation", "PutTargets", "RuleName", r.Name, "TargetId", RuleTargetID)
			return r, nil
		}
	} else {
		o.logger.Sugar().Infow("Start Operation", "Name", "PutRule", "RuleName", req.Name, "EventBusName", req.EventBusName)
		out, err := o.eventBridgeClient.PutRule(ctx, &eventbridge.PutRuleInput{
			Name:         aws.String(req.Name),
			EventBusName: aws.String(req.EventBusName),
			EventPattern: aws.String(RuleEventPattern()),
			State:        ebtypes.RuleStateEnabled,
		})
		if err != nil {
			return nil, tt.NewProviderError("PutRule", err)
		}
		r.Arn = aws.ToString(out.RuleArn)
		r.Created = true
		o.logger.Sugar().Infow("Created rule", "RuleName", r.Name, "RuleArn", r.Arn)
	}

	if err := o.putTarget(ctx, r.Name, req); err != nil {
		return nil, errors.WithStack(err)
	}
	r.TargetCreated = true
	return r, nil
}

func (o *orchestrator) putTarget(ctx context.Context, ruleName string, req RuleRequest) error {
	if req.ApiDestinationArn == "" {
		return tt.InvalidArgumentf("rule %s target needs an API destination ARN", ruleName)
	}
	o.logger.Sugar().Infow("Start Operation", "Name", "PutTargets", "RuleName", ruleName, "TargetArn", req.ApiDestinationArn)
	out, err := o.eventBridgeClient.PutTargets(ctx, &eventbridge.PutTargetsInput{
		Rule:         aws.String(ruleName),
		EventBusName: aws.String(req.EventBusName),
		Targets: []ebtypes.Target{
			{
				Id:        aws.String(RuleTargetID),
				Arn:       aws.String(req.ApiDestinationArn),
				RoleArn:   aws.String(req.RoleArn),
				InputPath: aws.String(ruleTargetInputPath),
			},
		},
	})
	if err != nil {
		return tt.NewProviderError("PutTargets", err)
	}
	if out.FailedEntryCount > 0 {
		msg := fmt.Sprintf("%d target(s) rejected", out.FailedEntryCount)
		for _, e := range out.FailedEntries {
			msg = fmt.Sprintf("%s; %s: %s %s", msg, aws.ToString(e.TargetId), aws.ToString(e.ErrorCode), aws.ToString(e.ErrorMessage))
		}
		return tt.NewProviderError("PutTargets", errors.New(msg))
	}
	o.logger.Sugar().Infow("Operation Finished", "Name", "PutTargets", "RuleName", ruleName, "TargetId", RuleTargetID)
	return nil
}

func (o *orchestrator) findRule(ctx context.Context, name, busName string) (*ebtypes.Rule, error) {
	o.logger.Sugar().Infow("Start Operation", "Name", "ListRules", "EventBusName", busName)
	var nextToken *string
	for {
		out, err := o.eventBridgeClient.ListRules(ctx, &eventbridge.ListRulesInput{
			EventBusName: aws.String(busName),
			NextToken:    nextToken,
		})
		if err != nil {
			return nil, tt.NewProviderError("ListRules", err)
		}
		for i := range out.Rules {
			if sameName(aws.ToString(out.Rules[i].Name), name) {
				return &out.Rules[i], nil
			}
		}
		if aws.ToString(out.NextToken) == "" {
			return nil, nil
		}
		nextToken = out.NextToken
	}
}

func (o *orchestrator) hasTarget(ctx context.Context, ruleName, busName, targetID string) (bool, error) {
	o.logger.Sugar().Infow("Start Operation", "Name", "ListTargetsByRule", "RuleName", ruleName)
	var nextToken *string
	for {
		out, err := o.eventBridgeClient.ListTargetsByRule(ctx, &eventbridge.ListTargetsByRuleInput{
			Rule:         aws.String(ruleName),
			EventBusName: aws.String(busName),
			NextToken:    nextToken,
		})
		if err != nil {
			return false, tt.NewProviderError("ListTargetsByRule", err)
		}
		for _, t := range out.Targets {
			if aws.ToString(t.Id) == targetID {
				return true, nil
			}
		}
		if aws.ToString(out.NextToken) == "" {
			return false, nil
		}
		nextToken = out.NextToken
	}
}
