// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provisioner

import (
	"context"

	tt "github.com/aws-samples/eventbridge-api-destination-provisioner/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RunResult holds everything one run resolved or created. Fields of failed
// or skipped steps stay nil.
type RunResult struct {
	Outcomes       []StepOutcome
	Queue          *QueueInfo
	Identity       *Identity
	Connection     *Connection
	ApiDestination *ApiDestination
	RuleRole       *Role
	SchedulerRole  *Role
	EventBus       *EventBus
	Rule           *Rule
	Schedule       *Schedule
}

func (r *RunResult) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == StepFailed {
			n++
		}
	}
	return n
}

// Sequencer runs the provisioning steps of a plan in their fixed order.
// Values flow forward only; a step whose input was not produced receives the
// zero value.
type Sequencer struct {
	clients *Clients
	plan    *tt.Plan
	logger  *zap.Logger
}

func NewSequencer(clients *Clients, plan *tt.Plan, logger *zap.Logger) *Sequencer {
	return &Sequencer{
		clients: clients,
		plan:    plan,
		logger:  logger,
	}
}

type sequencedStep struct {
	step tt.Step
	fn   func(ctx context.Context) error
}

func (s *Sequencer) Run(ctx context.Context) *RunResult {
	p := s.plan
	c := s.clients
	res := &RunResult{}
	runner := newStepRunner(p.FailurePolicy, s.logger)
	identity := newIdentityService(c.Iam, c.Sts, s.logger)
	queue := newQueueInspector(c.Sqs, s.logger)
	orch := s.newOrchestrator(c)

	s.logger.Sugar().Infow("Run Started", "Region", p.Region, "ScheduleMode", p.ScheduleMode, "FailurePolicy", runner.policy, "Steps", p.Steps)

	steps := []sequencedStep{
		{tt.StepInspectQueue, func(ctx context.Context) (err error) {
			res.Queue, err = queue.QueueInfo(ctx, p.QueueName)
			return err
		}},
		{tt.StepResolveIdentity, func(ctx context.Context) (err error) {
			if res.Identity, err = identity.Identity(ctx); err != nil {
				return err
			}
			if p.AssumeRole == nil {
				return nil
			}
			session, err := identity.AssumeRoleSession(ctx, p.AssumeRole)
			if err != nil {
				return err
			}
			if c.Scope == nil {
				return tt.InvalidArgumentf("clients cannot be scoped to role %s", p.AssumeRole.RoleName)
			}
			c = c.Scope(session.Credentials)
			orch = s.newOrchestrator(c)
			identity = newIdentityService(c.Iam, c.Sts, s.logger)
			s.logger.Sugar().Infow("Clients scoped to assumed role", "RoleName", p.AssumeRole.RoleName, "SessionName", p.AssumeRole.SessionName)
			// Roles and ARNs built later belong to the assumed role's account.
			res.Identity, err = identity.Identity(ctx)
			return err
		}},
		{tt.StepEnsureConnection, func(ctx context.Context) (err error) {
			res.Connection, err = orch.EnsureConnection(ctx, p.ConnectionName)
			return err
		}},
		{tt.StepEnsureApiDestination, func(ctx context.Context) (err error) {
			req := ApiDestinationRequest{
				Name:                         p.ApiDestinationName,
				GatewayApiName:               p.GatewayApiName,
				InvocationRateLimitPerSecond: p.InvocationRateLimitPerSecond,
			}
			if res.Connection != nil {
				req.ConnectionArn = res.Connection.Arn
			}
			res.ApiDestination, err = orch.EnsureApiDestination(ctx, req)
			return err
		}},
		{tt.StepResolveRoles, func(ctx context.Context) error {
			var ruleErr, schedErr error
			res.RuleRole, ruleErr = identity.Role(ctx, p.RuleRoleName)
			res.SchedulerRole, schedErr = identity.Role(ctx, p.SchedulerRoleName)
			if ruleErr != nil {
				return ruleErr
			}
			return schedErr
		}},
	}

	switch p.ScheduleMode {
	case tt.ScheduleModeApiDestination:
		steps = append(steps, sequencedStep{tt.StepScheduleApiDestination, func(ctx context.Context) error {
			roleArn, err := s.executionRoleArn(res.SchedulerRole)
			if err != nil {
				return err
			}
			partition := ""
			if res.Identity != nil {
				partition = res.Identity.Partition()
			}
			res.Schedule, err = orch.EnsureApiDestinationSchedule(ctx, ApiDestinationScheduleRequest{
				Name:               p.DestinationScheduleName,
				Expression:         p.DestinationScheduleExpression,
				ApiDestinationName: p.ApiDestinationName,
				Action:             p.DestinationScheduleAction,
				RoleArn:            roleArn,
				Partition:          partition,
				Uniquify:           p.UniquifyScheduleName,
			})
			return err
		}})
	default:
		steps = append(steps,
			sequencedStep{tt.StepEnsureEventBus, func(ctx context.Context) (err error) {
				res.EventBus, err = orch.EnsureEventBus(ctx, p.EventBusName)
				return err
			}},
			sequencedStep{tt.StepEnsureRule, func(ctx context.Context) error {
				roleArn, err := s.executionRoleArn(res.RuleRole)
				if err != nil {
					return err
				}
				req := RuleRequest{
					Name:         p.RuleName,
					EventBusName: p.EventBusName,
					RoleArn:      roleArn,
				}
				if res.ApiDestination != nil {
					req.ApiDestinationArn = res.ApiDestination.Arn
				}
				res.Rule, err = orch.EnsureRule(ctx, req)
				return err
			}},
			sequencedStep{tt.StepScheduleEventBus, func(ctx context.Context) error {
				roleArn, err := s.executionRoleArn(res.SchedulerRole)
				if err != nil {
					return err
				}
				req := BusScheduleRequest{
					Name:         p.BusScheduleName,
					Expression:   p.BusScheduleExpression,
					EventBusName: p.EventBusName,
					Region:       p.Region,
					RoleArn:      roleArn,
					Uniquify:     p.UniquifyScheduleName,
				}
				if res.EventBus != nil {
					req.EventBusArn = res.EventBus.Arn
				}
				if res.Identity != nil {
					req.AccountID = res.Identity.AccountID
					req.Partition = res.Identity.Partition()
				}
				res.Schedule, err = orch.EnsureBusSchedule(ctx, req)
				return err
			}},
		)
	}

	for _, st := range steps {
		if !p.StepEnabled(st.step) {
			s.logger.Sugar().Debugw("Step Disabled", "Step", st.step)
			continue
		}
		runner.Run(ctx, st.step, st.fn)
	}

	// The summary is sent even after an abort.
	if p.StepEnabled(tt.StepNotify) && p.NotificationTopicArn != "" {
		n := newNotifier(c.Sns, p.NotificationTopicArn, s.logger)
		runner.Finally(ctx, tt.StepNotify, func(ctx context.Context) error {
			return n.Publish(ctx, runner.Outcomes())
		})
	}

	res.Outcomes = runner.Outcomes()
	s.logSummary(res)
	return res
}

func (s *Sequencer) newOrchestrator(c *Clients) OrchestratorService {
	return newOrchestrator(
		c.EventBridge,
		c.Scheduler,
		newGatewayResolver(c.ApiGateway, s.plan.GatewayStage, s.plan.GatewayRoute, s.logger),
		newApiKeySource(c.SecretsManager, s.plan.ApiKeySecretId, s.logger),
		s.logger,
	)
}

// executionRoleArn returns the ARN of the looked up role a target runs as.
// A failed lookup fails the dependent step.
func (s *Sequencer) executionRoleArn(role *Role) (string, error) {
	if role == nil || role.Arn == "" {
		return "", tt.InvalidArgumentf("no execution role available")
	}
	roleArn, err := tt.ExecutionRoleArn(role.Arn)
	return roleArn, errors.WithStack(err)
}

func (s *Sequencer) logSummary(res *RunResult) {
	for _, o := range res.Outcomes {
		if o.Err != nil {
			s.logger.Sugar().Infow("Step Result", "Step", o.Step, "Status", o.Status, "Error", o.Err.Error())
			continue
		}
		s.logger.Sugar().Infow("Step Result", "Step", o.Step, "Status", o.Status)
	}
	s.logger.Sugar().Infow("Run Finished", "Steps", len(res.Outcomes), "Failed", res.Failed())
}
