// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provisioner

import (
	"context"
	"time"

	tt "github.com/aws-samples/eventbridge-api-destination-provisioner/types"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type StepStatus string

const (
	StepSucceeded StepStatus = "succeeded"
	StepFailed    StepStatus = "failed"
	StepSkipped   StepStatus = "skipped"
)

type StepOutcome struct {
	Step     tt.Step
	Status   StepStatus
	Err      error
	Duration time.Duration
}

// stepRunner executes steps one at a time and is the only place where step
// errors are swallowed. With the continue policy every step runs; with the
// abort policy the first failure turns every later step into a skip.
type stepRunner struct {
	policy   tt.FailurePolicy
	logger   *zap.Logger
	now      func() time.Time
	outcomes []StepOutcome
	stopped  bool
}

func newStepRunner(policy tt.FailurePolicy, logger *zap.Logger) *stepRunner {
	if policy == "" {
		policy = tt.FailurePolicyContinue
	}
	return &stepRunner{
		policy: policy,
		logger: logger,
		now:    time.Now,
	}
}

// Run executes fn as step and reports whether it succeeded.
func (r *stepRunner) Run(ctx context.Context, step tt.Step, fn func(ctx context.Context) error) bool {
	if r.stopped {
		r.logger.Sugar().Warnw("Step Skipped", "Step", step)
		r.outcomes = append(r.outcomes, StepOutcome{Step: step, Status: StepSkipped})
		return false
	}
	if err := ctx.Err(); err != nil {
		// A cancelled run never continues.
		r.stopped = true
		r.record(step, errors.WithStack(err), 0)
		return false
	}

	r.logger.Sugar().Infow("Step Started", "Step", step)
	start := r.now()
	err := fn(ctx)
	r.record(step, err, r.now().Sub(start))
	if err != nil && r.policy == tt.FailurePolicyAbort {
		r.stopped = true
	}
	return err == nil
}

// Finally runs fn even when an earlier failure stopped the run. A cancelled
// context still fails the step without calling fn.
func (r *stepRunner) Finally(ctx context.Context, step tt.Step, fn func(ctx context.Context) error) bool {
	if err := ctx.Err(); err != nil {
		r.record(step, errors.WithStack(err), 0)
		return false
	}
	r.logger.Sugar().Infow("Step Started", "Step", step)
	start := r.now()
	err := fn(ctx)
	r.record(step, err, r.now().Sub(start))
	return err == nil
}

func (r *stepRunner) record(step tt.Step, err error, d time.Duration) {
	if err == nil {
		r.logger.Sugar().Infow("Step Succeeded", "Step", step, "Duration", d)
		r.outcomes = append(r.outcomes, StepOutcome{Step: step, Status: StepSucceeded, Duration: d})
		return
	}
	r.logger.Sugar().Errorw("Step Failed", "Step", step, "Duration", d, "Error", err, "ErrorCode", errorCode(err), "Retriable", isRetriable(err))
	var oerr *smithy.OperationError
	if errors.As(err, &oerr) && oerr.Unwrap() != nil {
		r.logger.Error("Smithy Operation Error", zap.String("Service", oerr.Service()), zap.String("Operation", oerr.Operation()), zap.Error(oerr.Unwrap()))
	}
	r.outcomes = append(r.outcomes, StepOutcome{Step: step, Status: StepFailed, Err: err, Duration: d})
}

func (r *stepRunner) Outcomes() []StepOutcome {
	return append([]StepOutcome(nil), r.outcomes...)
}
