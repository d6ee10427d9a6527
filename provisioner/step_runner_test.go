// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provisioner

import (
	"context"
	"testing"
	"time"

	tt "github.com/aws-samples/eventbridge-api-destination-provisioner/types"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fakeClock(step time.Duration) func() time.Time {
	t := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func statuses(outcomes []StepOutcome) []StepStatus {
	out := make([]StepStatus, len(outcomes))
	for i, o := range outcomes {
		out[i] = o.Status
	}
	return out
}

func TestStepRunner(t *testing.T) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	boom := errors.New("boom")
	type testCase struct {
		name     string
		policy   tt.FailurePolicy
		expected []StepStatus
		ran      []tt.Step
	}
	cases := []testCase{
		{
			name:     "Continue runs every step",
			policy:   tt.FailurePolicyContinue,
			expected: []StepStatus{StepSucceeded, StepFailed, StepSucceeded},
			ran:      []tt.Step{tt.StepInspectQueue, tt.StepResolveIdentity, tt.StepEnsureConnection},
		},
		{
			name:     "Empty policy behaves like continue",
			expected: []StepStatus{StepSucceeded, StepFailed, StepSucceeded},
			ran:      []tt.Step{tt.StepInspectQueue, tt.StepResolveIdentity, tt.StepEnsureConnection},
		},
		{
			name:     "Abort skips the rest",
			policy:   tt.FailurePolicyAbort,
			expected: []StepStatus{StepSucceeded, StepFailed, StepSkipped},
			ran:      []tt.Step{tt.StepInspectQueue, tt.StepResolveIdentity},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newStepRunner(c.policy, logger)
			r.now = fakeClock(time.Second)
			var ran []tt.Step
			step := func(s tt.Step, err error) {
				r.Run(context.TODO(), s, func(ctx context.Context) error {
					ran = append(ran, s)
					return err
				})
			}
			step(tt.StepInspectQueue, nil)
			step(tt.StepResolveIdentity, boom)
			step(tt.StepEnsureConnection, nil)

			outcomes := r.Outcomes()
			assert.Equal(t, c.expected, statuses(outcomes))
			assert.Equal(t, c.ran, ran)
			assert.Equal(t, time.Second, outcomes[0].Duration)
			assert.True(t, errors.Is(outcomes[1].Err, boom))
		})
	}
}

func TestStepRunnerCancelled(t *testing.T) {
	r := newStepRunner(tt.FailurePolicyContinue, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	ok := r.Run(ctx, tt.StepInspectQueue, func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.False(t, ok)
	ok = r.Run(ctx, tt.StepResolveIdentity, func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.False(t, ok)
	assert.False(t, called)

	outcomes := r.Outcomes()
	require.Len(t, outcomes, 2)
	assert.Equal(t, StepFailed, outcomes[0].Status)
	assert.True(t, errors.Is(outcomes[0].Err, context.Canceled))
	assert.Equal(t, StepSkipped, outcomes[1].Status)
}

func TestStepRunnerFinallyRunsAfterAbort(t *testing.T) {
	r := newStepRunner(tt.FailurePolicyAbort, zap.NewNop())
	r.Run(context.TODO(), tt.StepInspectQueue, func(ctx context.Context) error { return errors.New("boom") })
	r.Run(context.TODO(), tt.StepResolveIdentity, func(ctx context.Context) error { return nil })
	called := false
	ok := r.Finally(context.TODO(), tt.StepNotify, func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.True(t, ok)
	assert.True(t, called)
	assert.Equal(t, []StepStatus{StepFailed, StepSkipped, StepSucceeded}, statuses(r.Outcomes()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called = false
	ok = r.Finally(ctx, tt.StepNotify, func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.False(t, ok)
	assert.False(t, called)
	last := r.Outcomes()[3]
	assert.Equal(t, StepFailed, last.Status)
	assert.True(t, errors.Is(last.Err, context.Canceled))
}

func TestIsRetriable(t *testing.T) {
	assert.False(t, isRetriable(tt.InvalidArgumentf("bad")))
	assert.False(t, isRetriable(tt.NotFoundf("gone")))
	assert.True(t, isRetriable(tt.NewProviderError("ListRules", errors.New("connection reset"))))
}
