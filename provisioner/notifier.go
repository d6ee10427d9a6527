// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provisioner

import (
	"context"
	"encoding/json"
	"fmt"

	tt "github.com/aws-samples/eventbridge-api-destination-provisioner/types"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const notificationSubject = "EventBridge provisioning run"

type stepReport struct {
	Step       tt.Step    `json:"step"`
	Status     StepStatus `json:"status"`
	Error      string     `json:"error,omitempty"`
	DurationMs int64      `json:"durationMs"`
}

type runReport struct {
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	Skipped   int          `json:"skipped"`
	Steps     []stepReport `json:"steps"`
}

func newRunReport(outcomes []StepOutcome) runReport {
	r := runReport{Steps: make([]stepReport, 0, len(outcomes))}
	for _, o := range outcomes {
		s := stepReport{Step: o.Step, Status: o.Status, DurationMs: o.Duration.Milliseconds()}
		if o.Err != nil {
			s.Error = o.Err.Error()
		}
		switch o.Status {
		case StepSucceeded:
			r.Succeeded++
		case StepFailed:
			r.Failed++
		case StepSkipped:
			r.Skipped++
		}
		r.Steps = append(r.Steps, s)
	}
	return r
}

type notifier struct {
	snsClient SnsClient
	topicArn  string
	logger    *zap.Logger
}

func newNotifier(snsClient SnsClient, topicArn string, logger *zap.Logger) *notifier {
	return &notifier{
		snsClient: snsClient,
		topicArn:  topicArn,
		logger:    logger,
	}
}

// Publish sends the run summary to the configured topic.
func (n *notifier) Publish(ctx context.Context, outcomes []StepOutcome) error {
	if n.topicArn == "" {
		return tt.InvalidArgumentf("no notification topic configured")
	}
	report := newRunReport(outcomes)
	buf, err := json.Marshal(report)
	if err != nil {
		return errors.WithStack(err)
	}
	n.logger.Sugar().Infow("Start Operation", "Name", "Publish", "TopicArn", n.topicArn)
	out, err := n.snsClient.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicArn),
		Subject:  aws.String(fmt.Sprintf("%s: %d failed", notificationSubject, report.Failed)),
		Message:  aws.String(string(buf)),
	})
	if err != nil {
		return tt.NewProviderError("Publish", err)
	}
	n.logger.Sugar().Infow("Operation Finished", "Name", "Publish", "MessageId", aws.ToString(out.MessageId))
	return nil
}
