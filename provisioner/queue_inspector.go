// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provisioner

import (
	"context"
	"sort"

	tt "github.com/aws-samples/eventbridge-api-destination-provisioner/types"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type QueueInspectorService interface {
	QueueInfo(ctx context.Context, queueName string) (*QueueInfo, error)
}

type QueueInfo struct {
	Name       string
	URL        string
	Attributes map[string]string
}

type queueInspector struct {
	sqsClient SqsClient
	logger    *zap.Logger
}

func newQueueInspector(sqsClient SqsClient, logger *zap.Logger) *queueInspector {
	return &queueInspector{
		sqsClient: sqsClient,
		logger:    logger,
	}
}

// GetQueueAttributes addresses queues by URL, so the URL is resolved first.
func (q *queueInspector) QueueInfo(ctx context.Context, queueName string) (*QueueInfo, error) {
	q.logger.Sugar().Infow("Start Operation", "Name", "GetQueueUrl", "QueueName", queueName)
	u, err := q.sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(queueName),
	})
	if err != nil {
		var qne *sqstypes.QueueDoesNotExist
		if errors.As(err, &qne) {
			q.logger.Sugar().Errorw("Queue does not exist", "QueueName", queueName)
			return nil, tt.NotFoundf("queue %s", queueName)
		}
		q.logger.Sugar().Errorw("Operation Failed", "Name", "GetQueueUrl", "Error", err)
		return nil, tt.NewProviderError("GetQueueUrl", err)
	}
	queueURL := aws.ToString(u.QueueUrl)
	q.logger.Sugar().Infow("Operation Finished", "Name", "GetQueueUrl", "QueueUrl", queueURL)

	a, err := q.sqsClient.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       aws.String(queueURL),
		AttributeNames: []sqstypes.QueueAttributeName{sqstypes.QueueAttributeNameAll},
	})
	if err != nil {
		q.logger.Sugar().Errorw("Operation Failed", "Name", "GetQueueAttributes", "Error", err)
		return nil, tt.NewProviderError("GetQueueAttributes", err)
	}

	keys := make([]string, 0, len(a.Attributes))
	for k := range a.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.logger.Sugar().Infow("Queue Attribute", "QueueName", queueName, "Key", k, "Value", a.Attributes[k])
	}
	return &QueueInfo{
		Name:       queueName,
		URL:        queueURL,
		Attributes: a.Attributes,
	}, nil
}
