// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provisioner

import (
	"context"

	tt "github.com/aws-samples/eventbridge-api-destination-provisioner/types"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	ebtypes "github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/pkg/errors"
)

// EnsureEventBus does not retry when the bus appears between the listing and
// the create call; the conflict is returned as ErrAlreadyExists.
func (o *orchestrator) EnsureEventBus(ctx context.Context, name string) (*EventBus, error) {
	existing, err := o.findEventBus(ctx, name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if existing != nil {
		b := &EventBus{
			Name: aws.ToString(existing.Name),
			Arn:  aws.ToString(existing.Arn),
		}
		o.logger.Sugar().Infow("Retry Handled", "Operation", "CreateEventBus", "EventBusName", b.Name, "EventBusArn", b.Arn)
		return b, nil
	}

	o.logger.Sugar().Infow("Start Operation", "Name", "CreateEventBus", "EventBusName", name)
	out, err := o.eventBridgeClient.CreateEventBus(ctx, &eventbridge.CreateEventBusInput{
		Name: aws.String(name),
	})
	if err != nil {
		var rae *ebtypes.ResourceAlreadyExistsException
		if errors.As(err, &rae) {
			o.logger.Sugar().Warnw("Event bus created concurrently", "EventBusName", name)
			return nil, tt.AlreadyExistsf("event bus %s", name)
		}
		return nil, tt.NewProviderError("CreateEventBus", err)
	}
	b := &EventBus{
		Name:    name,
		Arn:     aws.ToString(out.EventBusArn),
		Created: true,
	}
	o.logger.Sugar().Infow("Created event bus", "EventBusName", b.Name, "EventBusArn", b.Arn)
	return b, nil
}

func (o *orchestrator) findEventBus(ctx context.Context, name string) (*ebtypes.EventBus, error) {
	o.logger.Sugar().Infow("Start Operation", "Name", "ListEventBuses")
	var nextToken *string
	for {
		out, err := o.eventBridgeClient.ListEventBuses(ctx, &eventbridge.ListEventBusesInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, tt.NewProviderError("ListEventBuses", err)
		}
		for i := range out.EventBuses {
			if sameName(aws.ToString(out.EventBuses[i].Name), name) {
				return &out.EventBuses[i], nil
			}
		}
		if aws.ToString(out.NextToken) == "" {
			return nil, nil
		}
		nextToken = out.NextToken
	}
}
