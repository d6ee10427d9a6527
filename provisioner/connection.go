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

const connectionDescription = "Connection for invoking API destinations"

func (o *orchestrator) EnsureConnection(ctx context.Context, name string) (*Connection, error) {
	existing, err := o.findConnection(ctx, name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if existing != nil {
		o.logger.Sugar().Infow("Retry Handled", "Operation", "CreateConnection", "ConnectionName", name, "ConnectionArn", aws.ToString(existing.ConnectionArn))
		// The listing may lag behind; describe for the authoritative state.
		o.logger.Sugar().Infow("Start Operation", "Name", "DescribeConnection", "ConnectionName", name)
		d, err := o.eventBridgeClient.DescribeConnection(ctx, &eventbridge.DescribeConnectionInput{
			Name: existing.Name,
		})
		if err != nil {
			return nil, tt.NewProviderError("DescribeConnection", err)
		}
		c := &Connection{
			Name:  aws.ToString(existing.Name),
			Arn:   aws.ToString(d.ConnectionArn),
			State: string(d.ConnectionState),
		}
		o.logger.Sugar().Infow("Connection already exists", "ConnectionName", c.Name, "ConnectionArn", c.Arn, "State", c.State)
		return c, nil
	}

	apiKey, err := o.apiKeySource.ApiKey(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	o.logger.Sugar().Infow("Start Operation", "Name", "CreateConnection", "ConnectionName", name)
	out, err := o.eventBridgeClient.CreateConnection(ctx, &eventbridge.CreateConnectionInput{
		Name:              aws.String(name),
		AuthorizationType: ebtypes.ConnectionAuthorizationTypeApiKey,
		AuthParameters: &ebtypes.CreateConnectionAuthRequestParameters{
			ApiKeyAuthParameters: &ebtypes.CreateConnectionApiKeyAuthRequestParameters{
				ApiKeyName:  aws.String(ApiKeyHeaderName),
				ApiKeyValue: aws.String(apiKey),
			},
		},
		Description: aws.String(connectionDescription),
	})
	if err != nil {
		return nil, tt.NewProviderError("CreateConnection", err)
	}
	c := &Connection{
		Name:    name,
		Arn:     aws.ToString(out.ConnectionArn),
		State:   string(out.ConnectionState),
		Created: true,
	}
	o.logger.Sugar().Infow("Created connection", "ConnectionName", c.Name, "ConnectionArn", c.Arn, "State", c.State)
	return c, nil
}

func (o *orchestrator) findConnection(ctx context.Context, name string) (*ebtypes.Connection, error) {
	o.logger.Sugar().Infow("Start Operation", "Name", "ListConnections")
	var nextToken *string
	for {
		out, err := o.eventBridgeClient.ListConnections(ctx, &eventbridge.ListConnectionsInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, tt.NewProviderError("ListConnections", err)
		}
		for i := range out.Connections {
			if sameName(aws.ToString(out.Connections[i].Name), name) {
				return &out.Connections[i], nil
			}
		}
		if aws.ToString(out.NextToken) == "" {
			return nil, nil
		}
		nextToken = out.NextToken
	}
}
