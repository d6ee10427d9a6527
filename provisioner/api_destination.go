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

const (
	DefaultGatewayApiName     = "transfers-api"
	DefaultInvocationRate     = 5
	apiDestinationDescription = "API Destination to call external API"
)

type ApiDestinationRequest struct {
	Name                         string
	ConnectionArn                string
	GatewayApiName               string
	InvocationRateLimitPerSecond int
}

// EnsureApiDestination resolves the invocation endpoint before listing so a
// missing HTTP API fails the step even when the destination already exists.
func (o *orchestrator) EnsureApiDestination(ctx context.Context, req ApiDestinationRequest) (*ApiDestination, error) {
	if req.GatewayApiName == "" {
		req.GatewayApiName = DefaultGatewayApiName
	}
	if req.InvocationRateLimitPerSecond <= 0 {
		req.InvocationRateLimitPerSecond = DefaultInvocationRate
	}
	endpoint, err := o.gatewayResolver.ApiURL(ctx, req.GatewayApiName)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	existing, err := o.findApiDestination(ctx, req.Name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if existing != nil {
		d := &ApiDestination{
			Name:     aws.ToString(existing.Name),
			Arn:      aws.ToString(existing.ApiDestinationArn),
			State:    string(existing.ApiDestinationState),
			Endpoint: aws.ToString(existing.InvocationEndpoint),
		}
		o.logger.Sugar().Infow("Retry Handled", "Operation", "CreateApiDestination", "ApiDestinationName", d.Name, "ApiDestinationArn", d.Arn)
		return d, nil
	}

	if req.ConnectionArn == "" {
		return nil, tt.InvalidArgumentf("api destination %s needs a connection ARN", req.Name)
	}
	o.logger.Sugar().Infow("Start Operation", "Name", "CreateApiDestination", "ApiDestinationName", req.Name, "Endpoint", endpoint)
	out, err := o.eventBridgeClient.CreateApiDestination(ctx, &eventbridge.CreateApiDestinationInput{
		Name:                         aws.String(req.Name),
		ConnectionArn:                aws.String(req.ConnectionArn),
		InvocationEndpoint:           aws.String(endpoint),
		HttpMethod:                   ebtypes.ApiDestinationHttpMethodPost,
		Description:                  aws.String(apiDestinationDescription),
		InvocationRateLimitPerSecond: aws.Int32(int32(req.InvocationRateLimitPerSecond)),
	})
	if err != nil {
		return nil, tt.NewProviderError("CreateApiDestination", err)
	}
	d := &ApiDestination{
		Name:     req.Name,
		Arn:      aws.ToString(out.ApiDestinationArn),
		State:    string(out.ApiDestinationState),
		Endpoint: endpoint,
		Created:  true,
	}
	o.logger.Sugar().Infow("Created API destination", "ApiDestinationName", d.Name, "ApiDestinationArn", d.Arn, "State", d.State)
	return d, nil
}

func (o *orchestrator) findApiDestination(ctx context.Context, name string) (*ebtypes.ApiDestination, error) {
	o.logger.Sugar().Infow("Start Operation", "Name", "ListApiDestinations")
	var nextToken *string
	for {
		out, err := o.eventBridgeClient.ListApiDestinations(ctx, &eventbridge.ListApiDestinationsInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, tt.NewProviderError("ListApiDestinations", err)
		}
		for i := range out.ApiDestinations {
			if sameName(aws.ToString(out.ApiDestinations[i].Name), name) {
				return &out.ApiDestinations[i], nil
			}
		}
		if aws.ToString(out.NextToken) == "" {
			return nil, nil
		}
		nextToken = out.NextToken
	}
}
