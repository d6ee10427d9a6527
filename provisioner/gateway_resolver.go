// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provisioner

import (
	"context"
	"fmt"
	"strings"

	tt "github.com/aws-samples/eventbridge-api-destination-provisioner/types"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigatewayv2"
	"go.uber.org/zap"
)

const (
	DefaultGatewayStage = "dev"
	DefaultGatewayRoute = "log"
)

type GatewayResolverService interface {
	ApiURL(ctx context.Context, apiName string) (string, error)
}

type gatewayResolver struct {
	apiGatewayClient ApiGatewayClient
	stage            string
	route            string
	logger           *zap.Logger
}

func newGatewayResolver(apiGatewayClient ApiGatewayClient, stage, route string, logger *zap.Logger) *gatewayResolver {
	if stage == "" {
		stage = DefaultGatewayStage
	}
	if route == "" {
		route = DefaultGatewayRoute
	}
	return &gatewayResolver{
		apiGatewayClient: apiGatewayClient,
		stage:            stage,
		route:            route,
		logger:           logger,
	}
}

// ApiURL returns the invocation URL of the first HTTP API whose name matches
// apiName. When several APIs share the name the one listed first wins.
func (g *gatewayResolver) ApiURL(ctx context.Context, apiName string) (string, error) {
	g.logger.Sugar().Infow("Start Operation", "Name", "GetApis", "ApiName", apiName)
	var nextToken *string
	for {
		out, err := g.apiGatewayClient.GetApis(ctx, &apigatewayv2.GetApisInput{NextToken: nextToken})
		if err != nil {
			g.logger.Sugar().Errorw("Operation Failed", "Name", "GetApis", "Error", err)
			return "", tt.NewProviderError("GetApis", err)
		}
		for _, api := range out.Items {
			g.logger.Sugar().Debugw("Listed API", "ApiName", aws.ToString(api.Name), "ApiId", aws.ToString(api.ApiId))
			if strings.EqualFold(aws.ToString(api.Name), apiName) {
				url := fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(aws.ToString(api.ApiEndpoint), "/"), g.stage, g.route)
				g.logger.Sugar().Infow("Operation Finished", "Name", "GetApis", "ApiId", aws.ToString(api.ApiId), "Url", url)
				return url, nil
			}
		}
		if out.NextToken == nil || *out.NextToken == "" {
			break
		}
		nextToken = out.NextToken
	}
	g.logger.Sugar().Errorw("API not found", "ApiName", apiName)
	return "", tt.NotFoundf("http api %s", apiName)
}
