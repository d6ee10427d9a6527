// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provisioner

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/apigatewayv2"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/scheduler"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Clients bundles every service client one run talks to.
type Clients struct {
	EventBridge    EventBridgeClient
	Scheduler      SchedulerClient
	ApiGateway     ApiGatewayClient
	Iam            IamClient
	Sts            StsClient
	Sqs            SqsClient
	SecretsManager SecretsManagerClient
	Sns            SnsClient

	// Scope returns a copy whose EventBridge, Scheduler, API Gateway, IAM
	// and STS clients sign with creds. Nil means the clients cannot be re-scoped.
	Scope func(creds aws.Credentials) *Clients
}

func NewClientsFromConfig(cfg aws.Config) *Clients {
	c := &Clients{
		EventBridge:    eventbridge.NewFromConfig(cfg),
		Scheduler:      scheduler.NewFromConfig(cfg),
		ApiGateway:     apigatewayv2.NewFromConfig(cfg),
		Iam:            iam.NewFromConfig(cfg),
		Sts:            sts.NewFromConfig(cfg),
		Sqs:            sqs.NewFromConfig(cfg),
		SecretsManager: secretsmanager.NewFromConfig(cfg),
		Sns:            sns.NewFromConfig(cfg),
	}
	c.Scope = func(creds aws.Credentials) *Clients {
		scoped := cfg.Copy()
		scoped.Credentials = aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken))
		return &Clients{
			EventBridge:    eventbridge.NewFromConfig(scoped),
			Scheduler:      scheduler.NewFromConfig(scoped),
			ApiGateway:     apigatewayv2.NewFromConfig(scoped),
			Iam:            iam.NewFromConfig(scoped),
			Sts:            sts.NewFromConfig(scoped),
			Sqs:            c.Sqs,
			SecretsManager: c.SecretsManager,
			Sns:            c.Sns,
			Scope:          c.Scope,
		}
	}
	return c
}
