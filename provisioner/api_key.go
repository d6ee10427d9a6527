// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provisioner

import (
	"context"
	"encoding/json"
	"strings"

	tt "github.com/aws-samples/eventbridge-api-destination-provisioner/types"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	smt "github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	ApiKeyHeaderName = "x-api-key"
	apiKeySecretKey  = "apiKey"
)

// ApiKeySource produces the API key stored in a new connection.
type ApiKeySource interface {
	ApiKey(ctx context.Context) (string, error)
}

// randomApiKey returns a fresh token on every call. Keys are never reused or
// persisted by this tool.
type randomApiKey struct{}

func (randomApiKey) ApiKey(ctx context.Context) (string, error) {
	return uuid.NewString(), nil
}

// secretApiKey reads the key from Secrets Manager. The secret is either the
// raw key or a JSON document with an "apiKey" field.
type secretApiKey struct {
	secretsManagerClient SecretsManagerClient
	secretID             string
	logger               *zap.Logger
}

func newApiKeySource(secretsManagerClient SecretsManagerClient, secretID string, logger *zap.Logger) ApiKeySource {
	if secretID == "" || secretsManagerClient == nil {
		return randomApiKey{}
	}
	return &secretApiKey{
		secretsManagerClient: secretsManagerClient,
		secretID:             secretID,
		logger:               logger,
	}
}

func (s *secretApiKey) ApiKey(ctx context.Context) (string, error) {
	// Never log the secret value.
	s.logger.Sugar().Infow("Start Operation", "Name", "GetSecretValue", "SecretId", s.secretID)
	out, err := s.secretsManagerClient.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.secretID),
	})
	if err != nil {
		var rnf *smt.ResourceNotFoundException
		if errors.As(err, &rnf) {
			return "", tt.NotFoundf("secret %s", s.secretID)
		}
		return "", tt.NewProviderError("GetSecretValue", err)
	}
	value := strings.TrimSpace(aws.ToString(out.SecretString))
	if strings.HasPrefix(value, "{") {
		var doc map[string]string
		if err := json.Unmarshal([]byte(value), &doc); err != nil {
			return "", tt.InvalidArgumentf("secret %s is not a JSON object of strings", s.secretID)
		}
		value = doc[apiKeySecretKey]
	}
	if value == "" {
		return "", tt.InvalidArgumentf("secret %s holds no API key", s.secretID)
	}
	return value, nil
}
