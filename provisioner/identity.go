// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provisioner

import (
	"context"

	tt "github.com/aws-samples/eventbridge-api-destination-provisioner/types"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type IdentityService interface {
	AccountID(ctx context.Context) (string, error)
	CallerArn(ctx context.Context) (string, error)
	Identity(ctx context.Context) (*Identity, error)
	Role(ctx context.Context, roleName string) (*Role, error)
	AssumeRoleSession(ctx context.Context, role *tt.AssumeRole) (*AssumedRoleSession, error)
}

type Identity struct {
	AccountID string
	CallerArn string
}

// Partition returns the partition of the caller ARN.
func (i *Identity) Partition() string {
	return tt.Partition(i.CallerArn)
}

type Role struct {
	Name string
	Arn  string
}

type AssumedRoleSession struct {
	Credentials aws.Credentials
	Output      *sts.AssumeRoleOutput
}

type identityService struct {
	iamClient IamClient
	stsClient StsClient
	logger    *zap.Logger
}

func newIdentityService(iamClient IamClient, stsClient StsClient, logger *zap.Logger) *identityService {
	return &identityService{
		iamClient: iamClient,
		stsClient: stsClient,
		logger:    logger,
	}
}

func (s *identityService) Identity(ctx context.Context) (*Identity, error) {
	s.logger.Sugar().Infow("Start Operation", "Name", "GetCallerIdentity")
	out, err := s.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		s.logger.Sugar().Errorw("Operation Failed", "Name", "GetCallerIdentity", "Error", err)
		return nil, tt.NewProviderError("GetCallerIdentity", err)
	}
	id := &Identity{
		AccountID: aws.ToString(out.Account),
		CallerArn: aws.ToString(out.Arn),
	}
	s.logger.Sugar().Infow("Operation Finished", "Name", "GetCallerIdentity", "Account", id.AccountID, "Arn", id.CallerArn)
	return id, nil
}

func (s *identityService) AccountID(ctx context.Context) (string, error) {
	id, err := s.Identity(ctx)
	if err != nil {
		return "", err
	}
	return id.AccountID, nil
}

func (s *identityService) CallerArn(ctx context.Context) (string, error) {
	id, err := s.Identity(ctx)
	if err != nil {
		return "", err
	}
	return id.CallerArn, nil
}

func (s *identityService) Role(ctx context.Context, roleName string) (*Role, error) {
	s.logger.Sugar().Infow("Start Operation", "Name", "GetRole", "RoleName", roleName)
	out, err := s.iamClient.GetRole(ctx, &iam.GetRoleInput{
		RoleName: aws.String(roleName),
	})
	if err != nil {
		var nse *iamtypes.NoSuchEntityException
		if errors.As(err, &nse) {
			s.logger.Sugar().Errorw("Role does not exist in this account", "RoleName", roleName)
			return nil, tt.NotFoundf("role %s", roleName)
		}
		s.logger.Sugar().Errorw("Operation Failed", "Name", "GetRole", "RoleName", roleName, "Error", err)
		return nil, tt.NewProviderError("GetRole", err)
	}
	role := &Role{
		Name: aws.ToString(out.Role.RoleName),
		Arn:  aws.ToString(out.Role.Arn),
	}
	if role.Name == "" {
		role.Name = roleName
	}
	s.logger.Sugar().Infow("Found IAM Role", "RoleName", role.Name, "Arn", role.Arn)
	return role, nil
}

// The target role ARN is built from the caller's account and partition
// unless the plan pins the account.
func (s *identityService) AssumeRoleSession(ctx context.Context, role *tt.AssumeRole) (*AssumedRoleSession, error) {
	id, err := s.Identity(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	accountID := id.AccountID
	if role.AccountId != "" {
		accountID = role.AccountId
	}
	roleArn := tt.RoleArn(id.Partition(), accountID, role.RoleName)

	s.logger.Sugar().Infow("Start Operation", "Name", "AssumeRole", "RoleArn", roleArn, "SessionName", role.SessionName)
	out, err := s.stsClient.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(roleArn),
		RoleSessionName: aws.String(role.SessionName),
	})
	if err != nil {
		s.logger.Sugar().Errorw("Operation Failed", "Name", "AssumeRole", "RoleArn", roleArn, "Error", err)
		return nil, tt.NewProviderError("AssumeRole", err)
	}
	if out.Credentials == nil {
		return nil, tt.NewProviderError("AssumeRole", errors.New("response has no credentials"))
	}
	creds := aws.Credentials{
		AccessKeyID:     aws.ToString(out.Credentials.AccessKeyId),
		SecretAccessKey: aws.ToString(out.Credentials.SecretAccessKey),
		SessionToken:    aws.ToString(out.Credentials.SessionToken),
		Source:          "AssumeRole",
	}
	if out.Credentials.Expiration != nil {
		creds.CanExpire = true
		creds.Expires = *out.Credentials.Expiration
	}
	s.logger.Sugar().Infow("Operation Finished", "Name", "AssumeRole", "RoleArn", roleArn)
	return &AssumedRoleSession{Credentials: creds, Output: out}, nil
}
