// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

import (
	"fmt"
	"strings"
)

const assumedRolePrefix = "assumed-role/"

// DeriveRoleArnFromAssumedRoleArn rewrites an STS assumed-role ARN such as
// arn:aws:sts::123456789012:assumed-role/my-role/my-session into the IAM
// role ARN arn:aws:iam::123456789012:role/my-role.
func DeriveRoleArnFromAssumedRoleArn(assumedRoleArn string) (string, error) {
	parts := strings.Split(assumedRoleArn, ":")
	if len(parts) < 6 || parts[2] != "sts" || !strings.HasPrefix(parts[5], assumedRolePrefix) {
		return "", InvalidArgumentf("invalid assumed-role ARN %q", assumedRoleArn)
	}
	segments := strings.Split(parts[5], "/")
	if segments[1] == "" {
		return "", InvalidArgumentf("assumed-role ARN %q has no role name", assumedRoleArn)
	}
	return fmt.Sprintf("arn:aws:iam::%s:role/%s", parts[4], segments[1]), nil
}

// ExecutionRoleArn returns the IAM role ARN a target should carry. IAM role
// ARNs are returned unchanged and assumed-role ARNs are rewritten.
func ExecutionRoleArn(arn string) (string, error) {
	parts := strings.Split(arn, ":")
	if len(parts) >= 6 && parts[2] == "iam" && strings.HasPrefix(parts[5], "role/") {
		return arn, nil
	}
	return DeriveRoleArnFromAssumedRoleArn(arn)
}

// Partition returns the partition field of an ARN, defaulting to "aws".
func Partition(arn string) string {
	parts := strings.Split(arn, ":")
	if len(parts) < 2 || parts[1] == "" {
		return "aws"
	}
	return parts[1]
}

// RoleArn builds an IAM role ARN.
func RoleArn(partition, accountID, roleName string) string {
	return fmt.Sprintf("arn:%s:iam::%s:role/%s", partition, accountID, roleName)
}

// EventBusArn builds the ARN of a custom event bus.
func EventBusArn(partition, region, accountID, busName string) string {
	return fmt.Sprintf("arn:%s:events:%s:%s:event-bus/%s", partition, region, accountID, busName)
}

// UniversalTargetArn builds an EventBridge Scheduler universal target ARN
// that calls the given API action of the given service. An empty partition
// means "aws".
func UniversalTargetArn(partition, service, action string) string {
	if partition == "" {
		partition = "aws"
	}
	return fmt.Sprintf("arn:%s:scheduler:::aws-sdk:%s:%s", partition, service, action)
}
