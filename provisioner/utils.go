// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provisioner

import (
	"fmt"
	"strings"

	tt "github.com/aws-samples/eventbridge-api-destination-provisioner/types"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxScheduleNameLength = 64

// Resource names are compared case-insensitively everywhere.
func sameName(a, b string) bool {
	return strings.EqualFold(a, b)
}

// uniqueScheduleName appends a short random suffix so that every run creates
// a new schedule. The result stays within the scheduler's 64 character limit.
func uniqueScheduleName(name string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[0:8]
	if len(name) > maxScheduleNameLength-len(suffix)-1 {
		name = name[0 : maxScheduleNameLength-len(suffix)-1]
	}
	return fmt.Sprintf("%s-%s", name, suffix)
}

func isRetriable(err error) bool {
	if errors.Is(err, tt.ErrInvalidArgument) || errors.Is(err, tt.ErrNotFound) || errors.Is(err, tt.ErrAlreadyExists) {
		return false
	}
	var re *awshttp.ResponseError
	if errors.As(err, &re) {
		return re.Response.StatusCode >= 500
	}
	return true
}

// errorCode returns the AWS error code carried by err, if any.
func errorCode(err error) string {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return ae.ErrorCode()
	}
	return ""
}
