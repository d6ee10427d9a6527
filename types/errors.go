// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when a named resource, role, queue or API
	// does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when the provider rejects a create
	// because the resource appeared between the listing and the create call.
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrInvalidArgument is returned for malformed input such as an ARN that
	// does not have the expected shape.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ProviderError wraps any other failure returned by an AWS API call.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(op string, err error) error {
	return errors.WithStack(&ProviderError{Op: op, Err: err})
}

func NotFoundf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

func AlreadyExistsf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrAlreadyExists, format, args...)
}

func InvalidArgumentf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// IsProviderError reports whether err carries a ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
