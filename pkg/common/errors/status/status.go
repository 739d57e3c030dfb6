/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package status defines metadata for errors returned by the gateway client.
// This information may be used by callers to make decisions about how to
// handle certain error conditions, for example to tell an unreadable input
// file apart from a badly encoded private key.
// Status codes are divided by group, where each group represents the
// component that produced the error.
package status

import (
	"fmt"

	"github.com/pkg/errors"
)

// Status provides additional information about an unsuccessful operation
// performed by the gateway client. Essentially, this object contains metadata
// about an error.
type Status struct {
	// Group status group
	Group Group
	// Code status code
	Code int32
	// Message status message
	Message string
	// Details any additional status details
	Details []interface{}
}

// Group of status to help users infer status codes from various components
type Group int32

const (
	// UnknownStatus unknown status group
	UnknownStatus Group = iota

	// CredentialStoreStatus is the status returned by the local credential store
	CredentialStoreStatus
	// IdentityStatus is the status returned while resolving identities and
	// their enrollment material
	IdentityStatus
	// GatewayStatus is the status returned when the ledger gateway rejects or
	// fails a request
	GatewayStatus
)

// GroupName maps the groups in this packages to human-readable strings
var GroupName = map[int32]string{
	0: "Unknown",
	1: "Credential Store Status",
	2: "Identity Status",
	3: "Gateway Status",
}

func (g Group) String() string {
	if s, ok := GroupName[int32(g)]; ok {
		return s
	}
	return UnknownStatus.String()
}

// FromError returns a Status representing err if available,
// otherwise it returns nil, false.
func FromError(err error) (s *Status, ok bool) {
	if err == nil {
		return &Status{Code: int32(OK)}, true
	}
	if s, ok := err.(*Status); ok {
		return s, true
	}
	unwrappedErr := errors.Cause(err)
	if s, ok := unwrappedErr.(*Status); ok {
		return s, true
	}
	return nil, false
}

// IsCode reports whether err carries a status with the given code.
func IsCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	s, ok := FromError(err)
	return ok && s.Code == code.ToInt32()
}

func (s *Status) Error() string {
	return fmt.Sprintf("%s Code: (%d) %s. Description: %s", s.Group.String(), s.Code, Code(s.Code).String(), s.Message)
}

// Unwrap returns the first error found in the details, if any.
func (s *Status) Unwrap() error {
	for _, d := range s.Details {
		if err, ok := d.(error); ok {
			return err
		}
	}
	return nil
}

// New returns a Status with the given parameters
func New(group Group, code int32, msg string, details []interface{}) *Status {
	return &Status{Group: group, Code: code, Message: msg, Details: details}
}
