/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package multi is an error type that holds multiple errors, such as the
// failures collected while releasing several resources at once.
package multi

import (
	"errors"
	"strings"
)

// Errors is used to represent multiple errors
type Errors []error

// New returns the non-nil errs as a single error: nil when there are none,
// the error itself when there is one, Errors otherwise.
func New(errs ...error) error {
	var m Errors
	for _, err := range errs {
		if err != nil {
			m = append(m, err)
		}
	}
	return m.ToError()
}

// Append err to errs. If errs is not an Errors value, one is created.
func Append(errs error, err error) error {
	m, ok := errs.(Errors)
	if !ok {
		return New(errs, err)
	}
	if err == nil {
		return errs
	}
	return append(m, err)
}

// ToError returns nil if no errors are present, the single error if only one
// is present, and errs otherwise.
func (errs Errors) ToError() error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errs
	}
}

// Error joins the messages of all errors
func (errs Errors) Error() string {
	if len(errs) == 1 {
		return errs[0].Error()
	}

	msgs := make([]string, 0, len(errs)+1)
	if len(errs) > 0 {
		msgs = append(msgs, "Multiple errors occurred:")
	}
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, " - ")
}

// Is reports whether any of the errors matches target
func (errs Errors) Is(target error) bool {
	for _, err := range errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
