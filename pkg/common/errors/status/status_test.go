/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

import (
	"fmt"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatusConstructors(t *testing.T) {
	s := New(CredentialStoreStatus, StoreWriteFailure.ToInt32(), "test", nil)
	assert.NotNil(t, s, "Expected status to be constructed")
	assert.EqualValues(t, StoreWriteFailure, ToStatusCode(s.Code))
	assert.Equal(t, CredentialStoreStatus, s.Group)
	assert.Equal(t, "test", s.Message, "Expected test message")
}

func TestFromError(t *testing.T) {
	s := New(IdentityStatus, IOError.ToInt32(), "test", nil)
	derivedStatus, ok := FromError(s)
	assert.True(t, ok)
	assert.Equal(t, s, derivedStatus)

	// Test unwrap
	s1 := errors.Wrap(s, "test")
	derivedStatus, ok = FromError(s1)
	assert.True(t, ok)
	assert.Equal(t, s, derivedStatus)

	s, ok = FromError(nil)
	assert.True(t, ok)
	assert.EqualValues(t, OK.ToInt32(), s.Code)

	_, ok = FromError(fmt.Errorf("Test"))
	assert.False(t, ok)
}

func TestIsCode(t *testing.T) {
	s := New(IdentityStatus, KeyConversionError.ToInt32(), "test", nil)
	assert.True(t, IsCode(s, KeyConversionError))
	assert.True(t, IsCode(errors.WithMessage(s, "resolve failed"), KeyConversionError))
	assert.False(t, IsCode(s, KeyFormatError))
	assert.False(t, IsCode(nil, OK))
	assert.False(t, IsCode(fmt.Errorf("plain"), Unknown))
}

func TestStatusToError(t *testing.T) {
	s := New(IdentityStatus, MissingEnrollment.ToInt32(), "test", nil)
	expectedErr := "Identity Status Code: (7) MISSING_ENROLLMENT. Description: test"
	assert.Equal(t, expectedErr, s.Error())

	s = New(Group(99), 1000, "test", nil)
	assert.Equal(t, "Unknown Code: (1000) 1000. Description: test", s.Error())
}

func TestStatusUnwrap(t *testing.T) {
	s := New(IdentityStatus, IOError.ToInt32(), "read failed", []interface{}{"cert.pem", os.ErrNotExist})
	assert.True(t, errors.Is(s, os.ErrNotExist))

	s = New(IdentityStatus, IOError.ToInt32(), "read failed", []interface{}{"cert.pem"})
	assert.Nil(t, s.Unwrap())
}
