/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

import (
	"strconv"
)

// Code represents a status code
type Code uint32

const (
	// OK is returned on success.
	OK Code = 0

	// Unknown represents status codes that are uncategorized or unknown
	Unknown Code = 1

	// StoreUnavailable is returned when the credential store backing file is
	// missing or unreadable
	StoreUnavailable Code = 2

	// StoreWriteFailure is returned when the credential store could not be written
	StoreWriteFailure Code = 3

	// IOError is returned when a supplied key or certificate file cannot be read
	IOError Code = 4

	// KeyFormatError is returned when the textual key container cannot be parsed
	KeyFormatError Code = 5

	// KeyConversionError is returned when parsed key info cannot be converted
	// into a usable private key
	KeyConversionError Code = 6

	// MissingEnrollment is returned when an identity without enrollment
	// material is presented to the gateway
	MissingEnrollment Code = 7

	// GatewayFailure is returned when the ledger gateway fails a request
	GatewayFailure Code = 8

	// ConnectionFailure is returned when the gateway connection or the
	// channel network could not be established
	ConnectionFailure Code = 9
)

// CodeName maps the codes in this packages to human-readable strings
var CodeName = map[int32]string{
	0: "OK",
	1: "UNKNOWN",
	2: "STORE_UNAVAILABLE",
	3: "STORE_WRITE_FAILURE",
	4: "IO_ERROR",
	5: "KEY_FORMAT_ERROR",
	6: "KEY_CONVERSION_ERROR",
	7: "MISSING_ENROLLMENT",
	8: "GATEWAY_FAILURE",
	9: "CONNECTION_FAILURE",
}

// ToInt32 cast to int32
func (c Code) ToInt32() int32 {
	return int32(c)
}

// String representation of the code
func (c Code) String() string {
	if s, ok := CodeName[c.ToInt32()]; ok {
		return s
	}
	return strconv.Itoa(int(c))
}

// ToStatusCode cast to a gateway client status code
func ToStatusCode(c int32) Code {
	return Code(c)
}
