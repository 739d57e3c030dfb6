/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package retry

import (
	"time"

	"github.com/securekey/fabric-gateway-client/pkg/common/errors/status"
)

const (
	// DefaultInitialBackoff default initial backoff
	DefaultInitialBackoff = 500 * time.Millisecond
	// DefaultMaxBackoff default maximum backoff
	DefaultMaxBackoff = 60 * time.Second
	// DefaultBackoffFactor default backoff factor
	DefaultBackoffFactor = 2.0
)

// DefaultRetryableCodes are the codes treated as transient when no codes are
// configured. Nothing has been sent to the ledger when these are returned.
var DefaultRetryableCodes = map[status.Group][]status.Code{
	status.GatewayStatus: {
		status.ConnectionFailure,
	},
}

// EvaluateRetryableCodes are the codes treated as transient for evaluations.
// Evaluations do not change ledger state so failed transactions are retried too.
var EvaluateRetryableCodes = map[status.Group][]status.Code{
	status.GatewayStatus: {
		status.ConnectionFailure,
		status.GatewayFailure,
	},
}

// SubmitOpts returns opts for submissions with the given attempt and backoff
// settings
func SubmitOpts(opts Opts) Opts {
	if len(opts.RetryableCodes) == 0 {
		opts.RetryableCodes = DefaultRetryableCodes
	}
	return opts
}

// EvaluateOpts returns opts for evaluations with the given attempt and backoff
// settings
func EvaluateOpts(opts Opts) Opts {
	if len(opts.RetryableCodes) == 0 {
		opts.RetryableCodes = EvaluateRetryableCodes
	}
	return opts
}
