/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package retry re-runs gateway calls that fail with transient status codes.
// The gateway client applies SubmitOpts or EvaluateOpts unless the caller
// configures its own Opts through gateway.WithRetry.
package retry

import (
	"time"

	"github.com/securekey/fabric-gateway-client/pkg/common/errors/status"
)

// Opts defines the retry parameters
type Opts struct {
	// Attempts the number retry attempts; zero disables retries
	Attempts int
	// InitialBackoff the backoff interval for the first retry attempt
	InitialBackoff time.Duration
	// MaxBackoff the maximum backoff interval for any retry attempt
	MaxBackoff time.Duration
	// BackoffFactor the factor by which the InitialBackoff is exponentially
	// incremented for consecutive retry attempts.
	BackoffFactor float64
	// RetryableCodes the status codes, mapped by group, that warrant a retry.
	// Defaults to DefaultRetryableCodes.
	RetryableCodes map[status.Group][]status.Code
}

// Handler decides whether a retry is required for the given error
type Handler interface {
	Required(err error) bool
}

type impl struct {
	opts    Opts
	retries int
	sleep   func(time.Duration)
}

// New retry Handler with the given opts. A Handler counts attempts, so a new
// one is needed per invocation.
func New(opts Opts) Handler {
	if len(opts.RetryableCodes) == 0 {
		opts.RetryableCodes = DefaultRetryableCodes
	}
	return &impl{opts: opts, sleep: time.Sleep}
}

// Required determines if retry is required for the given error.
// Backoff sleeps happen behind this call.
func (i *impl) Required(err error) bool {
	if i.retries >= i.opts.Attempts {
		return false
	}

	s, ok := status.FromError(err)
	if ok && i.isRetryable(s.Group, s.Code) {
		i.sleep(i.backoffPeriod())
		i.retries++
		return true
	}

	return false
}

func (i *impl) backoffPeriod() time.Duration {
	backoff, max := float64(i.opts.InitialBackoff), float64(i.opts.MaxBackoff)
	for j := 0; j < i.retries && backoff < max; j++ {
		backoff *= i.opts.BackoffFactor
	}
	if backoff > max {
		backoff = max
	}

	return time.Duration(backoff)
}

func (i *impl) isRetryable(g status.Group, c int32) bool {
	for _, code := range i.opts.RetryableCodes[g] {
		if status.Code(c) == code {
			return true
		}
	}
	return false
}
