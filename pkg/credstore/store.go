/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package credstore provides the durable key-value stores used to cache
// identity enrollment material between runs.
//
// Read failures never surface as errors: a missing or unreadable backing
// store is logged and treated as an empty one. Write failures are logged and
// returned as status errors with code StoreWriteFailure.
package credstore

import (
	"fmt"

	"github.com/securekey/fabric-gateway-client/pkg/common/errors/status"
	"github.com/securekey/fabric-gateway-client/pkg/common/logging"
)

var logger = logging.NewLogger("gwclient/credstore")

const (
	newDirMode  = 0700
	newFileMode = 0600
)

// Store is a string key-value store.
type Store interface {
	// Get returns the value for key, or false if there is none.
	Get(key string) (string, bool)
	// Has reports whether a value is stored for key.
	Has(key string) bool
	// Set adds or overwrites the value for key.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Keys lists the stored keys.
	Keys() []string
}

type options struct {
	metrics  *Metrics
	inMemory bool
}

// Option configures a store.
type Option func(opts *options)

// WithMetrics records load and write outcomes on m.
func WithMetrics(m *Metrics) Option {
	return func(opts *options) {
		opts.metrics = m
	}
}

// InMemory keeps a badger store in memory only. It is ignored by the
// properties store.
func InMemory() Option {
	return func(opts *options) {
		opts.inMemory = true
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func writeFailure(path string, err error) error {
	return status.New(status.CredentialStoreStatus, status.StoreWriteFailure.ToInt32(),
		fmt.Sprintf("could not save the keyvalue store %s", path), []interface{}{path, err})
}
