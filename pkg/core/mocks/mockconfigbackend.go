/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mocks

import "github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"

//MockConfigBackend mocks config backend for unit tests
type MockConfigBackend struct {
	//KeyValueMap map of dotted keys to values
	KeyValueMap map[string]interface{}
}

// NewMockConfigBackend returns a backend serving the given key-values
func NewMockConfigBackend(keyValues map[string]interface{}) *MockConfigBackend {
	if keyValues == nil {
		keyValues = make(map[string]interface{})
	}
	return &MockConfigBackend{KeyValueMap: keyValues}
}

// Set sets the value of key
func (b *MockConfigBackend) Set(key string, value interface{}) {
	b.KeyValueMap[key] = value
}

var _ core.ConfigBackend = (*MockConfigBackend)(nil)

//Lookup returns the value for given key
func (b *MockConfigBackend) Lookup(key string) (interface{}, bool) {
	v, ok := b.KeyValueMap[key]
	return v, ok
}

// Provider returns a config provider serving this backend
func (b *MockConfigBackend) Provider() core.ConfigProvider {
	return func() ([]core.ConfigBackend, error) {
		return []core.ConfigBackend{b}, nil
	}
}
