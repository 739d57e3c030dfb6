/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
	"github.com/spf13/viper"
)

var _ core.ConfigBackend = (*defConfigBackend)(nil)

// defConfigBackend represents the default config backend
type defConfigBackend struct {
	configViper *viper.Viper
	opts        options
}

// Lookup gets the config item value by Key. Sections are returned as maps;
// typed decoding is done by lookup.UnmarshalKeys.
func (c *defConfigBackend) Lookup(key string) (interface{}, bool) {
	value := c.configViper.Get(key)
	if value == nil {
		return nil, false
	}
	return value, true
}
