/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package lookup

import (
	"strings"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

//New providers lookup wrapper around given backend
func New(coreBackends ...core.ConfigBackend) *ConfigLookup {
	return &ConfigLookup{backends: coreBackends}
}

//unmarshalOpts opts for unmarshal key function
type unmarshalOpts struct {
	hooks []mapstructure.DecodeHookFunc
}

// UnmarshalOption describes a functional parameter unmarshaling
type UnmarshalOption func(o *unmarshalOpts)

// WithUnmarshalHookFunction provides an option to pass Custom Decode Hook Func
// for unmarshaling
func WithUnmarshalHookFunction(hookFunction mapstructure.DecodeHookFunc) UnmarshalOption {
	return func(o *unmarshalOpts) {
		o.hooks = append(o.hooks, hookFunction)
	}
}

//ConfigLookup is wrapper for core.ConfigBackend which performs key lookup and unmarshalling
type ConfigLookup struct {
	backends []core.ConfigBackend
}

//Lookup returns value for given key
func (c *ConfigLookup) Lookup(key string) (interface{}, bool) {
	//loop through each backend to find the value by key, fallback to next one if not found
	for _, backend := range c.backends {
		if backend == nil {
			continue
		}
		val, ok := backend.Lookup(key)
		if ok {
			return val, true
		}
	}
	return nil, false
}

// UnmarshalKeys looks up each of the dotted leaf keys and decodes the values
// found into rawVal as if they were one nested map. Keys that are not found
// leave the corresponding field of rawVal untouched, so rawVal may carry
// defaults. Values are weakly typed: "true" decodes into a bool and "30s"
// into a time.Duration.
func (c *ConfigLookup) UnmarshalKeys(keys []string, rawVal interface{}, opts ...UnmarshalOption) error {
	values := make(map[string]interface{})
	for _, key := range keys {
		value, ok := c.Lookup(key)
		if !ok {
			continue
		}
		if err := setNested(values, strings.Split(key, "."), value); err != nil {
			return err
		}
	}

	//mandatory hook func
	var unmarshalHooks []mapstructure.DecodeHookFunc
	unmarshalHooks = append(unmarshalHooks, mapstructure.StringToTimeDurationHookFunc())

	//check for opts
	unmarshalOptions := unmarshalOpts{}
	for _, param := range opts {
		param(&unmarshalOptions)
	}

	//compose multiple hook funcs to one if found in opts
	hookFn := mapstructure.ComposeDecodeHookFunc(append(unmarshalHooks, unmarshalOptions.hooks...)...)

	//build decoder
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       hookFn,
		WeaklyTypedInput: true,
		Result:           rawVal,
	})
	if err != nil {
		return err
	}

	//decode
	return decoder.Decode(values)
}

func setNested(m map[string]interface{}, path []string, value interface{}) error {
	for i, segment := range path[:len(path)-1] {
		next, ok := m[segment]
		if !ok {
			child := make(map[string]interface{})
			m[segment] = child
			m = child
			continue
		}
		child, ok := next.(map[string]interface{})
		if !ok {
			return errors.Errorf("key %s is both a value and a section", strings.Join(path[:i+1], "."))
		}
		m = child
	}
	m[path[len(path)-1]] = value
	return nil
}
