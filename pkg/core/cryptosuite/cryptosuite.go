/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cryptosuite converts PEM encoded private keys into provider
// specific key objects.
//
// A Suite is built explicitly and handed to the code that needs it; there
// is no process-wide default. Each Suite holds one or more named Providers
// and a default provider name.
package cryptosuite

import (
	"fmt"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
	"github.com/pkg/errors"

	"github.com/securekey/fabric-gateway-client/pkg/common/errors/status"
	"github.com/securekey/fabric-gateway-client/pkg/common/logging"
)

var logger = logging.NewLogger("gwclient/core")

// Provider converts decoded key info into a key object of its own kind.
type Provider interface {
	// Name is the name the provider is registered under
	Name() string
	// ConvertKey converts info into a usable private key
	ConvertKey(info *KeyInfo) (core.Key, error)
}

// Suite is a set of named key providers with one default.
type Suite struct {
	providers       map[string]Provider
	defaultProvider string
}

// Option configures a Suite
type Option func(s *Suite) error

// WithProvider registers p under p.Name(). Registering two providers with
// the same name is an error.
func WithProvider(p Provider) Option {
	return func(s *Suite) error {
		if p == nil {
			return errors.New("provider is nil")
		}
		if _, ok := s.providers[p.Name()]; ok {
			return errors.Errorf("provider %s already registered", p.Name())
		}
		s.providers[p.Name()] = p
		return nil
	}
}

// WithDefaultProvider selects the provider used by PrivateKeyFromPEM.
func WithDefaultProvider(name string) Option {
	return func(s *Suite) error {
		s.defaultProvider = name
		return nil
	}
}

// New creates a Suite from the given options. When no default provider is
// named and exactly one provider is registered, that provider is the default.
func New(opts ...Option) (*Suite, error) {
	s := &Suite{providers: make(map[string]Provider)}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, errors.WithMessage(err, "Error in options passed to create new crypto suite")
		}
	}

	if len(s.providers) == 0 {
		return nil, errors.New("at least one provider is required")
	}

	if s.defaultProvider == "" {
		if len(s.providers) != 1 {
			return nil, errors.New("default provider must be set when more than one provider is registered")
		}
		for name := range s.providers {
			s.defaultProvider = name
		}
	}

	if _, ok := s.providers[s.defaultProvider]; !ok {
		return nil, errors.Errorf("default provider %s is not registered", s.defaultProvider)
	}

	logger.Debugf("crypto suite created with default provider %s", s.defaultProvider)
	return s, nil
}

// NewDefault creates a Suite with the SW and STD providers registered.
// defaultProvider selects between them; empty means SW. keyStorePath is the
// SW provider's key store directory.
func NewDefault(defaultProvider, keyStorePath string) (*Suite, error) {
	if defaultProvider == "" {
		defaultProvider = SWProviderName
	}
	sw, err := NewSWProvider(keyStorePath)
	if err != nil {
		return nil, err
	}
	return New(
		WithProvider(sw),
		WithProvider(NewSTDProvider()),
		WithDefaultProvider(defaultProvider),
	)
}

// DefaultProvider returns the name of the default provider
func (s *Suite) DefaultProvider() string {
	return s.defaultProvider
}

// Provider returns the provider registered under name
func (s *Suite) Provider(name string) (Provider, error) {
	p, ok := s.providers[name]
	if !ok {
		return nil, errors.Errorf("provider %s is not registered", name)
	}
	return p, nil
}

// PrivateKeyFromPEM parses raw and converts it with the default provider.
func (s *Suite) PrivateKeyFromPEM(raw []byte) (core.Key, error) {
	return s.PrivateKeyFromPEMWith(s.defaultProvider, raw)
}

// PrivateKeyFromPEMWith parses raw and converts it with the named provider.
// Parse failures carry the KeyFormatError status code, conversion failures
// the KeyConversionError code.
func (s *Suite) PrivateKeyFromPEMWith(name string, raw []byte) (core.Key, error) {
	p, err := s.Provider(name)
	if err != nil {
		return nil, conversionError(err.Error(), err)
	}

	info, err := ParsePrivateKeyPEM(raw)
	if err != nil {
		return nil, err
	}

	key, err := p.ConvertKey(info)
	if err != nil {
		if _, ok := status.FromError(err); ok {
			return nil, err
		}
		return nil, conversionError(fmt.Sprintf("provider %s failed to convert %s key", name, info.Algorithm()), err)
	}
	return key, nil
}

func formatError(msg string, cause error) error {
	details := []interface{}{}
	if cause != nil {
		details = append(details, cause)
	}
	return status.New(status.IdentityStatus, status.KeyFormatError.ToInt32(), msg, details)
}

func conversionError(msg string, cause error) error {
	details := []interface{}{}
	if cause != nil {
		details = append(details, cause)
	}
	return status.New(status.IdentityStatus, status.KeyConversionError.ToInt32(), msg, details)
}
