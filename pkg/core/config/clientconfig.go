/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"reflect"
	"strings"
	"time"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/securekey/fabric-gateway-client/pkg/common/errors/retry"
	"github.com/securekey/fabric-gateway-client/pkg/common/logging"
	"github.com/securekey/fabric-gateway-client/pkg/core/config/lookup"
)

var logger = logging.NewLogger("gwclient/core")

// StoreBackend names a credential store implementation
type StoreBackend string

const (
	// PropertiesBackend is the property file credential store
	PropertiesBackend StoreBackend = "properties"
	// BadgerBackend is the badger database credential store
	BadgerBackend StoreBackend = "badger"
)

// ClientConfig is the configuration of the gateway client.
type ClientConfig struct {
	Store    StoreConfig
	Identity IdentityConfig
	Crypto   CryptoConfig
	Gateway  GatewayConfig
}

// StoreConfig configures the credential store
type StoreConfig struct {
	Backend StoreBackend
	// Path is the property file, or the badger directory
	Path string
	// InMemory keeps a badger store in memory
	InMemory bool
	// Metrics registers credential store counters with the default
	// prometheus registry
	Metrics bool
}

// IdentityConfig configures the identity resolver
type IdentityConfig struct {
	Restore           bool
	StrictPersistence bool
}

// CryptoConfig configures the crypto suite
type CryptoConfig struct {
	// Provider is the default key provider, SW or STD
	Provider string
	// KeyStorePath is the SW provider's key store directory. Empty uses a
	// temporary directory.
	KeyStorePath string
}

// GatewayConfig configures the gateway client
type GatewayConfig struct {
	ConnectionProfile string
	WalletPath        string
	Channel           string
	Contract          string
	SubmitFunction    string
	EvaluateFunction  string
	Timeout           time.Duration
	Retry             RetryConfig
}

// RetryConfig configures retries of transient gateway failures. Zero
// attempts disables retries.
type RetryConfig struct {
	Attempts       int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	BackoffFactor  float64
}

// Opts returns the retry options for the gateway client
func (c RetryConfig) Opts() retry.Opts {
	return retry.Opts{
		Attempts:       c.Attempts,
		InitialBackoff: c.InitialBackoff,
		MaxBackoff:     c.MaxBackoff,
		BackoffFactor:  c.BackoffFactor,
	}
}

var clientConfigKeys = []string{
	"store.backend",
	"store.path",
	"store.inMemory",
	"store.metrics",
	"identity.restore",
	"identity.strictPersistence",
	"crypto.provider",
	"crypto.keyStorePath",
	"gateway.connectionProfile",
	"gateway.walletPath",
	"gateway.channel",
	"gateway.contract",
	"gateway.submitFunction",
	"gateway.evaluateFunction",
	"gateway.timeout",
	"gateway.retry.attempts",
	"gateway.retry.initialBackoff",
	"gateway.retry.maxBackoff",
	"gateway.retry.backoffFactor",
}

// DefaultClientConfig returns the configuration used for keys that are not
// set.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Store: StoreConfig{
			Backend: PropertiesBackend,
		},
		Identity: IdentityConfig{
			Restore: true,
		},
		Crypto: CryptoConfig{
			Provider: "SW",
		},
		Gateway: GatewayConfig{
			Channel:          "mychannel",
			Contract:         "supervision",
			SubmitFunction:   "save",
			EvaluateFunction: "queryWithPagination",
			Retry: RetryConfig{
				InitialBackoff: retry.DefaultInitialBackoff,
				MaxBackoff:     retry.DefaultMaxBackoff,
				BackoffFactor:  retry.DefaultBackoffFactor,
			},
		},
	}
}

// NewClientConfig loads the client configuration from the backends of
// provider. The first backend holding a key wins.
func NewClientConfig(provider core.ConfigProvider) (*ClientConfig, error) {
	if provider == nil {
		return nil, errors.New("config provider is required")
	}

	backends, err := provider()
	if err != nil {
		return nil, errors.WithMessage(err, "failed to load configuration")
	}

	cfg := DefaultClientConfig()
	err = lookup.New(backends...).UnmarshalKeys(clientConfigKeys, cfg, lookup.WithUnmarshalHookFunction(storeBackendHookFunc()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode client configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debugf("client configuration loaded: store=%s restore=%t strict=%t provider=%s",
		cfg.Store.Backend, cfg.Identity.Restore, cfg.Identity.StrictPersistence, cfg.Crypto.Provider)
	return cfg, nil
}

// Validate checks that the configuration can be used to build a client.
func (c *ClientConfig) Validate() error {
	switch c.Store.Backend {
	case PropertiesBackend:
		if c.Store.Path == "" {
			return errors.New("store.path is required for the properties backend")
		}
		if c.Store.InMemory {
			return errors.New("store.inMemory is only supported by the badger backend")
		}
	case BadgerBackend:
		if c.Store.Path == "" && !c.Store.InMemory {
			return errors.New("store.path is required unless store.inMemory is set")
		}
	default:
		return errors.Errorf("unsupported store.backend '%s'", c.Store.Backend)
	}

	if c.Gateway.Timeout < 0 {
		return errors.New("gateway.timeout must not be negative")
	}
	if r := c.Gateway.Retry; r.Attempts < 0 || r.InitialBackoff < 0 || r.MaxBackoff < 0 || r.BackoffFactor < 1 {
		return errors.New("gateway.retry requires non-negative attempts and backoffs and a backoffFactor of at least 1")
	}
	return nil
}

// storeBackendHookFunc lower cases store backend names
func storeBackendHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(StoreBackend("")) {
			return data, nil
		}
		return StoreBackend(strings.ToLower(strings.TrimSpace(data.(string)))), nil
	}
}
