/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package gwsdk assembles the gateway client from its configuration: the
// credential store, the crypto suite, the identity resolver and the
// gateway connector.
package gwsdk

import (
	"io"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/securekey/fabric-gateway-client/pkg/common/errors/multi"
	"github.com/securekey/fabric-gateway-client/pkg/common/logging"
	"github.com/securekey/fabric-gateway-client/pkg/core/config"
	"github.com/securekey/fabric-gateway-client/pkg/core/cryptosuite"
	"github.com/securekey/fabric-gateway-client/pkg/credstore"
	"github.com/securekey/fabric-gateway-client/pkg/gateway"
	"github.com/securekey/fabric-gateway-client/pkg/identity"
)

var logger = logging.NewLogger("gwclient/sdk")

// SDK holds the components of a configured gateway client.
type SDK struct {
	config     *config.ClientConfig
	registerer prometheus.Registerer
	store      credstore.Store
	suite      *cryptosuite.Suite
	cache      *identity.Cache
	resolver   *identity.Resolver
	connector  gateway.Connector
	client     *gateway.Client
}

// Option provides an option for the SDK constructor
type Option func(sdk *SDK) error

// WithLoggerProvider initializes logging with provider. Logging can only be
// initialized once per process.
func WithLoggerProvider(provider logging.LoggerProvider) Option {
	return func(sdk *SDK) error {
		if provider == nil {
			return errors.New("logger provider is nil")
		}
		logging.Initialize(provider)
		return nil
	}
}

// WithMetricsRegisterer registers the credential store metrics with reg,
// regardless of store.metrics.
func WithMetricsRegisterer(reg prometheus.Registerer) Option {
	return func(sdk *SDK) error {
		sdk.registerer = reg
		return nil
	}
}

// WithIdentityCache shares cache with the resolver
func WithIdentityCache(cache *identity.Cache) Option {
	return func(sdk *SDK) error {
		sdk.cache = cache
		return nil
	}
}

// WithCryptoSuite replaces the default crypto suite
func WithCryptoSuite(suite *cryptosuite.Suite) Option {
	return func(sdk *SDK) error {
		sdk.suite = suite
		return nil
	}
}

// WithConnector replaces the fabric gateway connector
func WithConnector(connector gateway.Connector) Option {
	return func(sdk *SDK) error {
		sdk.connector = connector
		return nil
	}
}

// New loads the client configuration from configProvider and builds the
// client components.
func New(configProvider core.ConfigProvider, opts ...Option) (*SDK, error) {
	cfg, err := config.NewClientConfig(configProvider)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to initialize configuration")
	}

	sdk := &SDK{config: cfg}
	for _, opt := range opts {
		if err := opt(sdk); err != nil {
			return nil, errors.WithMessage(err, "Error in option passed to New")
		}
	}

	if err := sdk.init(); err != nil {
		return nil, multi.Append(err, sdk.Close())
	}

	logger.Infof("gateway client initialized with %s credential store", cfg.Store.Backend)
	return sdk, nil
}

func (sdk *SDK) init() error {
	store, err := sdk.newStore()
	if err != nil {
		return errors.WithMessage(err, "failed to create credential store")
	}
	sdk.store = store

	if sdk.suite == nil {
		sdk.suite, err = cryptosuite.NewDefault(sdk.config.Crypto.Provider, sdk.config.Crypto.KeyStorePath)
		if err != nil {
			return errors.WithMessage(err, "failed to create crypto suite")
		}
	}

	if sdk.cache == nil {
		sdk.cache = identity.NewCache()
	}

	sdk.resolver, err = identity.NewResolver(sdk.store, sdk.suite, sdk.cache,
		identity.WithRestore(sdk.config.Identity.Restore),
		identity.WithStrictPersistence(sdk.config.Identity.StrictPersistence),
	)
	if err != nil {
		return errors.WithMessage(err, "failed to create identity resolver")
	}

	if sdk.connector == nil && sdk.config.Gateway.ConnectionProfile != "" {
		sdk.connector, err = sdk.newFabricConnector()
		if err != nil {
			return errors.WithMessage(err, "failed to create gateway connector")
		}
	}

	if sdk.connector != nil {
		gw := sdk.config.Gateway
		sdk.client, err = gateway.NewClient(sdk.connector,
			gateway.WithChannel(gw.Channel),
			gateway.WithContract(gw.Contract),
			gateway.WithSubmitFunction(gw.SubmitFunction),
			gateway.WithEvaluateFunction(gw.EvaluateFunction),
			gateway.WithRetry(gw.Retry.Opts()),
		)
		if err != nil {
			return errors.WithMessage(err, "failed to create gateway client")
		}
	}
	return nil
}

func (sdk *SDK) newStore() (credstore.Store, error) {
	var storeOpts []credstore.Option

	reg := sdk.registerer
	if reg == nil && sdk.config.Store.Metrics {
		reg = prometheus.DefaultRegisterer
	}
	if reg != nil {
		metrics, err := credstore.NewMetrics(reg)
		if err != nil {
			return nil, err
		}
		storeOpts = append(storeOpts, credstore.WithMetrics(metrics))
	}

	switch sdk.config.Store.Backend {
	case config.BadgerBackend:
		if sdk.config.Store.InMemory {
			storeOpts = append(storeOpts, credstore.InMemory())
		}
		return credstore.NewBadgerStore(sdk.config.Store.Path, storeOpts...)
	default:
		return credstore.NewPropertiesStore(sdk.config.Store.Path, storeOpts...)
	}
}

func (sdk *SDK) newFabricConnector() (gateway.Connector, error) {
	gw := sdk.config.Gateway
	connectorOpts := []gateway.ConnectorOption{gateway.WithTimeout(gw.Timeout)}
	if gw.WalletPath != "" {
		connectorOpts = append(connectorOpts, gateway.WithWalletPath(gw.WalletPath))
	}
	return gateway.NewFabricConnector(gw.ConnectionProfile, connectorOpts...)
}

// Config returns the client configuration
func (sdk *SDK) Config() *config.ClientConfig {
	return sdk.config
}

// Store returns the credential store
func (sdk *SDK) Store() credstore.Store {
	return sdk.store
}

// Resolver returns the identity resolver
func (sdk *SDK) Resolver() *identity.Resolver {
	return sdk.resolver
}

// RemoveIdentity deletes the identity from the credential store and the
// identity cache. With the fabric connector its wallet entry is removed
// too, so the gateway cannot keep using it.
func (sdk *SDK) RemoveIdentity(name, org, caHint string) error {
	if err := sdk.resolver.Remove(name, org, caHint); err != nil {
		return err
	}
	if fc, ok := sdk.connector.(*gateway.FabricConnector); ok {
		return fc.Forget(identity.StoreKey(name, org, caHint))
	}
	return nil
}

// Client returns the gateway client. It fails when neither a connection
// profile nor a connector was configured.
func (sdk *SDK) Client() (*gateway.Client, error) {
	if sdk.client == nil {
		return nil, errors.New("gateway.connectionProfile is not configured")
	}
	return sdk.client, nil
}

// Close releases the credential store
func (sdk *SDK) Close() error {
	closer, ok := sdk.store.(io.Closer)
	if !ok {
		return nil
	}
	if err := closer.Close(); err != nil {
		return errors.WithMessage(err, "failed to close credential store")
	}
	return nil
}
