/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securekey/fabric-gateway-client/pkg/common/logging"
)

var configTestFilePath = filepath.Join("testdata", "config_test.yaml")

func TestFromFile(t *testing.T) {
	defer logging.SetLevel("gwclient/identity", logging.INFO)

	backends, err := FromFile(configTestFilePath)()
	require.NoError(t, err)
	require.Len(t, backends, 1)

	v, ok := backends[0].Lookup("gateway.channel")
	assert.True(t, ok)
	assert.Equal(t, "auditchannel", v)

	_, ok = backends[0].Lookup("gateway.unknown")
	assert.False(t, ok)

	section, ok := backends[0].Lookup("gateway.retry")
	assert.True(t, ok)
	assert.Contains(t, section, "attempts")

	assert.Equal(t, logging.DEBUG, logging.GetLevel("gwclient/identity"), "client.logging.level is applied")
}

func TestFromFileErrors(t *testing.T) {
	_, err := FromFile("")()
	assert.Error(t, err)

	_, err = FromFile(filepath.Join("testdata", "missing.yaml"))()
	assert.Error(t, err)

	_, err = FromFile(configTestFilePath, WithEnvPrefix(""))()
	assert.Error(t, err)
}

func TestFromRaw(t *testing.T) {
	_, err := FromRaw([]byte("store:\n  path: x\n"), "")()
	assert.Error(t, err, "config type is required")

	backends, err := FromRaw([]byte("store:\n  path: x\n"), "yaml")()
	require.NoError(t, err)
	v, ok := backends[0].Lookup("store.path")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, err = FromRaw([]byte("client:\n  logging:\n    level: loud\n"), "yaml")()
	assert.Error(t, err, "invalid log level")
}

func TestFromReader(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "config_test.json"))
	require.NoError(t, err)
	defer f.Close()

	backends, err := FromReader(f, "json")()
	require.NoError(t, err)
	v, ok := backends[0].Lookup("store.path")
	assert.True(t, ok)
	assert.Equal(t, "/tmp/gwclient/credentials.properties", v)
}

func TestEnvOverride(t *testing.T) {
	os.Setenv("FABRIC_GATEWAY_GATEWAY_CHANNEL", "envchannel")
	defer os.Unsetenv("FABRIC_GATEWAY_GATEWAY_CHANNEL")

	backends, err := FromFile(configTestFilePath)()
	require.NoError(t, err)
	v, ok := backends[0].Lookup("gateway.channel")
	assert.True(t, ok)
	assert.Equal(t, "envchannel", v)

	os.Setenv("GWTEST_STORE_PATH", "/env/store")
	defer os.Unsetenv("GWTEST_STORE_PATH")

	backends, err = FromEnv(WithEnvPrefix("GWTEST"))()
	require.NoError(t, err)
	v, ok = backends[0].Lookup("store.path")
	assert.True(t, ok)
	assert.Equal(t, "/env/store", v)
}

func TestNewClientConfig(t *testing.T) {
	defer logging.SetLevel("gwclient/core", logging.INFO)

	cfg, err := NewClientConfig(FromFile(configTestFilePath))
	require.NoError(t, err)

	assert.Equal(t, BadgerBackend, cfg.Store.Backend, "backend name is case insensitive")
	assert.Equal(t, "/tmp/gwclient/store", cfg.Store.Path)
	assert.True(t, cfg.Store.Metrics)
	assert.False(t, cfg.Identity.Restore)
	assert.True(t, cfg.Identity.StrictPersistence)
	assert.Equal(t, "STD", cfg.Crypto.Provider)
	assert.Equal(t, "/tmp/gwclient/keystore", cfg.Crypto.KeyStorePath)
	assert.Equal(t, GatewayConfig{
		ConnectionProfile: "testdata/connection.yaml",
		WalletPath:        "/tmp/gwclient/wallet",
		Channel:           "auditchannel",
		Contract:          "records",
		SubmitFunction:    "put",
		EvaluateFunction:  "get",
		Timeout:           45 * time.Second,
		Retry: RetryConfig{
			Attempts:       2,
			InitialBackoff: 100 * time.Millisecond,
			MaxBackoff:     2 * time.Second,
			BackoffFactor:  1.5,
		},
	}, cfg.Gateway)
	assert.Equal(t, 2, cfg.Gateway.Retry.Opts().Attempts)
}

func TestNewClientConfigDefaults(t *testing.T) {
	cfg, err := NewClientConfig(FromFile(filepath.Join("testdata", "config_test.json")))
	require.NoError(t, err)

	expected := DefaultClientConfig()
	expected.Store.Path = "/tmp/gwclient/credentials.properties"
	expected.Gateway.ConnectionProfile = "connection.yaml"
	assert.Equal(t, expected, cfg)
	assert.True(t, cfg.Identity.Restore)
	assert.Equal(t, "mychannel", cfg.Gateway.Channel)
	assert.Equal(t, "supervision", cfg.Gateway.Contract)
	assert.Equal(t, "save", cfg.Gateway.SubmitFunction)
	assert.Equal(t, "queryWithPagination", cfg.Gateway.EvaluateFunction)
}

func TestNewClientConfigEnvStrings(t *testing.T) {
	os.Setenv("FABRIC_GATEWAY_IDENTITY_STRICTPERSISTENCE", "true")
	os.Setenv("FABRIC_GATEWAY_GATEWAY_TIMEOUT", "2m")
	os.Setenv("FABRIC_GATEWAY_GATEWAY_RETRY_ATTEMPTS", "4")
	defer os.Unsetenv("FABRIC_GATEWAY_GATEWAY_RETRY_ATTEMPTS")
	defer os.Unsetenv("FABRIC_GATEWAY_IDENTITY_STRICTPERSISTENCE")
	defer os.Unsetenv("FABRIC_GATEWAY_GATEWAY_TIMEOUT")

	cfg, err := NewClientConfig(FromFile(filepath.Join("testdata", "config_test.json")))
	require.NoError(t, err)
	assert.True(t, cfg.Identity.StrictPersistence)
	assert.Equal(t, 2*time.Minute, cfg.Gateway.Timeout)
	assert.Equal(t, 4, cfg.Gateway.Retry.Attempts)
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *ClientConfig)
		errMsg string
	}{
		{"properties without path", func(c *ClientConfig) {}, "store.path is required"},
		{"properties in memory", func(c *ClientConfig) { c.Store.Path = "p"; c.Store.InMemory = true }, "only supported by the badger backend"},
		{"badger without path", func(c *ClientConfig) { c.Store.Backend = BadgerBackend }, "store.path is required unless"},
		{"unknown backend", func(c *ClientConfig) { c.Store.Backend = "redis"; c.Store.Path = "p" }, "unsupported store.backend"},
		{"negative timeout", func(c *ClientConfig) { c.Store.Path = "p"; c.Gateway.Timeout = -time.Second }, "must not be negative"},
		{"negative retry attempts", func(c *ClientConfig) { c.Store.Path = "p"; c.Gateway.Retry.Attempts = -1 }, "gateway.retry"},
		{"shrinking backoff", func(c *ClientConfig) { c.Store.Path = "p"; c.Gateway.Retry.BackoffFactor = 0.5 }, "backoffFactor"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultClientConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tc.errMsg), err.Error())
		})
	}

	cfg := DefaultClientConfig()
	cfg.Store.Backend = BadgerBackend
	cfg.Store.InMemory = true
	assert.NoError(t, cfg.Validate())
}

func TestNewClientConfigErrors(t *testing.T) {
	_, err := NewClientConfig(nil)
	assert.Error(t, err)

	_, err = NewClientConfig(FromFile(filepath.Join("testdata", "missing.yaml")))
	assert.Error(t, err)

	_, err = NewClientConfig(FromRaw([]byte("gateway:\n  timeout: forever\nstore:\n  path: p\n"), "yaml"))
	assert.Error(t, err, "timeout is not a duration")
}
