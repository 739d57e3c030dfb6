/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"time"

	"github.com/hyperledger/fabric-sdk-go/pkg/core/config"
	fabgw "github.com/hyperledger/fabric-sdk-go/pkg/gateway"
	"github.com/pkg/errors"

	"github.com/securekey/fabric-gateway-client/pkg/common/errors/status"
	"github.com/securekey/fabric-gateway-client/pkg/identity"
)

// FabricConnector connects to a Hyperledger Fabric network through the
// fabric-sdk-go gateway. Identities are taken from a wallet; an enrolled
// identity missing from the wallet is put into it first.
type FabricConnector struct {
	profile string
	wallet  *fabgw.Wallet
	timeout time.Duration
}

// ConnectorOption configures a FabricConnector
type ConnectorOption func(c *FabricConnector) error

// WithWallet uses w as the identity wallet
func WithWallet(w *fabgw.Wallet) ConnectorOption {
	return func(c *FabricConnector) error {
		c.wallet = w
		return nil
	}
}

// WithWalletPath uses a file system wallet rooted at path
func WithWalletPath(path string) ConnectorOption {
	return func(c *FabricConnector) error {
		w, err := fabgw.NewFileSystemWallet(path)
		if err != nil {
			return errors.WithMessage(err, "failed to open wallet")
		}
		c.wallet = w
		return nil
	}
}

// WithTimeout sets the commit timeout passed to the gateway. Zero keeps the
// gateway default.
func WithTimeout(timeout time.Duration) ConnectorOption {
	return func(c *FabricConnector) error {
		c.timeout = timeout
		return nil
	}
}

// NewFabricConnector returns a connector using the connection profile at
// profile. Without a wallet option an in-memory wallet is used.
func NewFabricConnector(profile string, opts ...ConnectorOption) (*FabricConnector, error) {
	if profile == "" {
		return nil, errors.New("connection profile is required")
	}

	c := &FabricConnector{profile: profile}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.wallet == nil {
		c.wallet = fabgw.NewInMemoryWallet()
	}
	return c, nil
}

// Wallet returns the connector's wallet
func (c *FabricConnector) Wallet() *fabgw.Wallet {
	return c.wallet
}

// Forget removes the wallet entry labelled with the store key of an
// identity. An absent entry is not an error.
func (c *FabricConnector) Forget(label string) error {
	if err := c.wallet.Remove(label); err != nil {
		return gatewayFailure("failed to remove identity from wallet", err)
	}
	logger.Debugf("identity %s removed from wallet", label)
	return nil
}

// Connect opens a gateway connection as id. The wallet label of an identity
// is its store key.
func (c *FabricConnector) Connect(id *identity.Identity) (Connection, error) {
	label, err := c.ensureInWallet(id)
	if err != nil {
		return nil, err
	}

	var opts []fabgw.Option
	if c.timeout > 0 {
		opts = append(opts, fabgw.WithTimeout(c.timeout))
	}

	gw, err := fabgw.Connect(
		fabgw.WithConfig(config.FromFile(c.profile)),
		fabgw.WithIdentity(c.wallet, label),
		opts...,
	)
	if err != nil {
		return nil, connectionFailure("failed to connect to gateway", err)
	}

	logger.Debugf("connected to gateway as %s", label)
	return &fabricConnection{gw: gw}, nil
}

func (c *FabricConnector) ensureInWallet(id *identity.Identity) (string, error) {
	if id == nil {
		return "", missingEnrollment("identity is nil")
	}

	label := id.Key()
	if c.wallet.Exists(label) {
		return label, nil
	}

	enrollment := id.Enrollment()
	if enrollment == nil {
		return "", missingEnrollment("User enrollment can not be null: " + label)
	}

	err := c.wallet.Put(label, fabgw.NewX509Identity(id.MSPID(), enrollment.Certificate, enrollment.KeyPEM))
	if err != nil {
		return "", gatewayFailure("failed to put identity into wallet", err)
	}
	logger.Debugf("identity %s added to wallet", label)
	return label, nil
}

type fabricConnection struct {
	gw *fabgw.Gateway
}

func (c *fabricConnection) GetNetwork(channel string) (Network, error) {
	nw, err := c.gw.GetNetwork(channel)
	if err != nil {
		return nil, err
	}
	return &fabricNetwork{nw: nw}, nil
}

func (c *fabricConnection) Close() {
	c.gw.Close()
}

type fabricNetwork struct {
	nw *fabgw.Network
}

func (n *fabricNetwork) GetContract(name string) Contract {
	return n.nw.GetContract(name)
}

func missingEnrollment(msg string) error {
	return status.New(status.IdentityStatus, status.MissingEnrollment.ToInt32(), msg, nil)
}

func gatewayFailure(msg string, cause error) error {
	return status.New(status.GatewayStatus, status.GatewayFailure.ToInt32(), msg, []interface{}{cause})
}

func connectionFailure(msg string, cause error) error {
	return status.New(status.GatewayStatus, status.ConnectionFailure.ToInt32(), msg, []interface{}{cause})
}
