/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import "github.com/securekey/fabric-gateway-client/pkg/identity"

//go:generate mockgen -destination=mocks/mockgateway.gen.go -package=mock_gateway . Connector,Connection,Network,Contract

// Connector opens connections to the ledger gateway on behalf of an identity.
type Connector interface {
	Connect(id *identity.Identity) (Connection, error)
}

// Connection is an open gateway connection.
type Connection interface {
	// GetNetwork returns the network of the named channel
	GetNetwork(channel string) (Network, error)
	// Close releases the connection
	Close()
}

// Network is a channel the identity is connected to.
type Network interface {
	// GetContract returns the named smart contract
	GetContract(name string) Contract
}

// Contract is a smart contract deployed on a network.
type Contract interface {
	// SubmitTransaction endorses and commits a transaction
	SubmitTransaction(name string, args ...string) ([]byte, error)
	// EvaluateTransaction runs a transaction without committing it
	EvaluateTransaction(name string, args ...string) ([]byte, error)
}
