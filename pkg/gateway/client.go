/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package gateway submits and evaluates smart contract transactions through
// the ledger gateway.
//
// Each call opens a connection for the calling identity, runs one
// transaction on the configured channel and contract, and closes the
// connection again.
package gateway

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/securekey/fabric-gateway-client/pkg/common/errors/retry"
	"github.com/securekey/fabric-gateway-client/pkg/common/errors/status"
	"github.com/securekey/fabric-gateway-client/pkg/common/logging"
	"github.com/securekey/fabric-gateway-client/pkg/identity"
)

var logger = logging.NewLogger("gwclient/gateway")

const (
	// DefaultChannel is the channel transactions are sent to by default
	DefaultChannel = "mychannel"
	// DefaultContract is the smart contract invoked by default
	DefaultContract = "supervision"
	// DefaultSubmitFunction is the transaction submitted by Invoke
	DefaultSubmitFunction = "save"
	// DefaultEvaluateFunction is the transaction evaluated by Query
	DefaultEvaluateFunction = "queryWithPagination"
)

// Client runs transactions on one channel and contract.
type Client struct {
	connector  Connector
	channel    string
	contract   string
	submitFn   string
	evaluateFn string
	retryOpts  retry.Opts
}

// ClientOption configures a Client
type ClientOption func(c *Client)

// WithChannel sets the channel name
func WithChannel(channel string) ClientOption {
	return func(c *Client) {
		c.channel = channel
	}
}

// WithContract sets the smart contract name
func WithContract(contract string) ClientOption {
	return func(c *Client) {
		c.contract = contract
	}
}

// WithSubmitFunction sets the transaction submitted by Invoke
func WithSubmitFunction(fn string) ClientOption {
	return func(c *Client) {
		c.submitFn = fn
	}
}

// WithEvaluateFunction sets the transaction evaluated by Query
func WithEvaluateFunction(fn string) ClientOption {
	return func(c *Client) {
		c.evaluateFn = fn
	}
}

// WithRetry retries calls failing with transient status codes. Without
// RetryableCodes, submissions retry connection failures only and evaluations
// also retry failed transactions.
func WithRetry(opts retry.Opts) ClientOption {
	return func(c *Client) {
		c.retryOpts = opts
	}
}

// NewClient returns a client using connector. Empty option values keep the
// defaults.
func NewClient(connector Connector, opts ...ClientOption) (*Client, error) {
	if connector == nil {
		return nil, errors.New("connector is required")
	}

	c := &Client{connector: connector}
	for _, opt := range opts {
		opt(c)
	}

	if c.channel == "" {
		c.channel = DefaultChannel
	}
	if c.contract == "" {
		c.contract = DefaultContract
	}
	if c.submitFn == "" {
		c.submitFn = DefaultSubmitFunction
	}
	if c.evaluateFn == "" {
		c.evaluateFn = DefaultEvaluateFunction
	}
	return c, nil
}

// Channel returns the channel name
func (c *Client) Channel() string {
	return c.channel
}

// Contract returns the smart contract name
func (c *Client) Contract() string {
	return c.contract
}

// Submit submits transaction fn with args as id and returns its result.
func (c *Client) Submit(id *identity.Identity, fn string, args ...string) ([]byte, error) {
	return c.invoke(retry.SubmitOpts(c.retryOpts), id, "submit", fn, args, Contract.SubmitTransaction)
}

// Evaluate evaluates transaction fn with args as id and returns its result.
func (c *Client) Evaluate(id *identity.Identity, fn string, args ...string) ([]byte, error) {
	return c.invoke(retry.EvaluateOpts(c.retryOpts), id, "evaluate", fn, args, Contract.EvaluateTransaction)
}

// Invoke submits the configured submit transaction with args.
func (c *Client) Invoke(id *identity.Identity, args ...string) error {
	_, err := c.Submit(id, c.submitFn, args...)
	return err
}

// Query evaluates the configured evaluate transaction with args and returns
// the result as a string.
func (c *Client) Query(id *identity.Identity, args ...string) (string, error) {
	result, err := c.Evaluate(id, c.evaluateFn, args...)
	if err != nil {
		return "", err
	}
	return string(result), nil
}

type transactionFunc func(contract Contract, name string, args ...string) ([]byte, error)

func (c *Client) invoke(opts retry.Opts, id *identity.Identity, kind, fn string, args []string, call transactionFunc) ([]byte, error) {
	invoker := retry.NewInvoker(retry.New(opts), fmt.Sprintf("%s of %s", kind, fn))
	return invoker.Invoke(func() ([]byte, error) {
		return c.run(id, kind, fn, args, call)
	})
}

func (c *Client) run(id *identity.Identity, kind, fn string, args []string, call transactionFunc) ([]byte, error) {
	conn, err := c.connector.Connect(id)
	if err != nil {
		return nil, toGatewayError(err, status.ConnectionFailure, "failed to connect to gateway")
	}
	defer conn.Close()

	network, err := conn.GetNetwork(c.channel)
	if err != nil {
		return nil, toGatewayError(err, status.ConnectionFailure, fmt.Sprintf("failed to get network %s", c.channel))
	}

	result, err := call(network.GetContract(c.contract), fn, args...)
	if err != nil {
		logger.Errorf("%s of %s on %s/%s failed: %s", kind, fn, c.channel, c.contract, err)
		return nil, toGatewayError(err, status.GatewayFailure, fmt.Sprintf("failed to %s transaction %s", kind, fn))
	}

	logger.Debugf("%s of %s on %s/%s succeeded", kind, fn, c.channel, c.contract)
	return result, nil
}

// toGatewayError keeps status errors and wraps anything else with code.
func toGatewayError(err error, code status.Code, msg string) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.New(status.GatewayStatus, code.ToInt32(), msg, []interface{}{err})
}
