/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/securekey/fabric-gateway-client/pkg/gateway"
	"github.com/securekey/fabric-gateway-client/pkg/gwsdk"
	"github.com/securekey/fabric-gateway-client/pkg/identity"
)

type transactionFunc func(client *gateway.Client, id *identity.Identity, args []string) (string, error)

func (c *cli) invokeCmd() *cobra.Command {
	var function string
	cmd := c.transactionCmd("invoke [args...]", "Submit a transaction.",
		func(client *gateway.Client, id *identity.Identity, args []string) (string, error) {
			if function != "" {
				result, err := client.Submit(id, function, args...)
				return string(result), err
			}
			return "", client.Invoke(id, args...)
		})
	cmd.Flags().StringVarP(&function, "function", "f", "", "Transaction to submit instead of the configured submit function")
	return cmd
}

func (c *cli) queryCmd() *cobra.Command {
	var function string
	cmd := c.transactionCmd("query [args...]", "Evaluate a transaction and print its result.",
		func(client *gateway.Client, id *identity.Identity, args []string) (string, error) {
			if function != "" {
				result, err := client.Evaluate(id, function, args...)
				return string(result), err
			}
			return client.Query(id, args...)
		})
	cmd.Flags().StringVarP(&function, "function", "f", "", "Transaction to evaluate instead of the configured evaluate function")
	return cmd
}

func (c *cli) transactionCmd(use, short string, run transactionFunc) *cobra.Command {
	var id identityFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := id.validate(); err != nil {
				return err
			}

			sdk, err := c.sdk()
			if err != nil {
				return err
			}
			defer sdk.Close()

			result, err := runTransaction(sdk, id, args, run)
			if err != nil {
				return err
			}
			if result != "" {
				fmt.Fprintln(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}

	id.register(cmd)
	return cmd
}

func runTransaction(sdk *gwsdk.SDK, flags identityFlags, args []string, run transactionFunc) (string, error) {
	client, err := sdk.Client()
	if err != nil {
		return "", err
	}

	id := sdk.Resolver().Resolve(flags.name, flags.org, flags.caHint)
	result, err := run(client, id, args)
	if err != nil {
		return "", errors.WithMessage(err, fmt.Sprintf("transaction as %s failed", id.Key()))
	}
	return result, nil
}
