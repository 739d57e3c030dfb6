/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"encoding/base64"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/securekey/fabric-gateway-client/pkg/identity"
)

type identityFlags struct {
	name   string
	org    string
	caHint string
}

func (f *identityFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.name, "name", "n", "", "Identity name")
	flags.StringVarP(&f.org, "org", "o", "", "Organization of the identity")
	flags.StringVar(&f.caHint, "ca", "", "(Optional) Certificate authority hint")
}

func (f *identityFlags) validate() error {
	if f.name == "" {
		return errors.New("identity name must be specified")
	}
	if f.org == "" {
		return errors.New("organization must be specified")
	}
	return nil
}

func (c *cli) identityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Manage identities in the credential store.",
	}
	cmd.AddCommand(c.importCmd())
	cmd.AddCommand(c.existsCmd())
	cmd.AddCommand(c.showCmd())
	cmd.AddCommand(c.listCmd())
	cmd.AddCommand(c.removeCmd())
	return cmd
}

func (c *cli) importCmd() *cobra.Command {
	var (
		id       identityFlags
		mspID    string
		keyFile  string
		certFile string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import an identity from its private key and certificate files.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := id.validate(); err != nil {
				return err
			}
			if mspID == "" || keyFile == "" || certFile == "" {
				return errors.New("msp, key and cert must be specified")
			}

			sdk, err := c.sdk()
			if err != nil {
				return err
			}
			defer sdk.Close()

			resolved, err := sdk.Resolver().ResolveWithMaterial(id.name, id.org, id.caHint, mspID, keyFile, certFile)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "identity %s imported\n", resolved.Key())
			return nil
		},
	}

	id.register(cmd)
	flags := cmd.Flags()
	flags.StringVarP(&mspID, "msp", "m", "", "Membership service provider ID")
	flags.StringVarP(&keyFile, "key", "k", "", "PEM private key file")
	flags.StringVarP(&certFile, "cert", "r", "", "PEM certificate file")
	return cmd
}

func (c *cli) existsCmd() *cobra.Command {
	var id identityFlags

	cmd := &cobra.Command{
		Use:   "exists",
		Short: "Report whether an identity is stored.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := id.validate(); err != nil {
				return err
			}

			sdk, err := c.sdk()
			if err != nil {
				return err
			}
			defer sdk.Close()

			fmt.Fprintln(cmd.OutOrStdout(), sdk.Resolver().Exists(id.name, id.org, id.caHint))
			return nil
		},
	}

	id.register(cmd)
	return cmd
}

func (c *cli) showCmd() *cobra.Command {
	var id identityFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the MSP ID and base64 serialized MSP identity of a stored identity.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := id.validate(); err != nil {
				return err
			}

			sdk, err := c.sdk()
			if err != nil {
				return err
			}
			defer sdk.Close()

			resolved := sdk.Resolver().Resolve(id.name, id.org, id.caHint)
			serialized, err := resolved.Serialize()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "key: %s\n", resolved.Key())
			fmt.Fprintf(out, "mspId: %s\n", resolved.MSPID())
			fmt.Fprintf(out, "serialized: %s\n", base64.StdEncoding.EncodeToString(serialized))
			return nil
		},
	}

	id.register(cmd)
	return cmd
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the store keys of all stored identities.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := c.sdk()
			if err != nil {
				return err
			}
			defer sdk.Close()

			for _, key := range sdk.Resolver().StoredKeys() {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
}

func (c *cli) removeCmd() *cobra.Command {
	var id identityFlags

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove an identity from the credential store and the gateway wallet.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := id.validate(); err != nil {
				return err
			}

			sdk, err := c.sdk()
			if err != nil {
				return err
			}
			defer sdk.Close()

			if err := sdk.RemoveIdentity(id.name, id.org, id.caHint); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "identity %s removed\n", identity.StoreKey(id.name, id.org, id.caHint))
			return nil
		},
	}

	id.register(cmd)
	return cmd
}
