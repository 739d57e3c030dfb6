/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// gatewayctl imports identities into the credential store and submits or
// evaluates transactions through the ledger gateway.
package main

import (
	"os"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
	"github.com/spf13/cobra"

	"github.com/securekey/fabric-gateway-client/pkg/core/config"
	"github.com/securekey/fabric-gateway-client/pkg/gwsdk"
)

const cmdRoot = "gatewayctl"

type sdkFactory func(provider core.ConfigProvider) (*gwsdk.SDK, error)

type cli struct {
	configFile string
	newSDK     sdkFactory
}

func newSDK(provider core.ConfigProvider) (*gwsdk.SDK, error) {
	return gwsdk.New(provider)
}

func newMainCmd(newSDK sdkFactory) *cobra.Command {
	c := &cli{newSDK: newSDK}

	mainCmd := &cobra.Command{
		Use:           cmdRoot,
		Short:         "Ledger gateway client.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	mainCmd.PersistentFlags().StringVarP(&c.configFile, "config", "c", "",
		"Client configuration file; without it configuration is read from FABRIC_GATEWAY_* environment variables")

	mainCmd.AddCommand(c.identityCmd())
	mainCmd.AddCommand(c.invokeCmd())
	mainCmd.AddCommand(c.queryCmd())
	return mainCmd
}

// sdk builds the client from the configured source
func (c *cli) sdk() (*gwsdk.SDK, error) {
	if c.configFile == "" {
		return c.newSDK(config.FromEnv())
	}
	return c.newSDK(config.FromFile(c.configFile))
}

func main() {
	// On failure Cobra prints the error string, so we only
	// need to exit with a non-0 status
	if newMainCmd(newSDK).Execute() != nil {
		os.Exit(1)
	}
}
