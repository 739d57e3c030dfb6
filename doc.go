/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package gwclient submits and queries transactions on a Hyperledger Fabric
// network through the fabric gateway, using identities kept in a local
// credential store.
//
// Packages for end developer usage
//
// pkg/gwsdk: Assembles the client from a configuration file. This is the
// usual entry point.
//
// pkg/gateway: Invoke, Query, Submit and Evaluate on a channel and contract.
//
// pkg/identity: Resolves identities from the in-memory cache, the credential
// store, or key and certificate files.
//
// pkg/credstore: Property file and badger credential stores.
//
// Basic workflow
//
//      1) Load configuration and build the client:
//          sdk, err := gwsdk.New(config.FromFile("config.yaml"))
//      2) Resolve an identity with its enrollment material:
//          id, err := sdk.Resolver().ResolveWithMaterial("alice", "Org1", "", "Org1MSP", keyFile, certFile)
//      3) Run transactions:
//          client, err := sdk.Client()
//          err = client.Invoke(id, "key", `{"id":"1"}`)
//          result, err := client.Query(id, selector, "10000", "")
//      4) Release the credential store:
//          sdk.Close()
package gwclient
