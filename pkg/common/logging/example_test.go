/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

func Example() {
	logger := NewLogger("gwclient/example")

	SetLevel("gwclient/example", WARNING)

	logger.Info("not printed")
	logger.Warnf("credential store %s not found", "/opt/store/credentials.properties")
}
