/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cryptosuite

import (
	"testing"

	"github.com/securekey/fabric-gateway-client/pkg/common/errors/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCert = `-----BEGIN CERTIFICATE-----
MIICjzCCAjWgAwIBAgIUXtE0iOex19qEbY12PpU3Sig3/LswCgYIKoZIzj0EAwIw
czELMAkGA1UEBhMCVVMxEzARBgNVBAgTCkNhbGlmb3JuaWExFjAUBgNVBAcTDVNh
biBGcmFuY2lzY28xGTAXBgNVBAoTEG9yZzEuZXhhbXBsZS5jb20xHDAaBgNVBAMT
E2NhLm9yZzEuZXhhbXBsZS5jb20wHhcNMjAwMTA3MTEzNjAwWhcNMjEwMTA2MTE0
MTAwWjBCMTAwDQYDVQQLEwZjbGllbnQwCwYDVQQLEwRvcmcxMBIGA1UECxMLZGVw
YXJ0bWVudDExDjAMBgNVBAMTBXVzZXIxMFkwEwYHKoZIzj0CAQYIKoZIzj0DAQcD
QgAENzTDkumKQshSiY4CmAj+nkGFBvdY3YaECvvFH4ctP1fwlXSY/xMXvPcswKin
y82/bXOjLljmC8D0Q7Bd3fKrMKOB1zCB1DAOBgNVHQ8BAf8EBAMCB4AwDAYDVR0T
AQH/BAIwADAdBgNVHQ4EFgQUfi/LNRJof+w9YtBydB7kpget9eowKwYDVR0jBCQw
IoAga001uwQc4mqKCzZzSlqHrmd3JGYF3lbyxsEzYHvzmSEwaAYIKgMEBQYHCAEE
XHsiYXR0cnMiOnsiaGYuQWZmaWxpYXRpb24iOiJvcmcxLmRlcGFydG1lbnQxIiwi
aGYuRW5yb2xsbWVudElEIjoidXNlcjEiLCJoZi5UeXBlIjoiY2xpZW50In19MAoG
CCqGSM49BAMCA0gAMEUCIQCXMS8+ahDQZ5wHnWUcps9GH2uWG+qPO3LxTitCH/rs
owIgRo0pFBhgLXaJ9ECYR+gSNBDpIc5I/Fr7QL7iIleSQlY=
-----END CERTIFICATE-----`

func TestParsePrivateKeyPEM(t *testing.T) {
	pkcs8, _ := ecdsaPKCS8PEM(t)
	tests := []struct {
		name      string
		raw       []byte
		blockType string
		algorithm string
	}{
		{"pkcs8 ecdsa", pkcs8, pkcs8BlockType, "ECDSA"},
		{"sec1 ecdsa", ecdsaSEC1PEM(t), ecBlockType, "ECDSA"},
		{"pkcs1 rsa", rsaPKCS1PEM(t), rsaBlockType, "RSA"},
		{"pkcs8 ed25519", ed25519PKCS8PEM(t), pkcs8BlockType, "Ed25519"},
		{"cert before key", append([]byte(testCert+"\n"), pkcs8...), pkcs8BlockType, "ECDSA"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info, err := ParsePrivateKeyPEM(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.blockType, info.BlockType)
			assert.Equal(t, tc.algorithm, info.Algorithm())
			assert.NotEmpty(t, info.DER)
		})
	}
}

func TestParsePrivateKeyPEMFormatErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"empty", nil},
		{"not pem", []byte("this is not a key")},
		{"certificate only", []byte(testCert)},
		{"garbage der", pemEncode(pkcs8BlockType, []byte{0x01, 0x02, 0x03})},
		{"garbage sec1", pemEncode(ecBlockType, []byte{0x30, 0x00})},
		{"garbage pkcs1", pemEncode(rsaBlockType, []byte{0x30, 0x00})},
		{"unknown block type", pemEncode("DSA PRIVATE KEY", []byte{0x30, 0x00})},
		{"encrypted", pemEncode(encryptedPKCS8BlockType, []byte{0x30, 0x00})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePrivateKeyPEM(tc.raw)
			require.Error(t, err)
			assert.True(t, status.IsCode(err, status.KeyFormatError), "unexpected error: %s", err)
		})
	}
}

func TestParsePrivateKeyPEMSwitchedInputs(t *testing.T) {
	_, err := ParsePrivateKeyPEM([]byte(testCert))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PEM inputs may have been switched")
}

func TestParsePrivateKeyPEMUnsupportedAlgorithm(t *testing.T) {
	_, err := ParsePrivateKeyPEM(x25519PKCS8PEM(t))
	require.Error(t, err)
	assert.True(t, status.IsCode(err, status.KeyConversionError), "unexpected error: %s", err)
	assert.Contains(t, err.Error(), "1.3.101.110")
}
