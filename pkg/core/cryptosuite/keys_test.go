/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cryptosuite

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/require"
)

func pemEncode(blockType string, der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
}

func ecdsaPKCS8PEM(t *testing.T) ([]byte, *ecdsa.PrivateKey) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	return pemEncode(pkcs8BlockType, der), key
}

func ecdsaSEC1PEM(t *testing.T) []byte {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)
	return pemEncode(ecBlockType, der)
}

func rsaPKCS1PEM(t *testing.T) []byte {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	return pemEncode(rsaBlockType, x509.MarshalPKCS1PrivateKey(key))
}

func ed25519PKCS8PEM(t *testing.T) []byte {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	return pemEncode(pkcs8BlockType, der)
}

// x25519PKCS8PEM builds a PKCS#8 envelope for an algorithm no provider handles.
func x25519PKCS8PEM(t *testing.T) []byte {
	inner, err := asn1.Marshal(make([]byte, 32))
	require.NoError(t, err)
	der, err := asn1.Marshal(pkcs8{
		Version:    0,
		Algo:       pkix.AlgorithmIdentifier{Algorithm: asn1.ObjectIdentifier{1, 3, 101, 110}},
		PrivateKey: inner,
	})
	require.NoError(t, err)
	return pemEncode(pkcs8BlockType, der)
}
