/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cryptosuite

import (
	"crypto"
	"crypto/sha256"
	"crypto/x509"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
	"github.com/pkg/errors"
)

// STDProviderName is the name of the Go standard library provider
const STDProviderName = "STD"

type stdProvider struct{}

// NewSTDProvider returns a provider that keeps the parsed Go key. It
// handles ECDSA, RSA and Ed25519 keys.
func NewSTDProvider() Provider {
	return &stdProvider{}
}

func (p *stdProvider) Name() string {
	return STDProviderName
}

func (p *stdProvider) ConvertKey(info *KeyInfo) (core.Key, error) {
	signer, ok := info.Key.(crypto.Signer)
	if !ok {
		return nil, conversionError(info.Algorithm()+" key is not a signer", nil)
	}
	pub, err := newPublicKey(signer.Public())
	if err != nil {
		return nil, conversionError("failed to derive public key", err)
	}
	return &PrivateKey{signer: signer, pub: pub}, nil
}

// PrivateKey is a core.Key wrapping a Go crypto.Signer.
type PrivateKey struct {
	signer crypto.Signer
	pub    *PublicKey
}

// Signer returns the wrapped Go key
func (k *PrivateKey) Signer() crypto.Signer {
	return k.signer
}

// Bytes is not supported for private keys
func (k *PrivateKey) Bytes() ([]byte, error) {
	return nil, errors.New("Not supported.")
}

// SKI returns the subject key identifier of the public half
func (k *PrivateKey) SKI() []byte {
	return k.pub.SKI()
}

// Symmetric returns false
func (k *PrivateKey) Symmetric() bool {
	return false
}

// Private returns true
func (k *PrivateKey) Private() bool {
	return true
}

// PublicKey returns the public half
func (k *PrivateKey) PublicKey() (core.Key, error) {
	return k.pub, nil
}

// PublicKey is a core.Key wrapping a Go public key.
type PublicKey struct {
	pub crypto.PublicKey
	der []byte
	ski []byte
}

func newPublicKey(pub crypto.PublicKey) (*PublicKey, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, err
	}
	hash := sha256.Sum256(der)
	return &PublicKey{pub: pub, der: der, ski: hash[:]}, nil
}

// Bytes returns the PKIX DER encoding
func (k *PublicKey) Bytes() ([]byte, error) {
	return k.der, nil
}

// SKI returns the SHA-256 of the PKIX DER encoding
func (k *PublicKey) SKI() []byte {
	return k.ski
}

// Symmetric returns false
func (k *PublicKey) Symmetric() bool {
	return false
}

// Private returns false
func (k *PublicKey) Private() bool {
	return false
}

// PublicKey returns itself
func (k *PublicKey) PublicKey() (core.Key, error) {
	return k, nil
}
