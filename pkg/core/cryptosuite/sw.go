/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cryptosuite

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
	"github.com/hyperledger/fabric-sdk-go/pkg/core/cryptosuite/bccsp/sw"
	"github.com/pkg/errors"
)

// SWProviderName is the name of the fabric software provider
const SWProviderName = "SW"

// swConfig is the BCCSP configuration of the software provider: SHA2-256
// with a file key store at keyStorePath.
type swConfig struct {
	keyStorePath string
}

func (c *swConfig) IsSecurityEnabled() bool         { return true }
func (c *swConfig) SecurityAlgorithm() string       { return "SHA2" }
func (c *swConfig) SecurityLevel() int              { return 256 }
func (c *swConfig) SecurityProvider() string        { return "sw" }
func (c *swConfig) SoftVerify() bool                { return true }
func (c *swConfig) SecurityProviderLibPath() string { return "" }
func (c *swConfig) SecurityProviderPin() string     { return "" }
func (c *swConfig) SecurityProviderLabel() string   { return "" }
func (c *swConfig) KeyStorePath() string            { return c.keyStorePath }

type swProvider struct {
	suite        core.CryptoSuite
	keyStorePath string
}

// NewSWProvider returns a provider backed by the fabric software crypto
// suite. Keys are written to the file key store at keyStorePath and loaded
// back through the suite by their SKI. An empty path uses a new temporary
// directory. It handles ECDSA keys only.
func NewSWProvider(keyStorePath string) (Provider, error) {
	if keyStorePath == "" {
		dir, err := ioutil.TempDir("", "gwclient-keystore")
		if err != nil {
			return nil, errors.Wrap(err, "failed to create key store directory")
		}
		keyStorePath = dir
	}

	cs, err := sw.GetSuiteByConfig(&swConfig{keyStorePath: keyStorePath})
	if err != nil {
		return nil, errors.WithMessage(err, "Could not initialize SW cryptosuite")
	}
	logger.Debugf("SW cryptosuite key store at %s", keyStorePath)
	return &swProvider{suite: cs, keyStorePath: keyStorePath}, nil
}

func (p *swProvider) Name() string {
	return SWProviderName
}

func (p *swProvider) ConvertKey(info *KeyInfo) (core.Key, error) {
	ecKey, ok := info.Key.(*ecdsa.PrivateKey)
	if !ok {
		return nil, conversionError(fmt.Sprintf("%s key import is not supported by the %s provider", info.Algorithm(), SWProviderName), nil)
	}

	der, err := x509.MarshalPKCS8PrivateKey(ecKey)
	if err != nil {
		return nil, conversionError("failed to convert ECDSA private key", err)
	}

	ski := ecdsaSKI(&ecKey.PublicKey)
	path := filepath.Join(p.keyStorePath, hex.EncodeToString(ski)+"_sk")
	if err := ioutil.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: pkcs8BlockType, Bytes: der}), 0600); err != nil {
		return nil, conversionError("failed to write ECDSA private key to key store", err)
	}

	key, err := p.suite.GetKey(ski)
	if err != nil {
		os.Remove(path)
		return nil, conversionError("failed to load ECDSA private key from key store", err)
	}
	return key, nil
}

// ecdsaSKI is the subject key identifier the fabric key store files ECDSA
// keys under: the SHA-256 of the uncompressed public point.
func ecdsaSKI(pub *ecdsa.PublicKey) []byte {
	raw := elliptic.Marshal(pub.Curve, pub.X, pub.Y)
	hash := sha256.Sum256(raw)
	return hash[:]
}
