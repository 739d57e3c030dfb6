/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cryptosuite

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"fmt"
	"strings"
)

const (
	pkcs8BlockType          = "PRIVATE KEY"
	ecBlockType             = "EC PRIVATE KEY"
	rsaBlockType            = "RSA PRIVATE KEY"
	encryptedPKCS8BlockType = "ENCRYPTED PRIVATE KEY"
)

var (
	oidPublicKeyECDSA   = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidPublicKeyRSA     = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	oidPublicKeyEd25519 = asn1.ObjectIdentifier{1, 3, 101, 112}
)

// pkcs8 is the outer PKCS#8 structure, used to read the algorithm before
// the key itself is parsed.
type pkcs8 struct {
	Version    int
	Algo       pkix.AlgorithmIdentifier
	PrivateKey []byte
}

// KeyInfo is a private key taken out of its PEM container.
type KeyInfo struct {
	// BlockType is the PEM block type the key was found in
	BlockType string
	// DER is the content of the PEM block
	DER []byte
	// Key is the parsed key: *ecdsa.PrivateKey, *rsa.PrivateKey or ed25519.PrivateKey
	Key crypto.PrivateKey
}

// Algorithm names the key algorithm
func (k *KeyInfo) Algorithm() string {
	switch k.Key.(type) {
	case *ecdsa.PrivateKey:
		return "ECDSA"
	case *rsa.PrivateKey:
		return "RSA"
	case ed25519.PrivateKey:
		return "Ed25519"
	default:
		return fmt.Sprintf("%T", k.Key)
	}
}

// ParsePrivateKeyPEM finds the first private key block in raw and parses it.
// PKCS#8, SEC 1 EC and PKCS#1 RSA blocks are understood. A missing or
// malformed block is a KeyFormatError; a PKCS#8 key of an algorithm other
// than ECDSA, RSA or Ed25519 is a KeyConversionError.
func ParsePrivateKeyPEM(raw []byte) (*KeyInfo, error) {
	var skippedBlockTypes []string
	rest := raw
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if !strings.HasSuffix(block.Type, "PRIVATE KEY") {
			skippedBlockTypes = append(skippedBlockTypes, block.Type)
			continue
		}
		return parseKeyBlock(block)
	}

	if len(skippedBlockTypes) == 0 {
		return nil, formatError("failed to find PEM block in private key data", nil)
	}
	if len(skippedBlockTypes) == 1 && skippedBlockTypes[0] == "CERTIFICATE" {
		return nil, formatError("failed to find private key PEM data, but did find a certificate; PEM inputs may have been switched", nil)
	}
	return nil, formatError(fmt.Sprintf("failed to find private key PEM block after skipping PEM blocks of the following types: %v", skippedBlockTypes), nil)
}

func parseKeyBlock(block *pem.Block) (*KeyInfo, error) {
	if block.Type == encryptedPKCS8BlockType || x509.IsEncryptedPEMBlock(block) { // nolint: staticcheck
		return nil, formatError("encrypted private keys are not supported", nil)
	}

	info := &KeyInfo{BlockType: block.Type, DER: block.Bytes}
	var err error
	switch block.Type {
	case pkcs8BlockType:
		info.Key, err = parsePKCS8(block.Bytes)
		if err != nil {
			return nil, err
		}
	case ecBlockType:
		info.Key, err = x509.ParseECPrivateKey(block.Bytes)
		if err != nil {
			return nil, formatError("failed parsing EC private key", err)
		}
	case rsaBlockType:
		info.Key, err = x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, formatError("failed parsing RSA private key", err)
		}
	default:
		info.Key, err = parseUnknownDER(block.Bytes)
		if err != nil {
			return nil, formatError(fmt.Sprintf("failed parsing private key from %s block", block.Type), err)
		}
	}
	return info, nil
}

func parsePKCS8(der []byte) (crypto.PrivateKey, error) {
	var envelope pkcs8
	if _, err := asn1.Unmarshal(der, &envelope); err != nil {
		return nil, formatError("failed parsing PKCS#8 key info", err)
	}

	algo := envelope.Algo.Algorithm
	if !algo.Equal(oidPublicKeyECDSA) && !algo.Equal(oidPublicKeyRSA) && !algo.Equal(oidPublicKeyEd25519) {
		return nil, conversionError(fmt.Sprintf("unsupported private key algorithm %s", algo.String()), nil)
	}

	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, formatError("failed parsing PKCS#8 private key", err)
	}
	return key, nil
}

// parseUnknownDER tries the known encodings in turn.
func parseUnknownDER(der []byte) (crypto.PrivateKey, error) {
	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		return key, nil
	}
	if key, err := x509.ParseECPrivateKey(der); err == nil {
		return key, nil
	}
	key, err := x509.ParsePKCS1PrivateKey(der)
	if err != nil {
		return nil, err
	}
	return key, nil
}
