/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package identity

import (
	"fmt"
	"sync"

	"github.com/golang/protobuf/proto"
	pb_msp "github.com/hyperledger/fabric-protos-go/msp"
	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
	"github.com/pkg/errors"

	"github.com/securekey/fabric-gateway-client/pkg/common/errors/status"
)

// Enrollment is the certificate and private key proving an identity's
// membership.
type Enrollment struct {
	// Certificate is the PEM encoded enrollment certificate
	Certificate string
	// KeyPEM is the private key as it was read
	KeyPEM string
	// Key is the private key converted by the crypto suite
	Key core.Key
}

// Identity is a named principal of an organization. Name, Organization and
// CAHint never change; the MSP ID and enrollment are attached once the
// identity's material is known.
type Identity struct {
	Name         string
	Organization string
	CAHint       string

	mu         sync.RWMutex
	mspID      string
	enrollment *Enrollment
}

// New returns an identity without enrollment.
func New(name, org, caHint string) *Identity {
	return &Identity{Name: name, Organization: org, CAHint: caHint}
}

// StoreKey returns the key an identity is cached and persisted under:
// name_org, or name_org_caHint when a CA hint is given.
func StoreKey(name, org, caHint string) string {
	key := name + "_" + org
	if caHint != "" {
		key += "_" + caHint
	}
	return key
}

// Key returns the identity's store key
func (id *Identity) Key() string {
	return StoreKey(id.Name, id.Organization, id.CAHint)
}

// MSPID returns the membership service provider ID
func (id *Identity) MSPID() string {
	id.mu.RLock()
	defer id.mu.RUnlock()
	return id.mspID
}

// Enrollment returns the enrollment, or nil if none is attached
func (id *Identity) Enrollment() *Enrollment {
	id.mu.RLock()
	defer id.mu.RUnlock()
	return id.enrollment
}

// Enrolled reports whether enrollment material is attached
func (id *Identity) Enrolled() bool {
	return id.Enrollment() != nil
}

// SetEnrollment attaches the MSP ID and enrollment material.
func (id *Identity) SetEnrollment(mspID string, enrollment *Enrollment) {
	id.mu.Lock()
	defer id.mu.Unlock()
	id.mspID = mspID
	id.enrollment = enrollment
}

// Serialize returns the protobuf encoded msp.SerializedIdentity of this
// identity.
func (id *Identity) Serialize() ([]byte, error) {
	id.mu.RLock()
	defer id.mu.RUnlock()

	if id.enrollment == nil {
		return nil, status.New(status.IdentityStatus, status.MissingEnrollment.ToInt32(),
			fmt.Sprintf("identity %s has no enrollment", StoreKey(id.Name, id.Organization, id.CAHint)), nil)
	}

	serializedIdentity := &pb_msp.SerializedIdentity{
		Mspid:   id.mspID,
		IdBytes: []byte(id.enrollment.Certificate),
	}
	identity, err := proto.Marshal(serializedIdentity)
	if err != nil {
		return nil, errors.Wrap(err, "marshal serializedIdentity failed")
	}
	return identity, nil
}
