/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package identity

import (
	"encoding/json"

	"github.com/pkg/errors"
)

const (
	recordVersion = 1
	x509Type      = "X.509"
)

// record is the persisted form of an enrolled identity. It is the fabric
// wallet X.509 identity format with the resolver's identifying fields added.
type record struct {
	Version      int         `json:"version"`
	MspID        string      `json:"mspId"`
	IDType       string      `json:"type"`
	Credentials  credentials `json:"credentials"`
	Name         string      `json:"name"`
	Organization string      `json:"organization"`
	CAHint       string      `json:"caHint,omitempty"`
}

type credentials struct {
	Certificate string `json:"certificate"`
	Key         string `json:"privateKey"`
}

func newRecord(id *Identity) (*record, error) {
	enrollment := id.Enrollment()
	if enrollment == nil {
		return nil, errors.Errorf("identity %s has no enrollment", id.Key())
	}
	return &record{
		Version:      recordVersion,
		MspID:        id.MSPID(),
		IDType:       x509Type,
		Credentials:  credentials{Certificate: enrollment.Certificate, Key: enrollment.KeyPEM},
		Name:         id.Name,
		Organization: id.Organization,
		CAHint:       id.CAHint,
	}, nil
}

func (r *record) encode() (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", errors.Wrap(err, "marshal identity record failed")
	}
	return string(data), nil
}

func decodeRecord(value string) (*record, error) {
	r := &record{}
	if err := json.Unmarshal([]byte(value), r); err != nil {
		return nil, errors.Wrap(err, "unmarshal identity record failed")
	}
	if r.IDType != x509Type {
		return nil, errors.Errorf("unsupported identity type %q", r.IDType)
	}
	if r.Version != recordVersion {
		return nil, errors.Errorf("unsupported identity record version %d", r.Version)
	}
	if r.Credentials.Certificate == "" || r.Credentials.Key == "" {
		return nil, errors.New("identity record has no credentials")
	}
	return r, nil
}
