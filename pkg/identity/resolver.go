/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package identity resolves the identities used to talk to the ledger
// gateway.
//
// A Resolver looks identities up in an explicit Cache, restores enrollment
// persisted in a credential store, and enrolls identities from key and
// certificate files.
package identity

import (
	"fmt"
	"io/ioutil"
	"sort"

	"github.com/pkg/errors"

	"github.com/securekey/fabric-gateway-client/pkg/common/errors/status"
	"github.com/securekey/fabric-gateway-client/pkg/common/logging"
	"github.com/securekey/fabric-gateway-client/pkg/core/cryptosuite"
	"github.com/securekey/fabric-gateway-client/pkg/credstore"
)

var logger = logging.NewLogger("gwclient/identity")

// Resolver produces identities from its cache, its credential store or
// enrollment material files.
type Resolver struct {
	store             credstore.Store
	suite             *cryptosuite.Suite
	cache             *Cache
	restore           bool
	strictPersistence bool
}

// Option configures a Resolver
type Option func(r *Resolver)

// WithRestore controls whether Resolve restores enrollment persisted in the
// credential store on a cache miss. Enabled by default.
func WithRestore(restore bool) Option {
	return func(r *Resolver) {
		r.restore = restore
	}
}

// WithStrictPersistence controls whether credential store write failures
// are returned from ResolveWithMaterial. When disabled, the default, they
// are only logged.
func WithStrictPersistence(strict bool) Option {
	return func(r *Resolver) {
		r.strictPersistence = strict
	}
}

// NewResolver returns a Resolver backed by store and suite. A nil cache gets the
// resolver a cache of its own.
func NewResolver(store credstore.Store, suite *cryptosuite.Suite, cache *Cache, opts ...Option) (*Resolver, error) {
	if store == nil {
		return nil, errors.New("credential store is required")
	}
	if suite == nil {
		return nil, errors.New("crypto suite is required")
	}
	if cache == nil {
		cache = NewCache()
	}

	r := &Resolver{
		store:   store,
		suite:   suite,
		cache:   cache,
		restore: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve returns the cached identity for name, org and caHint. On a cache
// miss a new identity is created, its persisted enrollment restored when
// restoring is enabled, and the identity cached.
func (r *Resolver) Resolve(name, org, caHint string) *Identity {
	key := StoreKey(name, org, caHint)
	if id, ok := r.cache.Get(key); ok {
		return id
	}

	id := New(name, org, caHint)
	if r.restore {
		r.restoreEnrollment(id)
	}

	id, _ = r.cache.LoadOrStore(id)
	return id
}

// Exists reports whether the identity is cached or has a record in the
// credential store. Resolve caches every identity it returns, enrolled or
// not, so Exists is true for any identity resolved earlier in the process.
func (r *Resolver) Exists(name, org, caHint string) bool {
	key := StoreKey(name, org, caHint)
	if _, ok := r.cache.Get(key); ok {
		return true
	}
	return r.store.Has(key)
}

// Remove deletes the identity from the credential store and the cache.
// Removing an unknown identity is not an error.
func (r *Resolver) Remove(name, org, caHint string) error {
	key := StoreKey(name, org, caHint)
	if err := r.store.Delete(key); err != nil {
		return err
	}
	r.cache.Delete(key)
	logger.Debugf("identity %s removed", key)
	return nil
}

// StoredKeys returns the sorted store keys of all persisted identities.
func (r *Resolver) StoredKeys() []string {
	keys := r.store.Keys()
	sort.Strings(keys)
	return keys
}

// ResolveWithMaterial enrolls the identity from a PEM private key file and
// a PEM certificate file, persists it and caches it. An identity that is
// already cached with enrollment is returned as is.
//
// Errors carry the status codes IOError when a file cannot be read,
// KeyFormatError when the key cannot be decoded and KeyConversionError when
// the key cannot be converted. A credential store write failure is logged,
// and returned only when strict persistence is enabled.
func (r *Resolver) ResolveWithMaterial(name, org, caHint, mspID, keyFile, certFile string) (*Identity, error) {
	key := StoreKey(name, org, caHint)
	if id, ok := r.cache.Get(key); ok && id.Enrolled() {
		return id, nil
	}

	cert, err := ioutil.ReadFile(certFile)
	if err != nil {
		return nil, ioError("certificate", certFile, err)
	}

	keyPEM, err := ioutil.ReadFile(keyFile)
	if err != nil {
		return nil, ioError("private key", keyFile, err)
	}

	pk, err := r.suite.PrivateKeyFromPEM(keyPEM)
	if err != nil {
		return nil, errors.WithMessage(err, fmt.Sprintf("failed to load private key %s", keyFile))
	}

	enrollment := &Enrollment{
		Certificate: string(cert),
		KeyPEM:      string(keyPEM),
		Key:         pk,
	}

	enrolled := New(name, org, caHint)
	enrolled.SetEnrollment(mspID, enrollment)

	if err := r.persist(enrolled); err != nil {
		logger.Warnf("could not persist identity %s: %s", key, err)
		if r.strictPersistence {
			return nil, err
		}
	}

	id, cached := r.cache.LoadOrStore(enrolled)
	if cached {
		id.SetEnrollment(mspID, enrollment)
	}

	logger.Debugf("identity %s enrolled with MSP %s", key, mspID)
	return id, nil
}

func (r *Resolver) persist(id *Identity) error {
	rec, err := newRecord(id)
	if err != nil {
		return err
	}
	value, err := rec.encode()
	if err != nil {
		return err
	}
	return r.store.Set(id.Key(), value)
}

func (r *Resolver) restoreEnrollment(id *Identity) {
	key := id.Key()
	value, ok := r.store.Get(key)
	if !ok {
		return
	}

	rec, err := decodeRecord(value)
	if err != nil {
		logger.Warnf("ignoring stored identity %s: %s", key, err)
		return
	}

	pk, err := r.suite.PrivateKeyFromPEM([]byte(rec.Credentials.Key))
	if err != nil {
		logger.Warnf("ignoring stored identity %s: %s", key, err)
		return
	}

	id.SetEnrollment(rec.MspID, &Enrollment{
		Certificate: rec.Credentials.Certificate,
		KeyPEM:      rec.Credentials.Key,
		Key:         pk,
	})
	logger.Debugf("restored enrollment of identity %s", key)
}

func ioError(kind, path string, err error) error {
	return status.New(status.IdentityStatus, status.IOError.ToInt32(),
		fmt.Sprintf("failed to read %s file %s", kind, path), []interface{}{err})
}
