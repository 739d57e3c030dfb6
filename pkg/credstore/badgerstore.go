/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credstore

import (
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/securekey/fabric-gateway-client/pkg/common/errors/status"
)

// BadgerStore keeps values in an embedded badger database. Each operation
// runs in its own badger transaction.
type BadgerStore struct {
	db      *badger.DB
	path    string
	metrics *Metrics
}

// NewBadgerStore opens (or creates) a badger database in the directory path.
// With the InMemory option path must be empty.
func NewBadgerStore(path string, opts ...Option) (*BadgerStore, error) {
	o := newOptions(opts)
	if path == "" && !o.inMemory {
		return nil, errors.New("store path is empty")
	}

	opt := badger.DefaultOptions(path).WithLogger(&badgerLogger{})
	if o.inMemory {
		opt = opt.WithInMemory(true)
	}

	db, err := badger.Open(opt)
	if err != nil {
		return nil, status.New(status.CredentialStoreStatus, status.StoreUnavailable.ToInt32(),
			fmt.Sprintf("could not open DB at '%s'", path), []interface{}{err})
	}
	return &BadgerStore{db: db, path: path, metrics: o.metrics}, nil
}

// Get returns the value associated with key.
func (s *BadgerStore) Get(key string) (string, bool) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			s.metrics.observeLoad(resultMissing)
			return "", false
		}
		logger.Warnf("Could not load key %s from badger store \"%s\", reason: %s", key, s.path, err)
		s.metrics.observeLoad(resultError)
		return "", false
	}
	s.metrics.observeLoad(resultOK)
	return string(value), true
}

// Has reports whether a value is present for key.
func (s *BadgerStore) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Set stores value under key, replacing any previous value.
func (s *BadgerStore) Set(key, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		logger.Warnf("Could not save key %s to badger store, reason: %s", key, err)
		s.metrics.observeWrite(resultError)
		return writeFailure(s.path, err)
	}
	s.metrics.observeWrite(resultOK)
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *BadgerStore) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return writeFailure(s.path, err)
	}
	return nil
}

// Keys returns all keys in byte order.
func (s *BadgerStore) Keys() []string {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		logger.Warnf("Could not list keys of badger store \"%s\", reason: %s", s.path, err)
	}
	return keys
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.Wrap(err, "could not close DB")
	}
	return nil
}

// badgerLogger routes badger's own logging to the store module logger.
type badgerLogger struct{}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}
