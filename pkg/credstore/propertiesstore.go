/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credstore

import (
	"bufio"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/magiconair/properties"
	"github.com/pkg/errors"
)

// PropertiesStore keeps all values in a single property file, one
// key=value pair per line. Every read loads the whole file. Every write
// loads it, applies the change and replaces the file through a temporary
// file and an atomic rename, so readers never see a partial file.
//
// Writers within one process are serialized. Writers in different
// processes are not coordinated and the last rename wins.
type PropertiesStore struct {
	path    string
	mu      sync.Mutex
	metrics *Metrics
}

// NewPropertiesStore creates a store backed by the file at path. The file
// does not need to exist; it is created by the first Set.
func NewPropertiesStore(path string, opts ...Option) (*PropertiesStore, error) {
	if path == "" {
		return nil, errors.New("store path is empty")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving store path %s failed", path)
	}
	o := newOptions(opts)
	return &PropertiesStore{path: absPath, metrics: o.metrics}, nil
}

// Path returns the absolute path of the backing file
func (s *PropertiesStore) Path() string {
	return s.path
}

// Get returns the value associated with key.
func (s *PropertiesStore) Get(key string) (string, bool) {
	return s.load().Get(key)
}

// Has reports whether a value is present for key.
func (s *PropertiesStore) Has(key string) bool {
	_, ok := s.load().Get(key)
	return ok
}

// Keys returns all keys in file order.
func (s *PropertiesStore) Keys() []string {
	return s.load().Keys()
}

// Set stores value under key, replacing any previous value.
func (s *PropertiesStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.load()
	if _, _, err := p.Set(key, value); err != nil {
		logger.Warnf("Could not set key %s in keyvalue store, reason: %s", key, err)
		s.metrics.observeWrite(resultError)
		return writeFailure(s.path, err)
	}
	return s.store(p)
}

// Delete removes key. Deleting an absent key is not an error.
func (s *PropertiesStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.load()
	if _, ok := p.Get(key); !ok {
		return nil
	}
	p.Delete(key)
	return s.store(p)
}

// Close is a no-op; the file is not held open between operations.
func (s *PropertiesStore) Close() error {
	return nil
}

func newProperties() *properties.Properties {
	p := properties.NewProperties()
	p.DisableExpansion = true
	return p
}

func (s *PropertiesStore) load() *properties.Properties {
	data, err := ioutil.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warnf("Could not find the file \"%s\"", s.path)
			s.metrics.observeLoad(resultMissing)
		} else {
			logger.Warnf("Could not load keyvalue store from file \"%s\", reason: %s", s.path, err)
			s.metrics.observeLoad(resultError)
		}
		return newProperties()
	}

	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes(data)
	if err != nil {
		logger.Warnf("Could not parse keyvalue store from file \"%s\", reason: %s", s.path, err)
		s.metrics.observeLoad(resultError)
		return newProperties()
	}
	s.metrics.observeLoad(resultOK)
	return p
}

func (s *PropertiesStore) store(p *properties.Properties) error {
	if err := s.writeFile(p); err != nil {
		logger.Warnf("Could not save the keyvalue store, reason: %s", err)
		s.metrics.observeWrite(resultError)
		return writeFailure(s.path, err)
	}
	s.metrics.observeWrite(resultOK)
	return nil
}

func (s *PropertiesStore) writeFile(p *properties.Properties) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, newDirMode); err != nil {
		return errors.Wrapf(err, "creating store directory %s failed", dir)
	}

	tmp, err := ioutil.TempFile(dir, "."+filepath.Base(s.path)+".tmp")
	if err != nil {
		return errors.Wrap(err, "creating temporary store file failed")
	}
	tmpName := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpName) // nolint: gas
		}
	}()

	if err := writeProperties(tmp, p); err != nil {
		_ = tmp.Close() // ignore error; Write error takes precedence
		return errors.Wrap(err, "writing temporary store file failed")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "syncing temporary store file failed")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temporary store file failed")
	}
	if err := os.Chmod(tmpName, newFileMode); err != nil {
		return errors.Wrap(err, "setting store file mode failed")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return errors.Wrapf(err, "replacing store file %s failed", s.path)
	}
	renamed = true
	return nil
}

// writeProperties writes p in file order with keys and values escaped the
// way java.util.Properties.store does, so every pair loads back unchanged.
func writeProperties(w io.Writer, p *properties.Properties) error {
	bw := bufio.NewWriter(w)
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		bw.WriteString(escapeProperty(key, true))
		bw.WriteByte('=')
		bw.WriteString(escapeProperty(value, false))
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// escapeProperty escapes s as a key or a value. All spaces in keys are
// escaped; in values only leading ones.
func escapeProperty(s string, key bool) string {
	var b strings.Builder
	leading := true
	for _, r := range s {
		if r != ' ' {
			leading = false
		}
		switch r {
		case ' ':
			if key || leading {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		case '\\', '=', ':', '#', '!':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
