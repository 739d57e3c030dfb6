/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package identity

import "sync"

// Cache holds resolved identities by store key for the lifetime of its
// owner. Entries are never evicted.
type Cache struct {
	mu         sync.RWMutex
	identities map[string]*Identity
}

// NewCache returns an empty cache
func NewCache() *Cache {
	return &Cache{identities: make(map[string]*Identity)}
}

// Get returns the identity cached under key
func (c *Cache) Get(key string) (*Identity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.identities[key]
	return id, ok
}

// LoadOrStore returns the identity already cached under id's key, or caches
// and returns id. The second result is true if the identity was already
// cached.
func (c *Cache) LoadOrStore(id *Identity) (*Identity, bool) {
	key := id.Key()

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.identities[key]; ok {
		return existing, true
	}
	c.identities[key] = id
	return id, false
}

// Delete drops the identity cached under key
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.identities, key)
}

// Len returns the number of cached identities
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.identities)
}
