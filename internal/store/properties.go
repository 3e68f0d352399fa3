// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"maps"
	"slices"
	"sync"
)

// Properties is the in-memory [ConfigurationStore]. It is safe for
// concurrent use, although the merge itself runs on a single goroutine
// during startup; the lock exists for readers such as the HTTP view.
type Properties struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewProperties returns an empty store.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]string)}
}

// NewPropertiesFrom returns a store seeded with a copy of values.
func NewPropertiesFrom(values map[string]string) *Properties {
	p := NewProperties()
	maps.Copy(p.values, values)
	return p
}

// Get returns the value for key, or "" when the key is absent.
func (p *Properties) Get(key string) string {
	v, _ := p.Lookup(key)
	return v
}

// Lookup returns the value for key and whether the key exists. A key set to
// the empty string exists.
func (p *Properties) Lookup(key string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	v, ok := p.values[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (p *Properties) Set(key, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.values[key] = value
}

// Keys returns all keys in lexical order.
func (p *Properties) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return slices.Sorted(maps.Keys(p.values))
}

// Snapshot returns a copy of the whole map.
func (p *Properties) Snapshot() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return maps.Clone(p.values)
}

// Len returns the number of keys.
func (p *Properties) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.values)
}
