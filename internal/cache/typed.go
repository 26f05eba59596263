// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

// Typed provides type-safe access to a Cache using generics. Values are
// stored directly; there is no serialization because the cache never
// leaves the process.
type Typed[T any] struct {
	cache *Cache
}

// NewTyped creates a Typed view over the given cache.
func NewTyped[T any](c *Cache) Typed[T] {
	return Typed[T]{cache: c}
}

// Get retrieves a value, reporting whether it was present with the
// expected type.
func (t Typed[T]) Get(key string) (T, bool) {
	var zero T
	v, ok := t.cache.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Set stores a value with the cache's default TTL.
func (t Typed[T]) Set(key string, value T) {
	t.cache.Set(key, value)
}

// GetOrSet retrieves a value, or computes and stores it on a miss.
// Compute errors are returned without caching.
func (t Typed[T]) GetOrSet(key string, fn func() (T, error)) (T, error) {
	if v, ok := t.Get(key); ok {
		return v, nil
	}

	v, err := fn()
	if err != nil {
		var zero T
		return zero, err
	}
	t.Set(key, v)
	return v, nil
}
