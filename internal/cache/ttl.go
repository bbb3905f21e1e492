// Package cache provides a process local key value cache with a fixed
// time to live.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is the time to live used when nothing else is configured.
const DefaultTTL = 5 * time.Minute

// Clock returns the current time.
type Clock func() time.Time

// SystemClock is the Clock backed by the system time.
var SystemClock Clock = time.Now

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Version identifies the state of a key between two invalidations. It is
// taken before computing a value and passed to SetIfUnchanged.
type Version struct {
	epoch      uint64
	generation uint64
}

// TTL caches values for a fixed duration.
//
// It is safe for concurrent use. Two callers missing the same key at the
// same time will both compute and store a value, the later one wins.
// Values computed before Delete or Clear are never stored after it when
// they are stored with SetIfUnchanged.
type TTL[K comparable, V any] struct {
	name  string
	ttl   time.Duration
	clock Clock

	mu          sync.Mutex
	entries     map[K]entry[V]
	epoch       uint64       // bumped by Clear
	generations map[K]uint64 // bumped by Delete
}

// New returns an empty cache. name is used as label for metrics.
func New[K comparable, V any](name string, ttl time.Duration, clock Clock) *TTL[K, V] {
	if clock == nil {
		clock = SystemClock
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &TTL[K, V]{
		name:        name,
		ttl:         ttl,
		clock:       clock,
		entries:     make(map[K]entry[V]),
		generations: make(map[K]uint64),
	}
}

// Get returns the value for key if it has not expired yet.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		lookups.WithLabelValues(c.name, resultMiss).Inc()
		var zero V
		return zero, false
	}

	if c.expired(e) {
		delete(c.entries, key)
		lookups.WithLabelValues(c.name, resultExpired).Inc()
		var zero V
		return zero, false
	}

	lookups.WithLabelValues(c.name, resultHit).Inc()
	return e.value, true
}

// Set stores value for key, replacing any previous value.
func (c *TTL[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:    value,
		storedAt: c.clock(),
	}
}

// Version returns the current version of key.
func (c *TTL[K, V]) Version(key K) Version {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Version{epoch: c.epoch, generation: c.generations[key]}
}

// SetIfUnchanged stores value for key unless key was deleted or the cache
// was cleared since v was taken. It reports whether the value was stored.
func (c *TTL[K, V]) SetIfUnchanged(key K, value V, v Version) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v.epoch != c.epoch || v.generation != c.generations[key] {
		return false
	}

	c.entries[key] = entry[V]{
		value:    value,
		storedAt: c.clock(),
	}
	return true
}

// Delete removes the value for key.
func (c *TTL[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	c.generations[key]++
}

// Clear removes all values.
func (c *TTL[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
	clear(c.generations)
	c.epoch++
}

// Len returns the number of values that have not expired.
func (c *TTL[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, e := range c.entries {
		if !c.expired(e) {
			n++
		}
	}

	return n
}

// expired must be called with the lock held.
func (c *TTL[K, V]) expired(e entry[V]) bool {
	return !c.clock().Before(e.storedAt.Add(c.ttl))
}
