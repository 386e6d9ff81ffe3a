// Package cache is a small TTL cache keyed by string, used to remember
// external lookups (sport detection results) across a run. Entries are JSON
// blobs; the cache optionally persists itself to a file so repeated batch
// runs don't repeat external calls. The clock is injectable so expiry is
// testable without timers.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

type entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	TTL       time.Duration   `json:"ttl"`
}

// Cache is safe for concurrent use. A zero path disables persistence.
type Cache struct {
	path    string
	now     Clock
	mu      sync.RWMutex
	entries map[string]entry
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock substitutes the time source.
func WithClock(c Clock) Option {
	return func(ca *Cache) { ca.now = c }
}

// New opens a cache, loading prior entries from path if it exists. A corrupt
// or missing file starts fresh; it is never an error.
func New(path string, opts ...Option) *Cache {
	c := &Cache{
		path:    path,
		now:     time.Now,
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}

	if path != "" {
		if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
			if err := json.Unmarshal(data, &c.entries); err != nil {
				c.entries = make(map[string]entry)
			}
		}
	}
	return c
}

// Get unmarshals the entry for key into target. The second return is false
// when the key is absent or expired. Cached empty values are still hits:
// a remembered miss is a valid entry.
func (c *Cache) Get(key string, target interface{}) (bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if e.TTL > 0 && c.now().Sub(e.Timestamp) > e.TTL {
		c.mu.Lock()
		if cur, exists := c.entries[key]; exists && cur.Timestamp.Equal(e.Timestamp) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return false, nil
	}

	if err := json.Unmarshal(e.Data, target); err != nil {
		return false, fmt.Errorf("unmarshal cache entry: %w", err)
	}
	return true, nil
}

// Put stores value under key with the given TTL. A zero TTL never expires.
func (c *Cache) Put(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value: %w", err)
	}

	c.mu.Lock()
	c.entries[key] = entry{Data: data, Timestamp: c.now(), TTL: ttl}
	c.mu.Unlock()

	return c.save()
}

// Len returns the number of live entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) save() error {
	if c.path == "" {
		return nil
	}
	if dir := filepath.Dir(c.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
	}

	c.mu.RLock()
	data, err := json.MarshalIndent(c.entries, "", "  ")
	c.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}
	return os.WriteFile(c.path, data, 0o644)
}
