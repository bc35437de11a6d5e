package cache

import (
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultMemorySize is the entry limit of a Memory cache built with size <= 0.
const DefaultMemorySize = 1024

// Memory is an in-process LRU cache. Entries expire after the configured
// number of days; least recently used entries are evicted once size is reached.
type Memory struct {
	lru  *expirable.LRU[string, string]
	opts options
}

// NewMemory returns an in-process cache holding at most size entries.
func NewMemory(size int, opts ...Option) *Memory {
	if size <= 0 {
		size = DefaultMemorySize
	}
	o := buildOptions(opts)
	return &Memory{
		lru:  expirable.NewLRU[string, string](size, nil, o.ttl()),
		opts: o,
	}
}

// Get returns the payload stored under key.
func (m *Memory) Get(key string) (string, bool, error) {
	payload, ok := m.lru.Get(key)
	return payload, ok, nil
}

// Store writes payload under key.
func (m *Memory) Store(key, payload string) error {
	m.lru.Add(key, payload)
	return nil
}

// Sweep is a no-op: the LRU evicts expired entries on its own.
func (m *Memory) Sweep() error {
	return nil
}

// Clear deletes every entry.
func (m *Memory) Clear() error {
	m.lru.Purge()
	return nil
}

// Len returns the number of live entries.
func (m *Memory) Len() int {
	return m.lru.Len()
}

func (m *Memory) Close() error {
	m.lru.Purge()
	return nil
}
