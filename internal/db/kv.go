package db

import (
	"errors"
	"sync"
)

var (
	// ErrNotFound is returned by KV.Get when the key was never set.
	ErrNotFound = errors.New("kv: key not found")
	// ErrSealed is returned when sealed bytes cannot be opened with the configured passphrase.
	ErrSealed = errors.New("kv: sealed value cannot be opened")
)

// KV is the opaque byte store behind the record repository.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

// MemoryKV keeps values in process memory. Used by tests and the "memory" backend.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: map[string][]byte{}}
}

func (m *MemoryKV) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) Close() error { return nil }

var _ KV = (*MemoryKV)(nil)
