// Package store defines the durable key/value boundary the template store
// writes through, plus an in-memory implementation.
package store

import (
	"fmt"
	"slices"
)

// Storage reads and writes whole values under string keys.
type Storage interface {
	// Read returns ok=false when key has never been written.
	Read(key string) (value []byte, ok bool, err error)
	Write(key string, value []byte) error
}

// Mem keeps values in a map. Not safe for concurrent use.
type Mem struct {
	values map[string][]byte

	// FailWrites, when set, is returned by every Write.
	FailWrites error
}

func NewMem() *Mem {
	return &Mem{values: make(map[string][]byte)}
}

func (m *Mem) Read(key string) ([]byte, bool, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

func (m *Mem) Write(key string, value []byte) error {
	if m.FailWrites != nil {
		return fmt.Errorf("write %s: %w", key, m.FailWrites)
	}
	if m.values == nil {
		m.values = make(map[string][]byte)
	}
	m.values[key] = slices.Clone(value)
	return nil
}
