// Package memory keeps keys in a map. It backs ephemeral runs and tests,
// and can simulate unavailable storage.
package memory

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/aretw0/eisen/pkg/core"
)

// ErrUnavailable is returned by every operation while the storage is disabled.
var ErrUnavailable = errors.New("storage unavailable")

// Storage implements core.Storage in memory.
type Storage struct {
	mu       sync.RWMutex
	data     map[string][]byte
	disabled bool
}

// NewStorage creates an empty in-memory storage.
func NewStorage() *Storage {
	return &Storage{data: make(map[string][]byte)}
}

// SetAvailable toggles failure simulation: while unavailable, every
// operation returns ErrUnavailable.
func (s *Storage) SetAvailable(available bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disabled = !available
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.disabled {
		return nil, ErrUnavailable
	}
	v, ok := s.data[key]
	if !ok {
		return nil, core.ErrKeyNotFound
	}
	return slices.Clone(v), nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disabled {
		return ErrUnavailable
	}
	s.data[key] = slices.Clone(value)
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disabled {
		return ErrUnavailable
	}
	delete(s.data, key)
	return nil
}

func (s *Storage) Keys(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.disabled {
		return nil, ErrUnavailable
	}
	var keys []string
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys, nil
}

var _ core.Storage = (*Storage)(nil)
