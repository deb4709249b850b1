package config

import (
	"sync"
	"sync/atomic"
)

// Store publishes immutable configuration snapshots. Readers call Load and
// must treat the result as read-only; writers call Replace with a new value.
type Store struct {
	current atomic.Pointer[AdapterConfig]

	mu        sync.Mutex
	listeners []func(*AdapterConfig)
}

// NewStore validates cfg and returns a store holding a private copy of it.
func NewStore(cfg AdapterConfig) (*Store, error) {
	s := &Store{}
	if err := s.Replace(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// NewDefaultStore returns a store holding Default().
func NewDefaultStore() *Store {
	s := &Store{}
	cfg := Default()
	s.current.Store(&cfg)
	return s
}

// Load returns the current snapshot. The pointer identity changes on every
// Replace, which is what memoising readers key on.
func (s *Store) Load() *AdapterConfig {
	if s == nil {
		return nil
	}
	return s.current.Load()
}

// Replace validates cfg and publishes a copy of it as the new snapshot.
func (s *Store) Replace(cfg AdapterConfig) error {
	next := cfg.Clone()
	next.applyDefaults()
	if err := Validate(&next); err != nil {
		return err
	}
	s.current.Store(&next)

	s.mu.Lock()
	listeners := append([]func(*AdapterConfig){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(&next)
	}
	return nil
}

// Subscribe registers fn to be called after every successful Replace.
func (s *Store) Subscribe(fn func(*AdapterConfig)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}
