// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"todo/internal/kv"
)

// FakeKV is an in-memory kv.Store with error injection and write tracking.
type FakeKV struct {
	mu     sync.RWMutex
	values map[string]string
	writes map[string]int

	// Error injection for testing
	GetErr error
	SetErr error

	// Closed is set by Close.
	Closed bool
}

var _ kv.Store = (*FakeKV)(nil)

// NewFakeKV creates an empty FakeKV.
func NewFakeKV() *FakeKV {
	return &FakeKV{
		values: make(map[string]string),
		writes: make(map[string]int),
	}
}

// Put seeds a value without counting it as a write.
func (f *FakeKV) Put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
}

// Value returns the stored value for key.
func (f *FakeKV) Value(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok
}

// Writes returns how many successful Set calls hit key.
func (f *FakeKV) Writes(key string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.writes[key]
}

// Get implements kv.Store.
func (f *FakeKV) Get(ctx context.Context, key string) (string, bool, error) {
	if f.GetErr != nil {
		return "", false, f.GetErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok, nil
}

// Set implements kv.Store.
func (f *FakeKV) Set(ctx context.Context, key, value string) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	f.writes[key]++
	return nil
}

// Close records that the store was closed.
func (f *FakeKV) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
	return nil
}
