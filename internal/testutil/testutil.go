// Package testutil provides shared test helpers for knowledge stores.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/starford/scoop/internal/knowledge"
	"github.com/starford/scoop/internal/models"
)

// MemoryProvider is an in-memory knowledge.Provider. Setting LoadErr or
// SaveErr makes the corresponding call fail.
type MemoryProvider struct {
	mu      sync.Mutex
	entries []models.Entry
	saves   int

	LoadErr error
	SaveErr error
}

// NewMemoryProvider returns a provider pre-filled with entries.
func NewMemoryProvider(entries ...models.Entry) *MemoryProvider {
	return &MemoryProvider{entries: append([]models.Entry(nil), entries...)}
}

// Load implements knowledge.Provider.
func (m *MemoryProvider) Load() ([]models.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]models.Entry(nil), m.entries...), nil
}

// Save implements knowledge.Provider.
func (m *MemoryProvider) Save(entries []models.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.entries = append([]models.Entry(nil), entries...)
	m.saves++
	return nil
}

// Saved returns the last persisted entries.
func (m *MemoryProvider) Saved() []models.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Entry(nil), m.entries...)
}

// Saves returns how many times Save succeeded.
func (m *MemoryProvider) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Logger returns a logger that discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Store opens a knowledge.Store over a MemoryProvider seeded with entries.
// With no entries the store is seeded with the built-in defaults.
func Store(t *testing.T, entries ...models.Entry) (*knowledge.Store, *MemoryProvider) {
	t.Helper()
	p := NewMemoryProvider(entries...)
	if len(entries) == 0 {
		p.LoadErr = os.ErrNotExist
	}
	s, err := knowledge.Open(p, Logger())
	if err != nil {
		t.Fatal(err)
	}
	p.LoadErr = nil
	return s, p
}
