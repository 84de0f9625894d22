// Package storage persists the themed knowledge base as a JSON object on disk.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/starford/scoop/internal/checksum"
	"github.com/starford/scoop/internal/models"
)

// JSONFile stores topic→definition pairs as a single JSON object whose key
// order is the knowledge base's enumeration order.
type JSONFile struct {
	path string // absolute path to the JSON file

	mu      sync.Mutex
	lastSum string // checksum of the last content read or written by us
}

// NewJSONFile creates a provider for path. The parent directory is created
// if needed; the file itself may not exist yet.
func NewJSONFile(path string) (*JSONFile, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve path: %w", err)
	}
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return nil, fmt.Errorf("storage: path is a directory: %s", abs)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("storage: mkdir: %w", err)
	}
	return &JSONFile{path: abs}, nil
}

// Path returns the absolute file path.
func (f *JSONFile) Path() string {
	return f.path
}

// Load reads and decodes the file. A missing file yields an error wrapping
// os.ErrNotExist; malformed JSON yields a decode error.
func (f *JSONFile) Load() ([]models.Entry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", f.path, err)
	}
	m := orderedmap.New[string, string]()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", f.path, err)
	}
	f.remember(data)

	out := make([]models.Entry, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, models.Entry{Topic: pair.Key, Definition: pair.Value})
	}
	return out, nil
}

// Save encodes entries and atomically replaces the file: tmp file → fsync → rename.
func (f *JSONFile) Save(entries []models.Entry) error {
	m := orderedmap.New[string, string]()
	for _, e := range entries {
		m.Set(e.Topic, e.Definition)
	}
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return fmt.Errorf("storage: encode: %w", err)
	}
	data = append(data, '\n')

	if err := f.write(data); err != nil {
		return err
	}
	f.remember(data)
	return nil
}

// Changed reports whether data differs from what this provider last read or wrote.
func (f *JSONFile) Changed(data []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return checksum.Sum(data) != f.lastSum
}

func (f *JSONFile) remember(data []byte) {
	f.mu.Lock()
	f.lastSum = checksum.Sum(data)
	f.mu.Unlock()
}

func (f *JSONFile) write(content []byte) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".scoop-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}
