// Package kvstore provides the persistent key-value store backing
// stencil's saved data. Values are opaque strings; each entry
// carries an optional expiry.
package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// stencilDir is the name of the stencil data directory.
	stencilDir = ".stencil"
	// storeFile is the store file within .stencil/.
	storeFile = "store.yaml"
)

// Store is the persistence contract required by the repository. The
// concrete implementation is File, but Mem can stand in for tests.
type Store interface {
	// Set writes a value. A positive ttlDays expires the entry that
	// many days from now; zero or negative means no expiry.
	Set(key, value string, ttlDays int) error
	// Get returns the value for key, or false if the key is absent
	// or its entry has expired.
	Get(key string) (string, bool)
	// Delete removes the entry for key, if any.
	Delete(key string) error
}

// entry is one persisted key-value pair.
type entry struct {
	Value   string    `yaml:"value"`
	Expires time.Time `yaml:"expires,omitempty"`
}

// File is a Store backed by a YAML file under dir/.stencil/.
type File struct {
	root    string // directory containing .stencil/
	entries map[string]entry
}

// Open returns a File store rooted at dir, creating the .stencil/
// directory if it does not exist. An unreadable or unparseable
// store file is treated as empty rather than as a fatal error.
func Open(dir string) (*File, error) {
	path := filepath.Join(dir, stencilDir)
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	f := &File{root: dir, entries: make(map[string]entry)}

	data, err := os.ReadFile(f.path())
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	var entries map[string]entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		// Corrupt store: start over empty. The next write replaces
		// the file.
		return f, nil
	}
	if entries != nil {
		f.entries = entries
	}
	return f, nil
}

// Root returns the directory containing .stencil/.
func (f *File) Root() string {
	return f.root
}

func (f *File) path() string {
	return filepath.Join(f.root, stencilDir, storeFile)
}

// Set writes key to value and flushes the store file.
func (f *File) Set(key, value string, ttlDays int) error {
	e := entry{Value: value}
	if ttlDays > 0 {
		e.Expires = time.Now().AddDate(0, 0, ttlDays)
	}
	f.entries[key] = e
	return f.flush()
}

// Get returns the live value for key. Expired entries are invisible;
// they are purged on the next write.
func (f *File) Get(key string) (string, bool) {
	e, ok := f.entries[key]
	if !ok || expired(e) {
		return "", false
	}
	return e.Value, true
}

// Delete removes key and flushes the store file.
func (f *File) Delete(key string) error {
	if _, ok := f.entries[key]; !ok {
		return nil
	}
	delete(f.entries, key)
	return f.flush()
}

// flush writes the store file, dropping expired entries.
func (f *File) flush() error {
	for k, e := range f.entries {
		if expired(e) {
			delete(f.entries, k)
		}
	}

	data, err := yaml.Marshal(f.entries)
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}
	if err := os.WriteFile(f.path(), data, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}

func expired(e entry) bool {
	return !e.Expires.IsZero() && time.Now().After(e.Expires)
}

// Mem is an in-memory Store for tests.
type Mem struct {
	entries map[string]entry
}

// NewMem returns an empty in-memory store.
func NewMem() *Mem {
	return &Mem{entries: make(map[string]entry)}
}

// Set implements Store.
func (m *Mem) Set(key, value string, ttlDays int) error {
	e := entry{Value: value}
	if ttlDays > 0 {
		e.Expires = time.Now().AddDate(0, 0, ttlDays)
	}
	m.entries[key] = e
	return nil
}

// Get implements Store.
func (m *Mem) Get(key string) (string, bool) {
	e, ok := m.entries[key]
	if !ok || expired(e) {
		return "", false
	}
	return e.Value, true
}

// Delete implements Store.
func (m *Mem) Delete(key string) error {
	delete(m.entries, key)
	return nil
}
