// Package session persists the string markers that keep a vault session
// alive across process restarts, in the manner of the browser's
// sessionStorage: a handful of key/value entries, cleared together on logout.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// Session file permissions (read/write for user only)
	FileMode = 0600
)

// Store holds session markers as string key/value pairs.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)
	// Set stores a value under key.
	Set(key, value string) error
	// Delete removes a single key.
	Delete(key string) error
	// Clear removes every marker at once.
	Clear() error
}

// FileStore persists markers as a JSON object in a single file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path. The file is
// created on first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) load() map[string]string {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		return map[string]string{}
	}

	markers := map[string]string{}
	if err := json.Unmarshal(data, &markers); err != nil {
		return map[string]string{}
	}
	return markers
}

func (fs *FileStore) save(markers map[string]string) error {
	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.Marshal(markers)
	if err != nil {
		return fmt.Errorf("failed to marshal session markers: %w", err)
	}

	if err := os.WriteFile(fs.path, data, FileMode); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Get returns the value for key and whether it was present.
func (fs *FileStore) Get(key string) (string, bool) {
	markers := fs.load()
	value, ok := markers[key]
	return value, ok
}

// Set stores a value under key.
func (fs *FileStore) Set(key, value string) error {
	markers := fs.load()
	markers[key] = value
	return fs.save(markers)
}

// Delete removes a single key.
func (fs *FileStore) Delete(key string) error {
	markers := fs.load()
	if _, ok := markers[key]; !ok {
		return nil
	}
	delete(markers, key)
	return fs.save(markers)
}

// Clear removes the session file entirely.
func (fs *FileStore) Clear() error {
	if _, err := os.Stat(fs.path); os.IsNotExist(err) {
		return nil // Already cleared
	}

	if err := os.Remove(fs.path); err != nil {
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	return nil
}

// Path returns the session file path.
func (fs *FileStore) Path() string {
	return fs.path
}

// MemoryStore keeps markers in memory only. Used in tests and anywhere
// session continuity across processes is not wanted.
type MemoryStore struct {
	markers map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{markers: map[string]string{}}
}

// Get returns the value for key and whether it was present.
func (ms *MemoryStore) Get(key string) (string, bool) {
	value, ok := ms.markers[key]
	return value, ok
}

// Set stores a value under key.
func (ms *MemoryStore) Set(key, value string) error {
	ms.markers[key] = value
	return nil
}

// Delete removes a single key.
func (ms *MemoryStore) Delete(key string) error {
	delete(ms.markers, key)
	return nil
}

// Clear removes every marker.
func (ms *MemoryStore) Clear() error {
	ms.markers = map[string]string{}
	return nil
}
