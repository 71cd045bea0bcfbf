// Package assets supplies the ciphertext blobs the vault decrypts at
// runtime, and writes the generated artifacts the encrypt tool produces at
// build time. One blob per content type, immutable once generated.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/foliovault/foliovault/internal/vault"
)

// Registry is an in-memory asset source. Generated artifact files feed it at
// init time; tests feed it directly.
type Registry struct {
	mu    sync.RWMutex
	blobs map[vault.ContentType]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{blobs: make(map[vault.ContentType]string)}
}

// Register stores the ciphertext blob for a content type, replacing any
// previous value.
func (r *Registry) Register(ct vault.ContentType, blob string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blobs[ct] = blob
}

// Ciphertext returns the registered blob for ct.
func (r *Registry) Ciphertext(ct vault.ContentType) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	blob, ok := r.blobs[ct]
	if !ok {
		return "", fmt.Errorf("no ciphertext registered for %s", ct)
	}
	return blob, nil
}

// Default is the registry generated artifacts register into.
var Default = NewRegistry()

// Register stores a blob in the default registry. Called from generated code.
func Register(ct vault.ContentType, blob string) {
	Default.Register(ct, blob)
}

// Dir reads ciphertext blobs from generated .enc files in a directory, one
// file per content type, each read lazily on first request and cached for
// the process lifetime.
type Dir struct {
	path string

	mu    sync.Mutex
	blobs map[vault.ContentType]string
}

// NewDir creates a directory-backed source rooted at path.
func NewDir(path string) *Dir {
	return &Dir{path: path, blobs: make(map[vault.ContentType]string)}
}

// Ciphertext returns the blob for ct, reading its file on first access.
func (d *Dir) Ciphertext(ct vault.ContentType) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if blob, ok := d.blobs[ct]; ok {
		return blob, nil
	}

	path := filepath.Join(d.path, string(ct)+".enc")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no encrypted artifact for %s at %s. Run 'foliovault encrypt' first", ct, path)
		}
		return "", fmt.Errorf("failed to read encrypted artifact: %w", err)
	}

	blob := strings.TrimSpace(string(data))
	d.blobs[ct] = blob
	return blob, nil
}
