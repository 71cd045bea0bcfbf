package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliovault/foliovault/internal/assets"
	"github.com/foliovault/foliovault/internal/vault"
)

func TestRegistry(t *testing.T) {
	registry := assets.NewRegistry()

	_, err := registry.Ciphertext(vault.ContentAbout)
	assert.Error(t, err)

	registry.Register(vault.ContentAbout, "blob-a")
	blob, err := registry.Ciphertext(vault.ContentAbout)
	require.NoError(t, err)
	assert.Equal(t, "blob-a", blob)

	// re-registering replaces
	registry.Register(vault.ContentAbout, "blob-b")
	blob, err = registry.Ciphertext(vault.ContentAbout)
	require.NoError(t, err)
	assert.Equal(t, "blob-b", blob)
}

func TestDirReadsLazily(t *testing.T) {
	dir := t.TempDir()
	src := assets.NewDir(dir)

	// missing artifact
	_, err := src.Ciphertext(vault.ContentJourney)
	assert.ErrorContains(t, err, "no encrypted artifact")

	path := filepath.Join(dir, "journey.enc")
	require.NoError(t, os.WriteFile(path, []byte("blob-1\n"), 0644))

	blob, err := src.Ciphertext(vault.ContentJourney)
	require.NoError(t, err)
	assert.Equal(t, "blob-1", blob)

	// first read is cached for the process lifetime
	require.NoError(t, os.WriteFile(path, []byte("blob-2\n"), 0644))
	blob, err = src.Ciphertext(vault.ContentJourney)
	require.NoError(t, err)
	assert.Equal(t, "blob-1", blob)
}

func TestWriteArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "encrypted")

	goPath, err := assets.WriteArtifacts(dir, vault.ContentJourney, "ciphertext-blob")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "journey.encrypted.go"), goPath)

	src, err := os.ReadFile(goPath)
	require.NoError(t, err)
	assert.Contains(t, string(src), "// Code generated by foliovault encrypt. DO NOT EDIT.")
	assert.Contains(t, string(src), "package encrypted")
	assert.Contains(t, string(src), `const JourneyEncrypted = "ciphertext-blob"`)
	assert.Contains(t, string(src), `assets.Register(vault.ContentType("journey"), JourneyEncrypted)`)

	// the raw blob is what the runtime directory source reads
	blob, err := assets.NewDir(dir).Ciphertext(vault.ContentJourney)
	require.NoError(t, err)
	assert.Equal(t, "ciphertext-blob", blob)
}
