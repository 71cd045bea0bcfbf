package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/foliovault/foliovault/internal/vault"
)

// exportName returns the Go constant name for a content type, e.g.
// "JourneyEncrypted".
func exportName(ct vault.ContentType) string {
	s := string(ct)
	return strings.ToUpper(s[:1]) + s[1:] + "Encrypted"
}

// WriteArtifacts writes the build outputs for one content type into dir: a
// generated Go source file exporting the blob as a named constant and
// registering it at init time, plus a raw .enc file the directory source
// reads at runtime. It returns the path of the generated source file.
func WriteArtifacts(dir string, ct vault.ContentType, blob string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	goPath := filepath.Join(dir, string(ct)+".encrypted.go")
	src := fmt.Sprintf(`// Code generated by foliovault encrypt. DO NOT EDIT.

package encrypted

import (
	"github.com/foliovault/foliovault/internal/assets"
	"github.com/foliovault/foliovault/internal/vault"
)

// %[1]s is the encrypted %[2]s content bundle.
const %[1]s = %[3]q

func init() {
	assets.Register(vault.ContentType(%[2]q), %[1]s)
}
`, exportName(ct), string(ct), blob)

	if err := os.WriteFile(goPath, []byte(src), 0644); err != nil {
		return "", fmt.Errorf("failed to write generated source: %w", err)
	}

	encPath := filepath.Join(dir, string(ct)+".enc")
	if err := os.WriteFile(encPath, []byte(blob+"\n"), 0644); err != nil {
		return "", fmt.Errorf("failed to write encrypted blob: %w", err)
	}

	return goPath, nil
}
