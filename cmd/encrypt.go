package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/foliovault/foliovault/internal/assets"
	"github.com/foliovault/foliovault/internal/crypto"
	"github.com/foliovault/foliovault/internal/vault"
)

const (
	// encryptKeyEnv names the environment variable carrying the operator's
	// encryption password.
	encryptKeyEnv = "FOLIOVAULT_ENCRYPT_KEY"

	// defaultEncryptKey is the baked-in fallback: the same shared password the
	// lock screen compares against.
	defaultEncryptKey = "momodeku"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt the plaintext content modules",
	Long: `Encrypt each plaintext content module into generated artifacts.

The password comes from the ` + encryptKeyEnv + ` environment variable and
falls back to the shared site password when unset. Failures on individual
files are reported and skipped; the batch always runs to completion.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password := os.Getenv(encryptKeyEnv)
		if password == "" {
			password = defaultEncryptKey
		}

		masked := password
		if len(masked) > 3 {
			masked = masked[:3] + "***"
		}
		fmt.Printf("Encrypting content with key %s\n", masked)

		for _, ct := range vault.ContentTypes {
			input := filepath.Join(cfg.ContentDir, string(ct)+".json")
			output, err := encryptFile(input, ct, password)
			if err != nil {
				fmt.Printf("%s Failed to encrypt %s: %v\n", color.RedString("✗"), input, err)
				continue
			}
			fmt.Printf("%s Encrypted: %s → %s\n", color.GreenString("✓"), input, output)
		}

		fmt.Println("Content encryption complete")
		return nil
	},
}

// encryptFile loads one plaintext content module, encrypts it, and writes the
// generated artifacts. It returns the path of the generated source file.
func encryptFile(path string, ct vault.ContentType, password string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read content module: %w", err)
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return "", fmt.Errorf("failed to parse content module: %w", err)
	}

	blob, err := crypto.Encrypt(value, password)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt: %w", err)
	}

	return assets.WriteArtifacts(cfg.EncryptedDir, ct, blob)
}

func init() {
	rootCmd.AddCommand(encryptCmd)
}
