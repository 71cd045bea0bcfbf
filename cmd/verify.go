package cmd

import (
	"fmt"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/foliovault/foliovault/internal/assets"
	"github.com/foliovault/foliovault/internal/crypto"
	"github.com/foliovault/foliovault/internal/vault"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the encrypted artifacts decrypt with a password",
	Long: `Decrypt every encrypted artifact with the entered password and report
which ones open cleanly. Nothing is cached and no session is started.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print("Enter password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		key := crypto.DeriveKey(string(password))
		crypto.Zeroize(password)

		src := assets.NewDir(cfg.EncryptedDir)
		failed := 0
		for _, ct := range vault.ContentTypes {
			blob, err := src.Ciphertext(ct)
			if err != nil {
				fmt.Printf("%s %s: %v\n", color.RedString("✗"), ct, err)
				failed++
				continue
			}
			if _, err := crypto.DecryptWithKey(blob, key); err != nil {
				fmt.Printf("%s %s: %v\n", color.RedString("✗"), ct, err)
				failed++
				continue
			}
			fmt.Printf("%s %s\n", color.GreenString("✓"), ct)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d artifacts failed to verify", failed, len(vault.ContentTypes))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
