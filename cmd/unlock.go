package cmd

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/foliovault/foliovault/internal/crypto"
)

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unlock the content vault",
	Long: `Unlock the content vault by entering the shared password. The session
persists until 'foliovault lock'. The password is not checked here; a wrong
password shows up as a decryption failure on first access.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if contentVault.IsAuthenticated() {
			fmt.Println("Vault is already unlocked")
			return nil
		}

		fmt.Print("Enter password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		if err := contentVault.Authenticate(string(password)); err != nil {
			return err
		}
		crypto.Zeroize(password)

		fmt.Println("Vault unlocked")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unlockCmd)
}
