package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Lock the vault and clear the session",
	Long:  `Lock the vault by clearing the held key, the decrypted cache, and the persisted session markers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := contentVault.Logout(); err != nil {
			return err
		}

		fmt.Println("Vault locked")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lockCmd)
}
