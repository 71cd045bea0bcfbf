package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/foliovault/foliovault/internal/vault"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session and artifact status",
	Long:  `Show whether the vault is unlocked and which encrypted artifacts exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if contentVault.IsAuthenticated() {
			fmt.Println("Session: unlocked")
		} else {
			fmt.Println("Session: locked")
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TYPE\tARTIFACT\tCACHED")
		for _, ct := range vault.ContentTypes {
			artifact := "missing"
			if _, err := os.Stat(filepath.Join(cfg.EncryptedDir, string(ct)+".enc")); err == nil {
				artifact = "present"
			}
			cached := "no"
			if contentVault.GetContent(ct) != nil {
				cached = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", ct, artifact, cached)
		}
		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
