package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foliovault/foliovault/internal/vault"
)

var showCmd = &cobra.Command{
	Use:   "show <content-type> [field]",
	Short: "Decrypt and print a content bundle",
	Long: `Decrypt and print one of the content bundles: journey, projects,
education, or about. With a field argument, print only that field of the
bundle.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ct, err := vault.ParseContentType(args[0])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		bundle, err := contentVault.LoadContent(ctx, ct)
		if errors.Is(err, vault.ErrNotAuthenticated) {
			return fmt.Errorf("vault is locked. Run 'foliovault unlock' first")
		}
		if err != nil {
			return err
		}

		value := bundle
		if len(args) == 2 {
			value = contentVault.GetContentField(ct, args[1])
			if value == nil {
				return fmt.Errorf("no field %q in %s content", args[1], ct)
			}
		}

		out, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format content: %w", err)
		}
		fmt.Println(string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
