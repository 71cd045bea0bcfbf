package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/foliovault/foliovault/internal/assets"
	"github.com/foliovault/foliovault/internal/config"
	"github.com/foliovault/foliovault/internal/session"
	"github.com/foliovault/foliovault/internal/vault"
)

var (
	cfg          *config.Config
	logger       *zap.Logger
	contentVault *vault.Vault
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "foliovault",
	Short: "Password gate for encrypted portfolio content",
	Long: `foliovault encrypts the personal content bundles of a portfolio site at
build time and unlocks them on demand with a shared password. The salt, the
fallback password, and the ciphertext all ship in the same bundle: this keeps
casual visitors out, it does not resist a motivated attacker.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err = zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store := session.NewFileStore(cfg.SessionPath)
	contentVault = vault.New(assets.NewDir(cfg.EncryptedDir), store, vault.WithLogger(logger))

	return rootCmd.Execute()
}
