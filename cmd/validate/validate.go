package validate

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/c2platform/ssoctl/internal/config"
	"github.com/c2platform/ssoctl/internal/inventory"
	"github.com/c2platform/ssoctl/internal/resolver"
	generalutils "github.com/c2platform/ssoctl/utils/general"
)

type ValidateDependencies struct {
	FS  afero.Fs
	Out io.Writer
}

func NewValidateCommand(deps ValidateDependencies) *cobra.Command {
	var (
		configPath    string
		inventoryFile string
	)

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and, optionally, an inventory snapshot",
		Long: `Checks the provisioning configuration for errors that would abort a
resolve run. With --inventory-file it also checks a file-backed inventory
snapshot for duplicate or unsafe account records.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			loader, err := config.NewLoader(deps.FS)
			if err != nil {
				return err
			}
			settings, baseDir, err := loader.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			rules, err := loader.Rules(settings, baseDir)
			if err != nil {
				return err
			}
			if err := resolver.ValidateConfig(settings.PermissionSets, rules); err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}
			fmt.Fprintf(deps.Out, "configuration: OK (%d permission sets, %d bindings)\n",
				len(settings.PermissionSets), len(rules.Bindings))

			if inventoryFile == "" {
				return nil
			}
			source := inventory.NewFileSource(deps.FS, inventoryFile)
			accounts, err := source.Accounts(context.Background())
			if err != nil {
				return err
			}
			if err := resolver.ValidateAccounts(accounts); err != nil {
				return fmt.Errorf("inventory error: %w", err)
			}
			decommissioned := 0
			for _, account := range accounts {
				if account.Decommissioned() {
					decommissioned++
				}
				if !generalutils.IsValidAccountName(account.AccountName) {
					fmt.Fprintf(deps.Out, "warning: account name %q is not parameter-path safe\n", account.AccountName)
				}
			}
			fmt.Fprintf(deps.Out, "inventory: OK (%d accounts, %d decommissioned)\n",
				len(accounts), decommissioned)
			return nil
		},
	}

	validateCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the provisioning configuration file")
	validateCmd.Flags().StringVar(&inventoryFile, "inventory-file", "", "Path to a file-backed inventory snapshot to check")

	return validateCmd
}
