package inventory

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c2platform/ssoctl/internal/config"
	"github.com/c2platform/ssoctl/internal/provision"
)

const listRowFormat = "%-24s %-14s %-22s %s\n"

func newListCommand(deps InventoryDependencies) *cobra.Command {
	var flags sourceFlags

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the accounts in the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := deps.General.HandleSignals()

			loader, err := config.NewLoader(deps.FS)
			if err != nil {
				return err
			}
			settings, _, err := loader.LoadOrDefault("")
			if err != nil {
				return err
			}
			built, err := provision.BuildSource(ctx, deps.FS, flags.options(settingsFallback(settings)))
			if err != nil {
				return err
			}
			accounts, err := built.Source.Accounts(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(deps.Out, listRowFormat, "NAME", "ACCOUNT ID", "OU PATH", "STATUS")
			decommissioned := 0
			for _, account := range accounts {
				status := "active"
				if account.Decommissioned() {
					status = "decommissioned"
					decommissioned++
				}
				fmt.Fprintf(deps.Out, listRowFormat, account.AccountName, account.AccountID, account.OUPath, status)
			}
			fmt.Fprintf(deps.Out, "\n%d accounts (%d decommissioned)\n", len(accounts), decommissioned)
			return nil
		},
	}

	flags.register(listCmd)

	return listCmd
}
