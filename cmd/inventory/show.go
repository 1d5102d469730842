package inventory

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c2platform/ssoctl/internal/config"
	"github.com/c2platform/ssoctl/internal/provision"
	"github.com/c2platform/ssoctl/models"
	promptutils "github.com/c2platform/ssoctl/utils/prompt"
)

func newShowCommand(deps InventoryDependencies) *cobra.Command {
	var flags sourceFlags

	showCmd := &cobra.Command{
		Use:   "show [account-name]",
		Short: "Show one account record in detail",
		Args:  cobra.MaximumNArgs(1),
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
			if len(accounts) == 0 {
				fmt.Fprintln(deps.Out, "No accounts in inventory.")
				return nil
			}

			var account models.AccountRecord
			if len(args) == 1 {
				found := false
				for _, candidate := range accounts {
					if candidate.AccountName == args[0] {
						account = candidate
						found = true
						break
					}
				}
				if !found {
					return fmt.Errorf("account %q not found in inventory", args[0])
				}
			} else {
				account, err = deps.Prompter.SelectAccount("Choose an account", accounts)
				if err != nil {
					if errors.Is(err, promptutils.ErrInterrupted) {
						return nil
					}
					return err
				}
			}

			printAccount(deps, account)
			return nil
		},
	}

	flags.register(showCmd)

	return showCmd
}

func printAccount(deps InventoryDependencies, account models.AccountRecord) {
	status := "active"
	if account.Decommissioned() {
		status = "decommissioned"
	}
	fmt.Fprintf(deps.Out, "Account: %s (%s)\n", account.AccountName, account.AccountID)
	fmt.Fprintf(deps.Out, "OU Path: %s\n", account.OUPath)
	fmt.Fprintf(deps.Out, "Status : %s\n", status)

	if len(account.AccountTags) > 0 {
		fmt.Fprintln(deps.Out, "Tags:")
		for _, key := range sortedKeys(account.AccountTags) {
			fmt.Fprintf(deps.Out, "  %s = %s\n", key, account.AccountTags[key])
		}
	}
	if len(account.CustomerValues) > 0 {
		fmt.Fprintln(deps.Out, "Customer Values:")
		keys := make([]string, 0, len(account.CustomerValues))
		for key := range account.CustomerValues {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(deps.Out, "  %s: %s\n", key, strings.Join(account.CustomerValues[key], ", "))
		}
	}
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
