package root

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	cmdInventory "github.com/c2platform/ssoctl/cmd/inventory"
	cmdResolve "github.com/c2platform/ssoctl/cmd/resolve"
	cmdValidate "github.com/c2platform/ssoctl/cmd/validate"
	generalutils "github.com/c2platform/ssoctl/utils/general"
	promptutils "github.com/c2platform/ssoctl/utils/prompt"
)

var RootCmd *cobra.Command

func NewRootCmd(fs afero.Fs, general generalutils.GeneralUtilsInterface, prompter promptutils.Prompter, out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ssoctl",
		Short: "Identity Center account-assignment tool",
		Long: `A CLI tool for resolving IAM Identity Center account assignments from a
shared account inventory and declarative provisioning configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {

			fmt.Println("No subcommand provided. Showing help...")
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(cmdResolve.NewResolveCommand(cmdResolve.ResolveDependencies{
		FS:       fs,
		General:  general,
		Prompter: prompter,
		Out:      out,
	}))
	rootCmd.AddCommand(cmdValidate.NewValidateCommand(cmdValidate.ValidateDependencies{
		FS:  fs,
		Out: out,
	}))
	rootCmd.AddCommand(cmdInventory.NewInventoryCommands(cmdInventory.InventoryDependencies{
		FS:       fs,
		Prompter: prompter,
		General:  general,
		Out:      out,
	}))

	return rootCmd
}

func init() {
	RootCmd = NewRootCmd(afero.NewOsFs(), generalutils.NewGeneralUtilsManager(), promptutils.NewPrompt(), os.Stdout)
}
