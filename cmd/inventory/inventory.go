package inventory

import (
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/c2platform/ssoctl/internal/provision"
	"github.com/c2platform/ssoctl/models"
	generalutils "github.com/c2platform/ssoctl/utils/general"
	promptutils "github.com/c2platform/ssoctl/utils/prompt"
)

type InventoryDependencies struct {
	FS       afero.Fs
	Prompter promptutils.Prompter
	General  generalutils.GeneralUtilsInterface
	Out      io.Writer
}

func NewInventoryCommands(deps InventoryDependencies) *cobra.Command {
	inventoryCmd := &cobra.Command{
		Use:   "inventory",
		Short: "Inspect the shared account inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	inventoryCmd.AddCommand(newListCommand(deps))
	inventoryCmd.AddCommand(newShowCommand(deps))

	return inventoryCmd
}

// sourceFlags carries the inventory source selection shared by the
// inventory subcommands.
type sourceFlags struct {
	kind          string
	inventoryFile string
	ssmPath       string
	profile       string
	region        string
	endpointURL   string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "source", provision.SourceSSM, "Inventory source (ssm or file)")
	cmd.Flags().StringVar(&f.inventoryFile, "inventory-file", "", "Path to a file-backed inventory snapshot")
	cmd.Flags().StringVar(&f.ssmPath, "ssm-path", "", "Parameter store path prefix for the inventory")
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "AWS profile to use")
	cmd.Flags().StringVarP(&f.region, "region", "r", "", "AWS region to use")
	cmd.Flags().StringVar(&f.endpointURL, "endpoint-url", "", "Override the AWS endpoint, e.g. for a local stack")
}

func (f *sourceFlags) options(fallback provision.SourceOptions) provision.SourceOptions {
	return provision.SourceOptions{
		Kind:          f.kind,
		InventoryFile: f.inventoryFile,
		SSMPathPrefix: firstNonEmpty(f.ssmPath, fallback.SSMPathPrefix),
		Profile:       firstNonEmpty(f.profile, fallback.Profile),
		Region:        firstNonEmpty(f.region, fallback.Region),
		EndpointURL:   firstNonEmpty(f.endpointURL, fallback.EndpointURL),
	}
}

func settingsFallback(settings *models.Settings) provision.SourceOptions {
	return provision.SourceOptions{
		SSMPathPrefix: settings.Inventory.SSMPathPrefix,
		Profile:       settings.Inventory.Profile,
		Region:        settings.Inventory.Region,
		EndpointURL:   settings.Inventory.EndpointURL,
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
