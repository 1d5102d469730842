package resolve

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/c2platform/ssoctl/internal/config"
	"github.com/c2platform/ssoctl/internal/plan"
	"github.com/c2platform/ssoctl/internal/provision"
	"github.com/c2platform/ssoctl/internal/resolver"
	generalutils "github.com/c2platform/ssoctl/utils/general"
	promptutils "github.com/c2platform/ssoctl/utils/prompt"
)

type ResolveDependencies struct {
	FS       afero.Fs
	General  generalutils.GeneralUtilsInterface
	Prompter promptutils.Prompter
	Out      io.Writer
}

func NewResolveCommand(deps ResolveDependencies) *cobra.Command {
	var (
		configPath    string
		sourceKind    string
		inventoryFile string
		ssmPath       string
		profile       string
		region        string
		endpointURL   string
		format        string
		outputPath    string
		force         bool
	)

	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve account assignments into a provisioning plan",
		Long: `Fetches the shared account inventory, applies the configured assignment
rules, and emits the plan consumed by the provisioning pipeline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := deps.General.HandleSignals()

			planFormat, err := plan.ParseFormat(format)
			if err != nil {
				return err
			}
			if region != "" && !generalutils.IsRegionValid(region) {
				return fmt.Errorf("invalid AWS region %q", region)
			}

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

			built, err := provision.BuildSource(ctx, deps.FS, provision.SourceOptions{
				Kind:          sourceKind,
				InventoryFile: inventoryFile,
				SSMPathPrefix: firstNonEmpty(ssmPath, settings.Inventory.SSMPathPrefix),
				Profile:       firstNonEmpty(profile, settings.Inventory.Profile),
				Region:        firstNonEmpty(region, settings.Inventory.Region),
				EndpointURL:   firstNonEmpty(endpointURL, settings.Inventory.EndpointURL),
			})
			if err != nil {
				return err
			}

			if outputPath != "" && !force {
				exists, err := afero.Exists(deps.FS, outputPath)
				if err != nil {
					return fmt.Errorf("failed to check output path %s: %w", outputPath, err)
				}
				if exists && !deps.Prompter.Confirm(fmt.Sprintf("Overwrite %s", outputPath)) {
					fmt.Println("Aborted.")
					return nil
				}
			}

			pipeline := &provision.Pipeline{Source: built.Source, Caller: built.Caller}
			resolved, stats, err := pipeline.Run(ctx, settings, rules)
			if err != nil {
				if resolver.IsConfigurationError(err) {
					return fmt.Errorf("configuration error: %w", err)
				}
				return fmt.Errorf("failed to resolve assignments: %w", err)
			}

			writer := plan.NewWriter(deps.FS, deps.Out)
			if err := writer.Write(resolved, planFormat, outputPath); err != nil {
				return err
			}
			if outputPath != "" {
				deps.General.PrintRunSummary(built.Label, len(resolved.Assignments), stats.Excluded, outputPath)
			}
			return nil
		},
	}

	resolveCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the provisioning configuration file")
	resolveCmd.Flags().StringVar(&sourceKind, "source", provision.SourceSSM, "Inventory source (ssm or file)")
	resolveCmd.Flags().StringVar(&inventoryFile, "inventory-file", "", "Path to a file-backed inventory snapshot")
	resolveCmd.Flags().StringVar(&ssmPath, "ssm-path", "", "Parameter store path prefix for the inventory")
	resolveCmd.Flags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	resolveCmd.Flags().StringVarP(&region, "region", "r", "", "AWS region to use")
	resolveCmd.Flags().StringVar(&endpointURL, "endpoint-url", "", "Override the AWS endpoint, e.g. for a local stack")
	resolveCmd.Flags().StringVarP(&format, "format", "f", string(plan.FormatJSON), "Plan output format (json or yaml)")
	resolveCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the plan to a file instead of stdout")
	resolveCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing output file without asking")

	return resolveCmd
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
