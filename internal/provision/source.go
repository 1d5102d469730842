package provision

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/spf13/afero"

	"github.com/c2platform/ssoctl/internal/awsctx"
	"github.com/c2platform/ssoctl/internal/inventory"
	"github.com/c2platform/ssoctl/models"
)

// Inventory source kinds.
const (
	SourceSSM  = "ssm"
	SourceFile = "file"
)

// SourceOptions selects and parameterizes the inventory source.
type SourceOptions struct {
	Kind          string
	InventoryFile string
	SSMPathPrefix string
	Profile       string
	Region        string
	EndpointURL   string
}

// BuiltSource bundles a constructed source with its ambient caller lookup and
// a human-readable label for summaries. Caller is nil for offline sources.
type BuiltSource struct {
	Source inventory.Source
	Caller CallerFunc
	Label  string
}

// BuildSource constructs the inventory source the options describe. No remote
// call happens here; clients stay idle until the pipeline runs.
func BuildSource(ctx context.Context, fs afero.Fs, opts SourceOptions) (BuiltSource, error) {
	switch opts.Kind {
	case SourceFile:
		if opts.InventoryFile == "" {
			return BuiltSource{}, errors.New("--inventory-file is required with the file source")
		}
		return BuiltSource{
			Source: inventory.NewFileSource(fs, opts.InventoryFile),
			Label:  "file:" + opts.InventoryFile,
		}, nil

	case SourceSSM:
		cfg, err := awsctx.LoadConfig(ctx, awsctx.LoadOptions{
			Profile:     opts.Profile,
			Region:      opts.Region,
			EndpointURL: opts.EndpointURL,
		})
		if err != nil {
			return BuiltSource{}, err
		}

		prefix := opts.SSMPathPrefix
		if prefix == "" {
			prefix = models.DefaultSSMPathPrefix
		}
		stsClient := sts.NewFromConfig(cfg)
		return BuiltSource{
			Source: inventory.NewSSMSource(ssm.NewFromConfig(cfg), prefix),
			Caller: func(ctx context.Context) (awsctx.Caller, error) {
				return awsctx.ResolveCaller(ctx, stsClient, cfg.Region)
			},
			Label: "ssm:" + prefix,
		}, nil
	}

	return BuiltSource{}, fmt.Errorf("unknown inventory source %q (expected %s or %s)", opts.Kind, SourceSSM, SourceFile)
}
