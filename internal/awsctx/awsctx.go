// Package awsctx resolves the ambient cloud context: the SDK configuration
// the service clients are built from, and the caller's account id and region
// that pass through into the emitted plan unmodified.
package awsctx

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// FallbackRegion keeps client construction working when neither the profile
// nor the flags carry a region.
const FallbackRegion = "us-east-1"

// Caller identifies the ambient cloud context of the current credentials.
type Caller struct {
	AccountID string
	Region    string
}

// LoadOptions narrows how the SDK configuration is resolved. EndpointURL
// points every client at a local stack and installs static test credentials
// so no real credential chain is consulted.
type LoadOptions struct {
	Profile     string
	Region      string
	EndpointURL string
}

func LoadConfig(ctx context.Context, opts LoadOptions) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.EndpointURL != "" {
		loadOpts = append(loadOpts,
			config.WithBaseEndpoint(opts.EndpointURL),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("test", "test", "")),
		)
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = FallbackRegion
	}
	return cfg, nil
}

// ResolveCaller returns the account id behind the current credentials via
// STS GetCallerIdentity, paired with the resolved region.
func ResolveCaller(ctx context.Context, client STSGetCallerIdentityAPI, region string) (Caller, error) {
	out, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return Caller{}, fmt.Errorf("failed to resolve caller identity: %w", err)
	}
	if out.Account == nil {
		return Caller{}, errors.New("caller identity response missing account id")
	}
	return Caller{AccountID: aws.ToString(out.Account), Region: region}, nil
}
