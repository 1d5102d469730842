package generalutils

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"regexp"
	"sync"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

type GeneralUtilsInterface interface {
	HandleSignals() context.Context
	PrintRunSummary(source string, resolved, excluded int, outputPath string)
}

type DefaultGeneralUtilsManager struct{}

func NewGeneralUtilsManager() GeneralUtilsInterface {
	return &DefaultGeneralUtilsManager{}
}

func (g *DefaultGeneralUtilsManager) HandleSignals() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		fmt.Printf("Received termination signal: %v\n", sig)
		cancel()
	}()

	return ctx
}

func (g *DefaultGeneralUtilsManager) PrintRunSummary(source string, resolved, excluded int, outputPath string) {
	fmt.Printf(`
Resolution Summary:
---------------------------------
Inventory Source : %s
Accounts Resolved: %d
Accounts Excluded: %d
Plan Written To  : %s
---------------------------------
`, source, resolved, excluded, outputPath)
}

func isValidRegionFormat(region string) bool {
	// Matches patterns like us-east-1, ap-southeast-2
	return regexp.MustCompile(`^[a-z]{2}-[a-z]+-\d+$`).MatchString(region)
}

var (
	validRegionsCache map[string]bool
	regionsCacheMutex sync.RWMutex
)

// IsRegionValid checks region against the live DescribeRegions listing,
// falling back to a format check when the account cannot be reached.
func IsRegionValid(region string) bool {
	regionsCacheMutex.RLock()
	if validRegionsCache != nil {
		if cached, exists := validRegionsCache[region]; exists {
			regionsCacheMutex.RUnlock()
			return cached
		}
	}
	regionsCacheMutex.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := config.LoadDefaultConfig(ctx)
	if err == nil {
		ec2Client := ec2.NewFromConfig(cfg)
		output, err := ec2Client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{
			AllRegions: aws.Bool(true),
		})
		if err == nil {
			regionsCacheMutex.Lock()
			if validRegionsCache == nil {
				validRegionsCache = make(map[string]bool)
			}
			for _, r := range output.Regions {
				if r.RegionName != nil && *r.RegionName == region {
					validRegionsCache[region] = true
					regionsCacheMutex.Unlock()
					return true
				}
			}
			validRegionsCache[region] = false
			regionsCacheMutex.Unlock()
			return false
		}
	}

	return isValidRegionFormat(region)
}

var validAccountNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-_]{0,126}[a-zA-Z0-9]$`)

// IsValidAccountName reports whether name is safe to use as a parameter-store
// path segment. Advisory only; the inventory contract treats names as opaque.
func IsValidAccountName(name string) bool {
	return validAccountNameRegex.MatchString(name)
}
