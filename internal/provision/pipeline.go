// Package provision runs one resolution pass end to end: fetch the inventory
// snapshot and ambient context, resolve the assignments, and shape the plan.
package provision

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/c2platform/ssoctl/internal/awsctx"
	"github.com/c2platform/ssoctl/internal/inventory"
	"github.com/c2platform/ssoctl/internal/resolver"
	"github.com/c2platform/ssoctl/models"
)

// CallerFunc resolves the ambient cloud context. Nil means no ambient
// context is available (offline sources) and the plan's passthrough scalars
// stay empty.
type CallerFunc func(ctx context.Context) (awsctx.Caller, error)

// Pipeline wires an inventory source and the ambient caller lookup into the
// resolver.
type Pipeline struct {
	Source  inventory.Source
	Caller  CallerFunc
	Exclude resolver.ExcludeFunc
}

// Stats summarizes one resolution pass.
type Stats struct {
	TotalAccounts int
	Excluded      int
}

// Run fetches accounts, passthrough parameters, and the caller identity
// concurrently, then resolves the assignments. The remote reads share a
// context so the first failure cancels the rest; any failure means no plan.
func (p *Pipeline) Run(ctx context.Context, settings *models.Settings, rules models.AssignmentRules) (models.Plan, Stats, error) {
	var (
		accounts   []models.AccountRecord
		parameters map[string]string
		caller     awsctx.Caller
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		accounts, err = p.Source.Accounts(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		parameters, err = p.Source.Parameters(groupCtx)
		return err
	})
	if p.Caller != nil {
		group.Go(func() error {
			var err error
			caller, err = p.Caller(groupCtx)
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return models.Plan{}, Stats{}, err
	}

	entries, err := resolver.Resolve(accounts, settings.PermissionSets, rules, p.Exclude)
	if err != nil {
		return models.Plan{}, Stats{}, err
	}

	stats := Stats{
		TotalAccounts: len(accounts),
		Excluded:      len(accounts) - len(entries),
	}
	return models.Plan{
		AccountID:   caller.AccountID,
		Region:      caller.Region,
		Parameters:  parameters,
		Assignments: entries,
	}, stats, nil
}
