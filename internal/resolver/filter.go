package resolver

import "github.com/c2platform/ssoctl/models"

// ExcludeFunc reports whether an account must be left out of the resolved
// output entirely.
type ExcludeFunc func(models.AccountRecord) bool

// DecommissionExcluded is the default exclusion predicate: accounts carrying
// a truthy AccountDecommission tag are dropped. A missing tag keeps the
// account in.
func DecommissionExcluded(account models.AccountRecord) bool {
	return account.Decommissioned()
}
