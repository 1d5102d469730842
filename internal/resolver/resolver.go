// Package resolver computes account assignments: given an account inventory
// snapshot, permission-set definitions, and assignment rules, it produces the
// per-account list of (permission set, groups, users) grants the downstream
// provisioner applies. Resolution is a pure transform over its inputs: no
// I/O, no shared state, and identical input always yields identical output.
package resolver

import (
	"sort"

	"github.com/c2platform/ssoctl/models"
)

// Resolve validates its inputs and builds one AssignmentEntry per account not
// rejected by the exclude predicate, preserving account input order and the
// configured binding order. Group sets are the union of the global rule for
// the binding's role and the account-specific list stored under the binding's
// customer-values key; a missing account-specific list contributes nothing.
// A nil exclude falls back to DecommissionExcluded.
//
// Any validation failure aborts the whole resolution with a
// ConfigurationError and no partial output.
func Resolve(accounts []models.AccountRecord, sets []models.PermissionSetDefinition, rules models.AssignmentRules, exclude ExcludeFunc) ([]models.AssignmentEntry, error) {
	if err := ValidateConfig(sets, rules); err != nil {
		return nil, err
	}
	if err := ValidateAccounts(accounts); err != nil {
		return nil, err
	}
	if exclude == nil {
		exclude = DecommissionExcluded
	}

	entries := make([]models.AssignmentEntry, 0, len(accounts))
	for _, account := range accounts {
		if exclude(account) {
			continue
		}
		entry := models.AssignmentEntry{
			AccountName: account.AccountName,
			AccountID:   account.AccountID,
			Permissions: make([]models.AccountPermission, 0, len(rules.Bindings)),
		}
		for _, binding := range rules.Bindings {
			permission := models.AccountPermission{
				PermissionSetName: binding.PermissionSetName,
				Groups:            mergePrincipals(rules.Groups[binding.Role], account.GroupsFor(binding.ValuesKey())),
			}
			if manual := rules.Users[binding.Role]; len(manual) > 0 {
				permission.Users = mergePrincipals(manual, nil)
			}
			entry.Permissions = append(entry.Permissions, permission)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// mergePrincipals unions two principal lists into a sorted, duplicate-free
// slice. Union, not concatenation: a name present in both lists appears once,
// so the provisioner never sees a duplicate principal. The result is never
// nil so an empty set still encodes as [].
func mergePrincipals(global, accountSpecific []string) []string {
	merged := make([]string, 0, len(global)+len(accountSpecific))
	seen := make(map[string]struct{}, len(global)+len(accountSpecific))
	for _, list := range [][]string{global, accountSpecific} {
		for _, name := range list {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			merged = append(merged, name)
		}
	}
	sort.Strings(merged)
	return merged
}
