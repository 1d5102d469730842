package resolver

import "github.com/c2platform/ssoctl/models"

// ValidateAccounts checks the inventory invariants: every record has a
// non-empty account_id and account_name, and both are unique across the
// snapshot. All failures are ConfigurationErrors.
func ValidateAccounts(accounts []models.AccountRecord) error {
	seenNames := make(map[string]struct{}, len(accounts))
	seenIDs := make(map[string]string, len(accounts))

	for i, account := range accounts {
		if account.AccountName == "" {
			return configErrorf("account record %d: missing account_name", i)
		}
		if account.AccountID == "" {
			return configErrorf("account %q: missing account_id", account.AccountName)
		}
		if _, ok := seenNames[account.AccountName]; ok {
			return configErrorf("duplicate account_name %q in inventory", account.AccountName)
		}
		if owner, ok := seenIDs[account.AccountID]; ok {
			return configErrorf("duplicate account_id %q shared by %q and %q", account.AccountID, owner, account.AccountName)
		}
		seenNames[account.AccountName] = struct{}{}
		seenIDs[account.AccountID] = account.AccountName
	}
	return nil
}

// ValidateConfig checks the permission-set definitions and assignment rules
// for static misconfiguration: duplicate or empty set names, non-positive
// session durations, bad managed_by values, unknown roles, and bindings that
// reference a permission set no definition provides.
func ValidateConfig(sets []models.PermissionSetDefinition, rules models.AssignmentRules) error {
	names := make(map[string]struct{}, len(sets))
	for _, set := range sets {
		if set.Name == "" {
			return configErrorf("permission set with empty name")
		}
		if _, ok := names[set.Name]; ok {
			return configErrorf("duplicate permission set %q", set.Name)
		}
		names[set.Name] = struct{}{}

		if set.SessionDuration <= 0 {
			return configErrorf("permission set %q: session_duration must be positive, got %d", set.Name, set.SessionDuration)
		}
		for _, policy := range set.ManagedPolicies {
			if err := validatePolicyRef(set.Name, policy); err != nil {
				return err
			}
		}
		if set.BoundaryPolicy != nil {
			if err := validatePolicyRef(set.Name, *set.BoundaryPolicy); err != nil {
				return err
			}
		}
	}

	for _, binding := range rules.Bindings {
		if !models.KnownRole(binding.Role) {
			return configErrorf("binding for unknown role %q", binding.Role)
		}
		if binding.PermissionSetName == "" {
			return configErrorf("binding for role %q: missing permission_set_name", binding.Role)
		}
		if _, ok := names[binding.PermissionSetName]; !ok {
			return configErrorf("binding for role %q references undefined permission set %q", binding.Role, binding.PermissionSetName)
		}
	}
	for role := range rules.Groups {
		if !models.KnownRole(role) {
			return configErrorf("global groups configured for unknown role %q", role)
		}
	}
	for role := range rules.Users {
		if !models.KnownRole(role) {
			return configErrorf("users configured for unknown role %q", role)
		}
	}
	return nil
}

func validatePolicyRef(setName string, ref models.ManagedPolicyRef) error {
	if ref.Name == "" {
		return configErrorf("permission set %q: managed policy with empty policy_name", setName)
	}
	if ref.ManagedBy != models.ManagedByAWS && ref.ManagedBy != models.ManagedByCustomer {
		return configErrorf("permission set %q: policy %q: managed_by must be %q or %q, got %q",
			setName, ref.Name, models.ManagedByAWS, models.ManagedByCustomer, ref.ManagedBy)
	}
	return nil
}
