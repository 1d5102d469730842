package models

import "fmt"

// GroupRole identifies one of the fixed permission-set roles the assignment
// rules are keyed on.
type GroupRole string

const (
	RoleAdmin   GroupRole = "admin"
	RoleBilling GroupRole = "billing"
	RoleSupport GroupRole = "support"
)

// Roles lists the known roles in their canonical order.
func Roles() []GroupRole {
	return []GroupRole{RoleAdmin, RoleBilling, RoleSupport}
}

// KnownRole reports whether r is one of the fixed roles.
func KnownRole(r GroupRole) bool {
	switch r {
	case RoleAdmin, RoleBilling, RoleSupport:
		return true
	}
	return false
}

// GlobalGroupRule maps a role to the group names granted on every
// non-excluded account.
type GlobalGroupRule map[GroupRole][]string

// RoleBinding ties a role to the permission set it grants and to the
// customer-values key carrying account-specific group lists. The binding
// order is the permission ordering of the resolved output.
type RoleBinding struct {
	Role              GroupRole `json:"role" yaml:"role"`
	PermissionSetName string    `json:"permission_set_name" yaml:"permission_set_name"`
	CustomerValuesKey string    `json:"customer_values_key,omitempty" yaml:"customer_values_key,omitempty"`
}

// ValuesKey returns the customer-values key for account-specific groups,
// defaulting to sso_<role>_groups when not configured.
func (b RoleBinding) ValuesKey() string {
	if b.CustomerValuesKey != "" {
		return b.CustomerValuesKey
	}
	return fmt.Sprintf("sso_%s_groups", b.Role)
}

// DefaultBindings returns the standard role bindings used when the
// configuration does not override them.
func DefaultBindings() []RoleBinding {
	return []RoleBinding{
		{Role: RoleAdmin, PermissionSetName: "AdministratorAccess"},
		{Role: RoleBilling, PermissionSetName: "Billing"},
		{Role: RoleSupport, PermissionSetName: "SupportUser"},
	}
}

// AssignmentRules bundles everything the resolver needs besides the account
// snapshot: the ordered role bindings, the global group rule, and optional
// manually provisioned users per role.
type AssignmentRules struct {
	Bindings []RoleBinding          `json:"bindings" yaml:"bindings"`
	Groups   GlobalGroupRule        `json:"groups,omitempty" yaml:"groups,omitempty"`
	Users    map[GroupRole][]string `json:"users,omitempty" yaml:"users,omitempty"`
}

// AccountPermission is one permission-set grant inside an AssignmentEntry.
// Groups are deduplicated and sorted; Users follow the same treatment and
// are omitted when empty.
type AccountPermission struct {
	PermissionSetName string   `json:"permission_set_name" yaml:"permission_set_name"`
	Groups            []string `json:"groups" yaml:"groups"`
	Users             []string `json:"users,omitempty" yaml:"users,omitempty"`
}

// AssignmentEntry is the resolved assignment list for one account. Entries
// are recomputed fresh on every resolution pass and never persisted here.
type AssignmentEntry struct {
	AccountName string              `json:"account_name" yaml:"account_name"`
	AccountID   string              `json:"account_id" yaml:"account_id"`
	Permissions []AccountPermission `json:"permissions" yaml:"permissions"`
}

// Plan is the document handed to the downstream provisioning module: the
// resolved assignments plus the ambient passthroughs and the parameter-store
// mapping, passed through unmodified.
type Plan struct {
	AccountID   string            `json:"account_id,omitempty" yaml:"account_id,omitempty"`
	Region      string            `json:"region,omitempty" yaml:"region,omitempty"`
	Parameters  map[string]string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Assignments []AssignmentEntry `json:"assignments" yaml:"assignments"`
}
