package models

import "fmt"

// Managed-policy ownership, as expected by the downstream provisioner.
const (
	ManagedByAWS      = "aws"
	ManagedByCustomer = "customer"
)

// ManagedPolicyRef names one managed policy attached to a permission set.
type ManagedPolicyRef struct {
	ManagedBy string `json:"managed_by" yaml:"managed_by"`
	Name      string `json:"policy_name" yaml:"policy_name"`
	Path      string `json:"policy_path,omitempty" yaml:"policy_path,omitempty"`
}

// ARN renders the policy ARN for the given account. AWS-managed policies live
// in the shared aws partition namespace; customer-managed ones in accountID.
func (m ManagedPolicyRef) ARN(accountID string) string {
	path := m.Path
	if path == "" {
		path = "/"
	}
	if m.ManagedBy == ManagedByAWS {
		return fmt.Sprintf("arn:aws:iam::aws:policy%s%s", path, m.Name)
	}
	return fmt.Sprintf("arn:aws:iam::%s:policy%s%s", accountID, path, m.Name)
}

// PermissionSetDefinition describes one Identity Center permission set as
// configured, before any account binding is applied. Assignments reference
// definitions by name, never by provider-side id.
type PermissionSetDefinition struct {
	Name            string             `json:"name" yaml:"name"`
	Description     string             `json:"description,omitempty" yaml:"description,omitempty"`
	SessionDuration int                `json:"session_duration" yaml:"session_duration"`
	InlinePolicy    string             `json:"inline_policy_json,omitempty" yaml:"inline_policy_json,omitempty"`
	ManagedPolicies []ManagedPolicyRef `json:"managed_policies,omitempty" yaml:"managed_policies,omitempty"`
	BoundaryPolicy  *ManagedPolicyRef  `json:"boundary_policy,omitempty" yaml:"boundary_policy,omitempty"`
}

// SessionDurationISO8601 renders the session duration in the ISO 8601 form
// the Identity Center API expects, e.g. PT12H. Empty when unset.
func (p PermissionSetDefinition) SessionDurationISO8601() string {
	if p.SessionDuration <= 0 {
		return ""
	}
	return fmt.Sprintf("PT%dH", p.SessionDuration)
}
