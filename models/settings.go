package models

// DefaultSSMPathPrefix is the parameter-store root the account-factory
// collaborator publishes the inventory under.
const DefaultSSMPathPrefix = "/account-factory"

// InventorySettings selects where the account inventory is read from.
type InventorySettings struct {
	SSMPathPrefix string `json:"ssm_path_prefix,omitempty" yaml:"ssm_path_prefix,omitempty"`
	Region        string `json:"region,omitempty" yaml:"region,omitempty"`
	Profile       string `json:"profile,omitempty" yaml:"profile,omitempty"`
	EndpointURL   string `json:"endpoint_url,omitempty" yaml:"endpoint_url,omitempty"`
}

// Settings is the provisioning configuration file contents. Role bindings,
// permission sets, and the inventory prefix fall back to defaults when left
// out; the manual provisioning lists are only consulted while automatic
// provisioning is disabled.
type Settings struct {
	AutomaticProvisioningEnabled bool   `json:"is_automatic_provisioning_enabled" yaml:"is_automatic_provisioning_enabled"`
	ManualUsersFile              string `json:"manual_provisioning_sso_users,omitempty" yaml:"manual_provisioning_sso_users,omitempty"`
	ManualGroupsFile             string `json:"manual_provisioning_sso_groups,omitempty" yaml:"manual_provisioning_sso_groups,omitempty"`

	PermissionSets []PermissionSetDefinition `json:"permission_sets,omitempty" yaml:"permission_sets,omitempty"`
	GlobalGroups   GlobalGroupRule           `json:"global_groups,omitempty" yaml:"global_groups,omitempty"`
	Bindings       []RoleBinding             `json:"bindings,omitempty" yaml:"bindings,omitempty"`

	Inventory InventorySettings `json:"inventory,omitempty" yaml:"inventory,omitempty"`
}

// DefaultPermissionSets returns the permission sets provisioned when the
// configuration does not define its own.
func DefaultPermissionSets() []PermissionSetDefinition {
	return []PermissionSetDefinition{
		{
			Name:            "AdministratorAccess",
			Description:     "Full administrative access",
			SessionDuration: 12,
			ManagedPolicies: []ManagedPolicyRef{
				{ManagedBy: ManagedByAWS, Name: "AdministratorAccess"},
			},
		},
		{
			Name:            "Billing",
			Description:     "Billing and cost management access",
			SessionDuration: 4,
			ManagedPolicies: []ManagedPolicyRef{
				{ManagedBy: ManagedByAWS, Name: "Billing", Path: "/job-function/"},
			},
		},
		{
			Name:            "SupportUser",
			Description:     "Support case access",
			SessionDuration: 4,
			ManagedPolicies: []ManagedPolicyRef{
				{ManagedBy: ManagedByAWS, Name: "SupportUser", Path: "/job-function/"},
			},
		},
	}
}
