package models

import (
	"strconv"
	"strings"
)

// DecommissionTagKey marks an account that must be excluded from active
// management. The account-factory collaborator sets it; ssoctl only reads it.
const DecommissionTagKey = "AccountDecommission"

// AccountRecord is one account in the shared inventory snapshot. Records are
// produced and owned by the account-factory collaborator; ssoctl treats them
// as read-only input for the duration of one resolution pass.
type AccountRecord struct {
	AccountName    string              `json:"account_name" yaml:"account_name"`
	AccountID      string              `json:"account_id" yaml:"account_id"`
	AccountTags    map[string]string   `json:"account_tags,omitempty" yaml:"account_tags,omitempty"`
	CustomerValues map[string][]string `json:"customer_values,omitempty" yaml:"customer_values,omitempty"`
	OUPath         string              `json:"ou_path,omitempty" yaml:"ou_path,omitempty"`
}

// Decommissioned reports whether the account carries a truthy
// AccountDecommission tag. A missing or unparseable tag means the account is
// still active; it is never an error.
func (a AccountRecord) Decommissioned() bool {
	raw, ok := a.AccountTags[DecommissionTagKey]
	if !ok {
		return false
	}
	value, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return false
	}
	return value
}

// GroupsFor returns the account-specific principal list stored under key in
// CustomerValues. A missing key yields nil, never an error.
func (a AccountRecord) GroupsFor(key string) []string {
	if a.CustomerValues == nil {
		return nil
	}
	return a.CustomerValues[key]
}
