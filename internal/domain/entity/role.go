// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleClient is a buyer. Default role for new accounts.
	RoleClient Role = "client"
	// RoleMerchant sells products once approved by an admin.
	RoleMerchant Role = "merchant"
	// RoleDelivery delivers orders once approved by an admin.
	RoleDelivery Role = "delivery"
	// RoleAdmin runs the marketplace.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleMerchant, RoleDelivery, RoleAdmin:
		return true
	default:
		return false
	}
}

// SelfAssignable reports whether a role may be requested at registration.
func (r Role) SelfAssignable() bool {
	return r.IsValid() && r != RoleAdmin
}

// Roles is the set of roles a route accepts.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
