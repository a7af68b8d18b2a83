package account

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Role represents the access level of an account. It is a closed enumeration
// with exactly three members; every boundary that accepts a role string must
// go through RoleFromString so an unchecked value can never enter the system.
//
// A role is fixed at registration. There is no role-change operation.
type Role int

const (
	// Unknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	Unknown Role = iota

	// Customer books parcels and tracks their own shipments.
	Customer

	// Staff edits parcels, views all parcels, and assigns riders.
	Staff

	// Rider delivers assigned parcels and updates their status.
	Rider
)

// getRoleStrings returns a map of Role values to their string representations.
// All roles are included for string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown:  "unknown",
		Customer: "customer",
		Staff:    "staff",
		Rider:    "rider",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
// Only valid roles are included to support validation.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Role]string{
		Customer: "customer",
		Staff:    "staff",
		Rider:    "rider",
	}
}

// Validate checks if the Role value is valid.
// Valid roles are: Customer, Staff, Rider.
// Unknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role:
// "customer", "staff", or "rider" for valid roles, "unknown" otherwise.
// This method implements the fmt.Stringer interface and is safe
// to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// RoleFromString parses a role from its wire representation.
// Returns an error for any string that is not exactly one of the
// three valid role names.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}
