// Package account provides domain entities and business logic for identity
// management in the parcel tracking system. It implements the Account aggregate
// root together with the closed Role enumeration.
//
// The package includes:
//   - Account: The aggregate root holding identity, contact info, and credential hash
//   - Role: A three-member enumeration (customer, staff, rider) validated at every boundary
//
// Key business rules:
//   - Email is the unique login identifier; duplicates are rejected at registration
//   - Only a one-way credential hash is stored, never a raw password
//   - An account's role is fixed at registration; no role-change operation exists
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package account
