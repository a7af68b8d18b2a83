// Package services provides domain services for business logic that doesn't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - TrackingCodeGenerator: Produces customer-facing parcel tracking codes
//   - Tariff: Computes the delivery charge from a parcel's weight
package services
