// Package parcel provides domain entities and business logic for parcel
// management in the tracking system. It implements the Parcel aggregate root
// with its lifecycle states and the append-only status history.
//
// The package includes:
//   - Parcel: The aggregate root holding tracking code, receiver details, weight,
//     charge, and current workflow status
//   - Status: The five-state delivery workflow (booked, packed, in_transit,
//     out_for_delivery, delivered)
//   - HistoryEntry: An immutable audit record of the parcel's status at a point in time
//
// Key business rules:
//   - Parcels must have a valid identifier, a unique tracking code, and positive weight
//   - Every parcel starts in the booked status
//   - Status changes are permissive (any valid state may follow any other),
//     letting riders correct mistaken updates
//   - History entries are append-only and never mutated
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package parcel
