package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
//
// The forward order of the workflow is:
//
//	booked -> packed -> in_transit -> out_for_delivery -> delivered
//
// Transitions are deliberately permissive: a rider may set any valid status
// regardless of the current one, so a mis-tapped status can be corrected.
// The forward order above is documentation of the expected flow, not an
// enforced constraint.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Booked is the initial status written at parcel creation.
	Booked

	// Packed indicates the parcel has been prepared for transport.
	Packed

	// InTransit indicates the parcel is moving between facilities.
	InTransit

	// OutForDelivery indicates the rider is en route to the receiver.
	OutForDelivery

	// Delivered indicates the parcel reached the receiver.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Booked:         "booked",
		Packed:         "packed",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Booked:         "booked",
		Packed:         "packed",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are the five workflow states; Unknown (0) and any
// other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status, e.g. "out_for_delivery".
// Returns "unknown" for invalid status values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a status from its wire representation.
// Returns an error for any string that is not exactly one of the five
// valid status names.
func StatusFromString(str string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == str {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", str))
}
