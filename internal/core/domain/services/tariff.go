package services

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Tariff is a domain service computing the delivery charge for a parcel.
//
// The charge is a flat per-kilogram rate, fixed at parcel creation time.
// Later rate changes never reprice already booked parcels.
type Tariff struct {
	ratePerKg float64
}

// NewTariff creates a Tariff with the given per-kilogram rate.
// The rate must be greater than zero.
func NewTariff(ratePerKg float64) (Tariff, error) {
	if ratePerKg <= 0 {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause("ratePerKg is invalid",
			fmt.Errorf("%g is not greater than 0", ratePerKg))
	}

	return Tariff{ratePerKg: ratePerKg}, nil
}

// Charge returns the delivery charge for the given weight in kilograms.
func (t Tariff) Charge(weightKg float64) float64 {
	return weightKg * t.ratePerKg
}
