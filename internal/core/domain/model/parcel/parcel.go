package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
	// through the NewParcel or RestoreParcel factory methods.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Parcel represents a shipment in the system. It is the aggregate root that
// manages the parcel from booking through delivery.
//
// Parcel follows these invariants:
//   - Must have a valid unique identifier and a non-blank tracking code
//   - Tracking codes are generated at creation and never reused
//   - Sender must reference an existing customer account
//   - Receiver name, phone, and address must be non-blank
//   - Weight must be positive; charge is computed from the weight by the tariff
//   - Status is always one of the five workflow states, starting at Booked
//   - Can only be created through NewParcel or RestoreParcel
type Parcel struct {
	// id is the unique internal identifier for the parcel
	id kernel.UUID

	// trackingCode is the externally shared, globally unique lookup code
	trackingCode string

	// senderID references the customer account that booked the parcel
	senderID kernel.UUID

	// receiverName, receiverPhone, receiverAddress describe the destination
	receiverName    string
	receiverPhone   string
	receiverAddress string

	// weightKg is the parcel weight in kilograms (must be positive)
	weightKg float64

	// charge is the delivery fee computed from the weight
	charge float64

	// status is the current state in the delivery workflow
	status Status

	// bookedAt is the booking timestamp
	bookedAt time.Time

	// isConstructed ensures the parcel was created via a factory method
	isConstructed bool
}

// NewParcel creates a new Parcel in Booked status with validation.
// The charge is supplied by the caller, computed by the tariff from the
// weight, so the aggregate never needs to know the rate.
func NewParcel(
	id kernel.UUID,
	trackingCode string,
	senderID kernel.UUID,
	receiverName, receiverPhone, receiverAddress string,
	weightKg, charge float64,
) (*Parcel, error) {
	p := &Parcel{
		status:        Booked,
		bookedAt:      time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingCode(trackingCode),
		p.setSenderID(senderID),
		p.setReceiver(receiverName, receiverPhone, receiverAddress),
		p.setWeightAndCharge(weightKg, charge),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistence, including its status
// and booking timestamp. Used by repository implementations only.
func RestoreParcel(
	id kernel.UUID,
	trackingCode string,
	senderID kernel.UUID,
	receiverName, receiverPhone, receiverAddress string,
	weightKg, charge float64,
	status Status,
	bookedAt time.Time,
) (*Parcel, error) {
	p, err := NewParcel(id, trackingCode, senderID, receiverName, receiverPhone, receiverAddress, weightKg, charge)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	p.status = status
	p.bookedAt = bookedAt
	return p, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's internal unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingCode returns the externally shared tracking code.
func (p *Parcel) TrackingCode() string {
	return p.trackingCode
}

// SenderID returns the booking customer's account identifier.
func (p *Parcel) SenderID() kernel.UUID {
	return p.senderID
}

// ReceiverName returns the receiver's display name.
func (p *Parcel) ReceiverName() string {
	return p.receiverName
}

// ReceiverPhone returns the receiver's contact number.
func (p *Parcel) ReceiverPhone() string {
	return p.receiverPhone
}

// ReceiverAddress returns the delivery address.
func (p *Parcel) ReceiverAddress() string {
	return p.receiverAddress
}

// WeightKg returns the parcel weight in kilograms.
func (p *Parcel) WeightKg() float64 {
	return p.weightKg
}

// Charge returns the delivery fee.
func (p *Parcel) Charge() float64 {
	return p.charge
}

// Status returns the current workflow status.
func (p *Parcel) Status() Status {
	return p.status
}

// BookedAt returns the booking timestamp.
func (p *Parcel) BookedAt() time.Time {
	return p.bookedAt
}

// UpdateDetails replaces the receiver details, weight, and charge.
// The current status is left untouched: an edit is not a status transition,
// though callers record it in the history log with the unchanged status.
func (p *Parcel) UpdateDetails(
	receiverName, receiverPhone, receiverAddress string,
	weightKg, charge float64,
) error {
	if err := p.Validate(); err != nil {
		return err
	}

	return errors.Join(
		p.setReceiver(receiverName, receiverPhone, receiverAddress),
		p.setWeightAndCharge(weightKg, charge),
	)
}

// ChangeStatus sets the parcel's status to any valid workflow state.
// There is no monotonicity restriction: a rider correcting a mistake may
// move the status backward. Invalid status values are rejected.
func (p *Parcel) ChangeStatus(newStatus Status) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if err := newStatus.Validate(); err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingCode(trackingCode string) error {
	if strings.TrimSpace(trackingCode) == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	p.trackingCode = trackingCode
	return nil
}

func (p *Parcel) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}
	p.senderID = senderID
	return nil
}

func (p *Parcel) setReceiver(name, phone, address string) error {
	var errList []error
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("receiverName"))
	}
	if strings.TrimSpace(phone) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("receiverPhone"))
	}
	if strings.TrimSpace(address) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("receiverAddress"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	p.receiverName = name
	p.receiverPhone = phone
	p.receiverAddress = address
	return nil
}

func (p *Parcel) setWeightAndCharge(weightKg, charge float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg is invalid",
			fmt.Errorf("%g is not greater than 0", weightKg))
	}
	if charge < 0 {
		return errs.NewValueIsInvalidErrorWithCause("charge is invalid",
			fmt.Errorf("%g is negative", charge))
	}

	p.weightKg = weightKg
	p.charge = charge
	return nil
}
