package commands

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrReceiverNameIsRequired    = errors.New("receiver name is required")
	ErrReceiverPhoneIsRequired   = errors.New("receiver phone is required")
	ErrReceiverAddressIsRequired = errors.New("receiver address is required")
	ErrWeightIsInvalid           = errors.New("weight must be greater than 0")
)

// CreateParcelCommand represents a request to book a new parcel for delivery.
// The sender is the authenticated customer; the delivery charge and tracking
// code are computed by the handler, not supplied by the caller.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID        kernel.UUID
	senderID        kernel.UUID
	receiverName    string
	receiverPhone   string
	receiverAddress string
	weightKg        float64

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to book a new parcel.
// Validates that all receiver fields are present and the weight is positive.
func NewCreateParcelCommand(
	parcelID, senderID kernel.UUID,
	receiverName, receiverPhone, receiverAddress string,
	weightKg float64,
) (CreateParcelCommand, error) {
	parcelCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcelCommand.setParcelID(parcelID),
		parcelCommand.setSenderID(senderID),
		parcelCommand.setReceiverName(receiverName),
		parcelCommand.setReceiverPhone(receiverPhone),
		parcelCommand.setReceiverAddress(receiverAddress),
		parcelCommand.setWeightKg(weightKg),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return parcelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// SenderID returns the booking customer's account identifier.
func (c CreateParcelCommand) SenderID() kernel.UUID {
	return c.senderID
}

// ReceiverName returns the recipient's name.
func (c CreateParcelCommand) ReceiverName() string {
	return c.receiverName
}

// ReceiverPhone returns the recipient's contact phone.
func (c CreateParcelCommand) ReceiverPhone() string {
	return c.receiverPhone
}

// ReceiverAddress returns the delivery address.
func (c CreateParcelCommand) ReceiverAddress() string {
	return c.receiverAddress
}

// WeightKg returns the parcel weight in kilograms.
func (c CreateParcelCommand) WeightKg() float64 {
	return c.weightKg
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}

func (c *CreateParcelCommand) setReceiverName(receiverName string) error {
	if strings.TrimSpace(receiverName) == "" {
		return ErrReceiverNameIsRequired
	}

	c.receiverName = receiverName
	return nil
}

func (c *CreateParcelCommand) setReceiverPhone(receiverPhone string) error {
	if strings.TrimSpace(receiverPhone) == "" {
		return ErrReceiverPhoneIsRequired
	}

	c.receiverPhone = receiverPhone
	return nil
}

func (c *CreateParcelCommand) setReceiverAddress(receiverAddress string) error {
	if strings.TrimSpace(receiverAddress) == "" {
		return ErrReceiverAddressIsRequired
	}

	c.receiverAddress = receiverAddress
	return nil
}

func (c *CreateParcelCommand) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return ErrWeightIsInvalid
	}

	c.weightKg = weightKg
	return nil
}
