package commands

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrEditParcelCommandIsNotConstructed = errors.New(
	"EditParcelCommand must be created via NewEditParcelCommand constructor",
)

// EditParcelCommand represents a staff request to correct a parcel's
// receiver details or weight. Edits never touch the parcel's status or
// sender, and every edit leaves a trace in the status history ledger.
type EditParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID        kernel.UUID
	receiverName    string
	receiverPhone   string
	receiverAddress string
	weightKg        float64

	guard guard.ConstructorGuard
}

// NewEditParcelCommand creates a command to edit an existing parcel.
// All receiver fields and the weight are required; partial edits send
// the current values for fields that do not change.
func NewEditParcelCommand(
	parcelID kernel.UUID,
	receiverName, receiverPhone, receiverAddress string,
	weightKg float64,
) (EditParcelCommand, error) {
	editCommand := EditParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		editCommand.setParcelID(parcelID),
		editCommand.setReceiverName(receiverName),
		editCommand.setReceiverPhone(receiverPhone),
		editCommand.setReceiverAddress(receiverAddress),
		editCommand.setWeightKg(weightKg),
	); err != nil {
		return EditParcelCommand{}, err
	}

	return editCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c EditParcelCommand) Validate() error {
	return c.guard.Validate(ErrEditParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to edit.
func (c EditParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ReceiverName returns the corrected recipient name.
func (c EditParcelCommand) ReceiverName() string {
	return c.receiverName
}

// ReceiverPhone returns the corrected recipient phone.
func (c EditParcelCommand) ReceiverPhone() string {
	return c.receiverPhone
}

// ReceiverAddress returns the corrected delivery address.
func (c EditParcelCommand) ReceiverAddress() string {
	return c.receiverAddress
}

// WeightKg returns the corrected weight in kilograms.
func (c EditParcelCommand) WeightKg() float64 {
	return c.weightKg
}

func (c *EditParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *EditParcelCommand) setReceiverName(receiverName string) error {
	if strings.TrimSpace(receiverName) == "" {
		return ErrReceiverNameIsRequired
	}

	c.receiverName = receiverName
	return nil
}

func (c *EditParcelCommand) setReceiverPhone(receiverPhone string) error {
	if strings.TrimSpace(receiverPhone) == "" {
		return ErrReceiverPhoneIsRequired
	}

	c.receiverPhone = receiverPhone
	return nil
}

func (c *EditParcelCommand) setReceiverAddress(receiverAddress string) error {
	if strings.TrimSpace(receiverAddress) == "" {
		return ErrReceiverAddressIsRequired
	}

	c.receiverAddress = receiverAddress
	return nil
}

func (c *EditParcelCommand) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return ErrWeightIsInvalid
	}

	c.weightKg = weightKg
	return nil
}
