package commands

import (
	"errors"
	"fmt"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"
	"writedesk/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a client reporting a payment against an
// order. The payment starts in "Pending" state until an admin verifies or
// rejects it.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID   kernel.UUID
	orderID     kernel.UUID
	actorID     kernel.UUID
	amountCents int64

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to report a payment.
// The amount must be positive; nobody reports paying nothing.
func NewRecordPaymentCommand(
	paymentID kernel.UUID,
	orderID kernel.UUID,
	actorID kernel.UUID,
	amountCents int64,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setAmount(amountCents),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordPaymentCommandIsNotConstructed if validation fails.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// PaymentID returns the unique identifier for the new payment record.
func (c RecordPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// OrderID returns the order the payment belongs to.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the reporting client.
func (c RecordPaymentCommand) ActorID() kernel.UUID {
	return c.actorID
}

// AmountCents returns the reported amount in cents.
func (c RecordPaymentCommand) AmountCents() int64 {
	return c.amountCents
}

func (c *RecordPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *RecordPaymentCommand) setAmount(amountCents int64) error {
	if amountCents <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amountCents",
			fmt.Errorf("%d cents is not a positive amount", amountCents))
	}

	c.amountCents = amountCents
	return nil
}
