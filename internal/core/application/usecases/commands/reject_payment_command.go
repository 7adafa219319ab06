package commands

import (
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"
	"writedesk/internal/pkg/guard"
)

var ErrRejectPaymentCommandIsNotConstructed = errors.New(
	"RejectPaymentCommand must be created via NewRejectPaymentCommand constructor",
)

// RejectPaymentCommand represents an admin marking a reported payment as not
// found with the payment provider. The reason travels to the payer.
type RejectPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	actorID   kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewRejectPaymentCommand creates a command to reject a payment.
// A reason is required; the payer needs to know what to fix.
func NewRejectPaymentCommand(
	paymentID kernel.UUID,
	actorID kernel.UUID,
	reason string,
) (RejectPaymentCommand, error) {
	cmd := RejectPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setActorID(actorID),
		cmd.setReason(reason),
	); err != nil {
		return RejectPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectPaymentCommandIsNotConstructed if validation fails.
func (c RejectPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRejectPaymentCommandIsNotConstructed)
}

// PaymentID returns the payment to reject.
func (c RejectPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// ActorID returns the identifier of the rejecting admin.
func (c RejectPaymentCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Reason returns the admin's stated reason for the rejection.
func (c RejectPaymentCommand) Reason() string {
	return c.reason
}

func (c *RejectPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *RejectPaymentCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *RejectPaymentCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
