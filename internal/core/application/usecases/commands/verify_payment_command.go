package commands

import (
	"errors"

	"writedesk/internal/core/domain/model/billing"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"
	"writedesk/internal/pkg/guard"
)

var ErrVerifyPaymentCommandIsNotConstructed = errors.New(
	"VerifyPaymentCommand must be created via NewVerifyPaymentCommand constructor",
)

// VerifyPaymentCommand represents an admin confirming a reported payment
// against the payment provider. The percent states how much of the order
// total the payment covers; only a full verification opens the payment gate.
type VerifyPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	actorID   kernel.UUID
	percent   int

	guard guard.ConstructorGuard
}

// NewVerifyPaymentCommand creates a command to verify a payment at the given
// percentage of the order total.
func NewVerifyPaymentCommand(
	paymentID kernel.UUID,
	actorID kernel.UUID,
	percent int,
) (VerifyPaymentCommand, error) {
	cmd := VerifyPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setActorID(actorID),
		cmd.setPercent(percent),
	); err != nil {
		return VerifyPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrVerifyPaymentCommandIsNotConstructed if validation fails.
func (c VerifyPaymentCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPaymentCommandIsNotConstructed)
}

// PaymentID returns the payment to verify.
func (c VerifyPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// ActorID returns the identifier of the verifying admin.
func (c VerifyPaymentCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Percent returns the verified share of the order total.
func (c VerifyPaymentCommand) Percent() int {
	return c.percent
}

func (c *VerifyPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *VerifyPaymentCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *VerifyPaymentCommand) setPercent(percent int) error {
	if percent < 1 || percent > billing.FullVerificationPercent {
		return errs.NewValueIsOutOfRangeError("percent", percent, 1, billing.FullVerificationPercent)
	}

	c.percent = percent
	return nil
}
