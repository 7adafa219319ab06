package commands

import (
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/guard"
)

var ErrAcceptQuotationCommandIsNotConstructed = errors.New(
	"AcceptQuotationCommand must be created via NewAcceptQuotationCommand constructor",
)

// AcceptQuotationCommand represents a client's agreement to the quoted price.
// Moves the order into "Accepted" so payment can be recorded against it.
type AcceptQuotationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptQuotationCommand creates a command to accept an order's quotation.
func NewAcceptQuotationCommand(orderID kernel.UUID, actorID kernel.UUID) (AcceptQuotationCommand, error) {
	cmd := AcceptQuotationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return AcceptQuotationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptQuotationCommandIsNotConstructed if validation fails.
func (c AcceptQuotationCommand) Validate() error {
	return c.guard.Validate(ErrAcceptQuotationCommandIsNotConstructed)
}

// OrderID returns the order whose quotation is accepted.
func (c AcceptQuotationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the accepting client.
func (c AcceptQuotationCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *AcceptQuotationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptQuotationCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
