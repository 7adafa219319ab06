package commands

import (
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/guard"
)

var ErrRevokeWriterCommandIsNotConstructed = errors.New(
	"RevokeWriterCommand must be created via NewRevokeWriterCommand constructor",
)

// RevokeWriterCommand represents an admin taking the current writer off an
// order. The order goes back to waiting for an assignment.
type RevokeWriterCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRevokeWriterCommand creates a command to revoke an order's writer.
func NewRevokeWriterCommand(orderID kernel.UUID, actorID kernel.UUID) (RevokeWriterCommand, error) {
	cmd := RevokeWriterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return RevokeWriterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRevokeWriterCommandIsNotConstructed if validation fails.
func (c RevokeWriterCommand) Validate() error {
	return c.guard.Validate(ErrRevokeWriterCommandIsNotConstructed)
}

// OrderID returns the order whose writer is revoked.
func (c RevokeWriterCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the revoking admin.
func (c RevokeWriterCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *RevokeWriterCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RevokeWriterCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
