package commands

import (
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/guard"
)

var ErrAssignWriterCommandIsNotConstructed = errors.New(
	"AssignWriterCommand must be created via NewAssignWriterCommand constructor",
)

// AssignWriterCommand represents an admin picking a writer for an order.
// The writer must have shown interest first; any other writer currently
// holding the order is released in the same transaction.
type AssignWriterCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	writerID kernel.UUID
	actorID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignWriterCommand creates a command to assign a writer to an order.
func NewAssignWriterCommand(
	orderID kernel.UUID,
	writerID kernel.UUID,
	actorID kernel.UUID,
) (AssignWriterCommand, error) {
	cmd := AssignWriterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setWriterID(writerID),
		cmd.setActorID(actorID),
	); err != nil {
		return AssignWriterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignWriterCommandIsNotConstructed if validation fails.
func (c AssignWriterCommand) Validate() error {
	return c.guard.Validate(ErrAssignWriterCommandIsNotConstructed)
}

// OrderID returns the order to staff.
func (c AssignWriterCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WriterID returns the writer to assign.
func (c AssignWriterCommand) WriterID() kernel.UUID {
	return c.writerID
}

// ActorID returns the identifier of the assigning admin.
func (c AssignWriterCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *AssignWriterCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignWriterCommand) setWriterID(writerID kernel.UUID) error {
	if err := writerID.Validate(); err != nil {
		return err
	}

	c.writerID = writerID
	return nil
}

func (c *AssignWriterCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
