package commands

import (
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/guard"
)

var ErrReassignWriterCommandIsNotConstructed = errors.New(
	"ReassignWriterCommand must be created via NewReassignWriterCommand constructor",
)

// ReassignWriterCommand represents an admin replacing the order's current
// writer with another interested writer in a single move.
type ReassignWriterCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	newWriterID kernel.UUID
	actorID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewReassignWriterCommand creates a command to reassign an order to another
// writer.
func NewReassignWriterCommand(
	orderID kernel.UUID,
	newWriterID kernel.UUID,
	actorID kernel.UUID,
) (ReassignWriterCommand, error) {
	cmd := ReassignWriterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewWriterID(newWriterID),
		cmd.setActorID(actorID),
	); err != nil {
		return ReassignWriterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReassignWriterCommandIsNotConstructed if validation fails.
func (c ReassignWriterCommand) Validate() error {
	return c.guard.Validate(ErrReassignWriterCommandIsNotConstructed)
}

// OrderID returns the order to restaff.
func (c ReassignWriterCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewWriterID returns the writer who takes the order over.
func (c ReassignWriterCommand) NewWriterID() kernel.UUID {
	return c.newWriterID
}

// ActorID returns the identifier of the reassigning admin.
func (c ReassignWriterCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ReassignWriterCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReassignWriterCommand) setNewWriterID(newWriterID kernel.UUID) error {
	if err := newWriterID.Validate(); err != nil {
		return err
	}

	c.newWriterID = newWriterID
	return nil
}

func (c *ReassignWriterCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
