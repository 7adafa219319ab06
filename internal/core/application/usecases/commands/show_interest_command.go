package commands

import (
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/guard"
)

var ErrShowInterestCommandIsNotConstructed = errors.New(
	"ShowInterestCommand must be created via NewShowInterestCommand constructor",
)

// ShowInterestCommand represents a writer raising their hand for an order,
// either answering an invitation or walking in on their own.
type ShowInterestCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewShowInterestCommand creates a command to express interest in an order.
func NewShowInterestCommand(orderID kernel.UUID, actorID kernel.UUID) (ShowInterestCommand, error) {
	cmd := ShowInterestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return ShowInterestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrShowInterestCommandIsNotConstructed if validation fails.
func (c ShowInterestCommand) Validate() error {
	return c.guard.Validate(ErrShowInterestCommandIsNotConstructed)
}

// OrderID returns the order the writer wants.
func (c ShowInterestCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the interested writer.
func (c ShowInterestCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ShowInterestCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ShowInterestCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
