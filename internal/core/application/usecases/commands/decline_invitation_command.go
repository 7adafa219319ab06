package commands

import (
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/guard"
)

var ErrDeclineInvitationCommandIsNotConstructed = errors.New(
	"DeclineInvitationCommand must be created via NewDeclineInvitationCommand constructor",
)

// DeclineInvitationCommand represents an invited writer turning an order
// down. The reason is optional and stays on the row for the admin to read.
type DeclineInvitationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewDeclineInvitationCommand creates a command to decline an invitation.
func NewDeclineInvitationCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	reason string,
) (DeclineInvitationCommand, error) {
	cmd := DeclineInvitationCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return DeclineInvitationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeclineInvitationCommandIsNotConstructed if validation fails.
func (c DeclineInvitationCommand) Validate() error {
	return c.guard.Validate(ErrDeclineInvitationCommandIsNotConstructed)
}

// OrderID returns the order whose invitation is declined.
func (c DeclineInvitationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the declining writer.
func (c DeclineInvitationCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Reason returns the writer's stated reason, possibly empty.
func (c DeclineInvitationCommand) Reason() string {
	return c.reason
}

func (c *DeclineInvitationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeclineInvitationCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
