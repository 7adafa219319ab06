package commands

import (
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"
	"writedesk/internal/pkg/guard"
)

var ErrInviteWritersCommandIsNotConstructed = errors.New(
	"InviteWritersCommand must be created via NewInviteWritersCommand constructor",
)

// InviteWritersCommand represents an admin offering an order to a batch of
// writers. Writers already invited or already interested are left alone, so
// repeating an invitation never spams anyone.
type InviteWritersCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	writerIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewInviteWritersCommand creates a command to invite writers to an order.
// At least one writer is required and every identifier must be valid.
func NewInviteWritersCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	writerIDs []kernel.UUID,
) (InviteWritersCommand, error) {
	cmd := InviteWritersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setWriterIDs(writerIDs),
	); err != nil {
		return InviteWritersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrInviteWritersCommandIsNotConstructed if validation fails.
func (c InviteWritersCommand) Validate() error {
	return c.guard.Validate(ErrInviteWritersCommandIsNotConstructed)
}

// OrderID returns the order the writers are invited to.
func (c InviteWritersCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the inviting admin.
func (c InviteWritersCommand) ActorID() kernel.UUID {
	return c.actorID
}

// WriterIDs returns the writers to invite.
func (c InviteWritersCommand) WriterIDs() []kernel.UUID {
	return c.writerIDs
}

func (c *InviteWritersCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *InviteWritersCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *InviteWritersCommand) setWriterIDs(writerIDs []kernel.UUID) error {
	if len(writerIDs) == 0 {
		return errs.NewValueIsRequiredError("writerIDs")
	}
	for _, writerID := range writerIDs {
		if err := writerID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("writerIDs", err)
		}
	}

	c.writerIDs = writerIDs
	return nil
}
