package commands

import (
	"context"
	"errors"
	"fmt"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/recruitment"
	"writedesk/internal/core/ports"
	"writedesk/internal/pkg/errs"
)

// InviteWritersCommandHandler offers an order to a batch of writers.
// Each (order, writer) pair is upserted: unknown writers get a fresh Invited
// row, writers whose previous round ended in Rejected, Revoked or Released are
// re-invited, everyone else is skipped. Only newly invited writers are
// notified.
type InviteWritersCommandHandler struct {
	uowFactory RecruitmentUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewInviteWritersCommandHandler creates a handler for writer invitations.
func NewInviteWritersCommandHandler(
	uowFactory RecruitmentUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) InviteWritersCommandHandler {
	return InviteWritersCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the invitation command.
// Every invitee must be a known, active writer; one bad identifier fails the
// whole batch before anything is written. When every pair turns out to be a
// no-op, no event is staged and nobody is notified.
func (h InviteWritersCommandHandler) Handle(ctx context.Context, cmd InviteWritersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := resolveActor(ctx, h.identity, cmd.ActorID())
	if err != nil {
		return err
	}

	if user.Role != kernel.RoleAdmin {
		return errs.NewInvalidTransitionError(user.Role.String(),
			recruitment.StateUnknown.String(), recruitment.StateInvited.String())
	}

	for _, writerID := range cmd.WriterIDs() {
		invitee, err := h.identity.GetUser(ctx, writerID)
		if err != nil {
			return err
		}
		if invitee.Role != kernel.RoleWriter || !invitee.IsActive {
			return errs.NewValueIsInvalidErrorWithCause("writerIDs",
				fmt.Errorf("user %s is not an active writer", writerID))
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ensureOrderOpen(user.Role, ord, recruitment.StateInvited.String()); err != nil {
		return err
	}

	invited, err := h.upsertInvitations(ctx, uow, cmd)
	if err != nil {
		return err
	}

	if len(invited) > 0 {
		recipients := make([]audit.Recipient, 0, len(invited))
		for _, writerID := range invited {
			recipients = append(recipients, audit.NewRecipient(writerID,
				fmt.Sprintf("you are invited to take order %s: %s", ord.QueryCode(), ord.Topic())))
		}

		event, err := audit.NewEvent(
			cmd.ActorID(), user.Role,
			audit.ActionWritersInvited, audit.ResourceOrder, ord.ID(), ord.ID(),
			"", recruitment.StateInvited.String(),
			fmt.Sprintf("%d writer(s) invited to order %s", len(invited), ord.QueryCode()),
			recipients...,
		)
		if err != nil {
			return err
		}
		uow.StageEvent(event)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, uow.StagedEvents()...)

	return nil
}

// upsertInvitations walks the batch and returns the writers who actually
// ended up with a fresh invitation.
func (h InviteWritersCommandHandler) upsertInvitations(
	ctx context.Context,
	uow RecruitmentUoW,
	cmd InviteWritersCommand,
) ([]kernel.UUID, error) {
	interestRepo := uow.InterestRepository()
	invited := make([]kernel.UUID, 0, len(cmd.WriterIDs()))

	for _, writerID := range cmd.WriterIDs() {
		row, err := interestRepo.GetByOrderAndWriter(ctx, cmd.OrderID(), writerID)
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			row, err = recruitment.NewInvitation(kernel.NewUUID(), cmd.OrderID(), writerID)
			if err != nil {
				return nil, err
			}
			if err = interestRepo.Add(ctx, row); err != nil {
				return nil, err
			}
			invited = append(invited, writerID)
		case err != nil:
			return nil, err
		case row.State().IsReinvitable():
			if err = row.Reinvite(); err != nil {
				return nil, err
			}
			if err = interestRepo.Update(ctx, row); err != nil {
				return nil, err
			}
			invited = append(invited, writerID)
		default:
			// Invited, Interested, Accepted and Assigned rows stay as they are.
		}
	}

	return invited, nil
}
