package commands

import (
	"context"
	"fmt"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/recruitment"
	"writedesk/internal/core/ports"
	"writedesk/internal/pkg/errs"
)

// DeclineInvitationCommandHandler records that an invited writer turned an
// order down. Only rows still in Invited can be declined.
type DeclineInvitationCommandHandler struct {
	uowFactory RecruitmentUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewDeclineInvitationCommandHandler creates a handler for declines.
func NewDeclineInvitationCommandHandler(
	uowFactory RecruitmentUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) DeclineInvitationCommandHandler {
	return DeclineInvitationCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the decline command.
func (h DeclineInvitationCommandHandler) Handle(ctx context.Context, cmd DeclineInvitationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := resolveActor(ctx, h.identity, cmd.ActorID())
	if err != nil {
		return err
	}

	if user.Role != kernel.RoleWriter {
		return errs.NewInvalidTransitionError(user.Role.String(),
			recruitment.StateInvited.String(), recruitment.StateRejected.String())
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

	if err = ensureOrderOpen(user.Role, ord, recruitment.StateRejected.String()); err != nil {
		return err
	}

	row, err := uow.InterestRepository().GetByOrderAndWriter(ctx, cmd.OrderID(), cmd.ActorID())
	if err != nil {
		return err
	}

	before := row.State().String()
	if err = row.Decline(cmd.Reason()); err != nil {
		return err
	}

	if err = uow.InterestRepository().Update(ctx, row); err != nil {
		return err
	}

	var recipients []audit.Recipient
	if ord.BDE() != nil {
		recipients = append(recipients, audit.NewRecipient(*ord.BDE(), ""))
	}

	event, err := audit.NewEvent(
		cmd.ActorID(), user.Role,
		audit.ActionInvitationDeclined, audit.ResourceWriterInterest, row.ID(), ord.ID(),
		before, row.State().String(),
		fmt.Sprintf("writer declined the invitation to order %s", ord.QueryCode()),
		recipients...,
	)
	if err != nil {
		return err
	}
	uow.StageEvent(event)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, uow.StagedEvents()...)

	return nil
}
