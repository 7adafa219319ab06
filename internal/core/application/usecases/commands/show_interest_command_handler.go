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

// ShowInterestCommandHandler records that a writer wants an order.
// An invited writer's row moves to Interested; a writer who was never invited
// gets a fresh open Interested row. A second click returns the duplicate
// conflict instead of silently succeeding.
type ShowInterestCommandHandler struct {
	uowFactory RecruitmentUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewShowInterestCommandHandler creates a handler for interest declarations.
func NewShowInterestCommandHandler(
	uowFactory RecruitmentUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) ShowInterestCommandHandler {
	return ShowInterestCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the interest command.
func (h ShowInterestCommandHandler) Handle(ctx context.Context, cmd ShowInterestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := resolveActor(ctx, h.identity, cmd.ActorID())
	if err != nil {
		return err
	}

	if user.Role != kernel.RoleWriter {
		return errs.NewInvalidTransitionError(user.Role.String(),
			recruitment.StateInvited.String(), recruitment.StateInterested.String())
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

	if err = ensureOrderOpen(user.Role, ord, recruitment.StateInterested.String()); err != nil {
		return err
	}

	interestRepo := uow.InterestRepository()
	before := ""
	row, err := interestRepo.GetByOrderAndWriter(ctx, cmd.OrderID(), cmd.ActorID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		row, err = recruitment.NewOpenInterest(kernel.NewUUID(), cmd.OrderID(), cmd.ActorID())
		if err != nil {
			return err
		}
		if err = interestRepo.Add(ctx, row); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		before = row.State().String()
		if err = row.ShowInterest(); err != nil {
			return err
		}
		if err = interestRepo.Update(ctx, row); err != nil {
			return err
		}
	}

	var recipients []audit.Recipient
	if ord.BDE() != nil {
		recipients = append(recipients, audit.NewRecipient(*ord.BDE(), ""))
	}

	event, err := audit.NewEvent(
		cmd.ActorID(), user.Role,
		audit.ActionInterestShown, audit.ResourceWriterInterest, row.ID(), ord.ID(),
		before, row.State().String(),
		fmt.Sprintf("writer showed interest in order %s", ord.QueryCode()),
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
