package commands

import (
	"context"
	"fmt"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/submission"
	"writedesk/internal/core/ports"
)

// SubmitWorkCommandHandler records handed-in work and moves the order to
// "Submitted". Only the assigned writer may submit; the order aggregate
// enforces that together with the transition table, covering both the first
// hand-in and rework after a revision request.
type SubmitWorkCommandHandler struct {
	uowFactory QCUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewSubmitWorkCommandHandler creates a handler for work submission.
func NewSubmitWorkCommandHandler(
	uowFactory QCUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) SubmitWorkCommandHandler {
	return SubmitWorkCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the submission command.
func (h SubmitWorkCommandHandler) Handle(ctx context.Context, cmd SubmitWorkCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := resolveActor(ctx, h.identity, cmd.ActorID())
	if err != nil {
		return err
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

	before := ord.Status().String()
	if err = ord.SubmitWork(cmd.ActorID(), user.Role); err != nil {
		return err
	}

	sub, err := submission.NewSubmission(
		cmd.SubmissionID(), cmd.OrderID(), cmd.ActorID(), cmd.FileRef(), cmd.Note())
	if err != nil {
		return err
	}

	if err = uow.SubmissionRepository().Add(ctx, sub); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	event, err := audit.NewEvent(
		cmd.ActorID(), user.Role,
		audit.ActionWorkSubmitted, audit.ResourceSubmission, sub.ID(), ord.ID(),
		before, ord.Status().String(),
		fmt.Sprintf("work for order %s handed in, awaiting quality control", ord.QueryCode()),
		audit.NewRecipient(ord.ClientID(),
			fmt.Sprintf("work for your order %s was handed in and is under review", ord.QueryCode())),
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
