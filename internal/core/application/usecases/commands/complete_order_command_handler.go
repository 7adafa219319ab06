package commands

import (
	"context"
	"errors"
	"fmt"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/submission"
	"writedesk/internal/core/ports"
	"writedesk/internal/pkg/errs"
)

// CompleteOrderCommandHandler closes a delivered order. The approved
// submission is closed with it so both records agree the work is done.
// Completion is terminal; every later workflow call on the order fails.
type CompleteOrderCommandHandler struct {
	uowFactory QCUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	uowFactory QCUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the completion command.
// The order aggregate enforces the transition and, for clients, ownership.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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
	if err = ord.Complete(cmd.ActorID(), user.Role); err != nil {
		return err
	}

	if err = h.completeLatestSubmission(ctx, uow, ord.ID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	var recipients []audit.Recipient
	if ord.AssignedWriter() != nil {
		recipients = append(recipients, audit.NewRecipient(*ord.AssignedWriter(),
			fmt.Sprintf("order %s was completed by the client", ord.QueryCode())))
	}
	if ord.BDE() != nil {
		recipients = append(recipients, audit.NewRecipient(*ord.BDE(), ""))
	}

	event, err := audit.NewEvent(
		cmd.ActorID(), user.Role,
		audit.ActionOrderCompleted, audit.ResourceOrder, ord.ID(), ord.ID(),
		before, ord.Status().String(),
		fmt.Sprintf("order %s completed", ord.QueryCode()),
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

// completeLatestSubmission closes the order's approved submission. An order
// can only reach "Delivered" through an approval, so a missing submission is
// tolerated rather than invented as an error.
func (h CompleteOrderCommandHandler) completeLatestSubmission(
	ctx context.Context,
	uow QCUoW,
	orderID kernel.UUID,
) error {
	sub, err := uow.SubmissionRepository().GetLatestByOrder(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if sub.State() != submission.QCStateApproved {
		return nil
	}
	if err = sub.Complete(); err != nil {
		return err
	}

	return uow.SubmissionRepository().Update(ctx, sub)
}
