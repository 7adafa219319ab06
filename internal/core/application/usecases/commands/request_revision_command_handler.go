package commands

import (
	"context"
	"fmt"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/ports"
)

// RequestRevisionCommandHandler sends the order's newest submission back to
// the writer and moves the order to "Revision". The work code and the writer
// assignment stay as they are; the same writer reworks the order.
type RequestRevisionCommandHandler struct {
	uowFactory QCUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewRequestRevisionCommandHandler creates a handler for revision requests.
func NewRequestRevisionCommandHandler(
	uowFactory QCUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) RequestRevisionCommandHandler {
	return RequestRevisionCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the revision request.
func (h RequestRevisionCommandHandler) Handle(ctx context.Context, cmd RequestRevisionCommand) error {
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

	sub, err := loadLatestSubmission(ctx, uow, cmd.SubmissionID())
	if err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, sub.OrderID())
	if err != nil {
		return err
	}

	before := ord.Status().String()
	if err = ord.RequestRevision(user.Role); err != nil {
		return err
	}
	if err = sub.RequestRevision(cmd.Note()); err != nil {
		return err
	}

	if err = uow.SubmissionRepository().Update(ctx, sub); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	event, err := audit.NewEvent(
		cmd.ActorID(), user.Role,
		audit.ActionRevisionRequested, audit.ResourceSubmission, sub.ID(), ord.ID(),
		before, ord.Status().String(),
		fmt.Sprintf("submission for order %s sent back for revision", ord.QueryCode()),
		audit.NewRecipient(sub.WriterID(),
			fmt.Sprintf("order %s needs rework: %s", ord.QueryCode(), cmd.Note())),
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
