package commands

import (
	"context"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/services"
	"writedesk/internal/core/ports"
)

// ReassignWriterCommandHandler replaces the order's current writer with
// another interested writer in one transaction. The displaced writer's row
// moves to Released and both writers are notified.
type ReassignWriterCommandHandler struct {
	uowFactory RecruitmentUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewReassignWriterCommandHandler creates a handler for writer reassignment.
func NewReassignWriterCommandHandler(
	uowFactory RecruitmentUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) ReassignWriterCommandHandler {
	return ReassignWriterCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the reassignment command.
// Unlike a plain assignment the order must currently have a writer; use
// AssignWriter for the first assignment. Returns ErrNoAssignedWriter when
// there is nobody to replace.
func (h ReassignWriterCommandHandler) Handle(ctx context.Context, cmd ReassignWriterCommand) error {
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

	if ord.AssignedWriter() == nil {
		return ErrNoAssignedWriter
	}

	interestRepo := uow.InterestRepository()
	target, err := interestRepo.GetByOrderAndWriter(ctx, cmd.OrderID(), cmd.NewWriterID())
	if err != nil {
		return err
	}

	others, err := interestRepo.ListByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	before := ord.Status().String()
	released, err := services.NewAssignmentService().Assign(user.Role, ord, target, others)
	if err != nil {
		return err
	}

	if err = interestRepo.Update(ctx, target); err != nil {
		return err
	}
	for _, row := range released {
		if err = interestRepo.Update(ctx, row); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	if err = stageAssignmentEvent(uow, cmd.ActorID(), user.Role,
		audit.ActionWriterReassigned, ord, target, released, before); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, uow.StagedEvents()...)

	return nil
}
