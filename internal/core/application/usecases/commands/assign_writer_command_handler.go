package commands

import (
	"context"
	"fmt"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/order"
	"writedesk/internal/core/domain/model/recruitment"
	"writedesk/internal/core/domain/services"
	"writedesk/internal/core/ports"
)

// AssignWriterCommandHandler staffs an order with a writer who showed
// interest. The assignment domain service releases any other writer still
// holding the order, so at most one row per order is Assigned. Concurrent
// assigns are settled by the store: the first commit wins, the loser gets a
// conflict.
type AssignWriterCommandHandler struct {
	uowFactory RecruitmentUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewAssignWriterCommandHandler creates a handler for writer assignment.
func NewAssignWriterCommandHandler(
	uowFactory RecruitmentUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) AssignWriterCommandHandler {
	return AssignWriterCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the assignment command.
// Loads the target row and every other row of the order, lets the assignment
// service settle who holds the order, and persists all touched rows plus the
// order in one transaction.
func (h AssignWriterCommandHandler) Handle(ctx context.Context, cmd AssignWriterCommand) error {
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

	interestRepo := uow.InterestRepository()
	target, err := interestRepo.GetByOrderAndWriter(ctx, cmd.OrderID(), cmd.WriterID())
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
		audit.ActionWriterAssigned, ord, target, released, before); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, uow.StagedEvents()...)

	return nil
}

// stageAssignmentEvent builds the trail event shared by assignment and
// reassignment: the new writer hears they got the order, displaced writers
// hear they lost it.
func stageAssignmentEvent(
	uow RecruitmentUoW,
	actorID kernel.UUID,
	role kernel.Role,
	action audit.Action,
	ord *order.Order,
	target *recruitment.WriterInterest,
	released []*recruitment.WriterInterest,
	before string,
) error {
	recipients := []audit.Recipient{
		audit.NewRecipient(target.WriterID(),
			fmt.Sprintf("order %s is yours: %s", ord.QueryCode(), ord.Topic())),
	}
	for _, row := range released {
		recipients = append(recipients, audit.NewRecipient(row.WriterID(),
			fmt.Sprintf("order %s was handed to another writer", ord.QueryCode())))
	}

	event, err := audit.NewEvent(
		actorID, role,
		action, audit.ResourceWriterInterest, target.ID(), ord.ID(),
		before, ord.Status().String(),
		fmt.Sprintf("writer assigned to order %s", ord.QueryCode()),
		recipients...,
	)
	if err != nil {
		return err
	}
	uow.StageEvent(event)

	return nil
}
