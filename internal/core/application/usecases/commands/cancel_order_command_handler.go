package commands

import (
	"context"
	"fmt"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/ports"
)

// CancelOrderCommandHandler withdraws an order. The transition table decides
// who may cancel from which status; cancellation is terminal.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the cancellation command.
// Everyone involved with the order hears about it: the client, the assigned
// writer and the BDE.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	if err = ord.Cancel(cmd.ActorID(), user.Role); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	message := fmt.Sprintf("order %s cancelled", ord.QueryCode())
	if cmd.Reason() != "" {
		message = fmt.Sprintf("order %s cancelled: %s", ord.QueryCode(), cmd.Reason())
	}

	recipients := []audit.Recipient{audit.NewRecipient(ord.ClientID(), "")}
	if ord.AssignedWriter() != nil {
		recipients = append(recipients, audit.NewRecipient(*ord.AssignedWriter(), ""))
	}
	if ord.BDE() != nil {
		recipients = append(recipients, audit.NewRecipient(*ord.BDE(), ""))
	}

	event, err := audit.NewEvent(
		cmd.ActorID(), user.Role,
		audit.ActionOrderCancelled, audit.ResourceOrder, ord.ID(), ord.ID(),
		before, ord.Status().String(),
		message,
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
