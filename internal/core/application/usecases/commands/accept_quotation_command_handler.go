package commands

import (
	"context"
	"fmt"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/ports"
)

// AcceptQuotationCommandHandler moves a quoted order into "Accepted".
// Only the order's own client may accept; an admin may accept on the
// client's behalf, which the transition table already permits.
type AcceptQuotationCommandHandler struct {
	uowFactory OrderUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewAcceptQuotationCommandHandler creates a handler for quotation acceptance.
func NewAcceptQuotationCommandHandler(
	uowFactory OrderUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) AcceptQuotationCommandHandler {
	return AcceptQuotationCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the acceptance command.
// The order aggregate enforces both the transition and, for clients, that the
// actor owns the order.
func (h AcceptQuotationCommandHandler) Handle(ctx context.Context, cmd AcceptQuotationCommand) error {
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
	if err = ord.AcceptQuotation(cmd.ActorID(), user.Role); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	recipients := []audit.Recipient{audit.NewRecipient(ord.ClientID(), "")}
	if ord.BDE() != nil {
		recipients = append(recipients, audit.NewRecipient(*ord.BDE(), ""))
	}

	event, err := audit.NewEvent(
		cmd.ActorID(), user.Role,
		audit.ActionQuotationAccepted, audit.ResourceOrder, ord.ID(), ord.ID(),
		before, ord.Status().String(),
		fmt.Sprintf("quotation for order %s accepted, awaiting payment", ord.QueryCode()),
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
