package commands

import (
	"context"
	"fmt"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/billing"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/ports"
	"writedesk/internal/pkg/errs"
)

// RejectPaymentCommandHandler marks a reported payment as not found.
// The order is never touched; the payer is told why.
type RejectPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewRejectPaymentCommandHandler creates a handler for payment rejection.
func NewRejectPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) RejectPaymentCommandHandler {
	return RejectPaymentCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the rejection command.
func (h RejectPaymentCommandHandler) Handle(ctx context.Context, cmd RejectPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := resolveActor(ctx, h.identity, cmd.ActorID())
	if err != nil {
		return err
	}

	if user.Role != kernel.RoleAdmin {
		return errs.NewInvalidTransitionError(user.Role.String(),
			billing.PaymentStatePending.String(), billing.PaymentStateRejected.String())
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	payment, err := uow.PaymentRepository().Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, payment.OrderID())
	if err != nil {
		return err
	}

	if err = payment.Reject(cmd.Reason()); err != nil {
		return err
	}

	if err = uow.PaymentRepository().Update(ctx, payment); err != nil {
		return err
	}

	event, err := audit.NewEvent(
		cmd.ActorID(), user.Role,
		audit.ActionPaymentRejected, audit.ResourcePayment, payment.ID(), ord.ID(),
		billing.PaymentStatePending.String(), payment.State().String(),
		fmt.Sprintf("payment of %s for order %s rejected: %s",
			payment.Amount(), ord.QueryCode(), payment.RejectReason()),
		audit.NewRecipient(ord.ClientID(), ""),
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
