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

// RecordPaymentCommandHandler registers a client-reported payment.
// Recording never changes the order; only a later full verification does.
type RecordPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewRecordPaymentCommandHandler creates a handler for payment reporting.
func NewRecordPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the payment reporting command.
// Clients may only report against their own orders; admins may report on a
// client's behalf. Closed orders take no further payments.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := resolveActor(ctx, h.identity, cmd.ActorID())
	if err != nil {
		return err
	}

	if user.Role != kernel.RoleClient && user.Role != kernel.RoleAdmin {
		return errs.NewInvalidTransitionError(user.Role.String(),
			billing.PaymentStateUnknown.String(), billing.PaymentStatePending.String())
	}

	amount, err := kernel.NewMoney(cmd.AmountCents())
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

	if user.Role == kernel.RoleClient && !cmd.ActorID().IsEqual(ord.ClientID()) {
		return errs.NewInvalidTransitionErrorWithCause(
			user.Role.String(), billing.PaymentStateUnknown.String(),
			billing.PaymentStatePending.String(),
			fmt.Errorf("actor does not own the order"))
	}

	if err = ensureOrderOpen(user.Role, ord, billing.PaymentStatePending.String()); err != nil {
		return err
	}

	payment, err := billing.NewPayment(cmd.PaymentID(), cmd.OrderID(), amount)
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, payment); err != nil {
		return err
	}

	event, err := audit.NewEvent(
		cmd.ActorID(), user.Role,
		audit.ActionPaymentRecorded, audit.ResourcePayment, payment.ID(), ord.ID(),
		"", payment.State().String(),
		fmt.Sprintf("payment of %s reported for order %s, awaiting verification",
			payment.Amount(), ord.QueryCode()),
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
