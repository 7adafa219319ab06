package commands

import (
	"context"
	"errors"
	"fmt"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/billing"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/order"
	"writedesk/internal/core/ports"
	"writedesk/internal/pkg/errs"
)

// maxWorkCodeAttempts bounds how often a colliding work code is regenerated
// before the verification gives up.
const maxWorkCodeAttempts = 3

// VerifyPaymentCommandHandler confirms a reported payment. A verification at
// the full percentage opens the payment gate: the order gets a freshly minted
// work code and moves to "Confirmed" in the same transaction. If the order
// already carries a work code the payment still verifies and the order stays
// untouched, so re-running a verification is safe.
type VerifyPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewVerifyPaymentCommandHandler creates a handler for payment verification.
func NewVerifyPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) VerifyPaymentCommandHandler {
	return VerifyPaymentCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the verification command.
// Work codes are random, so a unique-index collision is possible. The whole
// transaction is retried with a fresh code a bounded number of times; any
// other failure surfaces immediately.
func (h VerifyPaymentCommandHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := resolveActor(ctx, h.identity, cmd.ActorID())
	if err != nil {
		return err
	}

	if user.Role != kernel.RoleAdmin {
		return errs.NewInvalidTransitionError(user.Role.String(),
			billing.PaymentStatePending.String(), billing.PaymentStateVerified.String())
	}

	var lastErr error
	for attempt := 0; attempt < maxWorkCodeAttempts; attempt++ {
		lastErr = h.verifyOnce(ctx, cmd, user)
		if !errors.Is(lastErr, ports.ErrDuplicateWorkCode) {
			return lastErr
		}
	}

	return lastErr
}

// verifyOnce runs one complete verification transaction and dispatches its
// events on success.
func (h VerifyPaymentCommandHandler) verifyOnce(
	ctx context.Context,
	cmd VerifyPaymentCommand,
	user ports.User,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	if err = payment.Verify(cmd.Percent()); err != nil {
		return err
	}

	if err = uow.PaymentRepository().Update(ctx, payment); err != nil {
		return err
	}

	event, err := audit.NewEvent(
		cmd.ActorID(), user.Role,
		audit.ActionPaymentVerified, audit.ResourcePayment, payment.ID(), ord.ID(),
		billing.PaymentStatePending.String(), payment.State().String(),
		fmt.Sprintf("payment of %s verified at %d%% for order %s",
			payment.Amount(), payment.VerifiedPercent(), ord.QueryCode()),
		audit.NewRecipient(ord.ClientID(), ""),
	)
	if err != nil {
		return err
	}
	uow.StageEvent(event)

	if payment.IsFullyVerified() && !ord.HasWorkCode() {
		if err = h.openPaymentGate(ctx, uow, cmd, user, ord); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, uow.StagedEvents()...)

	return nil
}

// openPaymentGate mints a work code and confirms the order.
func (h VerifyPaymentCommandHandler) openPaymentGate(
	ctx context.Context,
	uow PaymentUoW,
	cmd VerifyPaymentCommand,
	user ports.User,
	ord *order.Order,
) error {
	workCode := kernel.GenerateWorkCode()

	before := ord.Status().String()
	if err := ord.ConfirmPayment(user.Role, workCode); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	recipients := []audit.Recipient{audit.NewRecipient(ord.ClientID(), "")}
	if ord.BDE() != nil {
		recipients = append(recipients, audit.NewRecipient(*ord.BDE(), ""))
	}

	event, err := audit.NewEvent(
		cmd.ActorID(), user.Role,
		audit.ActionOrderConfirmed, audit.ResourceOrder, ord.ID(), ord.ID(),
		before, ord.Status().String(),
		fmt.Sprintf("payment gate opened for order %s, work code %s issued",
			ord.QueryCode(), workCode),
		recipients...,
	)
	if err != nil {
		return err
	}
	uow.StageEvent(event)

	return nil
}
