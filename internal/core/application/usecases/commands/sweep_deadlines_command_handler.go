package commands

import (
	"context"
	"fmt"
	"time"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/order"
)

// SweepDeadlinesCommandHandler flags active orders whose deadline is close or
// already gone and warns the client and the assigned writer. Each order is
// flagged once; later sweeps skip it. Runs from the deadline sweep job, so
// events carry the system role instead of a person.
type SweepDeadlinesCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher EventDispatcher
}

// NewSweepDeadlinesCommandHandler creates a handler for deadline sweeps.
func NewSweepDeadlinesCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher EventDispatcher,
) SweepDeadlinesCommandHandler {
	return SweepDeadlinesCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes one sweep.
// All flagged orders commit in one transaction; the warnings fan out after.
func (h SweepDeadlinesCommandHandler) Handle(ctx context.Context, cmd SweepDeadlinesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()
	orders, err := uow.OrderRepository().ListApproachingDeadline(ctx, now.Add(cmd.Window()))
	if err != nil {
		return err
	}

	for _, ord := range orders {
		if err = ord.MarkDeadlineAlerted(); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, ord); err != nil {
			return err
		}

		event, err := buildDeadlineEvent(ord, now)
		if err != nil {
			return err
		}
		uow.StageEvent(event)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, uow.StagedEvents()...)

	return nil
}

// buildDeadlineEvent words the warning depending on whether the deadline is
// still ahead or already missed.
func buildDeadlineEvent(ord *order.Order, now time.Time) (audit.Event, error) {
	message := fmt.Sprintf("order %s deadline %s is approaching",
		ord.QueryCode(), ord.Deadline().Format(time.RFC3339))
	if ord.Deadline().Before(now) {
		message = fmt.Sprintf("order %s missed its deadline %s",
			ord.QueryCode(), ord.Deadline().Format(time.RFC3339))
	}

	recipients := []audit.Recipient{audit.NewRecipient(ord.ClientID(), "")}
	if ord.AssignedWriter() != nil {
		recipients = append(recipients, audit.NewRecipient(*ord.AssignedWriter(), ""))
	}

	return audit.NewSystemEvent(
		audit.ActionDeadlineAlerted, audit.ResourceOrder, ord.ID(), ord.ID(),
		ord.Status().String(), ord.Status().String(),
		message,
		recipients...,
	)
}
