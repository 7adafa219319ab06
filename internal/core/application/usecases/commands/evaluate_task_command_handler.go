package commands

import (
	"context"
	"fmt"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/recruitment"
	"writedesk/internal/core/ports"
	"writedesk/internal/pkg/errs"
)

// EvaluateTaskCommandHandler records the assigned writer's verdict on their
// order. One verdict per assignment; a reassignment resets it.
type EvaluateTaskCommandHandler struct {
	uowFactory RecruitmentUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewEvaluateTaskCommandHandler creates a handler for task evaluations.
func NewEvaluateTaskCommandHandler(
	uowFactory RecruitmentUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) EvaluateTaskCommandHandler {
	return EvaluateTaskCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the evaluation command.
// A not-doable verdict notifies the client and the BDE so they can react
// before the deadline; a doable verdict only lands in the trail.
func (h EvaluateTaskCommandHandler) Handle(ctx context.Context, cmd EvaluateTaskCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := resolveActor(ctx, h.identity, cmd.ActorID())
	if err != nil {
		return err
	}

	target := recruitment.VerdictDoable
	if !cmd.Doable() {
		target = recruitment.VerdictNotDoable
	}

	if user.Role != kernel.RoleWriter {
		return errs.NewInvalidTransitionError(user.Role.String(),
			recruitment.VerdictPending.String(), target.String())
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

	if err = ensureOrderOpen(user.Role, ord, target.String()); err != nil {
		return err
	}

	row, err := uow.InterestRepository().GetByOrderAndWriter(ctx, cmd.OrderID(), cmd.ActorID())
	if err != nil {
		return err
	}

	if err = row.RecordVerdict(cmd.Doable(), cmd.Note()); err != nil {
		return err
	}

	if err = uow.InterestRepository().Update(ctx, row); err != nil {
		return err
	}

	var recipients []audit.Recipient
	if !cmd.Doable() {
		recipients = append(recipients, audit.NewRecipient(ord.ClientID(),
			fmt.Sprintf("the writer flagged order %s as not doable", ord.QueryCode())))
		if ord.BDE() != nil {
			recipients = append(recipients, audit.NewRecipient(*ord.BDE(),
				fmt.Sprintf("the writer flagged order %s as not doable", ord.QueryCode())))
		}
	}

	event, err := audit.NewEvent(
		cmd.ActorID(), user.Role,
		audit.ActionTaskEvaluated, audit.ResourceWriterInterest, row.ID(), ord.ID(),
		recruitment.VerdictPending.String(), row.Verdict().String(),
		fmt.Sprintf("writer evaluated order %s as %s", ord.QueryCode(), row.Verdict()),
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
