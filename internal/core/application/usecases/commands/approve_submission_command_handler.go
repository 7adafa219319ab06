package commands

import (
	"context"
	"fmt"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/submission"
	"writedesk/internal/core/ports"
	"writedesk/internal/pkg/errs"
)

// ApproveSubmissionCommandHandler accepts a submission and moves the order to
// "Approved". Approving anything but the order's newest submission is a
// conflict; the reviewer is looking at stale work.
type ApproveSubmissionCommandHandler struct {
	uowFactory QCUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewApproveSubmissionCommandHandler creates a handler for submission approval.
func NewApproveSubmissionCommandHandler(
	uowFactory QCUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) ApproveSubmissionCommandHandler {
	return ApproveSubmissionCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the approval command.
func (h ApproveSubmissionCommandHandler) Handle(ctx context.Context, cmd ApproveSubmissionCommand) error {
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
	if err = ord.ApproveWork(user.Role); err != nil {
		return err
	}
	if err = sub.Approve(); err != nil {
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
		audit.ActionSubmissionApproved, audit.ResourceSubmission, sub.ID(), ord.ID(),
		before, ord.Status().String(),
		fmt.Sprintf("submission for order %s passed quality control", ord.QueryCode()),
		audit.NewRecipient(sub.WriterID(),
			fmt.Sprintf("your work for order %s passed quality control", ord.QueryCode())),
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

// loadLatestSubmission fetches the submission and rejects it when a newer one
// exists for the same order. Quality control always reviews the newest
// hand-in.
func loadLatestSubmission(
	ctx context.Context,
	uow QCUoW,
	submissionID kernel.UUID,
) (*submission.Submission, error) {
	sub, err := uow.SubmissionRepository().Get(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	latest, err := uow.SubmissionRepository().GetLatestByOrder(ctx, sub.OrderID())
	if err != nil {
		return nil, err
	}
	if !latest.IsEqual(sub) {
		return nil, errs.NewConflictErrorWithCause("submission", sub.ID().String(),
			fmt.Errorf("a newer submission exists for order %s", sub.OrderID()))
	}

	return sub, nil
}
