package commands

import (
	"context"
	"errors"
	"fmt"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/ports"
	"writedesk/internal/pkg/errs"
)

// ErrNoAssignedWriter is returned when an operation expects an order to have
// a writer and it has none.
var ErrNoAssignedWriter = errors.New("order has no assigned writer")

// RevokeWriterCommandHandler takes the current writer off an order.
// The recruitment row moves to Revoked and the order back to "Confirmed",
// waiting for a new assignment.
type RevokeWriterCommandHandler struct {
	uowFactory RecruitmentUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewRevokeWriterCommandHandler creates a handler for writer revocation.
func NewRevokeWriterCommandHandler(
	uowFactory RecruitmentUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) RevokeWriterCommandHandler {
	return RevokeWriterCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the revocation command.
// Returns ErrNoAssignedWriter when the order has nobody to revoke.
func (h RevokeWriterCommandHandler) Handle(ctx context.Context, cmd RevokeWriterCommand) error {
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

	row, err := uow.InterestRepository().GetAssignedByOrder(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoAssignedWriter
	}
	if err != nil {
		return err
	}

	before := ord.Status().String()
	if err = ord.RevokeWriter(user.Role); err != nil {
		return err
	}
	if err = row.Revoke(); err != nil {
		return err
	}

	if err = uow.InterestRepository().Update(ctx, row); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	event, err := audit.NewEvent(
		cmd.ActorID(), user.Role,
		audit.ActionWriterRevoked, audit.ResourceWriterInterest, row.ID(), ord.ID(),
		before, ord.Status().String(),
		fmt.Sprintf("writer taken off order %s", ord.QueryCode()),
		audit.NewRecipient(row.WriterID(),
			fmt.Sprintf("you were taken off order %s", ord.QueryCode())),
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
