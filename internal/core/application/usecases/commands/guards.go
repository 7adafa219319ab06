package commands

import (
	"context"
	"errors"
	"fmt"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/order"
	"writedesk/internal/core/ports"
	"writedesk/internal/pkg/errs"
)

// ErrOrderClosed marks operations attempted against an order in a terminal
// status. It is wrapped into an InvalidTransitionError so the cause survives.
var ErrOrderClosed = errors.New("order is closed")

// resolveActor fetches the acting user from the identity service and rejects
// deactivated accounts. Every command resolves its actor this way before
// touching the workflow.
func resolveActor(ctx context.Context, identity ports.IdentityProvider, actorID kernel.UUID) (ports.User, error) {
	user, err := identity.GetUser(ctx, actorID)
	if err != nil {
		return ports.User{}, err
	}
	if !user.IsActive {
		return ports.User{}, errs.NewValueIsInvalidErrorWithCause("actor",
			fmt.Errorf("user %s is deactivated", actorID))
	}
	return user, nil
}

// ensureOrderOpen rejects operations against orders that reached a terminal
// status. Used by operations that do not themselves move the order through
// the transition table, such as recording payments or recruiting writers.
// The target names the state the caller was after, for the error message.
func ensureOrderOpen(role kernel.Role, ord *order.Order, target string) error {
	if ord.Status().IsTerminal() {
		return errs.NewInvalidTransitionErrorWithCause(role.String(),
			ord.Status().String(), target, ErrOrderClosed)
	}
	return nil
}
