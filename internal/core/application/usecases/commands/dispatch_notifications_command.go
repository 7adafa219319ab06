package commands

import (
	"errors"

	"writedesk/internal/pkg/errs"
	"writedesk/internal/pkg/guard"
)

var ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
	"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
)

// maxDispatchLimit caps one push round; larger batches starve other work on
// the inbox table.
const maxDispatchLimit = 10000

// DispatchNotificationsCommand represents one push round over the inbox:
// notifications that never reached their user are re-sent through the
// notification gateway, oldest first, up to the batch limit.
type DispatchNotificationsCommand struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand creates a command for one push round.
func NewDispatchNotificationsCommand(limit int) (DispatchNotificationsCommand, error) {
	cmd := DispatchNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setLimit(limit); err != nil {
		return DispatchNotificationsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchNotificationsCommandIsNotConstructed if validation fails.
func (c DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}

// Limit returns the batch size for the round.
func (c DispatchNotificationsCommand) Limit() int {
	return c.limit
}

func (c *DispatchNotificationsCommand) setLimit(limit int) error {
	if limit < 1 || limit > maxDispatchLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, maxDispatchLimit)
	}

	c.limit = limit
	return nil
}
