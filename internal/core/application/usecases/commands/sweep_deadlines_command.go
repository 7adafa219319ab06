package commands

import (
	"errors"
	"fmt"
	"time"

	"writedesk/internal/pkg/errs"
	"writedesk/internal/pkg/guard"
)

var ErrSweepDeadlinesCommandIsNotConstructed = errors.New(
	"SweepDeadlinesCommand must be created via NewSweepDeadlinesCommand constructor",
)

// SweepDeadlinesCommand represents one pass of the deadline watch. Orders
// still being worked whose deadline falls inside the look-ahead window are
// flagged and their participants warned, once per order.
type SweepDeadlinesCommand struct { //nolint:recvcheck //using for validation
	window time.Duration

	guard guard.ConstructorGuard
}

// NewSweepDeadlinesCommand creates a command for one deadline sweep.
// A zero window flags only orders already past their deadline; a positive
// window warns that far ahead.
func NewSweepDeadlinesCommand(window time.Duration) (SweepDeadlinesCommand, error) {
	cmd := SweepDeadlinesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setWindow(window); err != nil {
		return SweepDeadlinesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSweepDeadlinesCommandIsNotConstructed if validation fails.
func (c SweepDeadlinesCommand) Validate() error {
	return c.guard.Validate(ErrSweepDeadlinesCommandIsNotConstructed)
}

// Window returns the look-ahead window.
func (c SweepDeadlinesCommand) Window() time.Duration {
	return c.window
}

func (c *SweepDeadlinesCommand) setWindow(window time.Duration) error {
	if window < 0 {
		return errs.NewValueIsInvalidErrorWithCause("window",
			fmt.Errorf("%s is negative", window))
	}

	c.window = window
	return nil
}
