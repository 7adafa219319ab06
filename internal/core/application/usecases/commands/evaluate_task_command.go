package commands

import (
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/guard"
)

var ErrEvaluateTaskCommandIsNotConstructed = errors.New(
	"EvaluateTaskCommand must be created via NewEvaluateTaskCommand constructor",
)

// EvaluateTaskCommand represents the assigned writer's verdict on whether the
// task is doable. A not-doable verdict warns the client and the BDE early,
// before the deadline burns down.
type EvaluateTaskCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	doable  bool
	note    string

	guard guard.ConstructorGuard
}

// NewEvaluateTaskCommand creates a command to record a task evaluation.
// The note is optional; it carries the writer's reasoning.
func NewEvaluateTaskCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	doable bool,
	note string,
) (EvaluateTaskCommand, error) {
	cmd := EvaluateTaskCommand{
		doable: doable,
		note:   note,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return EvaluateTaskCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEvaluateTaskCommandIsNotConstructed if validation fails.
func (c EvaluateTaskCommand) Validate() error {
	return c.guard.Validate(ErrEvaluateTaskCommandIsNotConstructed)
}

// OrderID returns the order being evaluated.
func (c EvaluateTaskCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the evaluating writer.
func (c EvaluateTaskCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Doable returns the writer's verdict.
func (c EvaluateTaskCommand) Doable() bool {
	return c.doable
}

// Note returns the writer's reasoning, possibly empty.
func (c EvaluateTaskCommand) Note() string {
	return c.note
}

func (c *EvaluateTaskCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EvaluateTaskCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
