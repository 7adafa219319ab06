package commands

import (
	"errors"
	"time"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/order"
	"writedesk/internal/pkg/errs"
	"writedesk/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a client's request to place a new order.
// Encapsulates the work description, the requested turnaround and the
// deadline. The query code is minted by the order itself.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), actorID,
//	    "Essay on distributed consensus", "Computer Science",
//	    order.UrgencyStandard, deadline)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	actorID  kernel.UUID
	topic    string
	subject  string
	urgency  order.Urgency
	deadline time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, requires topic and subject, and checks the urgency.
// The deadline is checked against the clock by the order constructor, not
// here, so a command can be built and inspected without racing the clock.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	topic string,
	subject string,
	urgency order.Urgency,
	deadline time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setTopic(topic),
		cmd.setSubject(subject),
		cmd.setUrgency(urgency),
		cmd.setDeadline(deadline),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the placing client.
func (c CreateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Topic returns the short title of the requested work.
func (c CreateOrderCommand) Topic() string {
	return c.topic
}

// Subject returns the academic subject area.
func (c CreateOrderCommand) Subject() string {
	return c.subject
}

// Urgency returns the requested turnaround.
func (c CreateOrderCommand) Urgency() order.Urgency {
	return c.urgency
}

// Deadline returns when the work is needed.
func (c CreateOrderCommand) Deadline() time.Time {
	return c.deadline
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CreateOrderCommand) setTopic(topic string) error {
	if topic == "" {
		return errs.NewValueIsRequiredError("topic")
	}

	c.topic = topic
	return nil
}

func (c *CreateOrderCommand) setSubject(subject string) error {
	if subject == "" {
		return errs.NewValueIsRequiredError("subject")
	}

	c.subject = subject
	return nil
}

func (c *CreateOrderCommand) setUrgency(urgency order.Urgency) error {
	if err := urgency.Validate(); err != nil {
		return err
	}

	c.urgency = urgency
	return nil
}

func (c *CreateOrderCommand) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("deadline")
	}

	c.deadline = deadline
	return nil
}
