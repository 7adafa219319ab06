package audit

import (
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"
	"writedesk/internal/pkg/guard"
)

// ErrEventIsNotConstructed is returned when an Event was not created through
// NewEvent or NewSystemEvent.
var ErrEventIsNotConstructed = errs.NewValueIsRequiredError(
	"event must be created via NewEvent or NewSystemEvent constructors")

// Recipient names a user who should be notified about an event. An empty
// message means the notification reuses the event's own message.
type Recipient struct {
	id      kernel.UUID
	message string
}

// NewRecipient creates a notification recipient. Pass an empty message to
// reuse the event message for this recipient.
func NewRecipient(id kernel.UUID, message string) Recipient {
	return Recipient{id: id, message: message}
}

// ID returns the recipient's user identifier.
func (r Recipient) ID() kernel.UUID {
	return r.id
}

// Message returns the recipient-specific message, or an empty string when the
// event message applies.
func (r Recipient) Message() string {
	return r.message
}

// Event is an immutable description of one workflow mutation: who did what to
// which resource, the state before and after, and who should hear about it.
// Handlers stage events on the unit of work during a transaction; the
// dispatcher persists them as trail entries and fans them out after commit.
type Event struct {
	actorID      kernel.UUID
	actorRole    kernel.Role
	action       Action
	resourceType ResourceType
	resourceID   kernel.UUID
	orderID      kernel.UUID
	before       string
	after        string
	message      string
	recipients   []Recipient
	guard        guard.ConstructorGuard
}

// NewEvent creates an event on behalf of a human actor. The before and after
// strings are free-form state names and may be empty for creations.
func NewEvent(
	actorID kernel.UUID,
	actorRole kernel.Role,
	action Action,
	resourceType ResourceType,
	resourceID kernel.UUID,
	orderID kernel.UUID,
	before string,
	after string,
	message string,
	recipients ...Recipient,
) (Event, error) {
	event := Event{
		actorID:   actorID,
		actorRole: actorRole,
		before:    before,
		after:     after,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actorID.Validate(),
		actorRole.Validate(),
		event.setAction(action),
		event.setResource(resourceType, resourceID),
		event.setOrderID(orderID),
		event.setMessage(message),
		event.setRecipients(recipients),
	); err != nil {
		return Event{}, err
	}

	return event, nil
}

// NewSystemEvent creates an event raised by a background job. It carries
// RoleSystem and no actor identifier.
func NewSystemEvent(
	action Action,
	resourceType ResourceType,
	resourceID kernel.UUID,
	orderID kernel.UUID,
	before string,
	after string,
	message string,
	recipients ...Recipient,
) (Event, error) {
	event := Event{
		actorRole: kernel.RoleSystem,
		before:    before,
		after:     after,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		event.setAction(action),
		event.setResource(resourceType, resourceID),
		event.setOrderID(orderID),
		event.setMessage(message),
		event.setRecipients(recipients),
	); err != nil {
		return Event{}, err
	}

	return event, nil
}

// Validate checks if the Event was properly constructed using a constructor.
func (e Event) Validate() error {
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// ActorID returns who performed the action. For system events the identifier
// is the zero value and fails kernel.UUID validation; use IsSystem to tell
// the two apart.
func (e Event) ActorID() kernel.UUID {
	return e.actorID
}

// ActorRole returns the role the actor acted from.
func (e Event) ActorRole() kernel.Role {
	return e.actorRole
}

// IsSystem reports whether the event was raised by a background job.
func (e Event) IsSystem() bool {
	return e.actorRole == kernel.RoleSystem
}

// Action returns the verb describing what happened.
func (e Event) Action() Action {
	return e.action
}

// ResourceType returns the kind of resource the event touched.
func (e Event) ResourceType() ResourceType {
	return e.resourceType
}

// ResourceID returns the identifier of the touched resource.
func (e Event) ResourceID() kernel.UUID {
	return e.resourceID
}

// OrderID returns the order the event belongs to. Every workflow event is
// tied to exactly one order.
func (e Event) OrderID() kernel.UUID {
	return e.orderID
}

// Before returns the state name before the mutation, empty for creations.
func (e Event) Before() string {
	return e.before
}

// After returns the state name after the mutation.
func (e Event) After() string {
	return e.after
}

// Message returns the human-readable summary of the event.
func (e Event) Message() string {
	return e.message
}

// Recipients returns the users to notify about the event.
func (e Event) Recipients() []Recipient {
	return e.recipients
}

func (e *Event) setAction(action Action) error {
	if err := action.Validate(); err != nil {
		return err
	}
	e.action = action
	return nil
}

func (e *Event) setResource(resourceType ResourceType, resourceID kernel.UUID) error {
	if err := errors.Join(resourceType.Validate(), resourceID.Validate()); err != nil {
		return err
	}
	e.resourceType = resourceType
	e.resourceID = resourceID
	return nil
}

func (e *Event) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	e.orderID = orderID
	return nil
}

func (e *Event) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	e.message = message
	return nil
}

func (e *Event) setRecipients(recipients []Recipient) error {
	for _, recipient := range recipients {
		if err := recipient.id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("recipients", err)
		}
	}
	e.recipients = recipients
	return nil
}
