package audit

import (
	"errors"
	"fmt"
	"time"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// the NewEntry constructor.
var ErrEntryIsNotConstructed = errors.New(
	"Entry must be created via NewEntry constructor")

// Entry is one persisted line of the trail: an Event stamped with an
// identifier and the moment it was recorded. Entries are append-only and are
// never read back into the domain, so there is no restore constructor.
type Entry struct {
	// id is the unique identifier for the entry
	id kernel.UUID

	// event is the recorded workflow mutation
	event Event

	// at is when the entry was recorded
	at time.Time

	// isConstructed ensures the entry was created via the constructor
	isConstructed bool
}

// NewEntry stamps an event into a trail entry.
func NewEntry(id kernel.UUID, event Event, at time.Time) (*Entry, error) {
	entry := &Entry{
		isConstructed: true,
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setEvent(event),
		entry.setAt(at),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate ensures the Entry was properly constructed through the constructor.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// Event returns the recorded workflow mutation.
func (e *Entry) Event() Event {
	return e.event
}

// At returns when the entry was recorded.
func (e *Entry) At() time.Time {
	return e.at
}

// setID validates and sets the entry's unique identifier.
// This is a private method used only during construction.
func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

// setEvent validates and sets the recorded event.
// This is a private method used only during construction.
func (e *Entry) setEvent(event Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	e.event = event
	return nil
}

// setAt validates and sets the recording time.
// This is a private method used only during construction.
func (e *Entry) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("at",
			fmt.Errorf("entry time must not be zero"))
	}
	e.at = at
	return nil
}
