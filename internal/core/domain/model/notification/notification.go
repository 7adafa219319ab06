package notification

import (
	"errors"
	"fmt"
	"time"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification was not
	// created through one of its factory methods.
	ErrNotificationIsNotConstructed = errors.New(
		"Notification must be created via NewNotification or RestoreNotification constructor")

	// ErrAlreadyPushed is returned when a notification is handed to the
	// delivery gateway a second time.
	ErrAlreadyPushed = errs.NewConflictError("notification", "already pushed")
)

// Notification is one inbox row for one recipient. Rows are created by the
// event dispatcher, pushed out by the background dispatch job and marked read
// by the recipient.
type Notification struct {
	// id is the unique identifier for the notification
	id kernel.UUID

	// recipientID is the user the notification is addressed to
	recipientID kernel.UUID

	// orderID is the order the notification concerns
	orderID kernel.UUID

	// action is the verb of the event that produced the notification
	action string

	// message is the human-readable text shown to the recipient
	message string

	// isRead is set when the recipient opens the notification
	isRead bool

	// pushedAt is when the row was handed to the delivery gateway,
	// nil until then
	pushedAt *time.Time

	// createdAt is when the notification was produced
	createdAt time.Time

	// version supports optimistic locking in the store
	version int

	// isConstructed ensures the notification was created via a constructor
	isConstructed bool
}

// NewNotification creates a fresh unread, unpushed notification.
func NewNotification(
	id kernel.UUID,
	recipientID kernel.UUID,
	orderID kernel.UUID,
	action string,
	message string,
) (*Notification, error) {
	n := &Notification{
		createdAt:     time.Now(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setRecipientID(recipientID),
		n.setOrderID(orderID),
		n.setAction(action),
		n.setMessage(message),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistent storage.
func RestoreNotification(
	id kernel.UUID,
	recipientID kernel.UUID,
	orderID kernel.UUID,
	action string,
	message string,
	isRead bool,
	pushedAt *time.Time,
	createdAt time.Time,
	version int,
) (*Notification, error) {
	n := &Notification{
		isRead:        isRead,
		pushedAt:      pushedAt,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setRecipientID(recipientID),
		n.setOrderID(orderID),
		n.setAction(action),
		n.setMessage(message),
		n.setVersion(version),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// Validate ensures the Notification was properly constructed through a
// constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// RecipientID returns the user the notification is addressed to.
func (n *Notification) RecipientID() kernel.UUID {
	return n.recipientID
}

// OrderID returns the order the notification concerns.
func (n *Notification) OrderID() kernel.UUID {
	return n.orderID
}

// Action returns the verb of the event that produced the notification.
func (n *Notification) Action() string {
	return n.action
}

// Message returns the text shown to the recipient.
func (n *Notification) Message() string {
	return n.message
}

// IsRead reports whether the recipient has opened the notification.
func (n *Notification) IsRead() bool {
	return n.isRead
}

// PushedAt returns when the row was handed to the delivery gateway, or nil
// when it has not been pushed yet.
func (n *Notification) PushedAt() *time.Time {
	return n.pushedAt
}

// IsPushed reports whether the row was handed to the delivery gateway.
func (n *Notification) IsPushed() bool {
	return n.pushedAt != nil
}

// CreatedAt returns when the notification was produced.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// Version returns the optimistic locking version of the aggregate.
func (n *Notification) Version() int {
	return n.version
}

// MarkRead records that the recipient opened the notification. Marking an
// already read notification is a no-op.
func (n *Notification) MarkRead() error {
	if err := n.Validate(); err != nil {
		return err
	}

	n.isRead = true
	return nil
}

// MarkPushed records the moment the row was handed to the delivery gateway.
// A row can only be pushed once.
func (n *Notification) MarkPushed(at time.Time) error {
	if err := n.Validate(); err != nil {
		return err
	}

	if n.pushedAt != nil {
		return ErrAlreadyPushed
	}
	if at.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("at",
			fmt.Errorf("push time must not be zero"))
	}

	n.pushedAt = &at
	return nil
}

// setID validates and sets the notification's unique identifier.
// This is a private method used only during construction.
func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

// setRecipientID validates and sets the addressee.
// This is a private method used only during construction.
func (n *Notification) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	n.recipientID = recipientID
	return nil
}

// setOrderID validates and sets the order reference.
// This is a private method used only during construction.
func (n *Notification) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	n.orderID = orderID
	return nil
}

// setAction validates and sets the producing event's verb.
// This is a private method used only during construction.
func (n *Notification) setAction(action string) error {
	if action == "" {
		return errs.NewValueIsRequiredError("action")
	}
	n.action = action
	return nil
}

// setMessage validates and sets the text shown to the recipient.
// This is a private method used only during construction.
func (n *Notification) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

// setVersion validates and sets the optimistic locking version.
// This is a private method used only during restoration.
func (n *Notification) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("notification version",
			fmt.Errorf("%d is not a valid version", version))
	}
	n.version = version
	return nil
}
