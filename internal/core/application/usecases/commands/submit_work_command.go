package commands

import (
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"
	"writedesk/internal/pkg/guard"
)

var ErrSubmitWorkCommandIsNotConstructed = errors.New(
	"SubmitWorkCommand must be created via NewSubmitWorkCommand constructor",
)

// SubmitWorkCommand represents the assigned writer handing in work for
// quality control. The file lives in the external document store; the
// command only carries the reference.
type SubmitWorkCommand struct { //nolint:recvcheck //using for validation
	submissionID kernel.UUID
	orderID      kernel.UUID
	actorID      kernel.UUID
	fileRef      string
	note         string

	guard guard.ConstructorGuard
}

// NewSubmitWorkCommand creates a command to submit work for an order.
// The file reference is required; the note is the writer's optional remark
// for quality control.
func NewSubmitWorkCommand(
	submissionID kernel.UUID,
	orderID kernel.UUID,
	actorID kernel.UUID,
	fileRef string,
	note string,
) (SubmitWorkCommand, error) {
	cmd := SubmitWorkCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSubmissionID(submissionID),
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setFileRef(fileRef),
	); err != nil {
		return SubmitWorkCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitWorkCommandIsNotConstructed if validation fails.
func (c SubmitWorkCommand) Validate() error {
	return c.guard.Validate(ErrSubmitWorkCommandIsNotConstructed)
}

// SubmissionID returns the unique identifier for the new submission.
func (c SubmitWorkCommand) SubmissionID() kernel.UUID {
	return c.submissionID
}

// OrderID returns the order the work belongs to.
func (c SubmitWorkCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the submitting writer.
func (c SubmitWorkCommand) ActorID() kernel.UUID {
	return c.actorID
}

// FileRef returns the opaque reference into the external document store.
func (c SubmitWorkCommand) FileRef() string {
	return c.fileRef
}

// Note returns the writer's remarks for quality control, possibly empty.
func (c SubmitWorkCommand) Note() string {
	return c.note
}

func (c *SubmitWorkCommand) setSubmissionID(submissionID kernel.UUID) error {
	if err := submissionID.Validate(); err != nil {
		return err
	}

	c.submissionID = submissionID
	return nil
}

func (c *SubmitWorkCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitWorkCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *SubmitWorkCommand) setFileRef(fileRef string) error {
	if fileRef == "" {
		return errs.NewValueIsRequiredError("fileRef")
	}

	c.fileRef = fileRef
	return nil
}
