package commands

import (
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"
	"writedesk/internal/pkg/guard"
)

var ErrRequestRevisionCommandIsNotConstructed = errors.New(
	"RequestRevisionCommand must be created via NewRequestRevisionCommand constructor",
)

// RequestRevisionCommand represents quality control sending a submission back
// to the writer. The note tells the writer what to fix.
type RequestRevisionCommand struct { //nolint:recvcheck //using for validation
	submissionID kernel.UUID
	actorID      kernel.UUID
	note         string

	guard guard.ConstructorGuard
}

// NewRequestRevisionCommand creates a command to send a submission back.
// The note is required; a rework request without direction helps nobody.
func NewRequestRevisionCommand(
	submissionID kernel.UUID,
	actorID kernel.UUID,
	note string,
) (RequestRevisionCommand, error) {
	cmd := RequestRevisionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSubmissionID(submissionID),
		cmd.setActorID(actorID),
		cmd.setNote(note),
	); err != nil {
		return RequestRevisionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestRevisionCommandIsNotConstructed if validation fails.
func (c RequestRevisionCommand) Validate() error {
	return c.guard.Validate(ErrRequestRevisionCommandIsNotConstructed)
}

// SubmissionID returns the submission to send back.
func (c RequestRevisionCommand) SubmissionID() kernel.UUID {
	return c.submissionID
}

// ActorID returns the identifier of the reviewing admin.
func (c RequestRevisionCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Note returns quality control's remarks for the writer.
func (c RequestRevisionCommand) Note() string {
	return c.note
}

func (c *RequestRevisionCommand) setSubmissionID(submissionID kernel.UUID) error {
	if err := submissionID.Validate(); err != nil {
		return err
	}

	c.submissionID = submissionID
	return nil
}

func (c *RequestRevisionCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *RequestRevisionCommand) setNote(note string) error {
	if note == "" {
		return errs.NewValueIsRequiredError("note")
	}

	c.note = note
	return nil
}
