package commands

import (
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/guard"
)

var ErrApproveSubmissionCommandIsNotConstructed = errors.New(
	"ApproveSubmissionCommand must be created via NewApproveSubmissionCommand constructor",
)

// ApproveSubmissionCommand represents quality control accepting a handed-in
// submission. Only the order's newest submission can be approved.
type ApproveSubmissionCommand struct { //nolint:recvcheck //using for validation
	submissionID kernel.UUID
	actorID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveSubmissionCommand creates a command to approve a submission.
func NewApproveSubmissionCommand(
	submissionID kernel.UUID,
	actorID kernel.UUID,
) (ApproveSubmissionCommand, error) {
	cmd := ApproveSubmissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSubmissionID(submissionID),
		cmd.setActorID(actorID),
	); err != nil {
		return ApproveSubmissionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrApproveSubmissionCommandIsNotConstructed if validation fails.
func (c ApproveSubmissionCommand) Validate() error {
	return c.guard.Validate(ErrApproveSubmissionCommandIsNotConstructed)
}

// SubmissionID returns the submission to approve.
func (c ApproveSubmissionCommand) SubmissionID() kernel.UUID {
	return c.submissionID
}

// ActorID returns the identifier of the approving admin.
func (c ApproveSubmissionCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ApproveSubmissionCommand) setSubmissionID(submissionID kernel.UUID) error {
	if err := submissionID.Validate(); err != nil {
		return err
	}

	c.submissionID = submissionID
	return nil
}

func (c *ApproveSubmissionCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
