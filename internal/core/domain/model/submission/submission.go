package submission

import (
	"errors"
	"fmt"
	"time"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"
)

var (
	// ErrSubmissionIsNotConstructed is returned when a Submission was not
	// created through one of its factory methods.
	ErrSubmissionIsNotConstructed = errors.New(
		"Submission must be created via NewSubmission or RestoreSubmission constructor")
)

// Submission is one piece of work the assigned writer handed in for quality
// control. The file itself lives in the external document store; the
// submission only carries an opaque reference to it. Creation time orders
// the submissions of an order, and only the newest one counts for the
// order-level QC state.
type Submission struct {
	// id is the unique identifier for the submission
	id kernel.UUID

	// orderID is the order the submission belongs to
	orderID kernel.UUID

	// writerID is the writer who handed the work in
	writerID kernel.UUID

	// fileRef is the opaque reference into the external document store
	fileRef string

	// note carries the writer's remarks for quality control
	note string

	// state is the current review state
	state QCState

	// reviewNote carries quality control's remarks on a revision request
	reviewNote string

	// createdAt orders the submissions of an order
	createdAt time.Time

	// version supports optimistic locking in the store
	version int

	// isConstructed ensures the submission was created via a constructor
	isConstructed bool
}

// NewSubmission records freshly handed-in work in PendingReview state.
func NewSubmission(
	id kernel.UUID,
	orderID kernel.UUID,
	writerID kernel.UUID,
	fileRef string,
	note string,
) (*Submission, error) {
	sub := &Submission{
		note:          note,
		state:         QCStatePendingReview,
		createdAt:     time.Now(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		sub.setID(id),
		sub.setOrderID(orderID),
		sub.setWriterID(writerID),
		sub.setFileRef(fileRef),
	); err != nil {
		return nil, err
	}

	return sub, nil
}

// RestoreSubmission reconstructs a Submission aggregate from persistent
// storage.
func RestoreSubmission(
	id kernel.UUID,
	orderID kernel.UUID,
	writerID kernel.UUID,
	fileRef string,
	note string,
	state QCState,
	reviewNote string,
	createdAt time.Time,
	version int,
) (*Submission, error) {
	sub := &Submission{
		note:          note,
		reviewNote:    reviewNote,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		sub.setID(id),
		sub.setOrderID(orderID),
		sub.setWriterID(writerID),
		sub.setFileRef(fileRef),
		sub.setState(state),
		sub.setVersion(version),
	); err != nil {
		return nil, err
	}

	return sub, nil
}

// Validate ensures the Submission was properly constructed through a
// constructor.
func (s *Submission) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSubmissionIsNotConstructed
	}
	return nil
}

// IsEqual compares two submissions by their unique identifiers.
func (s *Submission) IsEqual(other *Submission) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the submission's unique identifier.
func (s *Submission) ID() kernel.UUID {
	return s.id
}

// OrderID returns the order the submission belongs to.
func (s *Submission) OrderID() kernel.UUID {
	return s.orderID
}

// WriterID returns the writer who handed the work in.
func (s *Submission) WriterID() kernel.UUID {
	return s.writerID
}

// FileRef returns the opaque reference into the external document store.
func (s *Submission) FileRef() string {
	return s.fileRef
}

// Note returns the writer's remarks for quality control.
func (s *Submission) Note() string {
	return s.note
}

// State returns the current review state.
func (s *Submission) State() QCState {
	return s.state
}

// ReviewNote returns quality control's remarks on a revision request.
func (s *Submission) ReviewNote() string {
	return s.reviewNote
}

// CreatedAt returns when the submission was handed in.
func (s *Submission) CreatedAt() time.Time {
	return s.createdAt
}

// Version returns the optimistic locking version of the aggregate.
func (s *Submission) Version() int {
	return s.version
}

// Approve records that quality control accepted the submission.
func (s *Submission) Approve() error {
	if err := s.Validate(); err != nil {
		return err
	}

	if s.state != QCStatePendingReview {
		return errs.NewInvalidTransitionError(kernel.RoleAdmin.String(),
			s.state.String(), QCStateApproved.String())
	}

	s.state = QCStateApproved
	return nil
}

// RequestRevision sends the submission back to the writer with a note.
// The writer answers with a fresh submission; this row stays in
// RevisionRequired as part of the order's history.
func (s *Submission) RequestRevision(note string) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if s.state != QCStatePendingReview {
		return errs.NewInvalidTransitionError(kernel.RoleAdmin.String(),
			s.state.String(), QCStateRevisionRequired.String())
	}

	s.state = QCStateRevisionRequired
	s.reviewNote = note
	return nil
}

// Complete closes the approved submission together with its order.
func (s *Submission) Complete() error {
	if err := s.Validate(); err != nil {
		return err
	}

	if s.state != QCStateApproved {
		return errs.NewInvalidTransitionError(kernel.RoleAdmin.String(),
			s.state.String(), QCStateCompleted.String())
	}

	s.state = QCStateCompleted
	return nil
}

// setID validates and sets the submission's unique identifier.
// This is a private method used only during construction.
func (s *Submission) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

// setOrderID validates and sets the order reference.
// This is a private method used only during construction.
func (s *Submission) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

// setWriterID validates and sets the writer reference.
// This is a private method used only during construction.
func (s *Submission) setWriterID(writerID kernel.UUID) error {
	if err := writerID.Validate(); err != nil {
		return err
	}
	s.writerID = writerID
	return nil
}

// setFileRef validates and sets the document store reference. The core never
// inspects the file itself, only that a reference exists.
func (s *Submission) setFileRef(fileRef string) error {
	if fileRef == "" {
		return errs.NewValueIsRequiredError("file reference")
	}
	s.fileRef = fileRef
	return nil
}

// setState validates and sets the review state.
// This is a private method used only during restoration.
func (s *Submission) setState(state QCState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	s.state = state
	return nil
}

// setVersion validates and sets the optimistic locking version.
// This is a private method used only during restoration.
func (s *Submission) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("submission version",
			fmt.Errorf("%d is not a valid version", version))
	}
	s.version = version
	return nil
}
