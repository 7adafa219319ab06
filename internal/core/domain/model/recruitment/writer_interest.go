package recruitment

import (
	"errors"
	"fmt"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"
)

var (
	// ErrWriterInterestIsNotConstructed is returned when a WriterInterest was not
	// created through one of its factory methods.
	ErrWriterInterestIsNotConstructed = errors.New(
		"WriterInterest must be created via NewInvitation, NewOpenInterest or RestoreWriterInterest constructor")
)

// WriterInterest is the single ledger for the writer recruitment protocol.
// One aggregate exists per (order, writer) pair and tracks the offer, the
// writer's response, the assignment and its end, plus the writer's own
// doability verdict once assigned. The store enforces uniqueness of the pair
// and that at most one row per order is Assigned.
type WriterInterest struct {
	// id is the unique identifier for the interest row
	id kernel.UUID

	// orderID and writerID form the unique pair the ledger is keyed by
	orderID  kernel.UUID
	writerID kernel.UUID

	// state is the current recruitment state of the pair
	state State

	// declineReason is the writer's stated reason for a rejection
	declineReason string

	// verdict and verdictNote hold the writer's task evaluation,
	// meaningful only while the row is Assigned
	verdict     Verdict
	verdictNote string

	// version supports optimistic locking in the store
	version int

	// isConstructed ensures the aggregate was created via a constructor
	isConstructed bool
}

// NewInvitation creates an interest row for a writer who was offered the
// order by an admin. The row starts in Invited with a pending verdict.
func NewInvitation(id kernel.UUID, orderID kernel.UUID, writerID kernel.UUID) (*WriterInterest, error) {
	return newWriterInterest(id, orderID, writerID, StateInvited)
}

// NewOpenInterest creates an interest row for a writer who volunteered for
// the order without an invitation. The row starts in Interested.
func NewOpenInterest(id kernel.UUID, orderID kernel.UUID, writerID kernel.UUID) (*WriterInterest, error) {
	return newWriterInterest(id, orderID, writerID, StateInterested)
}

func newWriterInterest(id kernel.UUID, orderID kernel.UUID, writerID kernel.UUID, state State) (*WriterInterest, error) {
	interest := &WriterInterest{
		state:         state,
		verdict:       VerdictPending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		interest.setID(id),
		interest.setOrderID(orderID),
		interest.setWriterID(writerID),
	); err != nil {
		return nil, err
	}

	return interest, nil
}

// RestoreWriterInterest reconstructs a WriterInterest aggregate from
// persistent storage.
func RestoreWriterInterest(
	id kernel.UUID,
	orderID kernel.UUID,
	writerID kernel.UUID,
	state State,
	declineReason string,
	verdict Verdict,
	verdictNote string,
	version int,
) (*WriterInterest, error) {
	interest := &WriterInterest{
		declineReason: declineReason,
		verdictNote:   verdictNote,
		isConstructed: true,
	}

	if err := errors.Join(
		interest.setID(id),
		interest.setOrderID(orderID),
		interest.setWriterID(writerID),
		interest.setState(state),
		interest.setVerdict(verdict),
		interest.setVersion(version),
	); err != nil {
		return nil, err
	}

	return interest, nil
}

// Validate ensures the WriterInterest was properly constructed through a
// constructor.
func (w *WriterInterest) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWriterInterestIsNotConstructed
	}
	return nil
}

// IsEqual compares two interest rows by their unique identifiers.
func (w *WriterInterest) IsEqual(other *WriterInterest) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the row's unique identifier.
func (w *WriterInterest) ID() kernel.UUID {
	return w.id
}

// OrderID returns the order the interest refers to.
func (w *WriterInterest) OrderID() kernel.UUID {
	return w.orderID
}

// WriterID returns the writer the interest belongs to.
func (w *WriterInterest) WriterID() kernel.UUID {
	return w.writerID
}

// State returns the current recruitment state.
func (w *WriterInterest) State() State {
	return w.state
}

// DeclineReason returns the writer's stated reason for a rejection.
func (w *WriterInterest) DeclineReason() string {
	return w.declineReason
}

// Verdict returns the writer's task evaluation.
func (w *WriterInterest) Verdict() Verdict {
	return w.verdict
}

// VerdictNote returns the note accompanying the task evaluation.
func (w *WriterInterest) VerdictNote() string {
	return w.verdictNote
}

// Version returns the optimistic locking version of the aggregate.
func (w *WriterInterest) Version() int {
	return w.version
}

// ShowInterest records that the invited writer wants the order.
//
// Returns:
//   - nil when the row moved from Invited to Interested
//   - ConflictError when the writer already expressed interest, so callers
//     can tell a duplicate click from a real state problem
//   - InvalidTransitionError for every other state
func (w *WriterInterest) ShowInterest() error {
	if err := w.Validate(); err != nil {
		return err
	}

	switch w.state {
	case StateInvited:
		w.state = StateInterested
		return nil
	case StateInterested, StateAccepted:
		return errs.NewConflictErrorWithCause("writer interest", w.id.String(),
			fmt.Errorf("writer %s already expressed interest in order %s", w.writerID, w.orderID))
	default:
		return errs.NewInvalidTransitionError(kernel.RoleWriter.String(),
			w.state.String(), StateInterested.String())
	}
}

// Decline records that the invited writer turned the order down. The reason
// is kept on the row; an empty reason is allowed.
func (w *WriterInterest) Decline(reason string) error {
	if err := w.Validate(); err != nil {
		return err
	}

	if w.state != StateInvited {
		return errs.NewInvalidTransitionError(kernel.RoleWriter.String(),
			w.state.String(), StateRejected.String())
	}

	w.state = StateRejected
	w.declineReason = reason
	return nil
}

// Assign promotes the row to Assigned. Only Interested rows and legacy
// Accepted rows qualify; the verdict resets to Pending because the writer
// evaluates each assignment anew.
func (w *WriterInterest) Assign() error {
	if err := w.Validate(); err != nil {
		return err
	}

	if !w.state.IsAssignable() {
		return errs.NewInvalidTransitionError(kernel.RoleAdmin.String(),
			w.state.String(), StateAssigned.String())
	}

	w.state = StateAssigned
	w.verdict = VerdictPending
	w.verdictNote = ""
	return nil
}

// Revoke records that an admin took the writer off the order.
func (w *WriterInterest) Revoke() error {
	if err := w.Validate(); err != nil {
		return err
	}

	if w.state != StateAssigned {
		return errs.NewInvalidTransitionError(kernel.RoleAdmin.String(),
			w.state.String(), StateRevoked.String())
	}

	w.state = StateRevoked
	return nil
}

// Release records that the writer lost the assignment to another writer.
func (w *WriterInterest) Release() error {
	if err := w.Validate(); err != nil {
		return err
	}

	if w.state != StateAssigned {
		return errs.NewInvalidTransitionError(kernel.RoleAdmin.String(),
			w.state.String(), StateReleased.String())
	}

	w.state = StateReleased
	return nil
}

// Reinvite offers the order again to a writer whose previous round ended in
// Rejected, Revoked or Released. The decline reason and verdict are cleared
// so the new round starts fresh.
func (w *WriterInterest) Reinvite() error {
	if err := w.Validate(); err != nil {
		return err
	}

	if !w.state.IsReinvitable() {
		return errs.NewInvalidTransitionError(kernel.RoleAdmin.String(),
			w.state.String(), StateInvited.String())
	}

	w.state = StateInvited
	w.declineReason = ""
	w.verdict = VerdictPending
	w.verdictNote = ""
	return nil
}

// RecordVerdict stores the assigned writer's task evaluation. The verdict can
// be recorded once per assignment, while the row is Assigned and the verdict
// is still Pending.
func (w *WriterInterest) RecordVerdict(doable bool, note string) error {
	if err := w.Validate(); err != nil {
		return err
	}

	if w.state != StateAssigned {
		return errs.NewInvalidTransitionError(kernel.RoleWriter.String(),
			w.state.String(), StateAssigned.String())
	}
	if w.verdict != VerdictPending {
		return errs.NewValueIsInvalidErrorWithCause("verdict",
			fmt.Errorf("task was already evaluated as %s", w.verdict))
	}

	if doable {
		w.verdict = VerdictDoable
	} else {
		w.verdict = VerdictNotDoable
	}
	w.verdictNote = note
	return nil
}

// setID validates and sets the row's unique identifier.
// This is a private method used only during construction.
func (w *WriterInterest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

// setOrderID validates and sets the order reference.
// This is a private method used only during construction.
func (w *WriterInterest) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	w.orderID = orderID
	return nil
}

// setWriterID validates and sets the writer reference.
// This is a private method used only during construction.
func (w *WriterInterest) setWriterID(writerID kernel.UUID) error {
	if err := writerID.Validate(); err != nil {
		return err
	}
	w.writerID = writerID
	return nil
}

// setState validates and sets the state.
// This is a private method used only during restoration.
func (w *WriterInterest) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	w.state = state
	return nil
}

// setVerdict validates and sets the verdict.
// This is a private method used only during restoration.
func (w *WriterInterest) setVerdict(verdict Verdict) error {
	if err := verdict.Validate(); err != nil {
		return err
	}
	w.verdict = verdict
	return nil
}

// setVersion validates and sets the optimistic locking version.
// This is a private method used only during restoration.
func (w *WriterInterest) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("writer interest version",
			fmt.Errorf("%d is not a valid version", version))
	}
	w.version = version
	return nil
}
