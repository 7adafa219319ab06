package recruitment

import (
	"fmt"

	"writedesk/internal/pkg/errs"
)

// State represents the lifecycle state of a writer's interest in an order.
// One row exists per (order, writer) pair and moves through these states:
//
//	Invited ──┬──> Interested ──> Assigned ──┬──> Revoked
//	          │                       ^      └──> Released
//	          └──> Rejected           │
//	                                  │
//	              Accepted ───────────┘  (legacy rows, treated as Interested)
//
// Rejected, Revoked and Released rows can be re-invited, which starts the
// cycle over for the same pair.
type State int

const (
	// StateUnknown represents an invalid or undefined state.
	StateUnknown State = iota

	// StateInvited means the order was offered to the writer.
	StateInvited

	// StateInterested means the writer wants the order.
	StateInterested

	// StateAccepted is a legacy spelling of Interested kept for rows
	// written by older releases. It is never written anymore, only read.
	StateAccepted

	// StateRejected means the writer declined the invitation.
	StateRejected

	// StateAssigned means the writer is the one working the order.
	// At most one row per order may be in this state.
	StateAssigned

	// StateRevoked means the writer was taken off the order by an admin.
	StateRevoked

	// StateReleased means the writer lost the assignment to another writer.
	StateReleased
)

func getStateStrings() map[State]string {
	return map[State]string{
		StateUnknown:    "Unknown",
		StateInvited:    "Invited",
		StateInterested: "Interested",
		StateAccepted:   "Accepted",
		StateRejected:   "Rejected",
		StateAssigned:   "Assigned",
		StateRevoked:    "Revoked",
		StateReleased:   "Released",
	}
}

// Validate checks if the State value is valid.
func (s State) Validate() error {
	if s == StateUnknown {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid",
			fmt.Errorf("%d is not a valid writer interest state", s))
	}
	if _, ok := getStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid",
			fmt.Errorf("%d is not a valid writer interest state", s))
	}
	return nil
}

// String returns the human-readable name of the state.
// This method implements the fmt.Stringer interface.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsAssignable reports whether a row in this state may be promoted to
// Assigned. Interested rows and legacy Accepted rows qualify.
func (s State) IsAssignable() bool {
	return s == StateInterested || s == StateAccepted
}

// IsReinvitable reports whether a row in this state may be offered the order
// again.
func (s State) IsReinvitable() bool {
	return s == StateRejected || s == StateRevoked || s == StateReleased
}
