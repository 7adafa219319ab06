package order

import (
	"fmt"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with role-aware transitions so orders follow
// the correct business workflow.
//
// Happy path:
//
//	Pending -> Quoted -> Accepted -> Confirmed -> Assigned -> Submitted -> Approved -> Delivered -> Completed
//
// Side paths: Submitted -> Revision -> Submitted is the rework loop,
// Assigned -> Confirmed is the revoke, Assigned -> Assigned is the
// reassignment, Quoted -> Quoted is the re-quote. Cancelled is reachable from
// every non-terminal state for the roles the transition table allows.
// Completed and Cancelled are terminal.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a client places an order.
	// Orders in this status are waiting for a quotation.
	Pending

	// Quoted indicates a quotation has been prepared for the order.
	// Re-quoting keeps the order in this status.
	Quoted

	// Accepted indicates the client accepted the quotation and the order
	// is waiting for payment verification.
	Accepted

	// Confirmed indicates payment was verified in full and a work code was
	// issued. Orders in this status are waiting for a writer assignment.
	Confirmed

	// Assigned indicates exactly one writer is working on the order.
	// Orders can be reassigned while in this status.
	Assigned

	// Submitted indicates the writer handed in work that is waiting for
	// quality control.
	Submitted

	// Revision indicates quality control sent the latest submission back
	// to the writer for rework.
	Revision

	// Approved indicates quality control accepted the latest submission.
	Approved

	// Delivered indicates the approved work was handed over to the client.
	Delivered

	// Completed indicates the client confirmed the delivered work.
	// This is a final state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was withdrawn before completion.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Quoted:    "Quoted",
		Accepted:  "Accepted",
		Confirmed: "Confirmed",
		Assigned:  "Assigned",
		Submitted: "Submitted",
		Revision:  "Revision",
		Approved:  "Approved",
		Delivered: "Delivered",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Quoted:    "Quoted",
		Accepted:  "Accepted",
		Confirmed: "Confirmed",
		Assigned:  "Assigned",
		Submitted: "Submitted",
		Revision:  "Revision",
		Approved:  "Approved",
		Delivered: "Delivered",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// transitionTable is the single authority on which actor role may move an
// order between which statuses. Every status change in the system routes
// through this table. Absent entries mean the transition is forbidden.
//
// Reading guide: Quoted -> Quoted is the re-quote, Assigned -> Assigned is
// the reassignment, Assigned -> Confirmed is the revoke. Admin may confirm
// straight from Quoted because a verified payment implies acceptance.
func transitionTable() map[Status]map[kernel.Role][]Status {
	return map[Status]map[kernel.Role][]Status{
		Pending: {
			kernel.RoleClient: {Cancelled},
			kernel.RoleBDE:    {Quoted},
			kernel.RoleAdmin:  {Quoted, Cancelled},
		},
		Quoted: {
			kernel.RoleClient: {Accepted, Cancelled},
			kernel.RoleBDE:    {Quoted},
			kernel.RoleAdmin:  {Quoted, Accepted, Confirmed, Cancelled},
		},
		Accepted: {
			kernel.RoleClient: {Cancelled},
			kernel.RoleAdmin:  {Confirmed, Cancelled},
		},
		Confirmed: {
			kernel.RoleAdmin: {Assigned, Cancelled},
		},
		Assigned: {
			kernel.RoleWriter: {Submitted},
			kernel.RoleAdmin:  {Assigned, Confirmed, Cancelled},
		},
		Submitted: {
			kernel.RoleAdmin: {Approved, Revision, Cancelled},
		},
		Revision: {
			kernel.RoleWriter: {Submitted},
			kernel.RoleAdmin:  {Cancelled},
		},
		Approved: {
			kernel.RoleAdmin: {Delivered},
		},
		Delivered: {
			kernel.RoleClient: {Completed},
			kernel.RoleAdmin:  {Completed},
		},
	}
}

// CanTransition reports whether the given role may move an order from one
// status to another. It is a pure function over the transition table and is
// exported so reporting and dashboard collaborators can answer "could this
// actor do that" without loading an order.
func CanTransition(role kernel.Role, from Status, to Status) bool {
	targets, ok := transitionTable()[from][role]
	if !ok {
		return false
	}
	for _, target := range targets {
		if target == to {
			return true
		}
	}
	return false
}

// Validate checks if the Status value is valid.
//
// Unknown (0) and any out-of-range values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ActiveStatuses returns the statuses of orders that are still being worked
// and therefore care about their deadline. Delivered orders are excluded
// because the work already reached the client.
func ActiveStatuses() []Status {
	return []Status{Pending, Quoted, Accepted, Confirmed, Assigned, Submitted, Revision, Approved}
}

// TransitionTo checks the transition table and returns the target status
// when the given role may perform the move.
//
// Returns:
//   - (target, nil) on a permitted transition
//   - (0, error) with an InvalidTransitionError naming the role and both
//     statuses when the table forbids the move
//
// All order status mutations route through this method so the table stays
// the single authority.
func (s Status) TransitionTo(target Status, role kernel.Role) (Status, error) {
	if err := role.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !CanTransition(role, s, target) {
		return 0, errs.NewInvalidTransitionError(role.String(), s.String(), target.String())
	}
	return target, nil
}

// ValidateCanHaveWorkCode validates the consistency between order status and
// work code issuance.
//
// Business Rules:
//   - Orders before Confirmed must not carry a work code
//   - Orders from Confirmed through Completed must carry a work code
//   - Cancelled orders may carry one or not, depending on when they were cancelled
//
// Parameters:
//   - hasWorkCode: whether the order has a work code issued
//
// Returns:
//   - error: validation error if status and work code presence are inconsistent
func (s Status) ValidateCanHaveWorkCode(hasWorkCode bool) error {
	if s == Cancelled {
		return nil
	}

	mustHave := s == Confirmed || s == Assigned || s == Submitted ||
		s == Revision || s == Approved || s == Delivered || s == Completed

	if hasWorkCode && !mustHave {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a work code", s.String()),
		)
	}

	if !hasWorkCode && mustHave {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no work code", s.String()),
		)
	}

	return nil
}

// ValidateCanHaveWriter validates the consistency between order status and
// writer assignment.
//
// Business Rules:
//   - Orders before Assigned must not have a writer
//   - Orders from Assigned through Completed must have a writer
//   - Cancelled orders may keep their writer for the audit trail
//
// Parameters:
//   - hasWriter: whether the order has a writer assigned
//
// Returns:
//   - error: validation error if status and writer assignment are inconsistent
func (s Status) ValidateCanHaveWriter(hasWriter bool) error {
	if s == Cancelled {
		return nil
	}

	mustHave := s == Assigned || s == Submitted || s == Revision ||
		s == Approved || s == Delivered || s == Completed

	if hasWriter && !mustHave {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a writer", s.String()),
		)
	}

	if !hasWriter && mustHave {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no writer", s.String()),
		)
	}

	return nil
}
