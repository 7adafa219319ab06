package services

import (
	"fmt"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/order"
	"writedesk/internal/core/domain/model/recruitment"
	"writedesk/internal/pkg/errs"
)

// AssignmentService is the domain service that puts a writer on an order.
// The rule it protects spans two aggregates: at most one recruitment row per
// order may be Assigned, and the order must name exactly that writer.
//
// Assigning and reassigning is the same operation. When the assignment moves,
// the previous holder's row is released in the same step, so the rule holds
// at every commit point.
//
// Example usage:
//
//	svc := services.NewAssignmentService()
//	released, err := svc.Assign(kernel.RoleAdmin, ord, target, allRows)
//	if err != nil {
//	    // target not assignable, or the order cannot take a writer now
//	    return err
//	}
//	// persist ord, target and every row in released
type AssignmentService struct{}

// NewAssignmentService creates a new AssignmentService instance.
func NewAssignmentService() AssignmentService {
	return AssignmentService{}
}

// Assign promotes the target recruitment row to Assigned, releases every
// other Assigned row of the order, and stamps the writer on the order.
//
// Parameters:
//   - role: the role the actor acts from, checked against the order's
//     transition table
//   - ord: the order being assigned
//   - target: the recruitment row of the writer taking the order
//   - others: the order's remaining recruitment rows, typically the full
//     list from the store with the target included or not
//
// Returns:
//   - the rows that were released, so callers can persist and announce them
//   - an error when the target row is not assignable, a row belongs to a
//     different order, or the order's status does not permit an assignment
//     by this role
func (s AssignmentService) Assign(
	role kernel.Role,
	ord *order.Order,
	target *recruitment.WriterInterest,
	others []*recruitment.WriterInterest,
) ([]*recruitment.WriterInterest, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if !target.OrderID().IsEqual(ord.ID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("target",
			fmt.Errorf("interest row %s belongs to order %s, not %s",
				target.ID(), target.OrderID(), ord.ID()))
	}

	if err := target.Assign(); err != nil {
		return nil, err
	}

	released, err := s.releaseOthers(ord, target, others)
	if err != nil {
		return nil, err
	}

	if err := ord.AssignWriter(role, target.WriterID()); err != nil {
		return nil, err
	}

	return released, nil
}

// releaseOthers releases every Assigned row of the order except the target.
func (s AssignmentService) releaseOthers(
	ord *order.Order,
	target *recruitment.WriterInterest,
	others []*recruitment.WriterInterest,
) ([]*recruitment.WriterInterest, error) {
	var released []*recruitment.WriterInterest

	for _, row := range others {
		if err := row.Validate(); err != nil {
			return nil, err
		}
		if !row.OrderID().IsEqual(ord.ID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause("others",
				fmt.Errorf("interest row %s belongs to order %s, not %s",
					row.ID(), row.OrderID(), ord.ID()))
		}
		if row.IsEqual(target) || row.State() != recruitment.StateAssigned {
			continue
		}

		if err := row.Release(); err != nil {
			return nil, err
		}
		released = append(released, row)
	}

	return released, nil
}
