// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the marketplace workflow. It implements
// business rules that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - AssignmentService: keeps the one-assigned-writer rule across an order's
//     recruitment rows and the order itself
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
