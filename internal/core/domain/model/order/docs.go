// Package order provides domain entities and business logic for order management
// in the writedesk marketplace. It implements the Order aggregate root with
// lifecycle management and role-aware state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, codes, prices and lifecycle
//   - Status: A state machine whose single transition table decides which role
//     may move an order between which statuses
//   - Urgency: The requested turnaround that feeds the urgency charge
//
// Key business rules:
//   - Orders must have a valid unique identifier, client, topic and subject
//   - A query code is minted at placement; a work code exists if and only if
//     payment was verified in full
//   - At most one writer is assigned at a time, and only from Assigned onward
//   - Completed and Cancelled are terminal: no role may move an order out of them
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
