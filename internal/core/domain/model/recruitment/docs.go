// Package recruitment provides the writer recruitment ledger for the
// writedesk marketplace. It implements the WriterInterest aggregate that
// tracks, per (order, writer) pair, the invitation, the writer's response,
// the assignment and its end.
//
// Key business rules:
//   - One row exists per (order, writer) pair, enforced by the store
//   - At most one row per order is Assigned at any moment; assignment of a
//     new writer releases the previous one in the same transaction
//   - Only Interested rows (or legacy Accepted rows) can be assigned
//   - The writer's doability verdict lives on the row and can be recorded
//     once per assignment, while the row is Assigned
//   - Rejected, Revoked and Released writers can be re-invited, which starts
//     the cycle over for the pair
package recruitment
