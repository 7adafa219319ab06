// Package submission provides the quality-control ledger for the writedesk
// marketplace. Each Submission is one file the assigned writer handed in; an
// order accumulates several of them through the revision loop.
//
// Key business rules:
//   - Only the latest submission of an order drives the order-level QC state
//   - Approving or sending a submission back never touches the order's work
//     code or writer assignment
//   - A submission reaches Completed only when its order is completed
package submission
