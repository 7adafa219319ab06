// Package billing provides the pricing and payment aggregates for the
// writedesk marketplace: the Quotation a BDE prepares for an order and the
// Payment records the payment gate verifies.
//
// Key business rules:
//   - At most one Quotation exists per order; re-quoting revises it in place
//   - The final price defaults to base + urgency charge + tax - discount,
//     with an explicit override for negotiated figures
//   - An order can accumulate several Payment records; each is verified or
//     rejected independently
//   - Only a verification at FullVerificationPercent opens the payment gate;
//     partial verifications never mint a work code
package billing
