package billing

import (
	"errors"
	"fmt"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"
)

const (
	// FullVerificationPercent is the verified share at which the payment
	// gate opens and a work code may be minted.
	FullVerificationPercent = 100
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment was not created
	// through one of its factory methods.
	ErrPaymentIsNotConstructed = errors.New(
		"Payment must be created via NewPayment or RestorePayment constructor")
)

// Payment records one payment a client reported for an order. An order can
// accumulate several payments (instalments, failed attempts); each one is
// verified or rejected independently by an admin. Only a verification at
// FullVerificationPercent opens the payment gate on the order.
type Payment struct {
	// id is the unique identifier for the payment
	id kernel.UUID

	// orderID is the order the payment belongs to
	orderID kernel.UUID

	// amount is what the client reports having paid
	amount kernel.Money

	// state is the verification state
	state PaymentState

	// verifiedPercent is the share of the order total the admin confirmed,
	// 0 until verification
	verifiedPercent int

	// rejectReason is the admin's stated reason for a rejection
	rejectReason string

	// version supports optimistic locking in the store
	version int

	// isConstructed ensures the payment was created via a constructor
	isConstructed bool
}

// NewPayment records a fresh client-reported payment in Pending state.
func NewPayment(id kernel.UUID, orderID kernel.UUID, amount kernel.Money) (*Payment, error) {
	payment := &Payment{
		state:         PaymentStatePending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		payment.setID(id),
		payment.setOrderID(orderID),
		payment.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return payment, nil
}

// RestorePayment reconstructs a Payment aggregate from persistent storage.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	state PaymentState,
	verifiedPercent int,
	rejectReason string,
	version int,
) (*Payment, error) {
	payment := &Payment{
		rejectReason:  rejectReason,
		isConstructed: true,
	}

	if err := errors.Join(
		payment.setID(id),
		payment.setOrderID(orderID),
		payment.setAmount(amount),
		payment.setState(state),
		payment.setVerifiedPercent(verifiedPercent),
		payment.setVersion(version),
	); err != nil {
		return nil, err
	}

	return payment, nil
}

// Validate ensures the Payment was properly constructed through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order the payment belongs to.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the reported amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// State returns the verification state.
func (p *Payment) State() PaymentState {
	return p.state
}

// VerifiedPercent returns the confirmed share of the order total.
func (p *Payment) VerifiedPercent() int {
	return p.verifiedPercent
}

// RejectReason returns the admin's stated reason for a rejection.
func (p *Payment) RejectReason() string {
	return p.rejectReason
}

// Version returns the optimistic locking version of the aggregate.
func (p *Payment) Version() int {
	return p.version
}

// IsFullyVerified reports whether this payment was verified at
// FullVerificationPercent.
func (p *Payment) IsFullyVerified() bool {
	return p.state == PaymentStateVerified && p.verifiedPercent == FullVerificationPercent
}

// Verify confirms the payment at the given percentage of the order total.
// Only pending payments can be verified, and each payment only once.
func (p *Payment) Verify(percent int) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if p.state != PaymentStatePending {
		return errs.NewInvalidTransitionError(kernel.RoleAdmin.String(),
			p.state.String(), PaymentStateVerified.String())
	}
	if percent < 1 || percent > FullVerificationPercent {
		return errs.NewValueIsOutOfRangeError("percent", percent, 1, FullVerificationPercent)
	}

	p.state = PaymentStateVerified
	p.verifiedPercent = percent
	return nil
}

// Reject marks the payment as not found with the payment provider.
// Only pending payments can be rejected.
func (p *Payment) Reject(reason string) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if p.state != PaymentStatePending {
		return errs.NewInvalidTransitionError(kernel.RoleAdmin.String(),
			p.state.String(), PaymentStateRejected.String())
	}

	p.state = PaymentStateRejected
	p.rejectReason = reason
	return nil
}

// setID validates and sets the payment's unique identifier.
// This is a private method used only during construction.
func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setOrderID validates and sets the order reference.
// This is a private method used only during construction.
func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

// setAmount validates and sets the reported amount. A zero amount is
// rejected because a payment of nothing cannot open the gate.
func (p *Payment) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if amount.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("payment amount must be greater than zero"))
	}
	p.amount = amount
	return nil
}

// setState validates and sets the verification state.
// This is a private method used only during restoration.
func (p *Payment) setState(state PaymentState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	p.state = state
	return nil
}

// setVerifiedPercent validates and sets the confirmed share.
// This is a private method used only during restoration.
func (p *Payment) setVerifiedPercent(percent int) error {
	if percent < 0 || percent > FullVerificationPercent {
		return errs.NewValueIsOutOfRangeError("verified percent", percent, 0, FullVerificationPercent)
	}
	p.verifiedPercent = percent
	return nil
}

// setVersion validates and sets the optimistic locking version.
// This is a private method used only during restoration.
func (p *Payment) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("payment version",
			fmt.Errorf("%d is not a valid version", version))
	}
	p.version = version
	return nil
}
