package billing

import (
	"fmt"

	"writedesk/internal/pkg/errs"
)

// PaymentState represents the verification state of a payment record.
type PaymentState int

const (
	// PaymentStateUnknown represents an invalid or undefined state.
	PaymentStateUnknown PaymentState = iota

	// PaymentStatePending means the client reported a payment that nobody
	// verified yet.
	PaymentStatePending

	// PaymentStateVerified means an admin confirmed the payment against the
	// payment provider.
	PaymentStateVerified

	// PaymentStateRejected means an admin found no matching payment.
	PaymentStateRejected
)

func getPaymentStateStrings() map[PaymentState]string {
	return map[PaymentState]string{
		PaymentStateUnknown:  "Unknown",
		PaymentStatePending:  "Pending",
		PaymentStateVerified: "Verified",
		PaymentStateRejected: "Rejected",
	}
}

// Validate checks if the PaymentState value is valid.
func (s PaymentState) Validate() error {
	switch s {
	case PaymentStatePending, PaymentStateVerified, PaymentStateRejected:
		return nil
	case PaymentStateUnknown:
		fallthrough
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment state is invalid",
			fmt.Errorf("%d is not a valid payment state", s))
	}
}

// String returns the human-readable name of the state.
// This method implements the fmt.Stringer interface.
func (s PaymentState) String() string {
	if str, ok := getPaymentStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
