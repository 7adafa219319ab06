package audit

import (
	"fmt"

	"writedesk/internal/pkg/errs"
)

// ResourceType names the kind of resource an event touched. Together with
// the resource identifier it points the trail reader at the exact row that
// changed.
type ResourceType string

const (
	// ResourceOrder marks events against the order aggregate itself.
	ResourceOrder ResourceType = "order"
	// ResourceQuotation marks events against a quotation.
	ResourceQuotation ResourceType = "quotation"
	// ResourcePayment marks events against a payment record.
	ResourcePayment ResourceType = "payment"
	// ResourceWriterInterest marks events against a recruitment row.
	ResourceWriterInterest ResourceType = "writer_interest"
	// ResourceSubmission marks events against a quality-control submission.
	ResourceSubmission ResourceType = "submission"
)

// Validate checks that the resource type is one of the known kinds.
func (r ResourceType) Validate() error {
	switch r {
	case ResourceOrder, ResourceQuotation, ResourcePayment,
		ResourceWriterInterest, ResourceSubmission:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("resource type",
			fmt.Errorf("%s is not a valid resource type", string(r)))
	}
}

// String returns the resource type name. This method implements the
// fmt.Stringer interface.
func (r ResourceType) String() string {
	return string(r)
}
