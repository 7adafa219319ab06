package billing

import (
	"errors"
	"fmt"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"
)

var (
	// ErrQuotationIsNotConstructed is returned when a Quotation was not created
	// through one of its factory methods.
	ErrQuotationIsNotConstructed = errors.New(
		"Quotation must be created via NewQuotation or RestoreQuotation constructor")
)

// Quotation is the priced offer a BDE prepares for an order. At most one
// quotation exists per order; re-quoting revises the existing one in place.
// The final price defaults to base + urgency charge + tax - discount but a
// BDE may override it with a negotiated figure.
type Quotation struct {
	// id is the unique identifier for the quotation
	id kernel.UUID

	// orderID is the order this quotation prices (unique per order)
	orderID kernel.UUID

	// basePrice, discount, urgencyCharge and tax are the price components
	basePrice     kernel.Money
	discount      kernel.Money
	urgencyCharge kernel.Money
	tax           kernel.Money

	// finalPrice is the amount the client pays
	finalPrice kernel.Money

	// notes carries the BDE's free-form remarks for the client
	notes string

	// version supports optimistic locking in the store
	version int

	// isConstructed ensures the quotation was created via a constructor
	isConstructed bool
}

// NewQuotation creates a quotation for an order. When finalPrice is nil it is
// computed as base + urgency charge + tax - discount; a negative result is
// rejected as an over-discount.
func NewQuotation(
	id kernel.UUID,
	orderID kernel.UUID,
	basePrice kernel.Money,
	discount kernel.Money,
	urgencyCharge kernel.Money,
	tax kernel.Money,
	finalPrice *kernel.Money,
	notes string,
) (*Quotation, error) {
	quotation := &Quotation{
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		quotation.setID(id),
		quotation.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	if err := quotation.setAmounts(basePrice, discount, urgencyCharge, tax, finalPrice); err != nil {
		return nil, err
	}
	quotation.notes = notes

	return quotation, nil
}

// RestoreQuotation reconstructs a Quotation aggregate from persistent storage.
func RestoreQuotation(
	id kernel.UUID,
	orderID kernel.UUID,
	basePrice kernel.Money,
	discount kernel.Money,
	urgencyCharge kernel.Money,
	tax kernel.Money,
	finalPrice kernel.Money,
	notes string,
	version int,
) (*Quotation, error) {
	quotation := &Quotation{
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		quotation.setID(id),
		quotation.setOrderID(orderID),
		quotation.setVersion(version),
	); err != nil {
		return nil, err
	}

	if err := quotation.setAmounts(basePrice, discount, urgencyCharge, tax, &finalPrice); err != nil {
		return nil, err
	}

	return quotation, nil
}

// Validate ensures the Quotation was properly constructed through a
// constructor.
func (q *Quotation) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuotationIsNotConstructed
	}
	return nil
}

// ID returns the quotation's unique identifier.
func (q *Quotation) ID() kernel.UUID {
	return q.id
}

// OrderID returns the order this quotation prices.
func (q *Quotation) OrderID() kernel.UUID {
	return q.orderID
}

// BasePrice returns the base price component.
func (q *Quotation) BasePrice() kernel.Money {
	return q.basePrice
}

// Discount returns the discount component.
func (q *Quotation) Discount() kernel.Money {
	return q.discount
}

// UrgencyCharge returns the urgency charge component.
func (q *Quotation) UrgencyCharge() kernel.Money {
	return q.urgencyCharge
}

// Tax returns the tax component.
func (q *Quotation) Tax() kernel.Money {
	return q.tax
}

// FinalPrice returns the amount the client pays.
func (q *Quotation) FinalPrice() kernel.Money {
	return q.finalPrice
}

// Notes returns the BDE's free-form remarks.
func (q *Quotation) Notes() string {
	return q.notes
}

// Version returns the optimistic locking version of the aggregate.
func (q *Quotation) Version() int {
	return q.version
}

// Revise replaces the price components of an existing quotation. The same
// final price rules as NewQuotation apply.
func (q *Quotation) Revise(
	basePrice kernel.Money,
	discount kernel.Money,
	urgencyCharge kernel.Money,
	tax kernel.Money,
	finalPrice *kernel.Money,
	notes string,
) error {
	if err := q.Validate(); err != nil {
		return err
	}

	if err := q.setAmounts(basePrice, discount, urgencyCharge, tax, finalPrice); err != nil {
		return err
	}
	q.notes = notes
	return nil
}

// setAmounts validates the components and derives the final price when the
// caller did not supply one.
func (q *Quotation) setAmounts(
	basePrice kernel.Money,
	discount kernel.Money,
	urgencyCharge kernel.Money,
	tax kernel.Money,
	finalPrice *kernel.Money,
) error {
	if err := errors.Join(
		basePrice.Validate(),
		discount.Validate(),
		urgencyCharge.Validate(),
		tax.Validate(),
	); err != nil {
		return err
	}

	computed := finalPrice
	if computed == nil {
		gross, err := basePrice.Add(urgencyCharge)
		if err != nil {
			return err
		}
		gross, err = gross.Add(tax)
		if err != nil {
			return err
		}
		net, err := gross.Subtract(discount)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("discount",
				fmt.Errorf("discount %s exceeds the gross price %s", discount, gross))
		}
		computed = &net
	} else if err := computed.Validate(); err != nil {
		return err
	}

	q.basePrice = basePrice
	q.discount = discount
	q.urgencyCharge = urgencyCharge
	q.tax = tax
	q.finalPrice = *computed
	return nil
}

// setID validates and sets the quotation's unique identifier.
// This is a private method used only during construction.
func (q *Quotation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.id = id
	return nil
}

// setOrderID validates and sets the order reference.
// This is a private method used only during construction.
func (q *Quotation) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

// setVersion validates and sets the optimistic locking version.
// This is a private method used only during restoration.
func (q *Quotation) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("quotation version",
			fmt.Errorf("%d is not a valid version", version))
	}
	q.version = version
	return nil
}
