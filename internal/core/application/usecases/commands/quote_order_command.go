package commands

import (
	"errors"
	"fmt"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"
	"writedesk/internal/pkg/guard"
)

var ErrQuoteOrderCommandIsNotConstructed = errors.New(
	"QuoteOrderCommand must be created via NewQuoteOrderCommand constructor",
)

// QuoteOrderCommand represents a request to price an order. Carries the
// price components in cents; the final price is derived unless an explicit
// override is supplied. Re-issuing the command against an already quoted
// order revises the existing quotation.
type QuoteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	actorID            kernel.UUID
	basePriceCents     int64
	discountCents      int64
	urgencyChargeCents int64
	taxCents           int64
	finalPriceCents    *int64
	notes              string

	guard guard.ConstructorGuard
}

// NewQuoteOrderCommand creates a command to quote or re-quote an order.
// All price components must be non-negative. Pass nil for finalPriceCents to
// derive the final price as base + urgency charge + tax - discount.
func NewQuoteOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	basePriceCents int64,
	discountCents int64,
	urgencyChargeCents int64,
	taxCents int64,
	finalPriceCents *int64,
	notes string,
) (QuoteOrderCommand, error) {
	cmd := QuoteOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setAmount("basePriceCents", basePriceCents, &cmd.basePriceCents),
		cmd.setAmount("discountCents", discountCents, &cmd.discountCents),
		cmd.setAmount("urgencyChargeCents", urgencyChargeCents, &cmd.urgencyChargeCents),
		cmd.setAmount("taxCents", taxCents, &cmd.taxCents),
		cmd.setFinalPrice(finalPriceCents),
	); err != nil {
		return QuoteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrQuoteOrderCommandIsNotConstructed if validation fails.
func (c QuoteOrderCommand) Validate() error {
	return c.guard.Validate(ErrQuoteOrderCommandIsNotConstructed)
}

// OrderID returns the order to price.
func (c QuoteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the quoting BDE or admin.
func (c QuoteOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// BasePriceCents returns the base price component in cents.
func (c QuoteOrderCommand) BasePriceCents() int64 {
	return c.basePriceCents
}

// DiscountCents returns the discount component in cents.
func (c QuoteOrderCommand) DiscountCents() int64 {
	return c.discountCents
}

// UrgencyChargeCents returns the urgency charge component in cents.
func (c QuoteOrderCommand) UrgencyChargeCents() int64 {
	return c.urgencyChargeCents
}

// TaxCents returns the tax component in cents.
func (c QuoteOrderCommand) TaxCents() int64 {
	return c.taxCents
}

// FinalPriceCents returns the explicit final price override in cents, or nil
// when the final price should be derived from the components.
func (c QuoteOrderCommand) FinalPriceCents() *int64 {
	return c.finalPriceCents
}

// Notes returns the quoting actor's free-form remarks.
func (c QuoteOrderCommand) Notes() string {
	return c.notes
}

func (c *QuoteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *QuoteOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *QuoteOrderCommand) setAmount(name string, cents int64, field *int64) error {
	if cents < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%d cents is negative", cents))
	}

	*field = cents
	return nil
}

func (c *QuoteOrderCommand) setFinalPrice(cents *int64) error {
	if cents == nil {
		return nil
	}
	if *cents < 0 {
		return errs.NewValueIsInvalidErrorWithCause("finalPriceCents",
			fmt.Errorf("%d cents is negative", *cents))
	}

	value := *cents
	c.finalPriceCents = &value
	return nil
}
