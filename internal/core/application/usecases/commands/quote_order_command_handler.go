package commands

import (
	"context"
	"errors"
	"fmt"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/billing"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/ports"
	"writedesk/internal/pkg/errs"
)

// QuoteOrderCommandHandler prices an order. The first quote moves the order
// from "Pending" to "Quoted" and creates the quotation; later quotes revise
// the existing quotation in place. A BDE who quotes becomes the order's BDE;
// an admin re-quote leaves the original BDE attached.
type QuoteOrderCommandHandler struct {
	uowFactory QuotationUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewQuoteOrderCommandHandler creates a handler for quoting operations.
func NewQuoteOrderCommandHandler(
	uowFactory QuotationUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) QuoteOrderCommandHandler {
	return QuoteOrderCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the quoting command.
// Loads the order, creates or revises its quotation and applies the result to
// the order within one transaction. The transition table rejects actors who
// may not quote from the order's current status.
func (h QuoteOrderCommandHandler) Handle(ctx context.Context, cmd QuoteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := resolveActor(ctx, h.identity, cmd.ActorID())
	if err != nil {
		return err
	}

	amounts, err := h.buildAmounts(cmd)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	quotationRepo := uow.QuotationRepository()
	quotation, err := quotationRepo.GetByOrder(ctx, cmd.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		quotation, err = billing.NewQuotation(
			kernel.NewUUID(), cmd.OrderID(),
			amounts.base, amounts.discount, amounts.urgencyCharge, amounts.tax,
			amounts.finalPrice, cmd.Notes())
		if err != nil {
			return err
		}
		if err = quotationRepo.Add(ctx, quotation); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = quotation.Revise(
			amounts.base, amounts.discount, amounts.urgencyCharge, amounts.tax,
			amounts.finalPrice, cmd.Notes()); err != nil {
			return err
		}
		if err = quotationRepo.Update(ctx, quotation); err != nil {
			return err
		}
	}

	var bdeID *kernel.UUID
	if user.Role == kernel.RoleBDE {
		actorID := cmd.ActorID()
		bdeID = &actorID
	}

	before := ord.Status().String()
	if err = ord.ApplyQuotation(
		user.Role, bdeID, quotation.BasePrice(), quotation.Discount(), quotation.FinalPrice()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	event, err := audit.NewEvent(
		cmd.ActorID(), user.Role,
		audit.ActionOrderQuoted, audit.ResourceQuotation, quotation.ID(), ord.ID(),
		before, ord.Status().String(),
		fmt.Sprintf("order %s quoted at %s", ord.QueryCode(), quotation.FinalPrice()),
		audit.NewRecipient(ord.ClientID(), ""),
	)
	if err != nil {
		return err
	}
	uow.StageEvent(event)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, uow.StagedEvents()...)

	return nil
}

// quotationAmounts carries the command's cents converted into money values.
type quotationAmounts struct {
	base          kernel.Money
	discount      kernel.Money
	urgencyCharge kernel.Money
	tax           kernel.Money
	finalPrice    *kernel.Money
}

func (h QuoteOrderCommandHandler) buildAmounts(cmd QuoteOrderCommand) (quotationAmounts, error) {
	var (
		amounts quotationAmounts
		err     error
	)

	if amounts.base, err = kernel.NewMoney(cmd.BasePriceCents()); err != nil {
		return quotationAmounts{}, err
	}
	if amounts.discount, err = kernel.NewMoney(cmd.DiscountCents()); err != nil {
		return quotationAmounts{}, err
	}
	if amounts.urgencyCharge, err = kernel.NewMoney(cmd.UrgencyChargeCents()); err != nil {
		return quotationAmounts{}, err
	}
	if amounts.tax, err = kernel.NewMoney(cmd.TaxCents()); err != nil {
		return quotationAmounts{}, err
	}
	if cmd.FinalPriceCents() != nil {
		finalPrice, err := kernel.NewMoney(*cmd.FinalPriceCents())
		if err != nil {
			return quotationAmounts{}, err
		}
		amounts.finalPrice = &finalPrice
	}

	return amounts, nil
}
