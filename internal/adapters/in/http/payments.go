package http

import (
	"net/http"

	"writedesk/internal/core/application/usecases/commands"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type recordPaymentRequest struct {
	Amount int64 `json:"amount"`
}

type verifyPaymentRequest struct {
	Percent int `json:"percent"`
}

type rejectPaymentRequest struct {
	Reason string `json:"reason"`
}

// RecordPayment handles POST /api/v1/orders/:orderId/payments - registers a
// client payment claim for later verification.
func (s *Server) RecordPayment(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req recordPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	paymentID := kernel.NewUUID()

	cmd, err := commands.NewRecordPaymentCommand(paymentID, orderID, actor, req.Amount)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.RecordPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: paymentID.String()})
}

// VerifyPayment handles POST /api/v1/payments/:paymentId/verify - confirms a
// payment claim and moves the order into production once enough is paid.
func (s *Server) VerifyPayment(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	paymentID, err := pathUUID(ctx, "paymentId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req verifyPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewVerifyPaymentCommand(paymentID, actor, req.Percent)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.VerifyPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectPayment handles POST /api/v1/payments/:paymentId/reject - dismisses a
// payment claim that could not be confirmed.
func (s *Server) RejectPayment(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	paymentID, err := pathUUID(ctx, "paymentId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req rejectPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewRejectPaymentCommand(paymentID, actor, req.Reason)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.RejectPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
