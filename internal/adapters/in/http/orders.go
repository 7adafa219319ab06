package http

import (
	"net/http"
	"time"

	"writedesk/internal/core/application/usecases/commands"
	"writedesk/internal/core/application/usecases/queries"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/order"
	"writedesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	Topic    string    `json:"topic"`
	Subject  string    `json:"subject"`
	Urgency  string    `json:"urgency"`
	Deadline time.Time `json:"deadline"`
}

type quoteOrderRequest struct {
	BasePrice     int64  `json:"base_price"`
	Discount      int64  `json:"discount"`
	UrgencyCharge int64  `json:"urgency_charge"`
	Tax           int64  `json:"tax"`
	FinalPrice    *int64 `json:"final_price,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

type orderResponse struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"client_id"`
	BDEID           *string   `json:"bde_id,omitempty"`
	Topic           string    `json:"topic"`
	Subject         string    `json:"subject"`
	Urgency         string    `json:"urgency"`
	Deadline        time.Time `json:"deadline"`
	QueryCode       string    `json:"query_code"`
	WorkCode        *string   `json:"work_code,omitempty"`
	Status          string    `json:"status"`
	AssignedWriter  *string   `json:"assigned_writer,omitempty"`
	BasicPrice      int64     `json:"basic_price"`
	Discount        int64     `json:"discount"`
	TotalPrice      int64     `json:"total_price"`
	DeadlineAlerted bool      `json:"deadline_alerted"`
	Version         int       `json:"version"`
}

type orderAccessResponse struct {
	ClientID string  `json:"client_id"`
	WriterID *string `json:"writer_id,omitempty"`
	BDEID    *string `json:"bde_id,omitempty"`
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	urgency, err := order.UrgencyFromString(req.Urgency)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, actor, req.Topic, req.Subject, urgency, req.Deadline)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	found, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse{
		ID:              found.ID.String(),
		ClientID:        found.ClientID.String(),
		BDEID:           optionalUUID(found.BDEID),
		Topic:           found.Topic,
		Subject:         found.Subject,
		Urgency:         found.Urgency,
		Deadline:        found.Deadline,
		QueryCode:       found.QueryCode,
		WorkCode:        found.WorkCode,
		Status:          found.Status,
		AssignedWriter:  optionalUUID(found.AssignedWriter),
		BasicPrice:      found.BasicPrice,
		Discount:        found.Discount,
		TotalPrice:      found.TotalPrice,
		DeadlineAlerted: found.DeadlineAlerted,
		Version:         found.Version,
	})
}

// GetOrderAccess handles GET /api/v1/orders/:orderId/access - lists the
// parties allowed into the order's conversation.
func (s *Server) GetOrderAccess(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetOrderAccessQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	access, err := s.handlers.GetOrderAccess.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderAccessResponse{
		ClientID: access.ClientID.String(),
		WriterID: optionalUUID(access.WriterID),
		BDEID:    optionalUUID(access.BDEID),
	})
}

// QuoteOrder handles POST /api/v1/orders/:orderId/quotation - prices a
// pending order.
func (s *Server) QuoteOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req quoteOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewQuoteOrderCommand(
		orderID,
		actor,
		req.BasePrice,
		req.Discount,
		req.UrgencyCharge,
		req.Tax,
		req.FinalPrice,
		req.Notes,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.QuoteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptQuotation handles POST /api/v1/orders/:orderId/quotation/accept -
// records the client's agreement to the quoted price.
func (s *Server) AcceptQuotation(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptQuotationCommand(orderID, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.AcceptQuotation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/:orderId/deliver - releases the
// approved work to the client.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.DeliverOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:orderId/complete - closes a
// delivered order.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel - aborts an order
// that has not been delivered yet.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req cancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor, req.Reason)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
