package http

import (
	"errors"
	"net/http"

	"writedesk/internal/core/application/usecases/commands"
	"writedesk/internal/core/application/usecases/queries"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorHeader carries the authenticated caller's user ID. Authentication
// itself happens upstream; this service only resolves the ID against the
// identity provider when a use case needs the actor's role.
const actorHeader = "X-Actor-ID"

// Handlers bundles the use case handlers the HTTP server exposes.
type Handlers struct {
	// Command handlers
	CreateOrder          commands.CreateOrderCommandHandler
	QuoteOrder           commands.QuoteOrderCommandHandler
	AcceptQuotation      commands.AcceptQuotationCommandHandler
	RecordPayment        commands.RecordPaymentCommandHandler
	VerifyPayment        commands.VerifyPaymentCommandHandler
	RejectPayment        commands.RejectPaymentCommandHandler
	InviteWriters        commands.InviteWritersCommandHandler
	ShowInterest         commands.ShowInterestCommandHandler
	DeclineInvitation    commands.DeclineInvitationCommandHandler
	EvaluateTask         commands.EvaluateTaskCommandHandler
	AssignWriter         commands.AssignWriterCommandHandler
	ReassignWriter       commands.ReassignWriterCommandHandler
	RevokeWriter         commands.RevokeWriterCommandHandler
	SubmitWork           commands.SubmitWorkCommandHandler
	ApproveSubmission    commands.ApproveSubmissionCommandHandler
	RequestRevision      commands.RequestRevisionCommandHandler
	DeliverOrder         commands.DeliverOrderCommandHandler
	CompleteOrder        commands.CompleteOrderCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	MarkNotificationRead commands.MarkNotificationReadCommandHandler

	// Query handlers
	GetOrder           queries.GetOrderQueryHandler
	GetOrderAccess     queries.GetOrderAccessQueryHandler
	GetCurrentAssignee queries.GetCurrentAssigneeQueryHandler
	ListInterests      queries.ListInterestsByOrderQueryHandler
	ListNotifications  queries.ListNotificationsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes binds all API routes onto the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.GET("/orders/:orderId/access", s.GetOrderAccess)
	api.POST("/orders/:orderId/quotation", s.QuoteOrder)
	api.POST("/orders/:orderId/quotation/accept", s.AcceptQuotation)
	api.POST("/orders/:orderId/deliver", s.DeliverOrder)
	api.POST("/orders/:orderId/complete", s.CompleteOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)

	api.POST("/orders/:orderId/payments", s.RecordPayment)
	api.POST("/payments/:paymentId/verify", s.VerifyPayment)
	api.POST("/payments/:paymentId/reject", s.RejectPayment)

	api.POST("/orders/:orderId/invitations", s.InviteWriters)
	api.POST("/orders/:orderId/invitations/decline", s.DeclineInvitation)
	api.POST("/orders/:orderId/interest", s.ShowInterest)
	api.GET("/orders/:orderId/interests", s.ListInterests)
	api.POST("/orders/:orderId/evaluation", s.EvaluateTask)
	api.GET("/orders/:orderId/assignee", s.GetCurrentAssignee)
	api.POST("/orders/:orderId/assignee", s.AssignWriter)
	api.PUT("/orders/:orderId/assignee", s.ReassignWriter)
	api.DELETE("/orders/:orderId/assignee", s.RevokeWriter)

	api.POST("/orders/:orderId/submissions", s.SubmitWork)
	api.POST("/submissions/:submissionId/approve", s.ApproveSubmission)
	api.POST("/submissions/:submissionId/revision", s.RequestRevision)

	api.GET("/notifications", s.ListNotifications)
	api.POST("/notifications/:notificationId/read", s.MarkNotificationRead)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// errorResponse is the error payload of every non-2xx reply.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// idResponse returns the server-minted identifier of a freshly created resource.
type idResponse struct {
	ID string `json:"id"`
}

// respondError translates a use case error into an HTTP reply. Workflow
// violations map to 403, missing resources to 404, uniqueness and concurrent
// update collisions to 409, bad input to 400. Anything unrecognized is a 500
// with the detail withheld from the client.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var status int

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, commands.ErrNoAssignedWriter):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusBadRequest
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

// actorID extracts the calling user's ID from the X-Actor-ID header.
func actorID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(actorHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(actorHeader + " header")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(actorHeader+" header", err)
	}

	return id, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return id, nil
}

// optionalUUID renders a nullable UUID reference for JSON payloads.
func optionalUUID(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}

	s := id.String()

	return &s
}
