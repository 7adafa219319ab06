package http

import (
	"net/http"
	"strconv"
	"time"

	"writedesk/internal/core/application/usecases/commands"
	"writedesk/internal/core/application/usecases/queries"
	"writedesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type notificationResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Action    string    `json:"action"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// ListNotifications handles GET /api/v1/notifications - returns the calling
// user's inbox, newest first. Pass unread_only=true to hide read rows.
func (s *Server) ListNotifications(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	unreadOnly := false
	if raw := ctx.QueryParam("unread_only"); raw != "" {
		unreadOnly, err = strconv.ParseBool(raw)
		if err != nil {
			return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("unread_only", err))
		}
	}

	query, err := queries.NewListNotificationsQuery(actor, unreadOnly)
	if err != nil {
		return s.respondError(ctx, err)
	}

	notifications, err := s.handlers.ListNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]notificationResponse, len(notifications))
	for i, notification := range notifications {
		response[i] = notificationResponse{
			ID:        notification.ID.String(),
			OrderID:   notification.OrderID.String(),
			Action:    notification.Action,
			Message:   notification.Message,
			IsRead:    notification.IsRead,
			CreatedAt: notification.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles POST /api/v1/notifications/:notificationId/read -
// marks one of the calling user's notifications as read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	notificationID, err := pathUUID(ctx, "notificationId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.MarkNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
