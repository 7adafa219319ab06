package http

import (
	"net/http"

	"writedesk/internal/core/application/usecases/commands"
	"writedesk/internal/core/application/usecases/queries"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type inviteWritersRequest struct {
	WriterIDs []string `json:"writer_ids"`
}

type declineInvitationRequest struct {
	Reason string `json:"reason"`
}

type evaluateTaskRequest struct {
	Doable bool   `json:"doable"`
	Note   string `json:"note,omitempty"`
}

type assignWriterRequest struct {
	WriterID string `json:"writer_id"`
}

type interestResponse struct {
	ID            string `json:"id"`
	WriterID      string `json:"writer_id"`
	State         string `json:"state"`
	DeclineReason string `json:"decline_reason,omitempty"`
	Verdict       string `json:"verdict"`
	VerdictNote   string `json:"verdict_note,omitempty"`
}

type assigneeResponse struct {
	WriterID *string `json:"writer_id"`
}

// InviteWriters handles POST /api/v1/orders/:orderId/invitations - opens the
// recruitment ledger for the listed writers.
func (s *Server) InviteWriters(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req inviteWritersRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	writerIDs := make([]kernel.UUID, 0, len(req.WriterIDs))
	for _, raw := range req.WriterIDs {
		writerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("writer_ids", err))
		}
		writerIDs = append(writerIDs, writerID)
	}

	cmd, err := commands.NewInviteWritersCommand(orderID, actor, writerIDs)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.InviteWriters.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeclineInvitation handles POST /api/v1/orders/:orderId/invitations/decline -
// lets the calling writer bow out of an invitation.
func (s *Server) DeclineInvitation(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req declineInvitationRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewDeclineInvitationCommand(orderID, actor, req.Reason)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.DeclineInvitation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShowInterest handles POST /api/v1/orders/:orderId/interest - records the
// calling writer's interest in the order.
func (s *Server) ShowInterest(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewShowInterestCommand(orderID, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.ShowInterest.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListInterests handles GET /api/v1/orders/:orderId/interests - returns the
// order's recruitment ledger.
func (s *Server) ListInterests(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewListInterestsByOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	interests, err := s.handlers.ListInterests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]interestResponse, len(interests))
	for i, interest := range interests {
		response[i] = interestResponse{
			ID:            interest.ID.String(),
			WriterID:      interest.WriterID.String(),
			State:         interest.State,
			DeclineReason: interest.DeclineReason,
			Verdict:       interest.Verdict,
			VerdictNote:   interest.VerdictNote,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// EvaluateTask handles POST /api/v1/orders/:orderId/evaluation - records the
// assigned writer's feasibility verdict.
func (s *Server) EvaluateTask(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req evaluateTaskRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewEvaluateTaskCommand(orderID, actor, req.Doable, req.Note)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.EvaluateTask.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCurrentAssignee handles GET /api/v1/orders/:orderId/assignee - reports
// who currently holds the order, if anyone.
func (s *Server) GetCurrentAssignee(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetCurrentAssigneeQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	assignee, err := s.handlers.GetCurrentAssignee.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assigneeResponse{WriterID: optionalUUID(assignee.WriterID)})
}

// AssignWriter handles POST /api/v1/orders/:orderId/assignee - hands the
// order to a writer from the interest ledger.
func (s *Server) AssignWriter(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req assignWriterRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	writerID, err := kernel.UUIDFromString(req.WriterID)
	if err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("writer_id", err))
	}

	cmd, err := commands.NewAssignWriterCommand(orderID, writerID, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.AssignWriter.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReassignWriter handles PUT /api/v1/orders/:orderId/assignee - replaces the
// current assignee with another writer in one step.
func (s *Server) ReassignWriter(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req assignWriterRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	writerID, err := kernel.UUIDFromString(req.WriterID)
	if err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("writer_id", err))
	}

	cmd, err := commands.NewReassignWriterCommand(orderID, writerID, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.ReassignWriter.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RevokeWriter handles DELETE /api/v1/orders/:orderId/assignee - takes the
// order back from the current assignee.
func (s *Server) RevokeWriter(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewRevokeWriterCommand(orderID, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.RevokeWriter.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
