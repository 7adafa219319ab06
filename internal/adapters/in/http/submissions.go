package http

import (
	"net/http"

	"writedesk/internal/core/application/usecases/commands"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type submitWorkRequest struct {
	FileRef string `json:"file_ref"`
	Note    string `json:"note,omitempty"`
}

type requestRevisionRequest struct {
	Note string `json:"note"`
}

// SubmitWork handles POST /api/v1/orders/:orderId/submissions - uploads the
// writer's finished draft for quality review.
func (s *Server) SubmitWork(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req submitWorkRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	submissionID := kernel.NewUUID()

	cmd, err := commands.NewSubmitWorkCommand(submissionID, orderID, actor, req.FileRef, req.Note)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.SubmitWork.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: submissionID.String()})
}

// ApproveSubmission handles POST /api/v1/submissions/:submissionId/approve -
// passes the draft through quality control.
func (s *Server) ApproveSubmission(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	submissionID, err := pathUUID(ctx, "submissionId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewApproveSubmissionCommand(submissionID, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.ApproveSubmission.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestRevision handles POST /api/v1/submissions/:submissionId/revision -
// sends the draft back to the writer with review notes.
func (s *Server) RequestRevision(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	submissionID, err := pathUUID(ctx, "submissionId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req requestRevisionRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewRequestRevisionCommand(submissionID, actor, req.Note)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.RequestRevision.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
