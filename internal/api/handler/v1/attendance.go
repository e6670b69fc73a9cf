package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courtwatchhq/courtwatch-api/internal/api/handler/v1/request"
	"github.com/courtwatchhq/courtwatch-api/internal/api/handler/v1/response"
	"github.com/courtwatchhq/courtwatch-api/internal/domain"
	"github.com/courtwatchhq/courtwatch-api/internal/service"
)

type AttendanceService interface {
	MarkAttendance(ctx context.Context, userID string, caseID uint, status domain.AttendanceStatus) (domain.Attendance, error)
	GetUserAttendance(ctx context.Context, userID string) ([]domain.AttendanceWithCase, error)
	Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type AttendanceHandler struct {
	svc AttendanceService
}

func NewAttendanceHandler(svc AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		svc: svc,
	}
}

// HandleMarkAttendance godoc
// @Summary      Mark attendance at a case hearing
// @Description  Users can only mark attendance for themselves. Points follow the status: planned 0, attended 10.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        request  body      request.MarkAttendanceRequest  true  "attendance"
// @Success      201      {object}  domain.Attendance
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /api/attendance [post]
// @Security     BearerAuth
func (h *AttendanceHandler) HandleMarkAttendance(ctx *gin.Context) {
	principal, respErr := principalID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	// Users mark attendance for themselves only.
	if req.UserID != principal {
		response.RenderErr(ctx, response.ErrPermissionDenied(
			errors.New("cannot mark attendance for another user")))
		return
	}

	att, err := h.svc.MarkAttendance(ctx.Request.Context(), req.UserID, req.CaseID, domain.AttendanceStatus(req.Status))
	if err != nil {
		if errors.Is(err, service.ErrCaseNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("case", "id", req.CaseID))
			return
		}
		if errors.Is(err, service.ErrInvalidStatus) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidStatus))
			return
		}

		err = fmt.Errorf("v1.HandleMarkAttendance -> h.svc.MarkAttendance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, att)
}

// HandleGetMyAttendance godoc
// @Summary      List the authenticated user's attendance records
// @Tags         attendance
// @Produce      json
// @Success      200  {array}   domain.AttendanceWithCase
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /api/attendance/me [get]
// @Security     BearerAuth
func (h *AttendanceHandler) HandleGetMyAttendance(ctx *gin.Context) {
	principal, respErr := principalID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	rows, err := h.svc.GetUserAttendance(ctx.Request.Context(), principal)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMyAttendance -> h.svc.GetUserAttendance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// HandleGetLeaderboard godoc
// @Summary      Top users by attendance points
// @Tags         leaderboard
// @Produce      json
// @Success      200  {array}   domain.LeaderboardEntry
// @Failure      500  {object}  response.Err
// @Router       /api/leaderboard [get]
func (h *AttendanceHandler) HandleGetLeaderboard(ctx *gin.Context) {
	entries, err := h.svc.Leaderboard(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetLeaderboard -> h.svc.Leaderboard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, entries)
}
