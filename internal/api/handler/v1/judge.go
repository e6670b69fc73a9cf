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

type JudgeService interface {
	ListJudges(ctx context.Context, search string) ([]domain.Judge, error)
	GetJudge(ctx context.Context, id uint) (domain.Judge, error)
	CreateJudge(ctx context.Context, judge domain.Judge) (domain.Judge, error)
}

type JudgeHandler struct {
	svc JudgeService
}

func NewJudgeHandler(svc JudgeService) *JudgeHandler {
	return &JudgeHandler{
		svc: svc,
	}
}

// HandleListJudges godoc
// @Summary      List judges
// @Description  Returns judges ordered by rating descending. An optional search term filters on name or court.
// @Tags         judges
// @Produce      json
// @Param        search  query     string  false  "substring to match against name or court"
// @Success      200     {array}   domain.Judge
// @Failure      500     {object}  response.Err
// @Router       /api/judges [get]
func (h *JudgeHandler) HandleListJudges(ctx *gin.Context) {
	search := ctx.Query("search")

	judges, err := h.svc.ListJudges(ctx.Request.Context(), search)
	if err != nil {
		err = fmt.Errorf("v1.HandleListJudges -> h.svc.ListJudges -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, judges)
}

// HandleGetJudge godoc
// @Summary      Get a judge
// @Tags         judges
// @Produce      json
// @Param        id   path      int  true  "Judge ID"
// @Success      200  {object}  domain.Judge
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /api/judges/{id} [get]
func (h *JudgeHandler) HandleGetJudge(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	judge, err := h.svc.GetJudge(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrJudgeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("judge", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetJudge -> h.svc.GetJudge -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, judge)
}

// HandleCreateJudge godoc
// @Summary      Create a judge
// @Description  Admin only.
// @Tags         judges
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateJudgeRequest  true  "judge fields"
// @Success      201      {object}  domain.Judge
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /api/judges [post]
// @Security     BearerAuth
func (h *JudgeHandler) HandleCreateJudge(ctx *gin.Context) {
	var req request.CreateJudgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	judge, err := h.svc.CreateJudge(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateJudge -> h.svc.CreateJudge -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, judge)
}
