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

type CaseService interface {
	ListCases(ctx context.Context, filters domain.CaseFilters) ([]domain.CaseWithJudge, error)
	GetCase(ctx context.Context, id uint) (domain.CaseWithJudge, error)
	CreateCase(ctx context.Context, c domain.Case) (domain.Case, error)
	AnalyzeCase(ctx context.Context, id uint) (domain.CaseWithJudge, error)
}

type CaseHandler struct {
	svc CaseService
}

func NewCaseHandler(svc CaseService) *CaseHandler {
	return &CaseHandler{
		svc: svc,
	}
}

// HandleListCases godoc
// @Summary      List cases
// @Description  Returns cases with their judge embedded, date ascending. upcoming=true keeps only cases dated now or later; relevantOnly=true keeps politically relevant ones.
// @Tags         cases
// @Produce      json
// @Param        upcoming      query     bool  false  "only now-or-later cases"
// @Param        relevantOnly  query     bool  false  "only politically relevant cases"
// @Success      200           {array}   domain.CaseWithJudge
// @Failure      500           {object}  response.Err
// @Router       /api/cases [get]
func (h *CaseHandler) HandleListCases(ctx *gin.Context) {
	filters := domain.CaseFilters{
		Upcoming:     ctx.Query("upcoming") == "true",
		RelevantOnly: ctx.Query("relevantOnly") == "true",
	}

	cases, err := h.svc.ListCases(ctx.Request.Context(), filters)
	if err != nil {
		err = fmt.Errorf("v1.HandleListCases -> h.svc.ListCases -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, cases)
}

// HandleGetCase godoc
// @Summary      Get a case with its judge
// @Tags         cases
// @Produce      json
// @Param        id   path      int  true  "Case ID"
// @Success      200  {object}  domain.CaseWithJudge
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /api/cases/{id} [get]
func (h *CaseHandler) HandleGetCase(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	c, err := h.svc.GetCase(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCaseNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("case", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetCase -> h.svc.GetCase -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, c)
}

// HandleCreateCase godoc
// @Summary      Create a case
// @Description  Admin only. The judge reference must exist.
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateCaseRequest  true  "case fields"
// @Success      201      {object}  domain.Case
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /api/cases [post]
// @Security     BearerAuth
func (h *CaseHandler) HandleCreateCase(ctx *gin.Context) {
	var req request.CreateCaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	c, err := h.svc.CreateCase(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrJudgeNotFound) {
			response.RenderErr(ctx, response.ErrBadRequest(
				fmt.Errorf("judge %v does not exist", req.JudgeID)))
			return
		}

		err = fmt.Errorf("v1.HandleCreateCase -> h.svc.CreateCase -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, c)
}

// HandleAnalyzeCase godoc
// @Summary      Analyze a case
// @Description  Runs the relevance analysis and stores the result on the case.
// @Tags         cases
// @Produce      json
// @Param        id   path      int  true  "Case ID"
// @Success      200  {object}  domain.CaseWithJudge
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /api/cases/{id}/analyze [post]
// @Security     BearerAuth
func (h *CaseHandler) HandleAnalyzeCase(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	c, err := h.svc.AnalyzeCase(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCaseNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("case", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleAnalyzeCase -> h.svc.AnalyzeCase -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, c)
}
