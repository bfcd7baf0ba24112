package router

import (
	"context"
	"net/http"
	"strconv"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/apperr"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/domain"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/dto"
	"github.com/labstack/echo/v4"
)

type SummaryService interface {
	Summarize(ctx context.Context, article domain.Article) (domain.SavedSummary, error)
	List(ctx context.Context) []domain.SavedSummary
	Delete(ctx context.Context, id int64) error
}

type SummaryRouter struct {
	e       *echo.Echo
	service SummaryService
}

func NewSummaryRouter(e *echo.Echo, service SummaryService) *SummaryRouter {
	return &SummaryRouter{
		e:       e,
		service: service,
	}
}

func (r *SummaryRouter) Bind() {
	g := r.e.Group(APIPrefix)
	g.POST("/summaries", r.createHandler)
	g.GET("/summaries", r.listHandler)
	g.DELETE("/summaries/:id", r.deleteHandler)
}

// createHandler godoc
// @Summary Summarize an article and save the result
// @Tags summaries
// @Accept json
// @Produce json
// @Param article body dto.ArticleRequest true "Article as returned by the news provider"
// @Success 201 {object} dto.SavedSummary
// @Failure 400 {object} dto.ErrorResponse "Article has no content or description"
// @Failure 502 {object} dto.ErrorResponse "Summarization provider failed"
// @Failure 503 {object} dto.ErrorResponse "Summarization is not configured"
// @Router /api/v1/summaries [post]
func (r *SummaryRouter) createHandler(c echo.Context) error {
	var req dto.ArticleRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	saved, err := r.service.Summarize(c.Request().Context(), req.ToDomain())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.SavedSummaryFromDomain(saved))
}

// listHandler godoc
// @Summary Saved summaries, newest first
// @Tags summaries
// @Produce json
// @Success 200 {object} dto.SavedSummariesResponse
// @Router /api/v1/summaries [get]
func (r *SummaryRouter) listHandler(c echo.Context) error {
	saved := r.service.List(c.Request().Context())
	return c.JSON(http.StatusOK, dto.NewSavedSummariesResponse(saved))
}

// deleteHandler godoc
// @Summary Delete a saved summary
// @Tags summaries
// @Param id path int true "Summary id"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/summaries/{id} [delete]
func (r *SummaryRouter) deleteHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperr.NewValidationWrap("invalid summary id", err)
	}

	if err := r.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
