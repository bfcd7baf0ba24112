package router

import (
	"context"
	"net/http"
	"strings"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/apperr"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/cache"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/categories"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/coordinator"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/dto"
	"github.com/labstack/echo/v4"
)

const APIPrefix = "/api/v1"

type ArticleCoordinator interface {
	FetchArticles(ctx context.Context, category, query string) coordinator.State
	Retry(ctx context.Context) coordinator.State
	State() coordinator.State
}

type NewsRouter struct {
	e           *echo.Echo
	coordinator ArticleCoordinator
	catalog     *categories.Catalog
}

func NewNewsRouter(e *echo.Echo, coordinator ArticleCoordinator, catalog *categories.Catalog) *NewsRouter {
	return &NewsRouter{
		e:           e,
		coordinator: coordinator,
		catalog:     catalog,
	}
}

func (r *NewsRouter) Bind() {
	g := r.e.Group(APIPrefix)
	g.GET("/articles", r.headlinesHandler)
	g.GET("/articles/search", r.searchHandler)
	g.POST("/articles/retry", r.retryHandler)
	g.GET("/articles/state", r.stateHandler)
	g.GET("/categories", r.categoriesHandler)
}

// headlinesHandler godoc
// @Summary Top headlines for a category
// @Description Served from the session cache when the category was fetched before. A failed fetch is reported in the error field with the previous articles kept.
// @Tags articles
// @Produce json
// @Param category query string false "Category id, defaults to general"
// @Success 200 {object} dto.ArticlesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/articles [get]
func (r *NewsRouter) headlinesHandler(c echo.Context) error {
	category := strings.TrimSpace(c.QueryParam("category"))
	if err := r.catalog.Validate(category); err != nil {
		return err
	}

	state := r.coordinator.FetchArticles(c.Request().Context(), category, "")
	return c.JSON(http.StatusOK, dto.NewArticlesResponse(state))
}

// searchHandler godoc
// @Summary Search articles
// @Tags articles
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} dto.ArticlesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/articles/search [get]
func (r *NewsRouter) searchHandler(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return apperr.NewValidation("query parameter 'q' is required")
	}

	state := r.coordinator.FetchArticles(c.Request().Context(), "", query)
	return c.JSON(http.StatusOK, dto.NewArticlesResponse(state))
}

// retryHandler godoc
// @Summary Repeat the last article request
// @Tags articles
// @Produce json
// @Success 200 {object} dto.ArticlesResponse
// @Router /api/v1/articles/retry [post]
func (r *NewsRouter) retryHandler(c echo.Context) error {
	state := r.coordinator.Retry(c.Request().Context())
	return c.JSON(http.StatusOK, dto.NewArticlesResponse(state))
}

// stateHandler godoc
// @Summary Current article state
// @Tags articles
// @Produce json
// @Success 200 {object} dto.ArticlesResponse
// @Router /api/v1/articles/state [get]
func (r *NewsRouter) stateHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewArticlesResponse(r.coordinator.State()))
}

// categoriesHandler godoc
// @Summary Selectable categories
// @Tags articles
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /api/v1/categories [get]
func (r *NewsRouter) categoriesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.CategoriesResponse{
		Categories: r.catalog.Categories,
		Default:    cache.DefaultCategory,
	})
}
