package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/newsroom/internal/newsportal"
)

type NewsCountRequest struct {
	TagID      *int `query:"tagId"`
	CategoryID *int `query:"categoryId"`
}

type SearchRequest struct {
	Query      string `query:"q"`
	CategoryID int    `query:"categoryId"`
	Limit      int    `query:"limit"`
}

// News handles GET /api/v1/news
// @Summary Get news
// @Description Retrieves published news with optional filtering by tagId and categoryId, with pagination. Returns NewsSummary (without content) sorted by publishedAt DESC
// @Tags news
// @Produce json
// @Param tagId query int false "Filter by tag ID"
// @Param categoryId query int false "Filter by category ID"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {array} rest.NewsSummary
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/news [get]
func (h *Handler) News(c echo.Context) error {
	var req NewsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	news, err := h.m.News.NewsByFilter(c.Request().Context(), newsportal.NewsFilter{
		TagID:      req.TagID,
		CategoryID: req.CategoryID,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewNewsSummaries(news))
}

// NewsCount handles GET /api/v1/count
// @Summary Get news count
// @Description Returns the count of published news matching the optional tagId and categoryId filters
// @Tags news
// @Produce json
// @Param tagId query int false "Filter by tag ID"
// @Param categoryId query int false "Filter by category ID"
// @Success 200 {integer} int
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/count [get]
func (h *Handler) NewsCount(c echo.Context) error {
	var req NewsCountRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	count, err := h.m.News.NewsCount(c.Request().Context(), req.TagID, req.CategoryID)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, count)
}

// NewsBySlug handles GET /api/v1/news/:slug
// @Summary Get news by slug
// @Description Retrieves a published news item with full content, category and tags, and counts the view
// @Tags news
// @Produce json
// @Param slug path string true "News slug"
// @Success 200 {object} rest.News
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/news/{slug} [get]
func (h *Handler) NewsBySlug(c echo.Context) error {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid slug")
	}

	news, err := h.m.News.BySlug(c.Request().Context(), slug)
	if err != nil {
		return h.fail(c, err)
	} else if news == nil {
		return h.handleError(c, nil, http.StatusNotFound, "news not found")
	}

	return c.JSON(http.StatusOK, NewNews(*news))
}

// Categories handles GET /api/v1/categories
// @Summary Get categories
// @Description Retrieves published categories ordered by orderNumber
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.m.Categories.ActiveCategories(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewCategories(categories))
}

// Tags handles GET /api/v1/tags
// @Summary Get tags
// @Description Retrieves all tags ordered by title
// @Tags tags
// @Produce json
// @Success 200 {array} rest.Tag
// @Failure 500 {object} map[string]string
// @Router /api/v1/tags [get]
func (h *Handler) Tags(c echo.Context) error {
	tags, err := h.m.Tags.Tags(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewTags(tags))
}

// Search handles GET /api/v1/search
// @Summary Full-text news search
// @Tags news
// @Produce json
// @Param q query string true "Search text"
// @Param categoryId query int false "Filter by category ID"
// @Param limit query int false "Max hits (default: 20, max: 100)"
// @Success 200 {object} rest.SearchResult
// @Failure 400,503 {object} map[string]string
// @Router /api/v1/search [get]
func (h *Handler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	res, err := h.m.Search.Search(c.Request().Context(), req.Query, req.CategoryID, req.Limit)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, SearchResult{
		Hits:  Map(res.Hits, NewSearchHit),
		Total: res.Total,
	})
}

// Featured handles GET /api/v1/featured
// @Summary Get featured news
// @Description Returns the featured news in display order. Missing or unpublished items are skipped
// @Tags featured
// @Produce json
// @Success 200 {array} rest.FeaturedNews
// @Router /api/v1/featured [get]
func (h *Handler) Featured(c echo.Context) error {
	list := h.m.Featured.Featured(c.Request().Context())
	return c.JSON(http.StatusOK, NewFeaturedList(list))
}
