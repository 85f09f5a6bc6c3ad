package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/newsroom/internal/newsportal"
)

// NewsByID handles GET /api/v1/admin/news/:id
// @Summary Get news by ID in any status
// @Tags admin
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param id path int true "News ID"
// @Success 200 {object} rest.News
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/v1/admin/news/{id} [get]
func (h *Handler) NewsByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid news id")
	}

	news, err := h.m.News.ByID(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	} else if news == nil {
		return h.handleError(c, nil, http.StatusNotFound, "news not found")
	}

	return c.JSON(http.StatusOK, NewNews(*news))
}

// CreateNews handles POST /api/v1/admin/news
// @Summary Create news
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param request body newsportal.NewsInput true "News"
// @Success 201 {object} rest.News
// @Failure 400,401,409,500 {object} map[string]string
// @Router /api/v1/admin/news [post]
func (h *Handler) CreateNews(c echo.Context) error {
	var in newsportal.NewsInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	news, err := h.m.News.Create(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, err)
	}

	h.log.InfoContext(c.Request().Context(), "news created", "newsId", news.ID, "actor", actorFrom(c))
	return c.JSON(http.StatusCreated, NewNews(*news))
}

// UpdateNews handles PUT /api/v1/admin/news/:id
// @Summary Update news
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param id path int true "News ID"
// @Param request body newsportal.NewsInput true "News"
// @Success 200 {object} rest.News
// @Failure 400,401,404,409,500 {object} map[string]string
// @Router /api/v1/admin/news/{id} [put]
func (h *Handler) UpdateNews(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid news id")
	}

	var in newsportal.NewsInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	news, err := h.m.News.Update(c.Request().Context(), id, in)
	if err != nil {
		return h.fail(c, err)
	}

	h.log.InfoContext(c.Request().Context(), "news updated", "newsId", id, "actor", actorFrom(c))
	return c.JSON(http.StatusOK, NewNews(*news))
}

// SetNewsStatus handles PUT /api/v1/admin/news/:id/status
// @Summary Publish, unpublish or archive news
// @Tags admin
// @Accept json
// @Param X-Actor-ID header string true "Editor id"
// @Param id path int true "News ID"
// @Param request body rest.NewsStatusRequest true "Status"
// @Success 204
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/v1/admin/news/{id}/status [put]
func (h *Handler) SetNewsStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid news id")
	}

	var req NewsStatusRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	if err := h.m.News.SetStatus(c.Request().Context(), id, req.StatusID); err != nil {
		return h.fail(c, err)
	}

	h.log.InfoContext(c.Request().Context(), "news status changed", "newsId", id, "statusId", req.StatusID, "actor", actorFrom(c))
	return c.NoContent(http.StatusNoContent)
}

// DeleteNews handles DELETE /api/v1/admin/news/:id
// @Summary Delete news
// @Tags admin
// @Param X-Actor-ID header string true "Editor id"
// @Param id path int true "News ID"
// @Success 204
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/v1/admin/news/{id} [delete]
func (h *Handler) DeleteNews(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid news id")
	}

	if err := h.m.News.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}

	h.log.InfoContext(c.Request().Context(), "news deleted", "newsId", id, "actor", actorFrom(c))
	return c.NoContent(http.StatusNoContent)
}

// AllCategories handles GET /api/v1/admin/categories
// @Summary Get categories in any status
// @Tags admin
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Success 200 {array} rest.Category
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/admin/categories [get]
func (h *Handler) AllCategories(c echo.Context) error {
	categories, err := h.m.Categories.Categories(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewCategories(categories))
}

// CategoryByID handles GET /api/v1/admin/categories/:id
// @Summary Get category by ID
// @Tags admin
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param id path int true "Category ID"
// @Success 200 {object} rest.Category
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/v1/admin/categories/{id} [get]
func (h *Handler) CategoryByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid category id")
	}

	category, err := h.m.Categories.ByID(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	} else if category == nil {
		return h.handleError(c, nil, http.StatusNotFound, "category not found")
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

// CreateCategory handles POST /api/v1/admin/categories
// @Summary Create category
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param request body newsportal.CategoryInput true "Category"
// @Success 201 {object} rest.Category
// @Failure 400,401,409,500 {object} map[string]string
// @Router /api/v1/admin/categories [post]
func (h *Handler) CreateCategory(c echo.Context) error {
	var in newsportal.CategoryInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	category, err := h.m.Categories.Create(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, NewCategory(*category))
}

// UpdateCategory handles PUT /api/v1/admin/categories/:id
// @Summary Update category
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param id path int true "Category ID"
// @Param request body newsportal.CategoryInput true "Category"
// @Success 200 {object} rest.Category
// @Failure 400,401,404,409,500 {object} map[string]string
// @Router /api/v1/admin/categories/{id} [put]
func (h *Handler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid category id")
	}

	var in newsportal.CategoryInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	category, err := h.m.Categories.Update(c.Request().Context(), id, in)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

// DeleteCategory handles DELETE /api/v1/admin/categories/:id
// @Summary Delete category
// @Description Categories still referenced by news cannot be deleted
// @Tags admin
// @Param X-Actor-ID header string true "Editor id"
// @Param id path int true "Category ID"
// @Success 204
// @Failure 400,401,404,409,500 {object} map[string]string
// @Router /api/v1/admin/categories/{id} [delete]
func (h *Handler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid category id")
	}

	if err := h.m.Categories.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateTag handles POST /api/v1/admin/tags
// @Summary Create tag
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param request body newsportal.TagInput true "Tag"
// @Success 201 {object} rest.Tag
// @Failure 400,401,409,500 {object} map[string]string
// @Router /api/v1/admin/tags [post]
func (h *Handler) CreateTag(c echo.Context) error {
	var in newsportal.TagInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	tag, err := h.m.Tags.Create(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, NewTag(*tag))
}

// DeleteTag handles DELETE /api/v1/admin/tags/:id
// @Summary Delete tag
// @Tags admin
// @Param X-Actor-ID header string true "Editor id"
// @Param id path int true "Tag ID"
// @Success 204
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/v1/admin/tags/{id} [delete]
func (h *Handler) DeleteTag(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid tag id")
	}

	if err := h.m.Tags.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
