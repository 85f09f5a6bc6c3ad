package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/newsroom/internal/newsportal"
)

var errMissingIfMatch = errors.New("missing If-Match header")

func etag(version int) string {
	return strconv.Quote(strconv.Itoa(version))
}

// ifMatchVersion reads the expected featured version from If-Match.
// "*" means any version.
func ifMatchVersion(c echo.Context) (int, error) {
	header := strings.TrimSpace(c.Request().Header.Get("If-Match"))
	if header == "" {
		return 0, errMissingIfMatch
	} else if header == "*" {
		return newsportal.AnyVersion, nil
	}

	value := strings.Trim(strings.TrimPrefix(header, "W/"), `"`)
	version, err := strconv.Atoi(value)
	if err != nil || version < 0 {
		return 0, fmt.Errorf("invalid If-Match %q", header)
	}

	return version, nil
}

func (h *Handler) versionError(c echo.Context, err error) error {
	if errors.Is(err, errMissingIfMatch) {
		return h.handleError(c, err, http.StatusPreconditionRequired, err.Error())
	}
	return h.handleError(c, err, http.StatusBadRequest, "invalid If-Match header")
}

func (h *Handler) featuredResponse(c echo.Context, cfg *newsportal.FeaturedConfig) error {
	out := NewFeaturedConfig(cfg)
	c.Response().Header().Set("ETag", etag(out.Version))
	return c.JSON(http.StatusOK, out)
}

// FeaturedConfig handles GET /api/v1/admin/featured
// @Summary Get the featured news list
// @Description Returns the stored featured ids with their version. The version is also sent as ETag
// @Tags featured
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Success 200 {object} rest.FeaturedConfig
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/admin/featured [get]
func (h *Handler) FeaturedConfig(c echo.Context) error {
	cfg, err := h.m.Featured.Config(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return h.featuredResponse(c, cfg)
}

// SetFeatured handles PUT /api/v1/admin/featured
// @Summary Replace the featured news list
// @Tags featured
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param If-Match header string true "Version from ETag, or *"
// @Param request body rest.FeaturedOrderRequest true "Ordered news ids"
// @Success 200 {object} rest.FeaturedConfig
// @Failure 400,401,409,428,500 {object} map[string]string
// @Router /api/v1/admin/featured [put]
func (h *Handler) SetFeatured(c echo.Context) error {
	version, err := ifMatchVersion(c)
	if err != nil {
		return h.versionError(c, err)
	}

	var req FeaturedOrderRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}
	if req.NewsIDs == nil {
		req.NewsIDs = []int{}
	}

	cfg, err := h.m.Featured.SetOrder(c.Request().Context(), req.NewsIDs, actorFrom(c), version)
	if err != nil {
		return h.fail(c, err)
	}

	return h.featuredResponse(c, cfg)
}

// AddFeatured handles POST /api/v1/admin/featured/items
// @Summary Append a news item to the featured list
// @Tags featured
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param If-Match header string true "Version from ETag, or *"
// @Param request body rest.FeaturedItemRequest true "News id"
// @Success 200 {object} rest.FeaturedConfig
// @Failure 400,401,404,409,428,500 {object} map[string]string
// @Router /api/v1/admin/featured/items [post]
func (h *Handler) AddFeatured(c echo.Context) error {
	version, err := ifMatchVersion(c)
	if err != nil {
		return h.versionError(c, err)
	}

	var req FeaturedItemRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	news, err := h.m.News.ByID(c.Request().Context(), req.NewsID)
	if err != nil {
		return h.fail(c, err)
	} else if news == nil {
		return h.handleError(c, nil, http.StatusNotFound, "news not found")
	}

	return h.editFeatured(c, version, func(ids []int) ([]int, error) {
		return newsportal.AddFeatured(ids, req.NewsID)
	})
}

// RemoveFeatured handles DELETE /api/v1/admin/featured/items/:newsId
// @Summary Remove a news item from the featured list
// @Tags featured
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param If-Match header string true "Version from ETag, or *"
// @Param newsId path int true "News ID"
// @Success 200 {object} rest.FeaturedConfig
// @Failure 400,401,409,428,500 {object} map[string]string
// @Router /api/v1/admin/featured/items/{newsId} [delete]
func (h *Handler) RemoveFeatured(c echo.Context) error {
	version, err := ifMatchVersion(c)
	if err != nil {
		return h.versionError(c, err)
	}

	newsID, err := pathID(c, "newsId")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid news id")
	}

	return h.editFeatured(c, version, func(ids []int) ([]int, error) {
		return newsportal.RemoveFeatured(ids, newsID), nil
	})
}

// MoveFeatured handles POST /api/v1/admin/featured/move
// @Summary Move a featured item to another position
// @Tags featured
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param If-Match header string true "Version from ETag, or *"
// @Param request body rest.FeaturedMoveRequest true "1-based positions"
// @Success 200 {object} rest.FeaturedConfig
// @Failure 400,401,409,428,500 {object} map[string]string
// @Router /api/v1/admin/featured/move [post]
func (h *Handler) MoveFeatured(c echo.Context) error {
	version, err := ifMatchVersion(c)
	if err != nil {
		return h.versionError(c, err)
	}

	var req FeaturedMoveRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	return h.editFeatured(c, version, func(ids []int) ([]int, error) {
		return newsportal.MoveFeatured(ids, req.From, req.To)
	})
}

// editFeatured applies edit to the stored list and saves it if the stored version still
// matches version.
func (h *Handler) editFeatured(c echo.Context, version int, edit func(ids []int) ([]int, error)) error {
	ctx := c.Request().Context()

	cfg, err := h.m.Featured.Config(ctx)
	if err != nil {
		return h.fail(c, err)
	}

	current, ids := 0, []int{}
	if cfg != nil {
		current, ids = cfg.Version, cfg.NewsIDs
	}
	if version != newsportal.AnyVersion && version != current {
		return h.fail(c, newsportal.ErrVersionConflict)
	}

	next, err := edit(ids)
	if err != nil {
		return h.fail(c, err)
	}

	saved, err := h.m.Featured.SetOrder(ctx, next, actorFrom(c), current)
	if err != nil {
		return h.fail(c, err)
	}

	return h.featuredResponse(c, saved)
}

// FeaturedPreview handles GET /api/v1/admin/featured/preview
// @Summary Preview the materialized featured list
// @Description Same as the public list, but storage failures are reported instead of hidden
// @Tags featured
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Success 200 {array} rest.FeaturedNews
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/admin/featured/preview [get]
func (h *Handler) FeaturedPreview(c echo.Context) error {
	list, err := h.m.Featured.Materialize(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewFeaturedList(list))
}

// EnsureFeaturedDefault handles POST /api/v1/admin/featured/default
// @Summary Seed the featured list with the latest news if it was never saved
// @Tags featured
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Success 200 {object} map[string]bool
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/admin/featured/default [post]
func (h *Handler) EnsureFeaturedDefault(c echo.Context) error {
	created, err := h.m.Featured.EnsureDefault(c.Request().Context(), actorFrom(c))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"created": created})
}
