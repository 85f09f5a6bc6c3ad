package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/newsroom/internal/analytics"
	"github.com/daniilsolovey/newsroom/internal/newsportal"
)

// Managers groups the services exposed over HTTP.
type Managers struct {
	News       *newsportal.NewsManager
	Featured   *newsportal.FeaturedManager
	Categories *newsportal.CategoryManager
	Tags       *newsportal.TagManager
	Banners    *newsportal.BannerManager
	Media      *newsportal.MediaManager
	Users      *newsportal.UserManager
	Settings   *newsportal.SettingsManager
	Roadmap    *newsportal.RoadmapManager
	Newsletter *newsportal.NewsletterManager
	Search     *newsportal.SearchManager
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	m   Managers
	db  Pinger
	log *slog.Logger
}

func NewHandler(m Managers, db Pinger, log *slog.Logger) *Handler {
	return &Handler{
		m:   m,
		db:  db,
		log: log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	if statusCode >= http.StatusInternalServerError {
		h.log.ErrorContext(c.Request().Context(), "handleError", "error", err, "statusCode", statusCode, "message", message)
	} else {
		h.log.WarnContext(c.Request().Context(), "handleError", "error", err, "statusCode", statusCode, "message", message)
	}
	return c.JSON(statusCode, map[string]string{"error": message})
}

func (h *Handler) handleFieldsError(c echo.Context, err error, statusCode int, message string, fields map[string]string) error {
	h.log.WarnContext(c.Request().Context(), "handleError", "error", err, "statusCode", statusCode, "fields", fields)
	return c.JSON(statusCode, map[string]interface{}{"error": message, "fields": fields})
}

// fail maps a manager error to its HTTP status.
func (h *Handler) fail(c echo.Context, err error) error {
	var verr *newsportal.ValidationError

	switch {
	case errors.Is(err, newsportal.ErrSlugTaken), errors.Is(err, newsportal.ErrEmailTaken):
		if errors.As(err, &verr) {
			return h.handleFieldsError(c, err, http.StatusConflict, "conflict", verr.Errors)
		}
		return h.handleError(c, err, http.StatusConflict, err.Error())
	case errors.As(err, &verr):
		return h.handleFieldsError(c, err, http.StatusBadRequest, "validation failed", verr.Errors)
	case errors.Is(err, newsportal.ErrNotFound):
		return h.handleError(c, err, http.StatusNotFound, "not found")
	case errors.Is(err, newsportal.ErrVersionConflict),
		errors.Is(err, newsportal.ErrInUse),
		errors.Is(err, newsportal.ErrInvalidTransition):
		return h.handleError(c, err, http.StatusConflict, err.Error())
	case errors.Is(err, newsportal.ErrTooManyItems),
		errors.Is(err, newsportal.ErrDuplicateItem),
		errors.Is(err, analytics.ErrInvalidRange):
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	case errors.Is(err, newsportal.ErrSearchDisabled):
		return h.handleError(c, err, http.StatusServiceUnavailable, err.Error())
	default:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s must be positive: %d", name, id)
	}
	return id, nil
}

// Health handles GET /health
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	if h.db != nil {
		if err := h.db.Ping(c.Request().Context()); err != nil {
			h.log.ErrorContext(c.Request().Context(), "health check failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
