package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ActiveBanners handles GET /api/v1/banners
// @Summary Get active banners
// @Description Returns published banners inside their display window for a placement
// @Tags banners
// @Produce json
// @Param placement query string true "Banner placement"
// @Success 200 {array} rest.Banner
// @Failure 400 {object} map[string]string
// @Router /api/v1/banners [get]
func (h *Handler) ActiveBanners(c echo.Context) error {
	placement := c.QueryParam("placement")
	if placement == "" {
		return h.handleError(c, nil, http.StatusBadRequest, "placement is required")
	}

	banners := h.m.Banners.Active(c.Request().Context(), placement)
	return c.JSON(http.StatusOK, Map(banners, NewBanner))
}

// TrackImpression handles POST /api/v1/banners/:id/impression
// @Summary Count a banner impression
// @Tags banners
// @Param id path int true "Banner ID"
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/banners/{id}/impression [post]
func (h *Handler) TrackImpression(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid banner id")
	}

	if err := h.m.Banners.TrackImpression(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// TrackClick handles POST /api/v1/banners/:id/click
// @Summary Count a banner click
// @Tags banners
// @Param id path int true "Banner ID"
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/banners/{id}/click [post]
func (h *Handler) TrackClick(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid banner id")
	}

	if err := h.m.Banners.TrackClick(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Settings handles GET /api/v1/settings
// @Summary Get site settings
// @Description Returns the site settings, or defaults when they are unavailable
// @Tags settings
// @Produce json
// @Success 200 {object} rest.Settings
// @Router /api/v1/settings [get]
func (h *Handler) Settings(c echo.Context) error {
	settings := h.m.Settings.Settings(c.Request().Context())
	return c.JSON(http.StatusOK, NewSettings(settings))
}

// RoadmapRequests handles GET /api/v1/roadmap
// @Summary List roadmap requests
// @Tags roadmap
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} rest.RoadmapRequest
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/roadmap [get]
func (h *Handler) RoadmapRequests(c echo.Context) error {
	requests, err := h.m.Roadmap.Requests(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(requests, NewRoadmapRequest))
}

// RoadmapRequest handles GET /api/v1/roadmap/:id
// @Summary Get a roadmap request
// @Tags roadmap
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} rest.RoadmapRequest
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/roadmap/{id} [get]
func (h *Handler) RoadmapRequest(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request id")
	}

	req, err := h.m.Roadmap.ByID(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	} else if req == nil {
		return h.handleError(c, nil, http.StatusNotFound, "roadmap request not found")
	}

	return c.JSON(http.StatusOK, NewRoadmapRequest(*req))
}

// RoadmapTimeline handles GET /api/v1/roadmap/:id/timeline
// @Summary Get the status history of a roadmap request
// @Tags roadmap
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {array} rest.RoadmapTimelineEntry
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/roadmap/{id}/timeline [get]
func (h *Handler) RoadmapTimeline(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request id")
	}

	entries, err := h.m.Roadmap.Timeline(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(entries, NewRoadmapTimelineEntry))
}

// RoadmapVote handles POST /api/v1/roadmap/:id/vote
// @Summary Vote for a roadmap request
// @Tags roadmap
// @Param id path int true "Request ID"
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/roadmap/{id}/vote [post]
func (h *Handler) RoadmapVote(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request id")
	}

	if err := h.m.Roadmap.Vote(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Subscribe handles POST /api/v1/newsletter/subscribe
// @Summary Subscribe to the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body rest.SubscribeRequest true "Subscriber"
// @Success 200 {object} rest.Subscription
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/newsletter/subscribe [post]
func (h *Handler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	sub, err := h.m.Newsletter.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewSubscription(*sub))
}

// Unsubscribe handles POST /api/v1/newsletter/unsubscribe
// @Summary Unsubscribe from the newsletter
// @Tags newsletter
// @Accept json
// @Param request body rest.SubscribeRequest true "Subscriber"
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/newsletter/unsubscribe [post]
func (h *Handler) Unsubscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	if err := h.m.Newsletter.Unsubscribe(c.Request().Context(), req.Email); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
