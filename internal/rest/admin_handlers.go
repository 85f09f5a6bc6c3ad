package rest

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/newsroom/internal/newsportal"
)

const (
	statsDayLayout    = "2006-01-02"
	defaultStatsRange = 30
)

type BannerStatsRequest struct {
	From string `query:"from"`
	To   string `query:"to"`
}

type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

// Banners handles GET /api/v1/admin/banners
// @Summary Get all banners
// @Tags admin
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Success 200 {array} rest.Banner
// @Router /api/v1/admin/banners [get]
func (h *Handler) Banners(c echo.Context) error {
	banners, err := h.m.Banners.Banners(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(banners, NewBanner))
}

// BannerByID handles GET /api/v1/admin/banners/:id
// @Summary Get banner by ID
// @Tags admin
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param id path int true "Banner ID"
// @Success 200 {object} rest.Banner
// @Router /api/v1/admin/banners/{id} [get]
func (h *Handler) BannerByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid banner id")
	}

	banner, err := h.m.Banners.ByID(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	} else if banner == nil {
		return h.handleError(c, nil, http.StatusNotFound, "banner not found")
	}

	return c.JSON(http.StatusOK, NewBanner(*banner))
}

// CreateBanner handles POST /api/v1/admin/banners
// @Summary Create banner
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param request body newsportal.BannerInput true "Banner"
// @Success 201 {object} rest.Banner
// @Router /api/v1/admin/banners [post]
func (h *Handler) CreateBanner(c echo.Context) error {
	var in newsportal.BannerInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	banner, err := h.m.Banners.Create(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, NewBanner(*banner))
}

// UpdateBanner handles PUT /api/v1/admin/banners/:id
// @Summary Update banner
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param id path int true "Banner ID"
// @Param request body newsportal.BannerInput true "Banner"
// @Success 200 {object} rest.Banner
// @Router /api/v1/admin/banners/{id} [put]
func (h *Handler) UpdateBanner(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid banner id")
	}

	var in newsportal.BannerInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	banner, err := h.m.Banners.Update(c.Request().Context(), id, in)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewBanner(*banner))
}

// DeleteBanner handles DELETE /api/v1/admin/banners/:id
// @Summary Delete banner and its counters
// @Tags admin
// @Param X-Actor-ID header string true "Editor id"
// @Param id path int true "Banner ID"
// @Success 204
// @Router /api/v1/admin/banners/{id} [delete]
func (h *Handler) DeleteBanner(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid banner id")
	}

	if err := h.m.Banners.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// BannerStats handles GET /api/v1/admin/banners/:id/stats
// @Summary Get banner impressions and clicks per day
// @Description Both bounds are inclusive days. Defaults to the last 30 days
// @Tags admin
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param id path int true "Banner ID"
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Success 200 {object} rest.BannerStats
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/v1/admin/banners/{id}/stats [get]
func (h *Handler) BannerStats(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid banner id")
	}

	var req BannerStatsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	from, to, err := statsRange(req, time.Now().UTC())
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	}

	stats, err := h.m.Banners.Stats(c.Request().Context(), id, from, to)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewBannerStats(*stats))
}

func statsRange(req BannerStatsRequest, now time.Time) (from, to time.Time, err error) {
	to = now
	if req.To != "" {
		if to, err = time.Parse(statsDayLayout, req.To); err != nil {
			return from, to, fmt.Errorf("to must be a date like %s", statsDayLayout)
		}
	}

	from = to.AddDate(0, 0, -(defaultStatsRange - 1))
	if req.From != "" {
		if from, err = time.Parse(statsDayLayout, req.From); err != nil {
			return from, to, fmt.Errorf("from must be a date like %s", statsDayLayout)
		}
	}

	return from, to, nil
}

// MediaList handles GET /api/v1/admin/media
// @Summary List uploaded media, newest first
// @Tags admin
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10)"
// @Success 200 {array} rest.Media
// @Router /api/v1/admin/media [get]
func (h *Handler) MediaList(c echo.Context) error {
	var req PageRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	list, err := h.m.Media.List(c.Request().Context(), req.Page, req.PageSize)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(list, NewMedia))
}

// UploadMedia handles POST /api/v1/admin/media
// @Summary Upload an image
// @Description Falls back to the placeholder image when object storage is unavailable
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param file formData file true "Image"
// @Success 201 {object} rest.Media
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/admin/media [post]
func (h *Handler) UploadMedia(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "file is required")
	}
	if file.Size > newsportal.MaxUploadSize {
		return h.handleError(c, nil, http.StatusBadRequest, "file is too large")
	}

	src, err := file.Open()
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "file is unreadable")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, newsportal.MaxUploadSize+1))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "file is unreadable")
	}

	contentType := file.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}

	media, err := h.m.Media.Upload(c.Request().Context(), newsportal.UploadInput{
		FileName:    file.Filename,
		ContentType: contentType,
		Data:        data,
	}, actorFrom(c))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, NewMedia(*media))
}

// DeleteMedia handles DELETE /api/v1/admin/media/:id
// @Summary Delete media and its stored object
// @Tags admin
// @Param X-Actor-ID header string true "Editor id"
// @Param id path int true "Media ID"
// @Success 204
// @Router /api/v1/admin/media/{id} [delete]
func (h *Handler) DeleteMedia(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid media id")
	}

	if err := h.m.Media.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CleanupMedia handles POST /api/v1/admin/media/cleanup
// @Summary Remove stored objects no media record references
// @Tags admin
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Success 200 {object} map[string]int
// @Router /api/v1/admin/media/cleanup [post]
func (h *Handler) CleanupMedia(c echo.Context) error {
	removed, err := h.m.Media.CleanupOrphans(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	h.log.InfoContext(c.Request().Context(), "orphaned media removed", "count", removed, "actor", actorFrom(c))
	return c.JSON(http.StatusOK, map[string]int{"removed": removed})
}

// Users handles GET /api/v1/admin/users
// @Summary Get all users
// @Tags admin
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Success 200 {array} rest.User
// @Router /api/v1/admin/users [get]
func (h *Handler) Users(c echo.Context) error {
	users, err := h.m.Users.Users(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(users, NewUser))
}

// UserByID handles GET /api/v1/admin/users/:id
// @Summary Get user by ID
// @Tags admin
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param id path int true "User ID"
// @Success 200 {object} rest.User
// @Router /api/v1/admin/users/{id} [get]
func (h *Handler) UserByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid user id")
	}

	user, err := h.m.Users.ByID(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	} else if user == nil {
		return h.handleError(c, nil, http.StatusNotFound, "user not found")
	}

	return c.JSON(http.StatusOK, NewUser(*user))
}

// CreateUser handles POST /api/v1/admin/users
// @Summary Create user
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param request body newsportal.UserInput true "User"
// @Success 201 {object} rest.User
// @Router /api/v1/admin/users [post]
func (h *Handler) CreateUser(c echo.Context) error {
	var in newsportal.UserInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	user, err := h.m.Users.Create(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, NewUser(*user))
}

// UpdateUser handles PUT /api/v1/admin/users/:id
// @Summary Update user
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param id path int true "User ID"
// @Param request body newsportal.UserInput true "User"
// @Success 200 {object} rest.User
// @Router /api/v1/admin/users/{id} [put]
func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid user id")
	}

	var in newsportal.UserInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	user, err := h.m.Users.Update(c.Request().Context(), id, in)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewUser(*user))
}

// DeactivateUser handles POST /api/v1/admin/users/:id/deactivate
// @Summary Deactivate user
// @Tags admin
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param id path int true "User ID"
// @Success 200 {object} rest.User
// @Router /api/v1/admin/users/{id}/deactivate [post]
func (h *Handler) DeactivateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid user id")
	}

	user, err := h.m.Users.Deactivate(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewUser(*user))
}

// UpdateSettings handles PUT /api/v1/admin/settings
// @Summary Update site settings
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param request body newsportal.SettingsInput true "Settings"
// @Success 200 {object} rest.Settings
// @Router /api/v1/admin/settings [put]
func (h *Handler) UpdateSettings(c echo.Context) error {
	var in newsportal.SettingsInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	settings, err := h.m.Settings.Update(c.Request().Context(), in, actorFrom(c))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewSettings(*settings))
}

// CreateRoadmapRequest handles POST /api/v1/admin/roadmap
// @Summary Create roadmap request
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param request body newsportal.RoadmapInput true "Request"
// @Success 201 {object} rest.RoadmapRequest
// @Router /api/v1/admin/roadmap [post]
func (h *Handler) CreateRoadmapRequest(c echo.Context) error {
	var in newsportal.RoadmapInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	req, err := h.m.Roadmap.Create(c.Request().Context(), in, actorFrom(c))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, NewRoadmapRequest(*req))
}

// ChangeRoadmapStatus handles PUT /api/v1/admin/roadmap/:id/status
// @Summary Move a roadmap request to another status
// @Description The change is recorded in the request timeline
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param id path int true "Request ID"
// @Param request body rest.RoadmapStatusRequest true "Status"
// @Success 200 {object} rest.RoadmapRequest
// @Failure 400,401,404,409,500 {object} map[string]string
// @Router /api/v1/admin/roadmap/{id}/status [put]
func (h *Handler) ChangeRoadmapStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request id")
	}

	var body RoadmapStatusRequest
	if err := c.Bind(&body); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	req, err := h.m.Roadmap.ChangeStatus(c.Request().Context(), id, body.Status, actorFrom(c), body.Note)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewRoadmapRequest(*req))
}

// Subscriptions handles GET /api/v1/admin/newsletter
// @Summary List newsletter subscriptions
// @Tags admin
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Param active query bool false "Only active subscriptions"
// @Success 200 {array} rest.Subscription
// @Router /api/v1/admin/newsletter [get]
func (h *Handler) Subscriptions(c echo.Context) error {
	activeOnly := false
	if v := c.QueryParam("active"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "active must be a boolean")
		}
		activeOnly = parsed
	}

	list, err := h.m.Newsletter.Subscriptions(c.Request().Context(), activeOnly)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(list, NewSubscription))
}

// SubscribersCount handles GET /api/v1/admin/newsletter/count
// @Summary Count active newsletter subscriptions
// @Tags admin
// @Produce json
// @Param X-Actor-ID header string true "Editor id"
// @Success 200 {integer} int
// @Router /api/v1/admin/newsletter/count [get]
func (h *Handler) SubscribersCount(c echo.Context) error {
	count, err := h.m.Newsletter.ActiveCount(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, count)
}
