package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

// RegisterRoutes builds the echo router with public and admin routes.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(h.log))

	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/doc.json", h.SwaggerDoc)

	api := e.Group("/api/v1")
	api.GET("/news", h.News)
	api.GET("/news/:slug", h.NewsBySlug)
	api.GET("/count", h.NewsCount)
	api.GET("/categories", h.Categories)
	api.GET("/tags", h.Tags)
	api.GET("/featured", h.Featured)
	api.GET("/search", h.Search)
	api.GET("/settings", h.Settings)
	api.GET("/banners", h.ActiveBanners)
	api.POST("/banners/:id/impression", h.TrackImpression)
	api.POST("/banners/:id/click", h.TrackClick)
	api.GET("/roadmap", h.RoadmapRequests)
	api.GET("/roadmap/:id", h.RoadmapRequest)
	api.GET("/roadmap/:id/timeline", h.RoadmapTimeline)
	api.POST("/roadmap/:id/vote", h.RoadmapVote)
	api.POST("/newsletter/subscribe", h.Subscribe)
	api.POST("/newsletter/unsubscribe", h.Unsubscribe)

	admin := api.Group("/admin", requireActor)

	admin.GET("/news/:id", h.NewsByID)
	admin.POST("/news", h.CreateNews)
	admin.PUT("/news/:id", h.UpdateNews)
	admin.PUT("/news/:id/status", h.SetNewsStatus)
	admin.DELETE("/news/:id", h.DeleteNews)

	admin.GET("/featured", h.FeaturedConfig)
	admin.PUT("/featured", h.SetFeatured)
	admin.POST("/featured/items", h.AddFeatured)
	admin.DELETE("/featured/items/:newsId", h.RemoveFeatured)
	admin.POST("/featured/move", h.MoveFeatured)
	admin.GET("/featured/preview", h.FeaturedPreview)
	admin.POST("/featured/default", h.EnsureFeaturedDefault)

	admin.GET("/categories", h.AllCategories)
	admin.GET("/categories/:id", h.CategoryByID)
	admin.POST("/categories", h.CreateCategory)
	admin.PUT("/categories/:id", h.UpdateCategory)
	admin.DELETE("/categories/:id", h.DeleteCategory)

	admin.POST("/tags", h.CreateTag)
	admin.DELETE("/tags/:id", h.DeleteTag)

	admin.GET("/banners", h.Banners)
	admin.GET("/banners/:id", h.BannerByID)
	admin.POST("/banners", h.CreateBanner)
	admin.PUT("/banners/:id", h.UpdateBanner)
	admin.DELETE("/banners/:id", h.DeleteBanner)
	admin.GET("/banners/:id/stats", h.BannerStats)

	admin.GET("/media", h.MediaList)
	admin.POST("/media", h.UploadMedia)
	admin.DELETE("/media/:id", h.DeleteMedia)
	admin.POST("/media/cleanup", h.CleanupMedia)

	admin.GET("/users", h.Users)
	admin.GET("/users/:id", h.UserByID)
	admin.POST("/users", h.CreateUser)
	admin.PUT("/users/:id", h.UpdateUser)
	admin.POST("/users/:id/deactivate", h.DeactivateUser)

	admin.PUT("/settings", h.UpdateSettings)

	admin.POST("/roadmap", h.CreateRoadmapRequest)
	admin.PUT("/roadmap/:id/status", h.ChangeRoadmapStatus)

	admin.GET("/newsletter", h.Subscriptions)
	admin.GET("/newsletter/count", h.SubscribersCount)

	return e
}

// SwaggerDoc handles GET /swagger/doc.json
func (h *Handler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "swagger doc is not registered")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}
