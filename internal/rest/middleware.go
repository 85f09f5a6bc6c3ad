package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ActorHeader carries the authenticated editor id, set by the auth proxy.
const ActorHeader = "X-Actor-ID"

const actorKey = "actor"

// requireActor rejects admin requests that carry no actor.
func requireActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor := strings.TrimSpace(c.Request().Header.Get(ActorHeader))
		if actor == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + ActorHeader + " header"})
		}

		c.Set(actorKey, actor)
		return next(c)
	}
}

func actorFrom(c echo.Context) string {
	actor, _ := c.Get(actorKey).(string)
	return actor
}

func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.InfoContext(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remoteIp", v.RemoteIP,
			)
			return nil
		},
	})
}
