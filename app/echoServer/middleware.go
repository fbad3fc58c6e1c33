package echoServer

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/MedGm/Library-Management-Scrum/app/echoServer/jwtx"
	"github.com/MedGm/Library-Management-Scrum/model"
)

func RegisterMiddlewares(e *echo.Echo) {

	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(Slog())
}

func Slog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
			)
			return err
		}
	}
}

// RequireRole rejects requests whose token role is not in allowed.
func RequireRole(allowed ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := jwtx.RoleFromContext(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			for _, a := range allowed {
				if role == a {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		}
	}
}

func RequireStaff() echo.MiddlewareFunc {
	return RequireRole(model.RoleLibrarian, model.RoleAdmin)
}

func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(model.RoleAdmin)
}
