package user

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	usersvc "github.com/MedGm/Library-Management-Scrum/service/user"
)

type Controller struct {
	Svc usersvc.Service
	Log *slog.Logger
}

// GET /api/users/members
func (h *Controller) Members(c echo.Context) error {
	members, err := h.Svc.Members(c.Request().Context())
	if err != nil {
		h.Log.Error("members list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": members})
}
