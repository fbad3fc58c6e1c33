package audit

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	auditsvc "github.com/MedGm/Library-Management-Scrum/service/audit"
)

type Controller struct {
	Svc auditsvc.Service
	Log *slog.Logger
}

// GET /api/audit
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.Recent(c.Request().Context())
	if err != nil {
		h.Log.Error("audit list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
