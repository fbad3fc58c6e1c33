package setting

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/MedGm/Library-Management-Scrum/app/echoServer/jwtx"
	"github.com/MedGm/Library-Management-Scrum/model"
	settingsvc "github.com/MedGm/Library-Management-Scrum/service/setting"
)

type Controller struct {
	Svc settingsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// UpdateSettingsReq only accepts the recognised rule keys; values stay
// string-encoded as they are stored.
type UpdateSettingsReq struct {
	MaxLoans      *string `json:"MAX_LOANS" validate:"omitempty,numeric"`
	LoanDays      *string `json:"LOAN_DAYS" validate:"omitempty,numeric"`
	PenaltyPerDay *string `json:"PENALTY_PER_DAY" validate:"omitempty,numeric"`
}

// GET /api/settings
func (h *Controller) Get(c echo.Context) error {
	settings, err := h.Svc.All(c.Request().Context())
	if err != nil {
		h.Log.Error("settings get", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, settings)
}

// PUT /api/settings
func (h *Controller) Update(c echo.Context) error {
	var req UpdateSettingsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	updates := make(map[string]string)
	if req.MaxLoans != nil {
		updates[model.SettingMaxLoans] = *req.MaxLoans
	}
	if req.LoanDays != nil {
		updates[model.SettingLoanDays] = *req.LoanDays
	}
	if req.PenaltyPerDay != nil {
		updates[model.SettingPenaltyPerDay] = *req.PenaltyPerDay
	}
	if len(updates) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "no settings provided"})
	}

	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	if err := h.Svc.Update(c.Request().Context(), uid, updates); err != nil {
		h.Log.Error("settings update", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "settings updated successfully"})
}
