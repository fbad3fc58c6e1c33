package reservation

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/MedGm/Library-Management-Scrum/app/echoServer/jwtx"
	resvc "github.com/MedGm/Library-Management-Scrum/service/reservation"
)

type Controller struct {
	Svc resvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

type CreateReservationReq struct {
	BookID int64 `json:"book_id" validate:"required,gt=0"`
}

// POST /api/reservations
func (h *Controller) Create(c echo.Context) error {
	var req CreateReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	res, err := h.Svc.Create(c.Request().Context(), uid, req.BookID)
	if err != nil {
		switch resvc.Code(err) {
		case resvc.ErrBookNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		case resvc.ErrItemAvailable:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "book is available, please borrow directly"})
		case resvc.ErrDuplicate:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "you already have a waiting reservation for this book"})
		default:
			h.Log.Error("reservation create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, res)
}

// GET /api/reservations/my
func (h *Controller) My(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	rows, err := h.Svc.Mine(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("reservation my", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// DELETE /api/reservations/:id
func (h *Controller) Cancel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	if err := h.Svc.Cancel(c.Request().Context(), uid, id); err != nil {
		switch resvc.Code(err) {
		case resvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "reservation not found"})
		case resvc.ErrNotOwner:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		default:
			h.Log.Error("reservation cancel", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reservation cancelled"})
}
