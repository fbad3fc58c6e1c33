package borrowing

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/MedGm/Library-Management-Scrum/app/echoServer/jwtx"
	borrowsvc "github.com/MedGm/Library-Management-Scrum/service/borrowing"
)

type Controller struct {
	Svc borrowsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/borrowings
func (h *Controller) Create(c echo.Context) error {
	var req CreateBorrowingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	due, err := req.ParseDueDate()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid due_date"})
	}

	b, err := h.Svc.Create(c.Request().Context(), req.UserID, req.BookID, due)
	if err != nil {
		switch borrowsvc.Code(err) {
		case borrowsvc.ErrQuotaExceeded:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "loan quota exceeded"})
		case borrowsvc.ErrOutOfStock:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "book is not available"})
		case borrowsvc.ErrBookNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		default:
			h.Log.Error("borrowing create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, b)
}

// PUT /api/borrowings/:id/return
func (h *Controller) Return(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	b, err := h.Svc.Return(c.Request().Context(), id)
	if err != nil {
		switch borrowsvc.Code(err) {
		case borrowsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "borrowing not found"})
		case borrowsvc.ErrAlreadyReturned:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "book already returned"})
		default:
			h.Log.Error("borrowing return", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, b)
}

// PUT /api/borrowings/:id/renew
func (h *Controller) Renew(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	role, err := jwtx.RoleFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	b, err := h.Svc.Renew(c.Request().Context(), id, uid, role.IsStaff())
	if err != nil {
		switch borrowsvc.Code(err) {
		case borrowsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "borrowing not found"})
		case borrowsvc.ErrNotOwner:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		case borrowsvc.ErrAlreadyReturned:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "book already returned"})
		case borrowsvc.ErrRenewalLimit:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "renewal limit reached"})
		default:
			h.Log.Error("borrowing renew", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, b)
}

// GET /api/borrowings/my
func (h *Controller) My(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	rows, err := h.Svc.Mine(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("borrowing my", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /api/borrowings
func (h *Controller) All(c echo.Context) error {
	rows, err := h.Svc.All(c.Request().Context())
	if err != nil {
		h.Log.Error("borrowing all", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
