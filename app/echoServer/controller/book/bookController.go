package book

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/MedGm/Library-Management-Scrum/model"
	booksvc "github.com/MedGm/Library-Management-Scrum/service/book"
)

type Controller struct {
	Svc booksvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /api/books
func (h *Controller) List(c echo.Context) error {
	f := model.BookFilter{
		Title:    c.QueryParam("title"),
		Author:   c.QueryParam("author"),
		Category: c.QueryParam("category"),
	}
	if y := c.QueryParam("published_year"); y != "" {
		if n, err := strconv.Atoi(y); err == nil {
			f.PublishedYear = n
		}
	}

	books, err := h.Svc.List(c.Request().Context(), f)
	if err != nil {
		h.Log.Error("book list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": books})
}

// GET /api/books/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	b, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if booksvc.Code(err) == booksvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		}
		h.Log.Error("book detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, b)
}

// POST /api/books
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	b, err := h.Svc.Create(c.Request().Context(), &model.Book{
		Title:         req.Title,
		Author:        req.Author,
		Category:      req.Category,
		PublishedYear: req.PublishedYear,
		ISBN:          req.ISBN,
		CoverURL:      req.CoverURL,
		Stock:         req.Stock,
	})
	if err != nil {
		if booksvc.Code(err) == booksvc.ErrBadInput {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		}
		h.Log.Error("book create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, b)
}

// PUT /api/books/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	var req UpdateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	b, err := h.Svc.Update(c.Request().Context(), id, booksvc.UpdateReq{
		Title:         req.Title,
		Author:        req.Author,
		Category:      req.Category,
		PublishedYear: req.PublishedYear,
		ISBN:          req.ISBN,
		CoverURL:      req.CoverURL,
		Stock:         req.Stock,
		Available:     req.Available,
	})
	if err != nil {
		if booksvc.Code(err) == booksvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		}
		h.Log.Error("book update", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, b)
}
