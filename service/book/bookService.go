package book

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/MedGm/Library-Management-Scrum/model"
)

type ErrCode string

const (
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrBadInput ErrCode = "BAD_INPUT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// UpdateReq carries a partial catalog update; nil fields are left as-is.
type UpdateReq struct {
	Title         *string
	Author        *string
	Category      *string
	PublishedYear *int
	ISBN          *string
	CoverURL      *string
	Stock         *int64
	Available     *int64
}

type Repo interface {
	Create(ctx context.Context, b *model.Book) error
	List(ctx context.Context, f model.BookFilter) ([]model.Book, error)
	Detail(ctx context.Context, id int64) (*model.Book, error)
	Update(ctx context.Context, id int64, apply func(b *model.Book)) (*model.Book, error)
}

type Service interface {
	Create(ctx context.Context, b *model.Book) (*model.Book, error)
	List(ctx context.Context, f model.BookFilter) ([]model.Book, error)
	Detail(ctx context.Context, id int64) (*model.Book, error)
	Update(ctx context.Context, id int64, req UpdateReq) (*model.Book, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	if strings.TrimSpace(b.Title) == "" || strings.TrimSpace(b.Author) == "" {
		return nil, makeErr(ErrBadInput)
	}
	if b.Stock < 0 {
		return nil, makeErr(ErrBadInput)
	}
	// New titles start fully available.
	b.Available = b.Stock
	if err := s.r.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) List(ctx context.Context, f model.BookFilter) ([]model.Book, error) {
	return s.r.List(ctx, f)
}

func (s *service) Detail(ctx context.Context, id int64) (*model.Book, error) {
	b, err := s.r.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateReq) (*model.Book, error) {
	b, err := s.r.Update(ctx, id, func(b *model.Book) {
		if req.Title != nil {
			b.Title = *req.Title
		}
		if req.Author != nil {
			b.Author = *req.Author
		}
		if req.Category != nil {
			b.Category = *req.Category
		}
		if req.PublishedYear != nil {
			b.PublishedYear = *req.PublishedYear
		}
		if req.ISBN != nil {
			b.ISBN = *req.ISBN
		}
		if req.CoverURL != nil {
			b.CoverURL = *req.CoverURL
		}
		if req.Stock != nil {
			b.Stock = *req.Stock
		}
		if req.Available != nil {
			b.Available = *req.Available
		}
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}
