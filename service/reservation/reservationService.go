package reservation

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MedGm/Library-Management-Scrum/model"
)

type ErrCode string

const (
	ErrNotFound      ErrCode = "NOT_FOUND"
	ErrBookNotFound  ErrCode = "BOOK_NOT_FOUND"
	ErrItemAvailable ErrCode = "ITEM_AVAILABLE"
	ErrDuplicate     ErrCode = "DUPLICATE_RESERVATION"
	ErrNotOwner      ErrCode = "FORBIDDEN"
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

type Repo interface {
	Insert(ctx context.Context, res *model.Reservation) error
	ByID(ctx context.Context, id int64) (*model.Reservation, error)
	SetStatus(ctx context.Context, id int64, status model.ReservationStatus) error
	ListWaitingByUser(ctx context.Context, userID int64) ([]model.ReservationRow, error)
}

type BookRepo interface {
	Detail(ctx context.Context, id int64) (*model.Book, error)
}

type Service interface {
	// Create places a wait-list entry. Only permitted while nothing is
	// borrowable directly, and at most one WAITING entry per (user, book).
	Create(ctx context.Context, userID, bookID int64) (*model.Reservation, error)

	// Cancel sets the reservation CANCELLED; only its owner may do so.
	Cancel(ctx context.Context, userID, id int64) error

	Mine(ctx context.Context, userID int64) ([]model.ReservationRow, error)
}

type service struct {
	r  Repo
	bk BookRepo
}

func New(r Repo, bk BookRepo) Service { return &service{r: r, bk: bk} }

func (s *service) Create(ctx context.Context, userID, bookID int64) (*model.Reservation, error) {
	b, err := s.bk.Detail(ctx, bookID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrBookNotFound)
		}
		return nil, err
	}
	if b.Available > 0 {
		return nil, makeErr(ErrItemAvailable)
	}

	res := &model.Reservation{UserID: userID, BookID: bookID}
	if err := s.r.Insert(ctx, res); err != nil {
		// The partial unique index over WAITING rows rejects a second
		// reservation, so no separate read is needed.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, makeErr(ErrDuplicate)
		}
		return nil, err
	}
	return res, nil
}

func (s *service) Cancel(ctx context.Context, userID, id int64) error {
	res, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		return err
	}
	if res.UserID != userID {
		return makeErr(ErrNotOwner)
	}
	return s.r.SetStatus(ctx, id, model.ReservationCancelled)
}

func (s *service) Mine(ctx context.Context, userID int64) ([]model.ReservationRow, error) {
	return s.r.ListWaitingByUser(ctx, userID)
}
