package reservation

import (
	"context"
	"database/sql"

	"github.com/MedGm/Library-Management-Scrum/model"
)

type Repo interface {
	Insert(ctx context.Context, res *model.Reservation) error
	ByID(ctx context.Context, id int64) (*model.Reservation, error)
	SetStatus(ctx context.Context, id int64, status model.ReservationStatus) error
	ListWaitingByUser(ctx context.Context, userID int64) ([]model.ReservationRow, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

// Insert relies on the partial unique index over WAITING rows to reject a
// second reservation by the same user for the same book.
func (r *repo) Insert(ctx context.Context, res *model.Reservation) error {
	const q = `
		INSERT INTO reservations (user_id, book_id, status)
		VALUES ($1, $2, 'WAITING')
		RETURNING id, status, created_at`
	return r.db.QueryRowContext(ctx, q, res.UserID, res.BookID).
		Scan(&res.ID, &res.Status, &res.CreatedAt)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Reservation, error) {
	const q = `
		SELECT id, user_id, book_id, status, created_at
		FROM reservations
		WHERE id = $1`
	res := &model.Reservation{}
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&res.ID, &res.UserID, &res.BookID, &res.Status, &res.CreatedAt)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *repo) SetStatus(ctx context.Context, id int64, status model.ReservationStatus) error {
	const q = `
		UPDATE reservations
		SET status = $2
		WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, status)
	return err
}

func (r *repo) ListWaitingByUser(ctx context.Context, userID int64) ([]model.ReservationRow, error) {
	const q = `
		SELECT r.id, r.user_id, r.book_id, r.status, r.created_at, b.title
		FROM reservations r
		JOIN books b ON b.id = r.book_id
		WHERE r.user_id = $1
		AND r.status = 'WAITING'
		ORDER BY r.created_at DESC, r.id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ReservationRow
	for rows.Next() {
		var row model.ReservationRow
		if err := rows.Scan(&row.ID, &row.UserID, &row.BookID, &row.Status, &row.CreatedAt, &row.BookTitle); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
