package borrowing

import (
	"context"
	"database/sql"
	"time"

	"github.com/MedGm/Library-Management-Scrum/model"
)

type Repo interface {
	// Tx-scoped engine paths.
	CountActive(ctx context.Context, tx *sql.Tx, userID int64) (int64, error)
	Insert(ctx context.Context, tx *sql.Tx, b *model.Borrowing) error
	LockByID(ctx context.Context, tx *sql.Tx, id int64) (*model.Borrowing, error)
	UpdateRenewal(ctx context.Context, tx *sql.Tx, id int64, dueDate time.Time, renewals int) error
	MarkReturned(ctx context.Context, tx *sql.Tx, id int64, returnedAt time.Time, status model.BorrowingStatus, penalty float64) error

	// Listings.
	ListByUser(ctx context.Context, userID int64) ([]model.BorrowingRow, error)
	ListAll(ctx context.Context) ([]model.BorrowingRow, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) CountActive(ctx context.Context, tx *sql.Tx, userID int64) (int64, error) {
	const q = `
		SELECT COUNT(*)
		FROM borrowings
		WHERE user_id = $1
		AND return_date IS NULL`
	var n int64
	err := tx.QueryRowContext(ctx, q, userID).Scan(&n)
	return n, err
}

func (r *repo) Insert(ctx context.Context, tx *sql.Tx, b *model.Borrowing) error {
	const q = `
		INSERT INTO borrowings (user_id, book_id, borrow_date, due_date, renewals, status)
		VALUES ($1, $2, $3, $4, 0, 'ACTIVE')
		RETURNING id`
	return tx.QueryRowContext(ctx, q, b.UserID, b.BookID, b.BorrowDate, b.DueDate).Scan(&b.ID)
}

func (r *repo) LockByID(ctx context.Context, tx *sql.Tx, id int64) (*model.Borrowing, error) {
	const q = `
		SELECT id, user_id, book_id, borrow_date, due_date, return_date, penalty, renewals, status
		FROM borrowings
		WHERE id = $1
		FOR UPDATE`
	b := &model.Borrowing{}
	err := tx.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.UserID, &b.BookID, &b.BorrowDate, &b.DueDate,
		&b.ReturnDate, &b.Penalty, &b.Renewals, &b.Status,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) UpdateRenewal(ctx context.Context, tx *sql.Tx, id int64, dueDate time.Time, renewals int) error {
	const q = `
		UPDATE borrowings
		SET due_date = $2,
			renewals = $3
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id, dueDate, renewals)
	return err
}

func (r *repo) MarkReturned(ctx context.Context, tx *sql.Tx, id int64, returnedAt time.Time, status model.BorrowingStatus, penalty float64) error {
	const q = `
		UPDATE borrowings
		SET return_date = $2,
			status = $3,
			penalty = $4
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id, returnedAt, status, penalty)
	return err
}

const rowCols = `
	br.id, br.user_id, br.book_id, br.borrow_date, br.due_date,
	br.return_date, br.penalty, br.renewals, br.status, b.title`

func (r *repo) ListByUser(ctx context.Context, userID int64) ([]model.BorrowingRow, error) {
	const q = `
		SELECT ` + rowCols + `
		FROM borrowings br
		JOIN books b ON b.id = br.book_id
		WHERE br.user_id = $1
		ORDER BY br.borrow_date DESC, br.id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BorrowingRow
	for rows.Next() {
		var h model.BorrowingRow
		if err := rows.Scan(
			&h.ID, &h.UserID, &h.BookID, &h.BorrowDate, &h.DueDate,
			&h.ReturnDate, &h.Penalty, &h.Renewals, &h.Status, &h.BookTitle,
		); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *repo) ListAll(ctx context.Context) ([]model.BorrowingRow, error) {
	const q = `
		SELECT ` + rowCols + `, u.name, u.email
		FROM borrowings br
		JOIN books b ON b.id = br.book_id
		JOIN users u ON u.id = br.user_id
		ORDER BY br.borrow_date DESC, br.id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BorrowingRow
	for rows.Next() {
		var h model.BorrowingRow
		if err := rows.Scan(
			&h.ID, &h.UserID, &h.BookID, &h.BorrowDate, &h.DueDate,
			&h.ReturnDate, &h.Penalty, &h.Renewals, &h.Status, &h.BookTitle,
			&h.UserName, &h.UserEmail,
		); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
