package borrowing

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MedGm/Library-Management-Scrum/model"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestCountActive(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	tx, err := db.Begin()
	if err != nil {
		t.Fatal(err)
	}
	n, err := New(db).CountActive(context.Background(), tx, 7)
	if err != nil {
		t.Fatalf("CountActive: %v", err)
	}
	if n != 3 {
		t.Fatalf("got %d; want 3", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestInsert_ReturnsID(t *testing.T) {
	db, mock := newMock(t)
	now := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 14)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO borrowings`).
		WithArgs(int64(7), int64(42), now, due).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	tx, err := db.Begin()
	if err != nil {
		t.Fatal(err)
	}
	b := &model.Borrowing{UserID: 7, BookID: 42, BorrowDate: now, DueDate: due, Status: model.BorrowingActive}
	if err := New(db).Insert(context.Background(), tx, b); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if b.ID != 11 {
		t.Fatalf("got id %d; want 11", b.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestLockByID_ScansActiveLoan(t *testing.T) {
	db, mock := newMock(t)
	now := time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 14)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "book_id", "borrow_date", "due_date",
			"return_date", "penalty", "renewals", "status",
		}).AddRow(5, 7, 42, now, due, nil, 0.0, 0, "ACTIVE"))

	tx, err := db.Begin()
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(db).LockByID(context.Background(), tx, 5)
	if err != nil {
		t.Fatalf("LockByID: %v", err)
	}
	if b.ID != 5 || b.ReturnDate != nil || b.Status != model.BorrowingActive {
		t.Fatalf("got %+v; want active loan 5", b)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestLockByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	tx, err := db.Begin()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(db).LockByID(context.Background(), tx, 99); err != sql.ErrNoRows {
		t.Fatalf("got %v; want sql.ErrNoRows", err)
	}
}

func TestMarkReturned(t *testing.T) {
	db, mock := newMock(t)
	ret := time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE borrowings`).
		WithArgs(int64(5), ret, string(model.BorrowingReturnedLate), 3.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Begin()
	if err != nil {
		t.Fatal(err)
	}
	if err := New(db).MarkReturned(context.Background(), tx, 5, ret, model.BorrowingReturnedLate, 3.0); err != nil {
		t.Fatalf("MarkReturned: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
