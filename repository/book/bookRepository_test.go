package book

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestLockForUpdate(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"stock", "available"}).AddRow(5, 2))

	tx, err := db.Begin()
	if err != nil {
		t.Fatal(err)
	}
	stock, available, err := New(db).LockForUpdate(context.Background(), tx, 42)
	if err != nil {
		t.Fatalf("LockForUpdate: %v", err)
	}
	if stock != 5 || available != 2 {
		t.Fatalf("got stock=%d available=%d; want 5, 2", stock, available)
	}
}

func TestDecrementAvailable_GuardRejectsEmpty(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	// The guard `available >= 1` matches no row when nothing is lendable.
	mock.ExpectExec(`UPDATE books`).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	tx, err := db.Begin()
	if err != nil {
		t.Fatal(err)
	}
	if err := New(db).DecrementAvailable(context.Background(), tx, 42); err != sql.ErrNoRows {
		t.Fatalf("got %v; want sql.ErrNoRows when no copy remains", err)
	}
}

func TestDecrementAvailable_Success(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE books`).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Begin()
	if err != nil {
		t.Fatal(err)
	}
	if err := New(db).DecrementAvailable(context.Background(), tx, 42); err != nil {
		t.Fatalf("DecrementAvailable: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestIncrementAvailable_ClampsAtStock(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(`LEAST\(available \+ 1, stock\)`).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Begin()
	if err != nil {
		t.Fatal(err)
	}
	if err := New(db).IncrementAvailable(context.Background(), tx, 42); err != nil {
		t.Fatalf("IncrementAvailable: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
