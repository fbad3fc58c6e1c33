package model

import "time"

type BorrowingStatus string

const (
	BorrowingActive       BorrowingStatus = "ACTIVE"
	BorrowingReturned     BorrowingStatus = "RETURNED"
	BorrowingReturnedLate BorrowingStatus = "RETURNED_LATE"
)

// MaxRenewals is the ceiling on due-date extensions per borrowing.
const MaxRenewals = 1

// Borrowing is one loan of one book copy. ReturnDate is nil exactly while
// the loan is ACTIVE; Penalty is non-zero only for RETURNED_LATE. Rows are
// never deleted.
type Borrowing struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	BookID     int64           `json:"book_id"`
	BorrowDate time.Time       `json:"borrow_date"`
	DueDate    time.Time       `json:"due_date"`
	ReturnDate *time.Time      `json:"return_date,omitempty"`
	Penalty    float64         `json:"penalty"`
	Renewals   int             `json:"renewals"`
	Status     BorrowingStatus `json:"status"`
}

// BorrowingRow is a borrowing joined with book/user display fields for lists.
type BorrowingRow struct {
	Borrowing
	BookTitle string `json:"book_title"`
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
}
