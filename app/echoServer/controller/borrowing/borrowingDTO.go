package borrowing

import "time"

type CreateBorrowingReq struct {
	UserID  int64  `json:"user_id" validate:"required,gt=0"`
	BookID  int64  `json:"book_id" validate:"required,gt=0"`
	DueDate string `json:"due_date" validate:"required"`
}

// ParseDueDate accepts RFC 3339 or a bare date.
func (r CreateBorrowingReq) ParseDueDate() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, r.DueDate); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", r.DueDate)
}
