package borrowing

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MedGm/Library-Management-Scrum/model"
	"github.com/MedGm/Library-Management-Scrum/util/penalty"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrBookNotFound    ErrCode = "BOOK_NOT_FOUND"
	ErrQuotaExceeded   ErrCode = "QUOTA_EXCEEDED"
	ErrOutOfStock      ErrCode = "OUT_OF_STOCK"
	ErrAlreadyReturned ErrCode = "ALREADY_RETURNED"
	ErrRenewalLimit    ErrCode = "RENEWAL_LIMIT_REACHED"
	ErrNotOwner        ErrCode = "FORBIDDEN"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts the error code, or "" for non-business errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Rules reads the borrowing rules fresh on every call.
type Rules interface {
	GetNumber(ctx context.Context, key string, def float64) float64
}

// Repo covers the borrowing rows. Tx-taking methods run inside the
// service's transaction; LockByID takes a row lock so concurrent return
// and renew on one loan serialize.
type Repo interface {
	CountActive(ctx context.Context, tx *sql.Tx, userID int64) (int64, error)
	Insert(ctx context.Context, tx *sql.Tx, b *model.Borrowing) error
	LockByID(ctx context.Context, tx *sql.Tx, id int64) (*model.Borrowing, error)
	UpdateRenewal(ctx context.Context, tx *sql.Tx, id int64, dueDate time.Time, renewals int) error
	MarkReturned(ctx context.Context, tx *sql.Tx, id int64, returnedAt time.Time, status model.BorrowingStatus, penalty float64) error

	ListByUser(ctx context.Context, userID int64) ([]model.BorrowingRow, error)
	ListAll(ctx context.Context) ([]model.BorrowingRow, error)
}

// BookRepo is the inventory ledger. LockForUpdate must be called before
// the availability check so two creates racing for the last copy serialize
// on the book row.
type BookRepo interface {
	LockForUpdate(ctx context.Context, tx *sql.Tx, id int64) (stock, available int64, err error)
	DecrementAvailable(ctx context.Context, tx *sql.Tx, id int64) error
	IncrementAvailable(ctx context.Context, tx *sql.Tx, id int64) error
}

type Service interface {
	// Create issues a loan: quota check, stock check and decrement, and
	// the borrowing insert are one transaction.
	Create(ctx context.Context, userID, bookID int64, dueDate time.Time) (*model.Borrowing, error)

	// Renew extends the due date by LOAN_DAYS relative to the current due
	// date, at most once per loan. Non-staff actors may only renew their
	// own loans.
	Renew(ctx context.Context, id, actorID int64, actorIsStaff bool) (*model.Borrowing, error)

	// Return closes the loan, computes any late penalty and frees the copy.
	Return(ctx context.Context, id int64) (*model.Borrowing, error)

	Mine(ctx context.Context, userID int64) ([]model.BorrowingRow, error)
	All(ctx context.Context) ([]model.BorrowingRow, error)
}

// ----- Service implementation -----

type service struct {
	db    *sql.DB
	br    Repo
	bk    BookRepo
	rules Rules
	now   func() time.Time
}

func New(db *sql.DB, br Repo, bk BookRepo, rules Rules) Service {
	return &service{db: db, br: br, bk: bk, rules: rules, now: time.Now}
}

func (s *service) Create(ctx context.Context, userID, bookID int64, dueDate time.Time) (*model.Borrowing, error) {
	maxLoans := int64(s.rules.GetNumber(ctx, model.SettingMaxLoans, model.DefaultMaxLoans))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	active, err := s.br.CountActive(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if active >= maxLoans {
		err = makeErr(ErrQuotaExceeded)
		return nil, err
	}

	_, available, err := s.bk.LockForUpdate(ctx, tx, bookID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = makeErr(ErrBookNotFound)
		}
		return nil, err
	}
	if available < 1 {
		err = makeErr(ErrOutOfStock)
		return nil, err
	}

	if err = s.bk.DecrementAvailable(ctx, tx, bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = makeErr(ErrOutOfStock)
		}
		return nil, err
	}

	b := &model.Borrowing{
		UserID:     userID,
		BookID:     bookID,
		BorrowDate: s.now().UTC(),
		DueDate:    dueDate,
		Status:     model.BorrowingActive,
	}
	if err = s.br.Insert(ctx, tx, b); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Renew(ctx context.Context, id, actorID int64, actorIsStaff bool) (*model.Borrowing, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	b, err := s.br.LockByID(ctx, tx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = makeErr(ErrNotFound)
		}
		return nil, err
	}
	if !actorIsStaff && b.UserID != actorID {
		err = makeErr(ErrNotOwner)
		return nil, err
	}
	if b.ReturnDate != nil {
		err = makeErr(ErrAlreadyReturned)
		return nil, err
	}
	if b.Renewals >= model.MaxRenewals {
		err = makeErr(ErrRenewalLimit)
		return nil, err
	}

	days := int(s.rules.GetNumber(ctx, model.SettingLoanDays, model.DefaultLoanDays))

	// Extension is relative to the current due date, not to now: an
	// already-late loan stays late.
	newDue := b.DueDate.AddDate(0, 0, days)
	if err = s.br.UpdateRenewal(ctx, tx, b.ID, newDue, b.Renewals+1); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	b.DueDate = newDue
	b.Renewals++
	return b, nil
}

func (s *service) Return(ctx context.Context, id int64) (*model.Borrowing, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	b, err := s.br.LockByID(ctx, tx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = makeErr(ErrNotFound)
		}
		return nil, err
	}
	if b.ReturnDate != nil {
		err = makeErr(ErrAlreadyReturned)
		return nil, err
	}

	perDay := s.rules.GetNumber(ctx, model.SettingPenaltyPerDay, model.DefaultPenaltyPerDay)
	returnedAt := s.now().UTC()

	res := penalty.Calculate(b.DueDate, returnedAt, perDay)
	status := model.BorrowingReturned
	if res.IsLate {
		status = model.BorrowingReturnedLate
	}

	if err = s.br.MarkReturned(ctx, tx, b.ID, returnedAt, status, res.Penalty); err != nil {
		return nil, err
	}
	if err = s.bk.IncrementAvailable(ctx, tx, b.BookID); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	b.ReturnDate = &returnedAt
	b.Status = status
	b.Penalty = res.Penalty
	return b, nil
}

func (s *service) Mine(ctx context.Context, userID int64) ([]model.BorrowingRow, error) {
	return s.br.ListByUser(ctx, userID)
}

func (s *service) All(ctx context.Context) ([]model.BorrowingRow, error) {
	return s.br.ListAll(ctx)
}
