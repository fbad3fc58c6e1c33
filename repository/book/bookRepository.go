package book

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/MedGm/Library-Management-Scrum/model"
)

var dialect = goqu.Dialect("postgres")

const bookCols = `id, title, author, category, published_year, isbn, cover_url, stock, available`

type Repo interface {
	Create(ctx context.Context, b *model.Book) error
	List(ctx context.Context, f model.BookFilter) ([]model.Book, error)
	Detail(ctx context.Context, id int64) (*model.Book, error)
	Update(ctx context.Context, id int64, apply func(b *model.Book)) (*model.Book, error)

	// Inventory ledger; only called inside the borrowing service's
	// transactions, after LockForUpdate on the same row.
	LockForUpdate(ctx context.Context, tx *sql.Tx, id int64) (stock, available int64, err error)
	DecrementAvailable(ctx context.Context, tx *sql.Tx, id int64) error
	IncrementAvailable(ctx context.Context, tx *sql.Tx, id int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, b *model.Book) error {
	const q = `
		INSERT INTO books (title, author, category, published_year, isbn, cover_url, stock, available)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$7)
		RETURNING id, available`
	return r.db.QueryRowContext(ctx, q,
		b.Title, b.Author, b.Category, b.PublishedYear, b.ISBN, b.CoverURL, b.Stock,
	).Scan(&b.ID, &b.Available)
}

func (r *repo) List(ctx context.Context, f model.BookFilter) ([]model.Book, error) {
	ds := dialect.From("books").
		Select("id", "title", "author", "category", "published_year", "isbn", "cover_url", "stock", "available").
		Order(goqu.C("title").Asc())

	if f.Title != "" {
		ds = ds.Where(goqu.C("title").ILike("%" + f.Title + "%"))
	}
	if f.Author != "" {
		ds = ds.Where(goqu.C("author").ILike("%" + f.Author + "%"))
	}
	if f.Category != "" {
		ds = ds.Where(goqu.C("category").Eq(f.Category))
	}
	if f.PublishedYear != 0 {
		ds = ds.Where(goqu.C("published_year").Eq(f.PublishedYear))
	}

	q, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Book
	for rows.Next() {
		var b model.Book
		if err := scanBook(rows.Scan, &b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, id int64) (*model.Book, error) {
	var b model.Book
	err := scanBook(r.db.QueryRowContext(ctx, `SELECT `+bookCols+` FROM books WHERE id=$1`, id).Scan, &b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Update locks the row, lets apply mutate a copy, clamps available into
// [0, stock] and writes the result back.
func (r *repo) Update(ctx context.Context, id int64, apply func(b *model.Book)) (*model.Book, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var b model.Book
	if err = scanBook(tx.QueryRowContext(ctx, `SELECT `+bookCols+` FROM books WHERE id=$1 FOR UPDATE`, id).Scan, &b); err != nil {
		return nil, err
	}

	apply(&b)
	if b.Stock < 0 {
		b.Stock = 0
	}
	if b.Available > b.Stock {
		b.Available = b.Stock
	}
	if b.Available < 0 {
		b.Available = 0
	}

	const q = `
		UPDATE books
		SET title=$2, author=$3, category=$4, published_year=$5, isbn=$6, cover_url=$7, stock=$8, available=$9
		WHERE id=$1`
	if _, err = tx.ExecContext(ctx, q,
		b.ID, b.Title, b.Author, b.Category, b.PublishedYear, b.ISBN, b.CoverURL, b.Stock, b.Available,
	); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) LockForUpdate(ctx context.Context, tx *sql.Tx, id int64) (int64, int64, error) {
	const q = `
		SELECT stock, available
		FROM books
		WHERE id = $1
		FOR UPDATE`
	var stock, available int64
	err := tx.QueryRowContext(ctx, q, id).Scan(&stock, &available)
	return stock, available, err
}

func (r *repo) DecrementAvailable(ctx context.Context, tx *sql.Tx, id int64) error {
	// Guard: only decrement while a copy remains.
	const q = `
		UPDATE books
		SET available = available - 1
		WHERE id = $1
		AND available >= 1`
	res, err := tx.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) IncrementAvailable(ctx context.Context, tx *sql.Tx, id int64) error {
	// Clamped at stock so a mismatched return cannot push availability
	// above the owned copies.
	const q = `
		UPDATE books
		SET available = LEAST(available + 1, stock)
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id)
	return err
}

func scanBook(scan func(dest ...any) error, b *model.Book) error {
	return scan(&b.ID, &b.Title, &b.Author, &b.Category, &b.PublishedYear, &b.ISBN, &b.CoverURL, &b.Stock, &b.Available)
}
