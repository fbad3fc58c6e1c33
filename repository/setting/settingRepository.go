package setting

import (
	"context"
	"database/sql"
)

type Repo interface {
	Get(ctx context.Context, key string) (string, error)
	All(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, key, value string) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Get(ctx context.Context, key string) (string, error) {
	const q = `
		SELECT value
		FROM system_settings
		WHERE key = $1`
	var v string
	err := r.db.QueryRowContext(ctx, q, key).Scan(&v)
	return v, err
}

func (r *repo) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM system_settings ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}

func (r *repo) Upsert(ctx context.Context, key, value string) error {
	const q = `
		INSERT INTO system_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	_, err := r.db.ExecContext(ctx, q, key, value)
	return err
}
