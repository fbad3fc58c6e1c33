package audit

import (
	"context"
	"database/sql"

	"github.com/MedGm/Library-Management-Scrum/model"
)

type Repo interface {
	Insert(ctx context.Context, action string, userID int64, details string) error
	Recent(ctx context.Context, limit int) ([]model.AuditRow, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Insert(ctx context.Context, action string, userID int64, details string) error {
	const q = `
		INSERT INTO audit_logs (action, user_id, details)
		VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, q, action, userID, details)
	return err
}

func (r *repo) Recent(ctx context.Context, limit int) ([]model.AuditRow, error) {
	const q = `
		SELECT a.id, a.action, a.user_id, a.details, a.timestamp, u.name, u.email
		FROM audit_logs a
		JOIN users u ON u.id = a.user_id
		ORDER BY a.timestamp DESC, a.id DESC
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.AuditRow
	for rows.Next() {
		var row model.AuditRow
		if err := rows.Scan(&row.ID, &row.Action, &row.UserID, &row.Details, &row.Timestamp, &row.UserName, &row.UserEmail); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
