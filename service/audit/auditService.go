package audit

import (
	"context"
	"log/slog"

	"github.com/MedGm/Library-Management-Scrum/model"
)

// recentLimit caps the admin listing to the newest entries.
const recentLimit = 100

type Repo interface {
	Insert(ctx context.Context, action string, userID int64, details string) error
	Recent(ctx context.Context, limit int) ([]model.AuditRow, error)
}

type Service interface {
	// Record appends an audit entry. It never returns an error: a failed
	// write is logged and dropped so the caller's operation is unaffected.
	Record(ctx context.Context, action string, userID int64, details string)

	Recent(ctx context.Context) ([]model.AuditRow, error)
}

type service struct {
	r   Repo
	log *slog.Logger
}

func New(r Repo, log *slog.Logger) Service { return &service{r: r, log: log} }

func (s *service) Record(ctx context.Context, action string, userID int64, details string) {
	if err := s.r.Insert(ctx, action, userID, details); err != nil {
		s.log.Error("audit record failed", "action", action, "user_id", userID, "err", err)
	}
}

func (s *service) Recent(ctx context.Context) ([]model.AuditRow, error) {
	return s.r.Recent(ctx, recentLimit)
}
