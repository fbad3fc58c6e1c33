package setting

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Recorder is the audit sink for settings changes. Failures are swallowed:
// auditing never blocks the update itself.
type Recorder interface {
	Record(ctx context.Context, action string, userID int64, details string)
}

type Repo interface {
	Get(ctx context.Context, key string) (string, error)
	All(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, key, value string) error
}

type Service interface {
	// GetNumber reads a rule fresh from storage on every call so a rule
	// change applies to the next operation immediately. Absent or
	// unparseable values yield def.
	GetNumber(ctx context.Context, key string, def float64) float64

	All(ctx context.Context) (map[string]string, error)
	Update(ctx context.Context, actorID int64, updates map[string]string) error
}

type service struct {
	r   Repo
	rec Recorder
	log *slog.Logger
}

func New(r Repo, rec Recorder, log *slog.Logger) Service {
	return &service{r: r, rec: rec, log: log}
}

func (s *service) GetNumber(ctx context.Context, key string, def float64) float64 {
	raw, err := s.r.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Warn("setting read failed", "key", key, "err", err)
		}
		return def
	}
	// ParseFloat accepts "NaN" and "Inf"; neither may reach quota or
	// penalty arithmetic.
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		s.log.Warn("setting not numeric, using default", "key", key, "value", raw)
		return def
	}
	return v
}

func (s *service) All(ctx context.Context) (map[string]string, error) {
	return s.r.All(ctx)
}

func (s *service) Update(ctx context.Context, actorID int64, updates map[string]string) error {
	keys := make([]string, 0, len(updates))
	for k := range updates {
		if err := s.r.Upsert(ctx, k, updates[k]); err != nil {
			return err
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s.rec.Record(ctx, "UPDATE_SETTINGS", actorID, "Updated settings: "+strings.Join(keys, ", "))
	return nil
}
