package audit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/MedGm/Library-Management-Scrum/model"
)

type repoMock struct {
	insertErr error
	inserted  int
	gotLimit  int
}

func (m *repoMock) Insert(ctx context.Context, action string, userID int64, details string) error {
	m.inserted++
	return m.insertErr
}

func (m *repoMock) Recent(ctx context.Context, limit int) ([]model.AuditRow, error) {
	m.gotLimit = limit
	return []model.AuditRow{}, nil
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestRecord_SwallowsFailure(t *testing.T) {
	m := &repoMock{insertErr: errors.New("sink down")}
	s := New(m, discard())

	// Must not panic or surface the error.
	s.Record(context.Background(), "UPDATE_SETTINGS", 1, "x")
	if m.inserted != 1 {
		t.Fatalf("inserted %d; want 1 attempt", m.inserted)
	}
}

func TestRecent_LimitsToNewest(t *testing.T) {
	m := &repoMock{}
	s := New(m, discard())

	if _, err := s.Recent(context.Background()); err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if m.gotLimit != 100 {
		t.Fatalf("limit %d; want 100", m.gotLimit)
	}
}
