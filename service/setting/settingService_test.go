package setting

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/MedGm/Library-Management-Scrum/model"
)

type repoMock struct {
	getFn    func(ctx context.Context, key string) (string, error)
	upsertFn func(ctx context.Context, key, value string) error
	allFn    func(ctx context.Context) (map[string]string, error)
}

func (m *repoMock) Get(ctx context.Context, key string) (string, error) {
	return m.getFn(ctx, key)
}
func (m *repoMock) All(ctx context.Context) (map[string]string, error) {
	if m.allFn == nil {
		return nil, nil
	}
	return m.allFn(ctx)
}
func (m *repoMock) Upsert(ctx context.Context, key, value string) error {
	if m.upsertFn == nil {
		return nil
	}
	return m.upsertFn(ctx, key, value)
}

type recorderMock struct {
	action  string
	userID  int64
	details string
	calls   int
}

func (r *recorderMock) Record(ctx context.Context, action string, userID int64, details string) {
	r.action, r.userID, r.details = action, userID, details
	r.calls++
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestGetNumber_StoredValue(t *testing.T) {
	m := &repoMock{getFn: func(ctx context.Context, key string) (string, error) { return "3", nil }}
	s := New(m, &recorderMock{}, discard())

	if got := s.GetNumber(context.Background(), model.SettingMaxLoans, 5); got != 3 {
		t.Fatalf("got %v; want stored 3", got)
	}
}

func TestGetNumber_AbsentUsesDefault(t *testing.T) {
	m := &repoMock{getFn: func(ctx context.Context, key string) (string, error) { return "", sql.ErrNoRows }}
	s := New(m, &recorderMock{}, discard())

	if got := s.GetNumber(context.Background(), model.SettingLoanDays, 14); got != 14 {
		t.Fatalf("got %v; want default 14", got)
	}
}

func TestGetNumber_MalformedUsesDefault(t *testing.T) {
	m := &repoMock{getFn: func(ctx context.Context, key string) (string, error) { return "not-a-number", nil }}
	s := New(m, &recorderMock{}, discard())

	if got := s.GetNumber(context.Background(), model.SettingPenaltyPerDay, 1.0); got != 1.0 {
		t.Fatalf("got %v; want default 1.0 for malformed value", got)
	}
}

func TestGetNumber_NonFiniteUsesDefault(t *testing.T) {
	// ParseFloat happily parses these; they must never leak into the rules.
	for _, raw := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf"} {
		m := &repoMock{getFn: func(ctx context.Context, key string) (string, error) { return raw, nil }}
		s := New(m, &recorderMock{}, discard())

		if got := s.GetNumber(context.Background(), model.SettingMaxLoans, 5); got != 5 {
			t.Fatalf("value %q: got %v; want default 5", raw, got)
		}
	}
}

func TestGetNumber_FloatValue(t *testing.T) {
	m := &repoMock{getFn: func(ctx context.Context, key string) (string, error) { return " 1.5 ", nil }}
	s := New(m, &recorderMock{}, discard())

	if got := s.GetNumber(context.Background(), model.SettingPenaltyPerDay, 1.0); got != 1.5 {
		t.Fatalf("got %v; want 1.5", got)
	}
}

func TestUpdate_UpsertsAndAudits(t *testing.T) {
	stored := map[string]string{}
	m := &repoMock{
		upsertFn: func(ctx context.Context, key, value string) error {
			stored[key] = value
			return nil
		},
	}
	rec := &recorderMock{}
	s := New(m, rec, discard())

	err := s.Update(context.Background(), 9, map[string]string{
		model.SettingMaxLoans: "7",
		model.SettingLoanDays: "21",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if stored[model.SettingMaxLoans] != "7" || stored[model.SettingLoanDays] != "21" {
		t.Fatalf("stored %v; want both keys upserted", stored)
	}
	if rec.calls != 1 || rec.action != "UPDATE_SETTINGS" || rec.userID != 9 {
		t.Fatalf("audit call %+v; want one UPDATE_SETTINGS by user 9", rec)
	}
	if rec.details != "Updated settings: LOAN_DAYS, MAX_LOANS" {
		t.Fatalf("details %q; want sorted key list", rec.details)
	}
}

func TestUpdate_UpsertFailurePropagates(t *testing.T) {
	m := &repoMock{
		upsertFn: func(ctx context.Context, key, value string) error {
			return errors.New("db down")
		},
	}
	rec := &recorderMock{}
	s := New(m, rec, discard())

	if err := s.Update(context.Background(), 9, map[string]string{model.SettingMaxLoans: "7"}); err == nil {
		t.Fatal("expected error from failing upsert")
	}
	if rec.calls != 0 {
		t.Fatal("failed update must not be audited")
	}
}
