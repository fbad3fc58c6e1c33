package user

import (
	"context"
	"errors"
	"testing"

	"github.com/MedGm/Library-Management-Scrum/model"
)

type repoMock struct {
	listByRoleFn func(ctx context.Context, role model.Role) ([]model.User, error)
}

func (m *repoMock) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	return m.listByRoleFn(ctx, role)
}

func TestMembers_ListsMemberRoleOnly(t *testing.T) {
	var askedRole model.Role
	m := &repoMock{listByRoleFn: func(ctx context.Context, role model.Role) ([]model.User, error) {
		askedRole = role
		return []model.User{{ID: 1, Name: "Alice", Role: model.RoleMember}}, nil
	}}
	s := New(m)

	out, err := s.Members(context.Background())
	if err != nil {
		t.Fatalf("Members: %v", err)
	}
	if askedRole != model.RoleMember {
		t.Fatalf("queried role %q; want MEMBER", askedRole)
	}
	if len(out) != 1 || out[0].Name != "Alice" {
		t.Fatalf("got %+v; want the repo's member list", out)
	}
}

func TestMembers_RepoErrorPropagates(t *testing.T) {
	m := &repoMock{listByRoleFn: func(ctx context.Context, role model.Role) ([]model.User, error) {
		return nil, errors.New("db down")
	}}
	s := New(m)

	if _, err := s.Members(context.Background()); err == nil {
		t.Fatal("expected repo error to propagate")
	}
}
