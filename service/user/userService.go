package user

import (
	"context"

	"github.com/MedGm/Library-Management-Scrum/model"
)

type Repo interface {
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
}

type Service interface {
	// Members lists the borrowing accounts, for staff picking a user
	// when recording a loan at the desk.
	Members(ctx context.Context) ([]model.User, error)
}

type service struct {
	r Repo
}

func New(r Repo) Service { return &service{r: r} }

func (s *service) Members(ctx context.Context) ([]model.User, error) {
	return s.r.ListByRole(ctx, model.RoleMember)
}
