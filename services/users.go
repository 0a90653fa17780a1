package services

import (
	"context"

	"expedientes_app_go/models"
)

type UserService struct{ *base }

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return run(ctx, s.base, Op{Entity: "users", Action: ActionList}, func() []models.User {
		return s.repo.ListUsers(ctx)
	})
}

func (s *UserService) Get(ctx context.Context, id string) (models.User, bool, error) {
	return runFound(ctx, s.base, Op{Entity: "users", Action: ActionGet}, func() (models.User, bool) {
		return s.repo.GetUser(ctx, id)
	})
}
