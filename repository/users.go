package repository

import (
	"context"
	"strings"

	"expedientes_app_go/models"
)

// Users are read-only through the facade. They enter the dataset through the
// stored document or SeedUser.

func (r *Repository) ListUsers(ctx context.Context) []models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.CloneAll(r.data.Users)
}

func (r *Repository) GetUser(ctx context.Context, id string) (models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return getByID(r.data.Users, id)
}

// SeedUser adds u unless a user with the same email (case-insensitive) exists.
// An empty ID is assigned. It reports whether the user was added.
func (r *Repository) SeedUser(ctx context.Context, u models.User) (models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.data.Users {
		if strings.EqualFold(existing.Email, u.Email) {
			return existing.Clone(), false
		}
	}
	if u.ID == "" {
		u.ID = r.newID()
	}
	r.data.Users = append(r.data.Users, u)
	r.persist(ctx)
	return u.Clone(), true
}
