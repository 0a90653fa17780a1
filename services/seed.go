package services

import (
	"context"
	"log"
	"os"
	"strings"

	"expedientes_app_go/models"
	"expedientes_app_go/repository"
)

// SeedAdminFromEnv creates an admin user from SEED_ADMIN_EMAIL and SEED_ADMIN_NAME.
// It does nothing when the email is unset or a user with that email already exists.
func SeedAdminFromEnv(ctx context.Context, repo *repository.Repository) {
	email := strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL"))
	if email == "" {
		return
	}
	name := strings.TrimSpace(os.Getenv("SEED_ADMIN_NAME"))
	if name == "" {
		name = "Administrador"
	}

	user, created := repo.SeedUser(ctx, models.User{
		Name:  name,
		Email: email,
		Role:  models.RoleAdmin,
	})
	if !created {
		log.Printf("[SEED] User with email %s already exists, skipping admin seed", email)
		return
	}
	log.Printf("[SEED] Admin user created (ID: %s)", user.ID)
}
