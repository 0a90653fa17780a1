package services

import (
	"context"
	"testing"

	"expedientes_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAdminFromEnv(t *testing.T) {
	ctx := context.Background()

	t.Run("Skips without email", func(t *testing.T) {
		t.Setenv("SEED_ADMIN_EMAIL", "")
		repo := setupTestRepo(t)
		SeedAdminFromEnv(ctx, repo)
		assert.Empty(t, repo.ListUsers(ctx))
	})

	t.Run("Creates admin once", func(t *testing.T) {
		t.Setenv("SEED_ADMIN_EMAIL", "admin@estudio.com")
		t.Setenv("SEED_ADMIN_NAME", "")
		repo := setupTestRepo(t)

		SeedAdminFromEnv(ctx, repo)
		SeedAdminFromEnv(ctx, repo)

		users := repo.ListUsers(ctx)
		require.Len(t, users, 1)
		assert.Equal(t, "Administrador", users[0].Name)
		assert.Equal(t, models.RoleAdmin, users[0].Role)
		assert.NotEmpty(t, users[0].ID)
	})
}
