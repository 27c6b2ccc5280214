package config

import (
	"context"
	"testing"

	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/core/domain"
	"valiant-hris/internal/pkg/password"
	"valiant-hris/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeder_Run(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	cfg := &Config{
		AppMode:        "dev",
		SeedSampleData: true,
		Admin:          AdminConfig{Name: "Admin", Email: " Admin@Valiant.PH ", Password: "admin123456"},
	}
	hasher := password.NewHasher(password.MinCost)

	seeder := NewSeeder(db, cfg, hasher)
	require.NoError(t, seeder.Run(ctx))
	// a second run changes nothing
	require.NoError(t, seeder.Run(ctx))

	users := repositories.NewUserRepository(db)
	admins, err := users.CountByRole(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), admins)

	admin, err := users.GetByEmail(ctx, "admin@valiant.ph")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("admin123456", admin.Password))

	departments, err := repositories.NewDepartmentRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), departments)

	vessels := repositories.NewVesselRepository(db)
	count, err := vessels.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	voyager, err := vessels.GetByCode(ctx, "VSL-002")
	require.NoError(t, err)
	assert.Equal(t, "Voyager", voyager.VesselName)
}

func TestSeeder_NoAdminCredentials(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	seeder := NewSeeder(db, &Config{AppMode: "prod"}, password.NewHasher(password.MinCost))
	require.NoError(t, seeder.Run(ctx))

	admins, err := repositories.NewUserRepository(db).CountByRole(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Zero(t, admins)

	vessels, err := repositories.NewVesselRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, vessels)
}
