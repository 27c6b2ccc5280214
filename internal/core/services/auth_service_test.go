package services

import (
	"context"
	"testing"
	"time"

	"valiant-hris/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registered, err := env.auth.Register(ctx, &RegisterInput{
		Name:     "Maria Santos",
		Email:    "  Maria@Valiant.PH ",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEmployee, registered.User.Role)
	assert.Equal(t, "maria@valiant.ph", registered.User.Email)
	assert.NotEqual(t, "password123", registered.User.Password)

	result, err := env.auth.Login(ctx, &LoginInput{Email: "MARIA@valiant.ph", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, result.User.ID)

	claims, err := env.issuer.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, "employee", claims.Role)
	assert.True(t, claims.ExpiresAt.Time.Equal(result.ExpiresAt))
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Create(ctx, &CreateUserInput{Name: "Boss", Email: "boss@valiant.ph", Password: "password123", Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, unknownErr := env.auth.Login(ctx, &LoginInput{Email: "nobody@valiant.ph", Password: "password123"})
	_, wrongErr := env.auth.Login(ctx, &LoginInput{Email: "boss@valiant.ph", Password: "wrong-password"})

	assert.ErrorIs(t, unknownErr, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domain.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())

	// unknown accounts still pay for a bcrypt comparison
	start := time.Now()
	_, _ = env.auth.Login(ctx, &LoginInput{Email: "nobody@valiant.ph", Password: "password123"})
	unknown := time.Since(start)

	start = time.Now()
	_, _ = env.auth.Login(ctx, &LoginInput{Email: "boss@valiant.ph", Password: "wrong-password"})
	wrong := time.Since(start)

	assert.Greater(t, unknown, wrong/4)
}

func TestAuthService_LoginRequiresFields(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Login(context.Background(), &LoginInput{Email: "a@valiant.ph"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	input := &RegisterInput{Name: "A", Email: "dup@valiant.ph", Password: "password123"}
	_, err := env.auth.Register(ctx, input)
	require.NoError(t, err)

	_, err = env.auth.Register(ctx, &RegisterInput{Name: "B", Email: "DUP@valiant.ph", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAuthService_RegisterShortPassword(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(context.Background(), &RegisterInput{Name: "A", Email: "a@valiant.ph", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuthService_MeAfterDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	result, err := env.auth.Register(ctx, &RegisterInput{Name: "A", Email: "gone@valiant.ph", Password: "password123"})
	require.NoError(t, err)

	user, err := env.auth.Me(ctx, result.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "gone@valiant.ph", user.Email)

	require.NoError(t, env.userRepo.Delete(ctx, result.User.ID))

	_, err = env.auth.Me(ctx, result.User.ID)
	assert.ErrorIs(t, err, domain.ErrUserGone)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	result, err := env.auth.Register(ctx, &RegisterInput{Name: "A", Email: "pw@valiant.ph", Password: "password123"})
	require.NoError(t, err)
	id := result.User.ID

	err = env.auth.ChangePassword(ctx, id, &ChangePasswordInput{CurrentPassword: "wrong-one", NewPassword: "newpassword1"})
	assert.ErrorIs(t, err, domain.ErrWrongPassword)

	require.NoError(t, env.auth.ChangePassword(ctx, id, &ChangePasswordInput{CurrentPassword: "password123", NewPassword: "newpassword1"}))

	_, err = env.auth.Login(ctx, &LoginInput{Email: "pw@valiant.ph", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = env.auth.Login(ctx, &LoginInput{Email: "pw@valiant.ph", Password: "newpassword1"})
	assert.NoError(t, err)
}

func TestUserService_CreateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Create(ctx, &CreateUserInput{Name: "X", Email: "x@valiant.ph", Password: "password123", Role: "captain"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	manager, err := env.users.Create(ctx, &CreateUserInput{Name: "M", Email: "m@valiant.ph", Password: "password123", Role: domain.RoleManager})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleManager, manager.Role)

	assert.ErrorIs(t, env.users.Delete(ctx, manager.ID, manager.ID), domain.ErrCannotDeleteSelf)
	require.NoError(t, env.users.Delete(ctx, "someone-else", manager.ID))
	assert.ErrorIs(t, env.users.Delete(ctx, "someone-else", manager.ID), domain.ErrNotFound)
}

func TestUserService_ResetPasswordByEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Create(ctx, &CreateUserInput{Name: "A", Email: "reset@valiant.ph", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, env.users.ResetPasswordByEmail(ctx, "RESET@valiant.ph", "brandnew123"))

	_, err = env.auth.Login(ctx, &LoginInput{Email: "reset@valiant.ph", Password: "brandnew123"})
	assert.NoError(t, err)

	assert.ErrorIs(t, env.users.ResetPasswordByEmail(ctx, "missing@valiant.ph", "brandnew123"), domain.ErrNotFound)
}
