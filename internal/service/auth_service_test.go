package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"loanhub/api/internal/models"
	"loanhub/api/internal/security"
)

func newAuthService() (*AuthService, *fakeUserStore) {
	users := &fakeUserStore{}
	return NewAuthService(users, testConfig(), zerolog.Nop()), users
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	svc, users := newAuthService()

	user, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Asha",
		Email:    "Asha@Example.IN",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "asha@example.in", user.Email, "email should be normalized")
	require.Equal(t, models.UserRoleUser, user.Role)
	require.True(t, security.VerifyPassword("hunter22", user.PasswordHash))
	require.Len(t, users.users, 1)
}

func TestRegister_OfficerEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService()

	user, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Officer",
		Email:    "officer@bank.in",
		Password: "pw123456",
	})
	require.NoError(t, err)
	require.Equal(t, models.UserRoleOfficer, user.Role)
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()

	svc, users := newAuthService()

	for _, input := range []RegisterInput{
		{Name: "", Email: "a@b.in", Password: "pw"},
		{Name: "A", Email: "", Password: "pw"},
		{Name: "A", Email: "a@b.in", Password: ""},
		{Name: "   ", Email: "a@b.in", Password: "pw"},
	} {
		_, err := svc.Register(context.Background(), input)
		require.ErrorIs(t, err, ErrMissingFields)
	}
	require.Empty(t, users.users)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, users := newAuthService()

	_, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@b.in", Password: "pw123456"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterInput{Name: "B", Email: "a@b.in", Password: "pw654321"})
	require.ErrorIs(t, err, ErrEmailTaken)
	require.Len(t, users.users, 1, "no second record must be created")
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService()
	cfg := testConfig()

	_, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@b.in", Password: "pw123456"})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "a@b.in", "pw123456")
	require.NoError(t, err)
	require.Equal(t, "a@b.in", result.User.Email)

	claims, err := security.ParseToken(result.Token, cfg.Security.JWTSecret)
	require.NoError(t, err)
	require.Equal(t, result.User.ID, claims.UserID)
	require.Equal(t, "a@b.in", claims.Email)
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService()

	_, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@b.in", Password: "pw123456"})
	require.NoError(t, err)

	_, wrongPassErr := svc.Login(context.Background(), "a@b.in", "bad-password")
	require.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)

	_, unknownErr := svc.Login(context.Background(), "nobody@b.in", "whatever")
	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)

	require.Equal(t, wrongPassErr, unknownErr, "credential failures must be indistinguishable")
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService()

	_, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@b.in", Password: "pw123456"})
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), RegisterInput{Name: "B", Email: "b@b.in", Password: "pw654321"})
	require.NoError(t, err)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
}
