package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furnex/internal/database"
	jwtsvc "furnex/internal/pkg/jwt"
	"furnex/internal/repository"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return NewService(
		repository.NewUserRepository(db),
		repository.NewClientRepository(db),
		jwtsvc.New("test-secret", time.Hour),
	)
}

func registerRequest() RegisterRequest {
	return RegisterRequest{
		Name:     "Anna",
		Surname:  "Kowalska",
		Email:    "anna@example.com",
		Password: "password123",
		Street:   "ul. Dluga 12",
		City:     "Gdansk",
		PostCode: "80-001",
		Phone:    "+48 600 100 200",
	}
}

func TestRegister_CreatesClientAccount(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "client", resp.User.Role)
	assert.Equal(t, "anna@example.com", resp.User.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerRequest())
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin_RoundTrip(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	resp, err := svc.Login(ctx, LoginRequest{Email: "anna@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{Email: "anna@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
