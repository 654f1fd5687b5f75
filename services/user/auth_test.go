package user

import (
	"context"
	"testing"

	userRepo "smartmeet/database/repository/user"
	"smartmeet/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUserService() *DefaultUserService {
	return NewDefaultUserService(userRepo.NewMemoryUserRepo(), zap.NewNop())
}

func TestSignup_Validation(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, " ", "asha@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidSignup)

	_, err = svc.Signup(ctx, "Asha", "not-an-email", "secret1")
	assert.ErrorIs(t, err, ErrInvalidSignup)

	_, err = svc.Signup(ctx, "Asha", "asha@example.com", "12345")
	assert.ErrorIs(t, err, ErrInvalidSignup)
}

func TestSignupLoginRoundTrip(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	signup, err := svc.Signup(ctx, "Asha", " Asha@Example.com ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", signup.User.Email)
	assert.NotEqual(t, "secret1", signup.User.PasswordHash)

	sub, err := utils.ExtractIDFromToken(signup.Token)
	require.NoError(t, err)
	assert.Equal(t, signup.User.ID, sub)

	login, err := svc.Login(ctx, "asha@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, signup.User.ID, login.User.ID)

	me, err := svc.GetUser(ctx, sub)
	require.NoError(t, err)
	assert.Equal(t, "Asha", me.Name)

	_, err = svc.Signup(ctx, "Asha Again", "asha@example.com", "secret2")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()
	_, err := svc.Signup(ctx, "Asha", "asha@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "asha@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
