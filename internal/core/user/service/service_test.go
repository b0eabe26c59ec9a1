package userapp

import (
	"context"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weblog/internal/adapters/memory"
	userPort "weblog/internal/ports/user"
)

var testKey = []byte("test-secret")

func newTestService(t *testing.T) (*UserService, *memory.SessionStoreMemory) {
	store := memory.NewStore()
	sessions := memory.NewSessionStoreMemory()
	return NewUserService(memory.NewUserRepositoryMemory(store), sessions, testKey), sessions
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.RegisterUser(ctx, "alice", "s3cret", "Alice", "Liddell", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.NotEmpty(t, u.ID)

	res, err := svc.LoginUser(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	claims := &jwt.StandardClaims{}
	_, err = jwt.ParseWithClaims(res.Token, claims, func(*jwt.Token) (interface{}, error) {
		return testKey, nil
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Subject)
	assert.NotEmpty(t, claims.Id)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "alice", "pw", "", "", "")
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, "alice", "pw2", "", "", "")
	assert.ErrorIs(t, err, userPort.ErrUsernameTaken)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "alice", "right", "", "", "")
	require.NoError(t, err)

	_, err = svc.LoginUser(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, userPort.ErrInvalidCredentials)

	_, err = svc.LoginUser(ctx, "nobody", "right")
	assert.ErrorIs(t, err, userPort.ErrInvalidCredentials)
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, sessions := newTestService(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "alice", "pw", "", "", "")
	require.NoError(t, err)
	res, err := svc.LoginUser(ctx, "alice", "pw")
	require.NoError(t, err)

	claims := &jwt.StandardClaims{}
	_, err = jwt.ParseWithClaims(res.Token, claims, func(*jwt.Token) (interface{}, error) {
		return testKey, nil
	})
	require.NoError(t, err)

	require.NoError(t, svc.LogoutUser(ctx, claims.Id, claims.ExpiresAt))

	revoked, err := sessions.IsRevoked(ctx, claims.Id)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "alice", "pw", "", "", "")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, "alice", userPort.ProfileUpdate{
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.FirstName)

	profile, err := svc.GetProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", profile.Email)

	_, err = svc.UpdateProfile(ctx, "nobody", userPort.ProfileUpdate{})
	assert.ErrorIs(t, err, userPort.ErrNotFound)
}
