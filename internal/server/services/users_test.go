package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/harudiary/haru/internal/common"
	"github.com/harudiary/haru/internal/server/auth"
	"github.com/harudiary/haru/internal/server/config"
	"github.com/harudiary/haru/internal/server/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return cfg
}

func TestRegisterAndLogin(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewUserService(m, testConfig())
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.NotEqual(t, "correct horse", string(user.PasswordHash))

	pair, userID, err := svc.Login(ctx, "alice", "correct horse")
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	// access token embeds the user id
	got, err := auth.UserIDFromToken(pair.AccessToken, []byte(testConfig().SecretKey))
	require.NoError(t, err)
	require.Equal(t, user.ID, got)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewUserService(m, testConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "pw-one-two-three")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other-password")
	require.ErrorIs(t, err, common.ErrDuplicate)
}

func TestLogin_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewUserService(m, testConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "correct horse")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, common.ErrUnauthorized)

	_, _, err = svc.Login(ctx, "nobody", "wrong")
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestRefresh_UnknownToken(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewUserService(m, testConfig())

	_, _, err := svc.Refresh(context.Background(), "no-such-token")
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewUserService(m, testConfig())
	ctx := context.Background()

	expired := &models.RefreshToken{Token: "stale", UserID: "u1", Expires: time.Now().Add(-time.Hour)}
	require.NoError(t, m.tokens.Add(ctx, expired))

	_, _, err := svc.Refresh(ctx, "stale")
	require.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}
