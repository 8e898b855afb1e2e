package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap/internal/app/models/dto"
	"github.com/skillswap/skillswap/internal/app/stores"
	"github.com/skillswap/skillswap/internal/pkg/apperrors"
	"github.com/skillswap/skillswap/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) (AuthService, *stores.DraftStore) {
	t.Helper()

	sessions := stores.NewSessionStore(0, zerolog.Nop())
	drafts := stores.NewDraftStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "skillswap.test",
	})
	return NewAuthService(sessions, drafts, jwtService, zerolog.Nop()), drafts
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, _ := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alex@university.edu",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.NotEmpty(t, resp.Token.RefreshToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, "Alex", resp.User.Name)
}

func TestRefreshTokenIsSingleUse(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "alex@university.edu", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.Token.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
	assert.NotEqual(t, login.Token.RefreshToken, refreshed.Token.RefreshToken)

	// The redeemed token is gone.
	_, err = svc.Refresh(ctx, login.Token.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestLogoutClearsTransientState(t *testing.T) {
	svc, drafts := newTestAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "alex@university.edu", Password: "password123"})
	require.NoError(t, err)
	userID := login.User.ID

	drafts.OpenCourseForm(userID)
	drafts.OpenChatPanel(userID, 1)

	svc.Logout(ctx, userID)

	_, open := drafts.CourseForm(userID)
	assert.False(t, open)
	_, open = drafts.ChatPanel(userID)
	assert.False(t, open)
}
