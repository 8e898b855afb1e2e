package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skillswap/skillswap/internal/app/models"
	"github.com/skillswap/skillswap/internal/app/models/dto"
	"github.com/skillswap/skillswap/internal/app/stores"
	"github.com/skillswap/skillswap/internal/pkg/auth"
)

// AuthService handles login, signup, token refresh, and session
// teardown.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, userID int64)
}

type authServiceImpl struct {
	sessions   *stores.SessionStore
	drafts     *stores.DraftStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(sessions *stores.SessionStore, drafts *stores.DraftStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		sessions:   sessions,
		drafts:     drafts,
		jwtService: jwtService,
		logger:     logger.With().Str("service", "auth").Logger(),
	}
}

// Login authenticates the credentials and issues a token pair.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.sessions.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

// Signup registers the account and issues a token pair.
func (s *authServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	user, err := s.sessions.Signup(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

// Refresh redeems a refresh token for a fresh token pair. Refresh
// tokens are single-use; the redeemed one stops working.
func (s *authServiceImpl) Refresh(_ context.Context, refreshToken string) (*dto.AuthResponse, error) {
	user, err := s.sessions.RedeemRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

// Logout discards the user's transient UI state. Accounts and domain
// data are untouched; the issued tokens simply stop being presented.
func (s *authServiceImpl) Logout(_ context.Context, userID int64) {
	s.drafts.CloseCourseForm(userID)
	s.drafts.CloseGroupForm(userID)
	s.drafts.CloseChatPanel(userID)
	s.logger.Info().Int64("userId", userID).Msg("User logged out")
}

func (s *authServiceImpl) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userId", user.ID).Msg("Failed to generate token pair")
		return nil, err
	}
	s.sessions.StoreRefreshToken(refreshToken, user.ID)
	return &dto.AuthResponse{
		User: user,
		Token: dto.TokenResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresIn:    expiresIn,
			TokenType:    "Bearer",
		},
	}, nil
}
