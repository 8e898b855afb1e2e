package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap/internal/pkg/apperrors"
	"github.com/skillswap/skillswap/internal/pkg/auth"
)

// Context keys set by the auth middleware.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// AuthMiddleware validates bearer tokens and injects the caller's
// identity into the request context.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new auth middleware.
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, apperrors.ErrUnauthenticated)
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(token)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				HandleAPIError(c, apperrors.ErrTokenExpired)
			} else {
				HandleAPIError(c, apperrors.ErrTokenInvalid)
			}
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// GetUserID returns the authenticated caller's identifier, or an error
// when the request skipped authentication.
func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, apperrors.ErrUnauthenticated
	}
	id, ok := v.(int64)
	if !ok {
		return 0, apperrors.ErrUnauthenticated
	}
	return id, nil
}
