package dto

import "github.com/skillswap/skillswap/internal/app/models"

// LoginRequest is the login form payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"alex@university.edu"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// SignupRequest is the registration form payload.
type SignupRequest struct {
	Name     string `json:"name" binding:"required" example:"Alex Johnson"`
	Email    string `json:"email" binding:"required,email" example:"alex@university.edu"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
}

// RefreshTokenRequest redeems a refresh token for a new pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries the issued token pair.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
	TokenType    string `json:"tokenType" example:"Bearer"`
}

// AuthResponse is returned by login and signup.
type AuthResponse struct {
	User  *models.User  `json:"user"`
	Token TokenResponse `json:"token"`
}
