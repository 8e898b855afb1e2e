package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap/internal/app/models/dto"
	"github.com/skillswap/skillswap/internal/app/services"
	"github.com/skillswap/skillswap/internal/middleware"
	"github.com/skillswap/skillswap/internal/pkg/apperrors"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Log in
// @Description Authenticates an email/password pair and returns the user with a token pair. An unseen email gets a demo account.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Email and password are required"))
		return
	}

	resp, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Logged in"))
}

// Signup godoc
// @Summary Sign up
// @Description Registers a new account and returns the user with a token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Registration details"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /auth/signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("All fields are required"))
		return
	}

	resp, err := ctrl.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(resp, "Account created"))
}

// Refresh godoc
// @Summary Refresh tokens
// @Description Redeems a single-use refresh token for a fresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /auth/refresh [post]
func (ctrl *AuthController) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Refresh token is required"))
		return
	}

	resp, err := ctrl.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Tokens refreshed"))
}

// Logout godoc
// @Summary Log out
// @Description Clears the caller's transient UI state. Domain data is untouched.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	ctrl.authService.Logout(c.Request.Context(), userID)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Logged out"))
}
