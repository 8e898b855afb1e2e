package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap/internal/app/models/dto"
	"github.com/skillswap/skillswap/internal/app/services"
	"github.com/skillswap/skillswap/internal/middleware"
	"github.com/skillswap/skillswap/internal/pkg/apperrors"
)

// UserController handles profile, skills, and dashboard endpoints.
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetProfile godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 401 {object} dto.APIResponse
// @Router /users/me [get]
func (ctrl *UserController) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	user, err := ctrl.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(user, ""))
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Applies a partial profile edit. An invalid field rejects the whole update.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /users/me [put]
func (ctrl *UserController) UpdateProfile(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Invalid profile payload"))
		return
	}

	user, err := ctrl.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(user, "Profile updated"))
}

// AddSkill godoc
// @Summary Add a skill
// @Description Appends a skill to the offered or wanted list.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SkillRequest true "Skill and target list"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /users/me/skills [post]
func (ctrl *UserController) AddSkill(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Skill and list are required"))
		return
	}

	user, err := ctrl.userService.AddSkill(c.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(user, "Skill added"))
}

// RemoveSkill godoc
// @Summary Remove a skill
// @Description Removes every copy of the skill from the chosen list. Removing an absent skill is a no-op.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SkillRequest true "Skill and target list"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /users/me/skills [delete]
func (ctrl *UserController) RemoveSkill(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Skill and list are required"))
		return
	}

	user, err := ctrl.userService.RemoveSkill(c.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(user, "Skill removed"))
}

// Dashboard godoc
// @Summary Get the dashboard
// @Description Returns the caller's headline stats, skill lists, and upcoming sessions.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse}
// @Failure 401 {object} dto.APIResponse
// @Router /users/me/dashboard [get]
func (ctrl *UserController) Dashboard(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	dashboard, err := ctrl.userService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard, ""))
}
