package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap/internal/app/models/dto"
	"github.com/skillswap/skillswap/internal/app/services"
	"github.com/skillswap/skillswap/internal/app/stores"
	"github.com/skillswap/skillswap/internal/middleware"
	"github.com/skillswap/skillswap/internal/pkg/apperrors"
)

// GroupController handles study group, membership, creation-form, and
// chat endpoints.
type GroupController struct {
	groupService services.GroupService
}

// NewGroupController creates a new GroupController.
func NewGroupController(groupService services.GroupService) *GroupController {
	return &GroupController{groupService: groupService}
}

// ListGroups godoc
// @Summary List study groups
// @Description Returns groups matching the search term and filter, plus list-wide aggregates. Filters: all, joined, available, online, in-person, or a subject name.
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches name or description, case-insensitive"
// @Param filter query string false "Membership/location filter or subject"
// @Success 200 {object} dto.APIResponse{data=dto.GroupListResponse}
// @Failure 401 {object} dto.APIResponse
// @Router /groups [get]
func (ctrl *GroupController) ListGroups(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	resp, err := ctrl.groupService.ListGroups(c.Request.Context(), userID,
		c.Query("search"), c.DefaultQuery("filter", stores.FilterAll))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// GetGroup godoc
// @Summary Get one study group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse{data=dto.GroupResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /groups/{id} [get]
func (ctrl *GroupController) GetGroup(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	groupID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	resp, err := ctrl.groupService.GetGroup(c.Request.Context(), groupID, userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// CreateGroup godoc
// @Summary Create a study group
// @Description Publishes a group from the creation form. The creator becomes the first member and the group chat opens with a welcome message.
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGroupRequest true "Group details"
// @Success 201 {object} dto.APIResponse{data=dto.GroupResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /groups [post]
func (ctrl *GroupController) CreateGroup(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Name, description, subject, and next session are required"))
		return
	}

	resp, err := ctrl.groupService.CreateGroup(c.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(resp, "Study group created"))
}

// Join godoc
// @Summary Join a study group
// @Description Adds the caller to the group. A group at capacity refuses the join; joining twice is refused.
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse{data=dto.GroupResponse}
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /groups/{id}/membership [post]
func (ctrl *GroupController) Join(c *gin.Context) {
	ctrl.toggleMembership(c, ctrl.groupService.Join, "Joined group")
}

// Leave godoc
// @Summary Leave a study group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse{data=dto.GroupResponse}
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /groups/{id}/membership [delete]
func (ctrl *GroupController) Leave(c *gin.Context) {
	ctrl.toggleMembership(c, ctrl.groupService.Leave, "Left group")
}

// OpenCreateForm godoc
// @Summary Open the group creation form
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=stores.GroupDraft}
// @Router /groups/form [post]
func (ctrl *GroupController) OpenCreateForm(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	draft := ctrl.groupService.OpenCreateForm(c.Request.Context(), userID)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(draft, ""))
}

// SaveDraft godoc
// @Summary Save the group form draft
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body stores.GroupDraft true "Draft"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /groups/form [put]
func (ctrl *GroupController) SaveDraft(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var draft stores.GroupDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Invalid draft payload"))
		return
	}
	if err := ctrl.groupService.SaveDraft(c.Request.Context(), userID, draft); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Draft saved"))
}

// CloseCreateForm godoc
// @Summary Dismiss the group creation form
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /groups/form [delete]
func (ctrl *GroupController) CloseCreateForm(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ctrl.groupService.CloseCreateForm(c.Request.Context(), userID)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Form closed"))
}

// OpenChat godoc
// @Summary Open a group's chat panel
// @Description Opens the chat panel for a member and returns the message log. Non-members are refused.
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse{data=dto.ChatLogResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /groups/{id}/chat [post]
func (ctrl *GroupController) OpenChat(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	groupID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	resp, err := ctrl.groupService.OpenChat(c.Request.Context(), userID, groupID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// CloseChat godoc
// @Summary Close the open chat panel
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /groups/chat [delete]
func (ctrl *GroupController) CloseChat(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ctrl.groupService.CloseChat(c.Request.Context(), userID)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Chat closed"))
}

// Messages godoc
// @Summary Get a group's chat log
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse{data=dto.ChatLogResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /groups/{id}/messages [get]
func (ctrl *GroupController) Messages(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	groupID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	resp, err := ctrl.groupService.Messages(c.Request.Context(), userID, groupID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// SendMessage godoc
// @Summary Send a chat message
// @Description Appends a message to the group's log. A blank message is accepted and silently dropped.
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param request body dto.SendMessageRequest true "Message"
// @Success 200 {object} dto.APIResponse{data=models.ChatMessage}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /groups/{id}/messages [post]
func (ctrl *GroupController) SendMessage(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	groupID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Invalid message payload"))
		return
	}

	msg, err := ctrl.groupService.SendMessage(c.Request.Context(), userID, groupID, req.Message)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(msg, ""))
}

func (ctrl *GroupController) toggleMembership(c *gin.Context, op func(ctx context.Context, groupID, userID int64) (*dto.GroupResponse, error), message string) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	groupID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	resp, err := op(c.Request.Context(), groupID, userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp, message))
}
