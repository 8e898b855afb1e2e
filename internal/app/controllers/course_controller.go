package controllers

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap/internal/app/models/dto"
	"github.com/skillswap/skillswap/internal/app/services"
	"github.com/skillswap/skillswap/internal/app/stores"
	"github.com/skillswap/skillswap/internal/middleware"
	"github.com/skillswap/skillswap/internal/pkg/apperrors"
)

// CourseController handles catalog, enrollment, and creation-form
// endpoints.
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController.
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// ListCourses godoc
// @Summary List courses
// @Description Returns courses matching the search term and category, plus catalog-wide aggregates.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches title or description, case-insensitive"
// @Param category query string false "Category name, or 'all'"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse}
// @Failure 401 {object} dto.APIResponse
// @Router /courses [get]
func (ctrl *CourseController) ListCourses(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	resp, err := ctrl.courseService.ListCourses(c.Request.Context(), userID,
		c.Query("search"), c.DefaultQuery("category", "all"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// GetCourse godoc
// @Summary Get one course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /courses/{id} [get]
func (ctrl *CourseController) GetCourse(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	resp, err := ctrl.courseService.GetCourse(c.Request.Context(), courseID, userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// CreateCourse godoc
// @Summary Create a course
// @Description Publishes a course from the creation form. Accepts an optional cover image (max 5MB) and lecture videos (max 200MB each, video/*). Upload failures are reported per file and do not fail the create.
// @Tags courses
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param category formData string true "Category"
// @Param duration formData string true "Duration, e.g. '8 weeks'"
// @Param difficulty formData string false "Difficulty"
// @Param price formData string false "Price"
// @Param tags formData string false "Comma-separated tags"
// @Param image formData file false "Cover image"
// @Param videos formData file false "Lecture videos"
// @Success 201 {object} dto.APIResponse{data=dto.CourseCreatedResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /courses [post]
func (ctrl *CourseController) CreateCourse(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CreateCourseRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Title, description, category, and duration are required"))
		return
	}

	image, _ := c.FormFile("image")

	var videos []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		videos = form.File["videos"]
	}

	resp, err := ctrl.courseService.CreateCourse(c.Request.Context(), userID, &req, image, videos)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(resp, "Course created"))
}

// Enroll godoc
// @Summary Enroll in a course
// @Description Adds the caller to the course. Enrolling twice is refused.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /courses/{id}/enrollment [post]
func (ctrl *CourseController) Enroll(c *gin.Context) {
	ctrl.toggleEnrollment(c, ctrl.courseService.Enroll, "Enrolled")
}

// Unenroll godoc
// @Summary Leave a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /courses/{id}/enrollment [delete]
func (ctrl *CourseController) Unenroll(c *gin.Context) {
	ctrl.toggleEnrollment(c, ctrl.courseService.Unenroll, "Enrollment removed")
}

// OpenCreateForm godoc
// @Summary Open the course creation form
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=stores.CourseDraft}
// @Router /courses/form [post]
func (ctrl *CourseController) OpenCreateForm(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	draft := ctrl.courseService.OpenCreateForm(c.Request.Context(), userID)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(draft, ""))
}

// SaveDraft godoc
// @Summary Save the course form draft
// @Description Stores typed-but-unsubmitted form state. Fails when the form is not open.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body stores.CourseDraft true "Draft"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /courses/form [put]
func (ctrl *CourseController) SaveDraft(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var draft stores.CourseDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Invalid draft payload"))
		return
	}
	if err := ctrl.courseService.SaveDraft(c.Request.Context(), userID, draft); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Draft saved"))
}

// CloseCreateForm godoc
// @Summary Dismiss the course creation form
// @Description Closes the form and discards the draft.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /courses/form [delete]
func (ctrl *CourseController) CloseCreateForm(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ctrl.courseService.CloseCreateForm(c.Request.Context(), userID)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Form closed"))
}

func (ctrl *CourseController) toggleEnrollment(c *gin.Context, op func(ctx context.Context, courseID, userID int64) (*dto.CourseResponse, error), message string) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	resp, err := op(c.Request.Context(), courseID, userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp, message))
}

// parseIDParam parses a numeric path parameter.
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError("Invalid " + name + " parameter")
	}
	return id, nil
}
