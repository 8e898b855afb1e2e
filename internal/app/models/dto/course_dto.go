package dto

import (
	"github.com/skillswap/skillswap/internal/app/models"
	"github.com/skillswap/skillswap/internal/app/stores"
)

// CreateCourseRequest is the course creation form payload. Sent as
// multipart form fields so the cover image and lecture videos can ride
// along in the same request.
type CreateCourseRequest struct {
	Title       string `form:"title" binding:"required" example:"Advanced React Patterns"`
	Description string `form:"description" binding:"required" example:"Render props, hooks, performance."`
	Category    string `form:"category" binding:"required" example:"Programming"`
	Duration    string `form:"duration" binding:"required" example:"8 weeks"`
	Difficulty  string `form:"difficulty" example:"Advanced"`
	Price       string `form:"price" example:"Free"`
	Tags        string `form:"tags" example:"React,JavaScript"`
}

// CourseResponse is a course decorated with the viewer's enrollment.
type CourseResponse struct {
	*models.Course
	IsEnrolled bool `json:"isEnrolled"`
}

// CourseCreatedResponse is returned after a successful create,
// including the outcome of each attempted upload.
type CourseCreatedResponse struct {
	Course       CourseResponse `json:"course"`
	UploadErrors []string       `json:"uploadErrors,omitempty"`
}

// CourseListResponse is the catalog page payload: the filtered list
// plus the filter-independent aggregates.
type CourseListResponse struct {
	Courses []CourseResponse   `json:"courses"`
	Stats   stores.CourseStats `json:"stats"`
}
