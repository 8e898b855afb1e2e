package services

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"

	"github.com/skillswap/skillswap/internal/app/models"
	"github.com/skillswap/skillswap/internal/app/models/dto"
	"github.com/skillswap/skillswap/internal/app/stores"
	"github.com/skillswap/skillswap/internal/pkg/apperrors"
	"github.com/skillswap/skillswap/internal/pkg/filestorage"
)

const defaultCourseImage = "📚"

// CourseService handles the catalog, enrollment, and the creation
// form.
type CourseService interface {
	ListCourses(ctx context.Context, viewerID int64, search, category string) (*dto.CourseListResponse, error)
	GetCourse(ctx context.Context, courseID, viewerID int64) (*dto.CourseResponse, error)
	CreateCourse(ctx context.Context, userID int64, req *dto.CreateCourseRequest, image *multipart.FileHeader, videos []*multipart.FileHeader) (*dto.CourseCreatedResponse, error)
	Enroll(ctx context.Context, courseID, userID int64) (*dto.CourseResponse, error)
	Unenroll(ctx context.Context, courseID, userID int64) (*dto.CourseResponse, error)

	OpenCreateForm(ctx context.Context, userID int64) stores.CourseDraft
	SaveDraft(ctx context.Context, userID int64, draft stores.CourseDraft) error
	CloseCreateForm(ctx context.Context, userID int64)
}

type courseServiceImpl struct {
	courses *stores.CourseStore
	drafts  *stores.DraftStore
	storage *filestorage.LocalStorage
	logger  zerolog.Logger
}

// NewCourseService creates a new course service.
func NewCourseService(courses *stores.CourseStore, drafts *stores.DraftStore, storage *filestorage.LocalStorage, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courses: courses,
		drafts:  drafts,
		storage: storage,
		logger:  logger.With().Str("service", "course").Logger(),
	}
}

// ListCourses returns the filtered catalog plus the aggregates. The
// aggregates always cover the whole catalog, not the filtered slice.
func (s *courseServiceImpl) ListCourses(_ context.Context, viewerID int64, search, category string) (*dto.CourseListResponse, error) {
	courses := s.courses.List(search, category)
	out := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, dto.CourseResponse{
			Course:     c,
			IsEnrolled: s.courses.IsEnrolled(c.ID, viewerID),
		})
	}
	return &dto.CourseListResponse{
		Courses: out,
		Stats:   s.courses.Stats(),
	}, nil
}

// GetCourse returns one course with the viewer's enrollment flag.
func (s *courseServiceImpl) GetCourse(_ context.Context, courseID, viewerID int64) (*dto.CourseResponse, error) {
	c, err := s.courses.Get(courseID)
	if err != nil {
		return nil, err
	}
	return &dto.CourseResponse{Course: c, IsEnrolled: s.courses.IsEnrolled(courseID, viewerID)}, nil
}

// CreateCourse validates the form, stores any uploads, and publishes
// the course. On validation failure nothing is created and the form
// stays open with its draft intact; upload failures are per-file and
// do not fail the create.
func (s *courseServiceImpl) CreateCourse(_ context.Context, userID int64, req *dto.CreateCourseRequest, image *multipart.FileHeader, videos []*multipart.FileHeader) (*dto.CourseCreatedResponse, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.Category) == "" || strings.TrimSpace(req.Duration) == "" {
		return nil, apperrors.NewValidationError("Title, description, category, and duration are required")
	}

	course := &models.Course{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    req.Category,
		Instructor:  "You",
		Duration:    req.Duration,
		Difficulty:  defaultString(req.Difficulty, models.DifficultyBeginner),
		Price:       defaultString(req.Price, "Free"),
		Image:       defaultCourseImage,
		Tags:        splitTags(req.Tags),
	}

	var uploadErrors []string

	if image != nil {
		if err := filestorage.ValidateImage(image); err != nil {
			uploadErrors = append(uploadErrors, err.Error())
		} else if path, err := s.storage.Save(image, "course-images"); err != nil {
			s.logger.Error().Err(err).Str("file", image.Filename).Msg("Failed to store course image")
			uploadErrors = append(uploadErrors, "Failed to store image "+image.Filename)
		} else {
			course.Image = path
		}
	}

	for _, video := range videos {
		if err := filestorage.ValidateVideo(video); err != nil {
			uploadErrors = append(uploadErrors, err.Error())
			continue
		}
		if _, err := s.storage.Save(video, "course-videos"); err != nil {
			s.logger.Error().Err(err).Str("file", video.Filename).Msg("Failed to store course video")
			uploadErrors = append(uploadErrors, "Failed to store video "+video.Filename)
			continue
		}
		course.VideoCount++
	}

	created := s.courses.Create(course)
	s.drafts.CloseCourseForm(userID)

	return &dto.CourseCreatedResponse{
		Course:       dto.CourseResponse{Course: created, IsEnrolled: false},
		UploadErrors: uploadErrors,
	}, nil
}

// Enroll adds the viewer to the course.
func (s *courseServiceImpl) Enroll(_ context.Context, courseID, userID int64) (*dto.CourseResponse, error) {
	c, err := s.courses.Enroll(courseID, userID)
	if err != nil {
		return nil, err
	}
	return &dto.CourseResponse{Course: c, IsEnrolled: true}, nil
}

// Unenroll removes the viewer from the course.
func (s *courseServiceImpl) Unenroll(_ context.Context, courseID, userID int64) (*dto.CourseResponse, error) {
	c, err := s.courses.Unenroll(courseID, userID)
	if err != nil {
		return nil, err
	}
	return &dto.CourseResponse{Course: c, IsEnrolled: false}, nil
}

// OpenCreateForm opens the creation form and returns the draft.
func (s *courseServiceImpl) OpenCreateForm(_ context.Context, userID int64) stores.CourseDraft {
	return s.drafts.OpenCourseForm(userID)
}

// SaveDraft stores the typed-but-unsubmitted form state.
func (s *courseServiceImpl) SaveDraft(_ context.Context, userID int64, draft stores.CourseDraft) error {
	return s.drafts.UpdateCourseDraft(userID, draft)
}

// CloseCreateForm dismisses the form and discards the draft.
func (s *courseServiceImpl) CloseCreateForm(_ context.Context, userID int64) {
	s.drafts.CloseCourseForm(userID)
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
