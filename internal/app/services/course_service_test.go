package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap/internal/app/models"
	"github.com/skillswap/skillswap/internal/app/models/dto"
	"github.com/skillswap/skillswap/internal/app/stores"
	"github.com/skillswap/skillswap/internal/pkg/apperrors"
	"github.com/skillswap/skillswap/internal/pkg/filestorage"
)

func newTestCourseService(t *testing.T) (CourseService, *stores.DraftStore) {
	t.Helper()

	courseStore := stores.NewCourseStore(0, zerolog.Nop())
	require.NoError(t, courseStore.Seed(context.Background(), []*models.Course{
		{ID: 1, Title: "Complete React Development", Description: "Master React", Category: models.CategoryProgramming, Students: 100, Duration: "12 weeks", Rating: 4.8},
	}))

	draftStore := stores.NewDraftStore()
	storage, err := filestorage.NewLocalStorage(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	return NewCourseService(courseStore, draftStore, storage, zerolog.Nop()), draftStore
}

func TestCreateCourseValidationKeepsFormOpen(t *testing.T) {
	svc, draftStore := newTestCourseService(t)
	const userID = 7
	ctx := context.Background()

	draft := svc.OpenCreateForm(ctx, userID)
	draft.Description = "half-filled form"
	require.NoError(t, svc.SaveDraft(ctx, userID, draft))

	// Empty title: nothing is created and the form stays open with the
	// draft intact.
	_, err := svc.CreateCourse(ctx, userID, &dto.CreateCourseRequest{
		Description: "half-filled form",
		Category:    models.CategoryProgramming,
	}, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	list, err := svc.ListCourses(ctx, userID, "", "all")
	require.NoError(t, err)
	assert.Len(t, list.Courses, 1)

	got, open := draftStore.CourseForm(userID)
	assert.True(t, open)
	assert.Equal(t, "half-filled form", got.Description)
}

func TestCreateCourseRequiresDuration(t *testing.T) {
	svc, _ := newTestCourseService(t)
	const userID = 7
	ctx := context.Background()

	_, err := svc.CreateCourse(ctx, userID, &dto.CreateCourseRequest{
		Title:       "Advanced React Patterns",
		Description: "Render props and hooks",
		Category:    models.CategoryProgramming,
	}, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	list, err := svc.ListCourses(ctx, userID, "", "all")
	require.NoError(t, err)
	assert.Len(t, list.Courses, 1)
}

func TestCreateCourseClosesFormAndPrepends(t *testing.T) {
	svc, draftStore := newTestCourseService(t)
	const userID = 7
	ctx := context.Background()

	svc.OpenCreateForm(ctx, userID)

	resp, err := svc.CreateCourse(ctx, userID, &dto.CreateCourseRequest{
		Title:       "Advanced React Patterns",
		Description: "Render props and hooks",
		Category:    models.CategoryProgramming,
		Duration:    "8 weeks",
		Tags:        "React, JavaScript",
	}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Course.ID)
	assert.Equal(t, []string{"React", "JavaScript"}, resp.Course.Tags)
	assert.False(t, resp.Course.IsEnrolled)
	assert.Empty(t, resp.UploadErrors)

	_, open := draftStore.CourseForm(userID)
	assert.False(t, open)

	list, err := svc.ListCourses(ctx, userID, "", "all")
	require.NoError(t, err)
	require.Len(t, list.Courses, 2)
	assert.Equal(t, "Advanced React Patterns", list.Courses[0].Title)
}

func TestListCoursesDecoratesEnrollment(t *testing.T) {
	svc, _ := newTestCourseService(t)
	const userID = 7
	ctx := context.Background()

	resp, err := svc.Enroll(ctx, 1, userID)
	require.NoError(t, err)
	assert.True(t, resp.IsEnrolled)
	assert.Equal(t, 101, resp.Students)

	list, err := svc.ListCourses(ctx, userID, "", "all")
	require.NoError(t, err)
	require.Len(t, list.Courses, 1)
	assert.True(t, list.Courses[0].IsEnrolled)

	// Another viewer sees the same course as not enrolled.
	other, err := svc.ListCourses(ctx, 8, "", "all")
	require.NoError(t, err)
	assert.False(t, other.Courses[0].IsEnrolled)
}
