package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/skillswap/skillswap/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperrors.ErrPasswordTooShort, http.StatusBadRequest},
		{apperrors.NewValidationError("Title is required"), http.StatusBadRequest},
		{apperrors.ErrCourseNotFound, http.StatusNotFound},
		{apperrors.ErrGroupFull, http.StatusConflict},
		{apperrors.ErrAlreadyEnrolled, http.StatusConflict},
		{apperrors.ErrOperationInFlight, http.StatusConflict},
		{apperrors.ErrNotMember, http.StatusForbidden},
		{apperrors.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{apperrors.ErrUnsupportedFileType, http.StatusUnsupportedMediaType},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := handleError(t, tc.err)
		assert.Equal(t, tc.status, w.Code, "error %v", tc.err)
	}
}

func TestHandleAPIErrorUsesCustomMessage(t *testing.T) {
	w := handleError(t, apperrors.NewValidationError("Email and password are required"))

	assert.Contains(t, w.Body.String(), "Email and password are required")
	assert.Contains(t, w.Body.String(), "VAL_VALIDATION_FAILED")
}
