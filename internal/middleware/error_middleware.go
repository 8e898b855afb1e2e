package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/skillswap/skillswap/internal/app/models/dto"
	"github.com/skillswap/skillswap/internal/pkg/apperrors"
)

// HandleAPIError maps an application error onto an HTTP status and the
// error envelope, and aborts the request. Controllers call this for
// every error path so the wire format stays uniform.
func HandleAPIError(c *gin.Context, err error) {
	status, code := classifyError(err)

	message := err.Error()
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		message = "An internal error occurred"
	}

	c.AbortWithStatusJSON(status, dto.NewFailureResponse(dto.NewErrorResponse(code, message)))
}

func classifyError(err error) (int, dto.ErrorCode) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.ErrorCodeTokenExpired
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.ErrorCodeTokenInvalid
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized, dto.ErrorCodeUnauthenticated

	case errors.Is(err, apperrors.ErrPasswordTooShort):
		return http.StatusBadRequest, dto.ErrorCodePasswordTooShort
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.ErrorCodeBadRequest

	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrGroupNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound

	case errors.Is(err, apperrors.ErrGroupFull):
		return http.StatusConflict, dto.ErrorCodeGroupFull
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict, dto.ErrorCodeEmailExists
	case errors.Is(err, apperrors.ErrOperationInFlight):
		return http.StatusConflict, dto.ErrorCodeOperationInFlight
	case errors.Is(err, apperrors.ErrAlreadyEnrolled),
		errors.Is(err, apperrors.ErrNotEnrolled),
		errors.Is(err, apperrors.ErrAlreadyJoined),
		errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.ErrorCodeConflict

	case errors.Is(err, apperrors.ErrNotMember):
		return http.StatusForbidden, dto.ErrorCodeNotMember

	case errors.Is(err, apperrors.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, dto.ErrorCodeFileTooLarge
	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		return http.StatusUnsupportedMediaType, dto.ErrorCodeUnsupportedFileType

	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer
	}
}
