package dto

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_INVALID_CREDENTIALS"
	ErrorCodeTokenExpired       ErrorCode = "AUTH_TOKEN_EXPIRED"
	ErrorCodeTokenInvalid       ErrorCode = "AUTH_TOKEN_INVALID"
	ErrorCodeUnauthenticated    ErrorCode = "AUTH_REQUIRED"
	ErrorCodeOperationInFlight  ErrorCode = "AUTH_OPERATION_IN_FLIGHT"
	ErrorCodeEmailExists        ErrorCode = "AUTH_EMAIL_EXISTS"

	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_NOT_FOUND"
	ErrorCodeConflict         ErrorCode = "RES_CONFLICT"
	ErrorCodeGroupFull        ErrorCode = "RES_GROUP_FULL"
	ErrorCodeNotMember        ErrorCode = "RES_NOT_MEMBER"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_VALIDATION_FAILED"
	ErrorCodePasswordTooShort ErrorCode = "VAL_PASSWORD_TOO_SHORT"
	ErrorCodeBadRequest       ErrorCode = "VAL_BAD_REQUEST"

	// Upload errors
	ErrorCodeFileTooLarge        ErrorCode = "UPL_FILE_TOO_LARGE"
	ErrorCodeUnsupportedFileType ErrorCode = "UPL_UNSUPPORTED_TYPE"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_INTERNAL_ERROR"
)

// ErrorDetail carries a field-level validation failure.
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse is the error payload inside the response envelope.
type ErrorResponse struct {
	Code    ErrorCode     `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// NewErrorResponse creates an error payload.
func NewErrorResponse(code ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{Code: code, Message: message}
}

// WithDetail appends a field-level detail and returns the response for
// chaining.
func (e *ErrorResponse) WithDetail(field, message string) *ErrorResponse {
	e.Details = append(e.Details, ErrorDetail{Field: field, Message: message})
	return e
}
