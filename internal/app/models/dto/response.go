package dto

import "time"

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message,omitempty"`
	Data      interface{}    `json:"data,omitempty"`
	Error     *ErrorResponse `json:"error,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewSuccessResponse wraps a payload in the success envelope.
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewFailureResponse wraps an error payload in the envelope.
func NewFailureResponse(errResp *ErrorResponse) APIResponse {
	return APIResponse{
		Success:   false,
		Error:     errResp,
		Timestamp: time.Now(),
	}
}
