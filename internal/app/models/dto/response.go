package dto

import "time"

// APIResponse provides the base structured API response
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Count     *int         `json:"count,omitempty" example:"3"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse creates a success envelope around a payload
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewListResponse creates a success envelope carrying a list and its length
func NewListResponse(count int, data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Count:     &count,
		Data:      data,
		Timestamp: time.Now(),
	}
}
