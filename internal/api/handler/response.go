package handler

// successResponse is the body of every mutation that returns no payload.
type successResponse struct {
	Success bool `json:"success" example:"true"`
}

// ErrorResponse documents the error envelope rendered by the API error handler.
type ErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Error     string `json:"error" example:"missing required field"`
	Message   string `json:"message,omitempty" example:"username is required"`
	RequestID string `json:"request_id,omitempty"`
}

func ok() successResponse {
	return successResponse{Success: true}
}
