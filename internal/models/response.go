package models

// Envelope is the uniform response body for both success and error outcomes.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data"`
}

// ListData is the data payload of every paginated list response.
type ListData struct {
	Items       interface{} `json:"items"`
	TotalPages  int64       `json:"totalPages"`
	TotalCount  int64       `json:"totalCount"`
	CurrentPage int64       `json:"currentPage"`
}

// AuthErrorResponse is the body of authentication and authorization
// rejections. It deliberately does not use the uniform envelope.
type AuthErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
