package models

// ErrorResponse is the standard error body of every endpoint.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Missing []int  `json:"missing,omitempty"`
}
