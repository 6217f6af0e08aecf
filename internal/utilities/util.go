// Package utilities contain utility code that use across the package
package utilities

// ErrorResponse is the failure envelope every endpoint returns.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ValidationErrorResponse extends the failure envelope with the per-field
// reasons collected by the intake validation.
type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

// SubmitResponse is returned by the canonical intake endpoints on success.
type SubmitResponse struct {
	Success bool `json:"success"`
	ID      uint `json:"id"`
}

// DataResponse wraps a submission list for the admin view.
type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// Fail builds the plain failure envelope.
func Fail(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}
