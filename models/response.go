package models

type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	OK      bool         `json:"ok"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}
