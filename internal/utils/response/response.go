package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aaravmahajanofficial/diet-tracker/internal/errors"
	"github.com/go-playground/validator/v10"
)

// APIResponse is the envelope of every JSON body the API writes.
type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	WriteJson(w, statusCode, APIResponse{Success: true, Data: data})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes err as an error envelope. Anything that is not an AppError is
// reported as a generic 500 so internal messages never reach the client.
func Error(w http.ResponseWriter, err error) {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, &ErrorResponse{
			Code:    errors.ErrCodeInternal,
			Message: "An unexpected error occurred",
		})
		return
	}

	body := &ErrorResponse{Code: appErr.Code, Message: appErr.Message}
	if appErr.Detail != "" {
		body.Details = []string{appErr.Detail}
	}

	writeError(w, appErr.StatusCode, body)
}

// ValidationError writes one detail line per failed field.
func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		details = append(details, fieldMessage(fe))
	}

	writeError(w, http.StatusBadRequest, &ErrorResponse{
		Code:    errors.ErrCodeValidation,
		Message: "Validation failed",
		Details: details,
	})
}

func writeError(w http.ResponseWriter, status int, body *ErrorResponse) {
	WriteJson(w, status, APIResponse{Success: false, Error: body})
}

var fieldMessages = map[string]string{
	"required": "Field %s is required",
	"email":    "Field %s must be a valid email address",
	"url":      "Field %s must be a valid URL",
	"datetime": "Field %s must be a date formatted as %s",
	"oneof":    "Field %s must be one of [%s]",
	"min":      "Field %s must be at least %s",
	"max":      "Field %s must be at most %s",
	"gt":       "Field %s must be greater than %s",
	"gte":      "Field %s must be greater than or equal to %s",
	"lte":      "Field %s must be less than or equal to %s",
}

func fieldMessage(fe validator.FieldError) string {
	format, ok := fieldMessages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("Field %s is invalid: %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}

	if fe.Param() == "" {
		return fmt.Sprintf(format, fe.Field())
	}

	return fmt.Sprintf(format, fe.Field(), fe.Param())
}
