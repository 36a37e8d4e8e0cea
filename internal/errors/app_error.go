package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the error every service method returns. The response writer
// maps it to an HTTP status and a JSON error body.
type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeOwnership       = "OWNERSHIP_MISMATCH"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeDatabaseError   = "DATABASE_ERROR"
	ErrCodeThirdPartyError = "THIRD_PARTY_ERROR"
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"
)

var statusByCode = map[string]int{
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeUnauthorized:    http.StatusUnauthorized,
	ErrCodeOwnership:       http.StatusBadRequest,
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeDatabaseError:   http.StatusInternalServerError,
	ErrCodeThirdPartyError: http.StatusBadGateway,
	ErrCodeTooManyRequests: http.StatusTooManyRequests,
}

// New builds an AppError for code. Unknown codes map to 500.
func New(code, message string) *AppError {
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	return &AppError{Code: code, Message: message, StatusCode: status}
}

func BadRequestError(message string) *AppError {
	return New(ErrCodeBadRequest, message)
}

func NotFoundError(message string) *AppError {
	return New(ErrCodeNotFound, message)
}

func UnauthorizedError(message string) *AppError {
	return New(ErrCodeUnauthorized, message)
}

// OwnershipError rejects a request whose principal does not own the
// resource. It is reported as a bad request.
func OwnershipError(resource string) *AppError {
	return New(ErrCodeOwnership, fmt.Sprintf("%s does not belong to the authenticated user", resource))
}

func InternalError(message string) *AppError {
	return New(ErrCodeInternal, message)
}

func DatabaseError(message string) *AppError {
	return New(ErrCodeDatabaseError, message)
}

// ThirdPartyError covers Facebook, the rate limiter and object storage.
func ThirdPartyError(message string) *AppError {
	return New(ErrCodeThirdPartyError, message)
}

func TooManyRequestsError(message string) *AppError {
	return New(ErrCodeTooManyRequests, message)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code string) bool {
	appErr, ok := IsAppError(err)

	return ok && appErr.Code == code
}
