package utils

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	appErrors "github.com/aaravmahajanofficial/diet-tracker/internal/errors"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/aaravmahajanofficial/diet-tracker/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithDetail(err.Error()))
		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
			return false
		}

		response.Error(w, appErrors.InternalError("Failed to validate request").WithError(err))
		return false
	}

	return true

}

// ParseID reads the path value key as a UUID.
func ParseID(r *http.Request, key string) (uuid.UUID, error) {
	raw := r.PathValue(key)
	if raw == "" {
		return uuid.Nil, appErrors.BadRequestError("Missing " + key)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, appErrors.BadRequestError("Invalid " + key + " format").WithError(err)
	}

	return id, nil
}

// ParseDate reads the query parameter key as a calendar date. Today (UTC) is
// used when the parameter is absent.
func ParseDate(r *http.Request, key string) (string, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return time.Now().UTC().Format(models.DateLayout), nil
	}

	if _, err := time.Parse(models.DateLayout, raw); err != nil {
		return "", appErrors.BadRequestError("Invalid " + key + ", expected YYYY-MM-DD").WithError(err)
	}

	return raw, nil
}

// ParsePagination reads page and pageSize, falling back to the defaults and
// capping pageSize.
func ParsePagination(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || pageSize < 1 {
		pageSize = DefaultPageSize
	}

	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return page, pageSize
}
