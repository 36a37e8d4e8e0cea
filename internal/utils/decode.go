package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// MaxBodyBytes bounds request bodies; a meal recipe is the largest field.
const MaxBodyBytes = 1 << 20

var (
	ErrEmptyBody    = errors.New("request body cannot be empty")
	ErrBodyTooLarge = fmt.Errorf("request body exceeds %d bytes", MaxBodyBytes)
	ErrTrailingData = errors.New("request body must contain a single JSON object")
)

// DecodeJSONBody reads one JSON value from the request body into dest.
func DecodeJSONBody(r *http.Request, dest any) error {

	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	switch {
	case len(body) == 0:
		return ErrEmptyBody
	case len(body) > MaxBodyBytes:
		return ErrBodyTooLarge
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	if dec.More() {
		return ErrTrailingData
	}

	return nil
}

// ValidateStruct runs the struct tags of data through validate. A
// validator.ValidationErrors is returned unwrapped so callers can render it.
func ValidateStruct(validate *validator.Validate, data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs
	}

	return fmt.Errorf("unexpected validation error: %w", err)
}
