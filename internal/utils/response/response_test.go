package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	appErrors "github.com/aaravmahajanofficial/diet-tracker/internal/errors"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/aaravmahajanofficial/diet-tracker/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	return resp
}

func TestSuccess(t *testing.T) {
	rr := httptest.NewRecorder()

	response.Success(rr, http.StatusCreated, map[string]int{"kcal": 281})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":{"kcal":281}}`, rr.Body.String())
}

func TestError(t *testing.T) {
	t.Run("Success - App Error With Detail", func(t *testing.T) {
		rr := httptest.NewRecorder()

		response.Error(rr, appErrors.NotFoundError("Product not found").WithDetail("8f7c2f7e"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		resp := decode(t, rr)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeNotFound, resp.Error.Code)
		assert.Equal(t, []string{"8f7c2f7e"}, resp.Error.Details)
	})

	t.Run("Success - Plain Error Is Hidden", func(t *testing.T) {
		rr := httptest.NewRecorder()

		response.Error(rr, errors.New("pq: relation \"carts\" does not exist"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "carts")
		assert.Equal(t, appErrors.ErrCodeInternal, decode(t, rr).Error.Code)
	})
}

func TestValidationError(t *testing.T) {
	// Arrange
	err := validator.New().Struct(&models.AddToCartRequest{Date: "18/03/2024"})

	var fieldErrs validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)

	rr := httptest.NewRecorder()

	// Act
	response.ValidationError(rr, fieldErrs)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	resp := decode(t, rr)
	assert.Equal(t, "Validation failed", resp.Error.Message)
	assert.ElementsMatch(t, []string{
		"Field UserID is required",
		"Field Date must be a date formatted as 2006-01-02",
		"Field Amount is required",
	}, resp.Error.Details)
}

func TestNoContent(t *testing.T) {
	rr := httptest.NewRecorder()

	response.NoContent(rr)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}
