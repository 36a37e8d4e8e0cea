package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/diet-tracker/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/diet-tracker/internal/errors"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/aaravmahajanofficial/diet-tracker/internal/services/mocks"
	"github.com/aaravmahajanofficial/diet-tracker/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetProfile(t *testing.T) {
	mockUserService := new(mocks.UserService)
	userHandler := handlers.NewUserHandler(mockUserService)
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		user := &models.User{ID: userID, Name: "Anna", Email: "anna@example.com"}
		mockUserService.On("GetProfile", mock.Anything, userID).Return(user, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/users/me", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		userHandler.GetProfile().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.User
		decodeData(t, rr, &got)
		assert.Equal(t, userID, got.ID)
		assert.Equal(t, "Anna", got.Name)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/users/me", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		userHandler.GetProfile().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUserService.AssertNotCalled(t, "GetProfile")
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockUserService.On("GetProfile", mock.Anything, userID).Return(nil, appErrors.NotFoundError("User not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/users/me", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		userHandler.GetProfile().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeNotFound)
		mockUserService.AssertExpectations(t)
	})
}

func TestUpdateProfile(t *testing.T) {
	mockUserService := new(mocks.UserService)
	userHandler := handlers.NewUserHandler(mockUserService)
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		name := "Anna Nowak"
		updated := &models.User{ID: userID, Name: name}
		mockUserService.On("UpdateProfile", mock.Anything, userID, &models.UpdateProfileRequest{Name: &name}).Return(updated, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/users/me", jsonBody(t, models.UpdateProfileRequest{Name: &name}), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		userHandler.UpdateProfile().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.User
		decodeData(t, rr, &got)
		assert.Equal(t, name, got.Name)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Email", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/users/me", bytes.NewReader([]byte(`{"email":"not-an-email"}`)), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		userHandler.UpdateProfile().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Validation failed")
		mockUserService.AssertNotCalled(t, "UpdateProfile")
	})
}

func TestUpdateBiometrics(t *testing.T) {
	mockUserService := new(mocks.UserService)
	userHandler := handlers.NewUserHandler(mockUserService)
	userID := uuid.New()

	t.Run("Success - Targets Returned", func(t *testing.T) {
		// Arrange
		biometrics := models.UpdateBiometricsRequest{Age: 30, Height: 180, Weight: 80, Sex: models.SexMan, ActivityLevel: models.ActivityAverage}
		updated := &models.User{ID: userID, DailyTargets: models.DailyTargets{CaloriesPerDay: 2759}}
		mockUserService.On("UpdateBiometrics", mock.Anything, userID, &biometrics).Return(updated, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/users/me/biometrics", jsonBody(t, biometrics), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		userHandler.UpdateBiometrics().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.User
		decodeData(t, rr, &got)
		assert.Equal(t, 2759, got.CaloriesPerDay)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Failure - Unknown Activity Level", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/users/me/biometrics",
			bytes.NewReader([]byte(`{"age":30,"height":180,"weight":80,"sex":"MAN","activity_level":"EXTREME"}`)), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		userHandler.UpdateBiometrics().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUserService.AssertNotCalled(t, "UpdateBiometrics")
	})
}
