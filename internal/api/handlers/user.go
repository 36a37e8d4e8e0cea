package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/diet-tracker/internal/api/middleware"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	service "github.com/aaravmahajanofficial/diet-tracker/internal/services"
	"github.com/aaravmahajanofficial/diet-tracker/internal/utils"
	"github.com/aaravmahajanofficial/diet-tracker/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

// GetProfile godoc
//	@Summary		Get the current user
//	@Description	Returns the profile, biometrics and daily targets of the authenticated user.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	models.User				"Profile"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"User not found"
//	@Security		BearerAuth
//	@Router			/users/me [get]
func (h *UserHandler) GetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			logger.Warn("Unauthorized profile access attempt")
			response.Error(w, err)
			return
		}

		user, err := h.userService.GetProfile(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get profile", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("User profile accessed")
		response.Success(w, http.StatusOK, user)
	}
}

// UpdateProfile godoc
//	@Summary		Update the current user
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			profile	body		models.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	models.User					"Updated profile"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/users/me [put]
func (h *UserHandler) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateProfileRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid profile input")
			return
		}

		user, err := h.userService.UpdateProfile(r.Context(), userID, &req)
		if err != nil {
			logger.Error("Failed to update profile", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("User profile updated")
		response.Success(w, http.StatusOK, user)
	}
}

// UpdateBiometrics godoc
//	@Summary		Update biometrics
//	@Description	Replaces age, height, weight, sex and activity level and recomputes the daily targets.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			biometrics	body		models.UpdateBiometricsRequest	true	"Biometric data"
//	@Success		200			{object}	models.User						"Updated user with daily targets"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		401			{object}	response.ErrorResponse			"Authentication required"
//	@Security		BearerAuth
//	@Router			/users/me/biometrics [put]
func (h *UserHandler) UpdateBiometrics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateBiometricsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid biometrics input")
			return
		}

		user, err := h.userService.UpdateBiometrics(r.Context(), userID, &req)
		if err != nil {
			logger.Error("Failed to update biometrics", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Biometrics updated", slog.Int("caloriesPerDay", user.CaloriesPerDay))
		response.Success(w, http.StatusOK, user)
	}
}
