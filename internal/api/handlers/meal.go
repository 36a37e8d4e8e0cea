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

type MealHandler struct {
	mealService service.MealService
	validator   *validator.Validate
}

func NewMealHandler(mealService service.MealService) *MealHandler {
	return &MealHandler{mealService: mealService, validator: validator.New()}
}

// CreateMeal godoc
//	@Summary		Create a meal
//	@Description	Builds a meal from the user's products. Each product is snapshotted at the requested amount and the totals are summed.
//	@Tags			Meals
//	@Accept			json
//	@Produce		json
//	@Param			meal	body		models.CreateMealRequest	true	"Meal composition"
//	@Success		201		{object}	models.Meal					"Meal created"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error, duplicate or foreign product"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Security		BearerAuth
//	@Router			/meals [post]
func (h *MealHandler) CreateMeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			logger.Warn("Unauthorized meal creation attempt")
			response.Error(w, err)
			return
		}

		var req models.CreateMealRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid meal input")
			return
		}

		meal, err := h.mealService.CreateMeal(r.Context(), userID, &req)
		if err != nil {
			logger.Error("Failed to create meal", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Meal created", slog.String("mealID", meal.ID.String()), slog.Int("products", len(meal.Products)))
		response.Success(w, http.StatusCreated, meal)
	}
}

// GetMeal godoc
//	@Summary	Get a meal
//	@Tags		Meals
//	@Produce	json
//	@Param		id	path		string					true	"Meal ID"	Format(uuid)
//	@Success	200	{object}	models.Meal				"Meal"
//	@Failure	400	{object}	response.ErrorResponse	"Invalid ID or not the owner"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	404	{object}	response.ErrorResponse	"Meal not found"
//	@Security	BearerAuth
//	@Router		/meals/{id} [get]
func (h *MealHandler) GetMeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid meal ID format", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		meal, err := h.mealService.GetMeal(r.Context(), userID, id)
		if err != nil {
			logger.Warn("Failed to get meal", slog.String("mealID", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, meal)
	}
}

// UpdateMeal godoc
//	@Summary		Update a meal
//	@Description	A new product list replaces the old one and resets the amount to the sum of the products unless an amount is given.
//	@Tags			Meals
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Meal ID"	Format(uuid)
//	@Param			meal	body		models.UpdateMealRequest	true	"Fields to change"
//	@Success		200		{object}	models.Meal				"Updated meal"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or not the owner"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"Meal or product not found"
//	@Security		BearerAuth
//	@Router			/meals/{id} [put]
func (h *MealHandler) UpdateMeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateMealRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid meal update input")
			return
		}

		meal, err := h.mealService.UpdateMeal(r.Context(), userID, id, &req)
		if err != nil {
			logger.Error("Failed to update meal", slog.String("mealID", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Meal updated", slog.String("mealID", id.String()))
		response.Success(w, http.StatusOK, meal)
	}
}

// DeleteMeal godoc
//	@Summary	Delete a meal
//	@Tags		Meals
//	@Param		id	path	string	true	"Meal ID"	Format(uuid)
//	@Success	204	"Meal deleted"
//	@Failure	400	{object}	response.ErrorResponse	"Invalid ID or not the owner"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	404	{object}	response.ErrorResponse	"Meal not found"
//	@Security	BearerAuth
//	@Router		/meals/{id} [delete]
func (h *MealHandler) DeleteMeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.mealService.DeleteMeal(r.Context(), userID, id); err != nil {
			logger.Error("Failed to delete meal", slog.String("mealID", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Meal deleted", slog.String("mealID", id.String()))
		response.NoContent(w)
	}
}

// ListMeals godoc
//	@Summary	List my meals
//	@Tags		Meals
//	@Produce	json
//	@Param		page		query		int							false	"Page number"		default(1)
//	@Param		pageSize	query		int							false	"Items per page"	default(10)
//	@Success	200			{object}	models.PaginatedResponse	"Meals of the current user"
//	@Failure	401			{object}	response.ErrorResponse		"Authentication required"
//	@Security	BearerAuth
//	@Router		/meals [get]
func (h *MealHandler) ListMeals() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		page, pageSize := utils.ParsePagination(r)

		meals, total, err := h.mealService.ListMeals(r.Context(), userID, page, pageSize)
		if err != nil {
			logger.Error("Failed to list meals", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     meals,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
