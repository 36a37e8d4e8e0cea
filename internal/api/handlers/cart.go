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

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//	@Summary	Get a cart
//	@Tags		Carts
//	@Produce	json
//	@Param		id	path		string					true	"Cart ID"	Format(uuid)
//	@Success	200	{object}	models.Cart				"Cart with totals"
//	@Failure	400	{object}	response.ErrorResponse	"Invalid ID or not the owner"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	404	{object}	response.ErrorResponse	"Cart not found"
//	@Security	BearerAuth
//	@Router		/carts/{id} [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			logger.Warn("Unauthorized cart access attempt")
			response.Error(w, err)
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart ID format", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), userID, id)
		if err != nil {
			logger.Warn("Failed to get cart", slog.String("cartID", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// GetCartByDate godoc
//	@Summary		Get the cart for a day
//	@Description	Returns the current user's cart for the given date. Today (UTC) is used when date is omitted.
//	@Tags			Carts
//	@Produce		json
//	@Param			date	query		string					false	"Day as YYYY-MM-DD"
//	@Success		200		{object}	models.Cart				"Cart with totals"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid date"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"No cart for that day"
//	@Security		BearerAuth
//	@Router			/carts [get]
func (h *CartHandler) GetCartByDate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		date, err := utils.ParseDate(r, "date")
		if err != nil {
			logger.Warn("Invalid cart date", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.GetCartByDate(r.Context(), userID, date)
		if err != nil {
			logger.Warn("Failed to get cart by date", slog.String("date", date), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddMeal godoc
//	@Summary		Add a meal to a cart
//	@Description	Adds the meal, scaled to amount grams, to the cart of the given day. The cart is created on first use.
//	@Tags			Carts
//	@Accept			json
//	@Produce		json
//	@Param			mealId	path		string					true	"Meal ID"	Format(uuid)
//	@Param			item	body		models.AddToCartRequest	true	"Owner, day and amount"
//	@Success		200		{object}	models.Cart				"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or not the owner"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"Meal not found"
//	@Security		BearerAuth
//	@Router			/carts/meals/{mealId} [put]
func (h *CartHandler) AddMeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		mealID, err := utils.ParseID(r, "mealId")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.AddToCartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add meal input")
			return
		}

		cart, err := h.cartService.AddMeal(r.Context(), userID, mealID, &req)
		if err != nil {
			logger.Error("Failed to add meal to cart", slog.String("mealID", mealID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Meal added to cart", slog.String("cartID", cart.ID.String()), slog.String("mealID", mealID.String()))
		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveMeal godoc
//	@Summary	Remove a meal from a cart
//	@Tags		Carts
//	@Param		id		path	string	true	"Cart ID"	Format(uuid)
//	@Param		mealId	path	string	true	"Meal ID"	Format(uuid)
//	@Success	204		"Meal removed"
//	@Failure	400		{object}	response.ErrorResponse	"Invalid ID or not the owner"
//	@Failure	401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure	404		{object}	response.ErrorResponse	"Cart not found"
//	@Security	BearerAuth
//	@Router		/carts/{id}/meals/{mealId} [delete]
func (h *CartHandler) RemoveMeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		cartID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		mealID, err := utils.ParseID(r, "mealId")
		if err != nil {
			response.Error(w, err)
			return
		}

		if _, err := h.cartService.RemoveMeal(r.Context(), userID, cartID, mealID); err != nil {
			logger.Error("Failed to remove meal from cart", slog.String("cartID", cartID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Meal removed from cart", slog.String("cartID", cartID.String()), slog.String("mealID", mealID.String()))
		response.NoContent(w)
	}
}

// AddProduct godoc
//	@Summary		Add a product to a cart
//	@Description	Adds the product, scaled to amount grams, to the cart of the given day. The cart is created on first use.
//	@Tags			Carts
//	@Accept			json
//	@Produce		json
//	@Param			productId	path		string					true	"Product ID"	Format(uuid)
//	@Param			item		body		models.AddToCartRequest	true	"Owner, day and amount"
//	@Success		200			{object}	models.Cart				"Updated cart"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error or not the owner"
//	@Failure		401			{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404			{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/carts/products/{productId} [put]
func (h *CartHandler) AddProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		productID, err := utils.ParseID(r, "productId")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.AddToCartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add product input")
			return
		}

		cart, err := h.cartService.AddProduct(r.Context(), userID, productID, &req)
		if err != nil {
			logger.Error("Failed to add product to cart", slog.String("productID", productID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product added to cart", slog.String("cartID", cart.ID.String()), slog.String("productID", productID.String()))
		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveProduct godoc
//	@Summary	Remove a product from a cart
//	@Tags		Carts
//	@Param		id			path	string	true	"Cart ID"		Format(uuid)
//	@Param		productId	path	string	true	"Product ID"	Format(uuid)
//	@Success	204			"Product removed"
//	@Failure	400			{object}	response.ErrorResponse	"Invalid ID or not the owner"
//	@Failure	401			{object}	response.ErrorResponse	"Authentication required"
//	@Failure	404			{object}	response.ErrorResponse	"Cart not found"
//	@Security	BearerAuth
//	@Router		/carts/{id}/products/{productId} [delete]
func (h *CartHandler) RemoveProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		cartID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		productID, err := utils.ParseID(r, "productId")
		if err != nil {
			response.Error(w, err)
			return
		}

		if _, err := h.cartService.RemoveProduct(r.Context(), userID, cartID, productID); err != nil {
			logger.Error("Failed to remove product from cart", slog.String("cartID", cartID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product removed from cart", slog.String("cartID", cartID.String()), slog.String("productID", productID.String()))
		response.NoContent(w)
	}
}

// ResetCarts godoc
//	@Summary		Delete all my carts
//	@Description	Removes every cart of the current user and reports how many were deleted.
//	@Tags			Carts
//	@Produce		json
//	@Success		200	{object}	models.ResetCartsResponse	"Number of deleted carts"
//	@Failure		401	{object}	response.ErrorResponse		"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse		"Database error"
//	@Security		BearerAuth
//	@Router			/carts [delete]
func (h *CartHandler) ResetCarts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		deleted, err := h.cartService.ResetCarts(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to reset carts", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Carts reset", slog.Int64("deleted", deleted))
		response.Success(w, http.StatusOK, models.ResetCartsResponse{Deleted: deleted})
	}
}
