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

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

// CreateProduct godoc
//	@Summary		Create a product
//	@Description	Stores a food product. Nutrients are given for the stated amount in grams; density and the carbohydrate and protein-fat exchanges are derived.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product details"
//	@Success		201		{object}	models.Product				"Product created"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		500		{object}	response.ErrorResponse		"Database error"
//	@Security		BearerAuth
//	@Router			/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			logger.Warn("Unauthorized product creation attempt")
			response.Error(w, err)
			return
		}

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid product input")
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), userID, &req)
		if err != nil {
			logger.Error("Failed to create product", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product created", slog.String("productID", product.ID.String()))
		response.Success(w, http.StatusCreated, product)
	}
}

// GetProduct godoc
//	@Summary	Get a product
//	@Tags		Products
//	@Produce	json
//	@Param		id	path		string					true	"Product ID"	Format(uuid)
//	@Success	200	{object}	models.Product			"Product"
//	@Failure	400	{object}	response.ErrorResponse	"Invalid ID or not the owner"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	404	{object}	response.ErrorResponse	"Product not found"
//	@Security	BearerAuth
//	@Router		/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product ID format", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		product, err := h.productService.GetProduct(r.Context(), userID, id)
		if err != nil {
			logger.Warn("Failed to get product", slog.String("productID", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// UpdateProduct godoc
//	@Summary		Update a product
//	@Description	Applies the given fields and recomputes the derived values.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID"	Format(uuid)
//	@Param			product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	models.Product				"Updated product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error or not the owner"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Security		BearerAuth
//	@Router			/products/{id} [put]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
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

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid product update input")
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), userID, id, &req)
		if err != nil {
			logger.Error("Failed to update product", slog.String("productID", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated", slog.String("productID", id.String()))
		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
//	@Summary	Delete a product
//	@Tags		Products
//	@Param		id	path	string	true	"Product ID"	Format(uuid)
//	@Success	204	"Product deleted"
//	@Failure	400	{object}	response.ErrorResponse	"Invalid ID or not the owner"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	404	{object}	response.ErrorResponse	"Product not found"
//	@Security	BearerAuth
//	@Router		/products/{id} [delete]
func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
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

		if err := h.productService.DeleteProduct(r.Context(), userID, id); err != nil {
			logger.Error("Failed to delete product", slog.String("productID", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product deleted", slog.String("productID", id.String()))
		response.NoContent(w)
	}
}

// ListProducts godoc
//	@Summary	List my products
//	@Tags		Products
//	@Produce	json
//	@Param		page		query		int							false	"Page number"		default(1)
//	@Param		pageSize	query		int							false	"Items per page"	default(10)
//	@Success	200			{object}	models.PaginatedResponse	"Products of the current user"
//	@Failure	401			{object}	response.ErrorResponse		"Authentication required"
//	@Failure	500			{object}	response.ErrorResponse		"Database error"
//	@Security	BearerAuth
//	@Router		/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		page, pageSize := utils.ParsePagination(r)

		products, total, err := h.productService.ListProducts(r.Context(), userID, page, pageSize)
		if err != nil {
			logger.Error("Failed to list products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     products,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
