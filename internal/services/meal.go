package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/diet-tracker/internal/cache"
	appErrors "github.com/aaravmahajanofficial/diet-tracker/internal/errors"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/aaravmahajanofficial/diet-tracker/internal/nutrition"
	repository "github.com/aaravmahajanofficial/diet-tracker/internal/repositories"
	"github.com/google/uuid"
)

type MealService interface {
	CreateMeal(ctx context.Context, userID uuid.UUID, req *models.CreateMealRequest) (*models.Meal, error)
	GetMeal(ctx context.Context, userID, id uuid.UUID) (*models.Meal, error)
	UpdateMeal(ctx context.Context, userID, id uuid.UUID, req *models.UpdateMealRequest) (*models.Meal, error)
	DeleteMeal(ctx context.Context, userID, id uuid.UUID) error
	ListMeals(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Meal, int, error)
}

type mealService struct {
	meals    repository.MealRepository
	products repository.ProductRepository
	cache    cache.Cache
}

func NewMealService(meals repository.MealRepository, products repository.ProductRepository, c cache.Cache) MealService {
	return &mealService{meals: meals, products: products, cache: c}
}

func (s *mealService) CreateMeal(ctx context.Context, userID uuid.UUID, req *models.CreateMealRequest) (*models.Meal, error) {

	products, err := s.snapshotProducts(ctx, userID, req.Products)
	if err != nil {
		return nil, err
	}

	meal := &models.Meal{
		UserID:      userID,
		Name:        stripTags(req.Name),
		Description: stripTags(req.Description),
		Recipe:      sanitizeRichText(req.Recipe),
		ImageURL:    req.ImageURL,
		Products:    products,
		Amount:      req.Amount,
	}

	if meal.Amount == 0 {
		meal.Amount = nutrition.TotalAmount(products)
	}
	nutrition.SumMeal(meal)

	if err := s.meals.CreateMeal(ctx, meal); err != nil {
		return nil, appErrors.DatabaseError("Failed to create meal").WithError(err)
	}

	return meal, nil
}

func (s *mealService) GetMeal(ctx context.Context, userID, id uuid.UUID) (*models.Meal, error) {

	meal, err := cache.GetOrLoad(ctx, s.cache, cache.Key(cache.MealKeyPrefix, id), 0, func(ctx context.Context) (*models.Meal, error) {
		return s.loadMeal(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	if meal.UserID != userID {
		return nil, appErrors.OwnershipError("Meal")
	}

	return meal, nil
}

// UpdateMeal applies the present fields. New products replace the whole
// product list, the amount then follows their sum unless given explicitly.
func (s *mealService) UpdateMeal(ctx context.Context, userID, id uuid.UUID, req *models.UpdateMealRequest) (*models.Meal, error) {

	meal, err := s.loadOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		meal.Name = stripTags(*req.Name)
	}
	if req.Description != nil {
		meal.Description = stripTags(*req.Description)
	}
	if req.Recipe != nil {
		meal.Recipe = sanitizeRichText(*req.Recipe)
	}
	if req.ImageURL != nil {
		meal.ImageURL = *req.ImageURL
	}

	if len(req.Products) > 0 {
		products, err := s.snapshotProducts(ctx, userID, req.Products)
		if err != nil {
			return nil, err
		}

		meal.Products = products
		meal.Amount = nutrition.TotalAmount(products)
	}

	if req.Amount != nil {
		meal.Amount = *req.Amount
	}
	nutrition.SumMeal(meal)

	if err := s.meals.UpdateMeal(ctx, meal); err != nil {
		return nil, appErrors.DatabaseError("Failed to update meal").WithError(err)
	}

	invalidate(ctx, s.cache, cache.Key(cache.MealKeyPrefix, id))

	return meal, nil
}

func (s *mealService) DeleteMeal(ctx context.Context, userID, id uuid.UUID) error {

	if _, err := s.loadOwned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.meals.DeleteMeal(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Meal not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to delete meal").WithError(err)
	}

	invalidate(ctx, s.cache, cache.Key(cache.MealKeyPrefix, id))

	return nil
}

func (s *mealService) ListMeals(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Meal, int, error) {

	meals, total, err := s.meals.ListMealsByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch meals").WithError(err)
	}

	return meals, total, nil
}

// snapshotProducts copies the requested products of the user, each resized
// to the requested amount, in request order.
func (s *mealService) snapshotProducts(ctx context.Context, userID uuid.UUID, items []models.MealProductRequest) ([]models.Product, error) {

	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]struct{}, len(items))

	for _, item := range items {
		if _, dup := seen[item.ProductID]; dup {
			return nil, appErrors.BadRequestError("Duplicate product in meal").WithDetail(item.ProductID.String())
		}

		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	found, err := s.products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	byID := make(map[uuid.UUID]*models.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	products := make([]models.Product, 0, len(items))

	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			return nil, appErrors.NotFoundError("Product not found").WithDetail(fmt.Sprintf("product %s does not exist", item.ProductID))
		}

		if p.UserID != userID {
			return nil, appErrors.OwnershipError("Product")
		}

		products = append(products, nutrition.ResizeProduct(*p, item.Amount))
	}

	return products, nil
}

func (s *mealService) loadMeal(ctx context.Context, id uuid.UUID) (*models.Meal, error) {

	meal, err := s.meals.GetMealByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Meal not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch meal").WithError(err)
	}

	return meal, nil
}

func (s *mealService) loadOwned(ctx context.Context, userID, id uuid.UUID) (*models.Meal, error) {

	meal, err := s.loadMeal(ctx, id)
	if err != nil {
		return nil, err
	}

	if meal.UserID != userID {
		return nil, appErrors.OwnershipError("Meal")
	}

	return meal, nil
}
