package service

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/aaravmahajanofficial/diet-tracker/internal/errors"
	"github.com/aaravmahajanofficial/diet-tracker/internal/metrics"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/aaravmahajanofficial/diet-tracker/internal/nutrition"
	repository "github.com/aaravmahajanofficial/diet-tracker/internal/repositories"
	"github.com/google/uuid"
)

// CartService mutates the per-day carts. Every call takes the id of the
// acting user and rejects carts, meals and products owned by someone else
// before changing anything.
//
// Load, mutate and save are separate statements; two concurrent requests on
// the same cart can overwrite each other.
type CartService interface {
	GetCart(ctx context.Context, userID, cartID uuid.UUID) (*models.Cart, error)
	GetCartByDate(ctx context.Context, userID uuid.UUID, date string) (*models.Cart, error)
	AddMeal(ctx context.Context, userID, mealID uuid.UUID, req *models.AddToCartRequest) (*models.Cart, error)
	RemoveMeal(ctx context.Context, userID, cartID, mealID uuid.UUID) (*models.Cart, error)
	AddProduct(ctx context.Context, userID, productID uuid.UUID, req *models.AddToCartRequest) (*models.Cart, error)
	RemoveProduct(ctx context.Context, userID, cartID, productID uuid.UUID) (*models.Cart, error)
	ResetCarts(ctx context.Context, userID uuid.UUID) (int64, error)
}

type cartService struct {
	carts    repository.CartRepository
	meals    repository.MealRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, meals repository.MealRepository, products repository.ProductRepository) CartService {
	return &cartService{carts: carts, meals: meals, products: products}
}

func (s *cartService) GetCart(ctx context.Context, userID, cartID uuid.UUID) (*models.Cart, error) {

	return s.loadOwned(ctx, userID, cartID)
}

func (s *cartService) GetCartByDate(ctx context.Context, userID uuid.UUID, date string) (*models.Cart, error) {

	cart, err := s.carts.GetCartByUserAndDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Cart not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) AddMeal(ctx context.Context, userID, mealID uuid.UUID, req *models.AddToCartRequest) (cart *models.Cart, err error) {

	defer func() { metrics.RecordCartMutation(metrics.CartAddMeal, err) }()

	if req.UserID != userID {
		return nil, appErrors.OwnershipError("Cart")
	}

	meal, err := s.meals.GetMealByID(ctx, mealID)
	if err != nil {
		return nil, notFoundOrDatabase(err, "Meal not found", "Failed to fetch meal")
	}

	if meal.UserID != userID {
		return nil, appErrors.OwnershipError("Meal")
	}

	return s.upsert(ctx, userID, req.Date, func(c *models.Cart) {
		nutrition.AddMeal(c, *meal, req.Amount)
	})
}

// RemoveMeal of a meal that is not in the cart returns the cart unchanged.
func (s *cartService) RemoveMeal(ctx context.Context, userID, cartID, mealID uuid.UUID) (cart *models.Cart, err error) {

	defer func() { metrics.RecordCartMutation(metrics.CartRemoveMeal, err) }()

	cart, err = s.loadOwned(ctx, userID, cartID)
	if err != nil {
		return nil, err
	}

	if !nutrition.RemoveMeal(cart, mealID) {
		return cart, nil
	}

	return s.save(ctx, cart)
}

func (s *cartService) AddProduct(ctx context.Context, userID, productID uuid.UUID, req *models.AddToCartRequest) (cart *models.Cart, err error) {

	defer func() { metrics.RecordCartMutation(metrics.CartAddProduct, err) }()

	if req.UserID != userID {
		return nil, appErrors.OwnershipError("Cart")
	}

	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return nil, notFoundOrDatabase(err, "Product not found", "Failed to fetch product")
	}

	if product.UserID != userID {
		return nil, appErrors.OwnershipError("Product")
	}

	return s.upsert(ctx, userID, req.Date, func(c *models.Cart) {
		nutrition.AddProduct(c, *product, req.Amount)
	})
}

// RemoveProduct of a product that is not in the cart returns the cart
// unchanged.
func (s *cartService) RemoveProduct(ctx context.Context, userID, cartID, productID uuid.UUID) (cart *models.Cart, err error) {

	defer func() { metrics.RecordCartMutation(metrics.CartRemoveProduct, err) }()

	cart, err = s.loadOwned(ctx, userID, cartID)
	if err != nil {
		return nil, err
	}

	if !nutrition.RemoveProduct(cart, productID) {
		return cart, nil
	}

	return s.save(ctx, cart)
}

// ResetCarts deletes every cart of the user and reports how many went.
func (s *cartService) ResetCarts(ctx context.Context, userID uuid.UUID) (deleted int64, err error) {

	defer func() { metrics.RecordCartMutation(metrics.CartReset, err) }()

	deleted, err = s.carts.DeleteCartsByUser(ctx, userID)
	if err != nil {
		return 0, appErrors.DatabaseError("Failed to reset carts").WithError(err)
	}

	return deleted, nil
}

// upsert applies mutate to the cart of (userID, date), creating the cart on
// first use. Losing the creation race to a concurrent request falls back to
// the cart that request stored.
func (s *cartService) upsert(ctx context.Context, userID uuid.UUID, date string, mutate func(*models.Cart)) (*models.Cart, error) {

	cart, err := s.carts.GetCartByUserAndDate(ctx, userID, date)
	if err == nil {
		mutate(cart)
		return s.save(ctx, cart)
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	cart = &models.Cart{
		UserID:   userID,
		Date:     date,
		Meals:    []models.Meal{},
		Products: []models.Product{},
	}
	mutate(cart)

	err = s.carts.CreateCart(ctx, cart)
	if err == nil {
		return cart, nil
	}

	if !errors.Is(err, repository.ErrDuplicateCart) {
		return nil, appErrors.DatabaseError("Failed to create cart").WithError(err)
	}

	cart, err = s.carts.GetCartByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}
	mutate(cart)

	return s.save(ctx, cart)
}

func (s *cartService) save(ctx context.Context, cart *models.Cart) (*models.Cart, error) {

	if err := s.carts.UpdateCart(ctx, cart); err != nil {
		return nil, appErrors.DatabaseError("Failed to update cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) loadOwned(ctx context.Context, userID, cartID uuid.UUID) (*models.Cart, error) {

	cart, err := s.carts.GetCartByID(ctx, cartID)
	if err != nil {
		return nil, notFoundOrDatabase(err, "Cart not found", "Failed to fetch cart")
	}

	if cart.UserID != userID {
		return nil, appErrors.OwnershipError("Cart")
	}

	return cart, nil
}

func notFoundOrDatabase(err error, notFound, failure string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.NotFoundError(notFound).WithError(err)
	}

	return appErrors.DatabaseError(failure).WithError(err)
}
