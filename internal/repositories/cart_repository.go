package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/aaravmahajanofficial/diet-tracker/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// uniqueViolation is the postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

var ErrDuplicateCart = errors.New("cart already exists for user and date")

type CartRepository interface {
	CreateCart(ctx context.Context, cart *models.Cart) error
	GetCartByID(ctx context.Context, id uuid.UUID) (*models.Cart, error)
	GetCartByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*models.Cart, error)
	UpdateCart(ctx context.Context, cart *models.Cart) error
	DeleteCartsByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

const cartColumns = `id, user_id, date::text, meals, products, all_products, protein, carbohydrate, fat, kcal,
	item_counter, created_at, updated_at`

type cartCollections struct {
	meals, products, allProducts []byte
}

func marshalCart(cart *models.Cart) (*cartCollections, error) {
	meals := cart.Meals
	if meals == nil {
		meals = []models.Meal{}
	}

	mealsJSON, err := json.Marshal(meals)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cart meals: %w", err)
	}

	productsJSON, err := marshalProducts(cart.Products)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cart products: %w", err)
	}

	allProductsJSON, err := marshalProducts(cart.AllProducts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cart all products: %w", err)
	}

	return &cartCollections{meals: mealsJSON, products: productsJSON, allProducts: allProductsJSON}, nil
}

func scanCart(row interface{ Scan(dest ...any) error }) (*models.Cart, error) {
	cart := &models.Cart{}

	var mealsJSON, productsJSON, allProductsJSON []byte

	err := row.Scan(&cart.ID, &cart.UserID, &cart.Date, &mealsJSON, &productsJSON, &allProductsJSON,
		&cart.Protein, &cart.Carbohydrate, &cart.Fat, &cart.Kcal, &cart.ItemCounter, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(mealsJSON, &cart.Meals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart meals: %w", err)
	}

	if err := json.Unmarshal(productsJSON, &cart.Products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart products: %w", err)
	}

	if err := json.Unmarshal(allProductsJSON, &cart.AllProducts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart all products: %w", err)
	}

	return cart, nil
}

func (r *cartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	collections, err := marshalCart(cart)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO carts (user_id, date, meals, products, all_products, protein, carbohydrate, fat, kcal, item_counter)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	err = r.DB.QueryRowContext(dbCtx, query,
		cart.UserID, cart.Date, collections.meals, collections.products, collections.allProducts,
		cart.Protein, cart.Carbohydrate, cart.Fat, cart.Kcal, cart.ItemCounter,
	).Scan(&cart.ID, &cart.CreatedAt, &cart.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %w", ErrDuplicateCart, err)
	}

	return err
}

func (r *cartRepository) GetCartByID(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + cartColumns + ` FROM carts WHERE id = $1`

	cart, err := scanCart(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return cart, nil
}

func (r *cartRepository) GetCartByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + cartColumns + ` FROM carts WHERE user_id = $1 AND date = $2`

	cart, err := scanCart(r.DB.QueryRowContext(dbCtx, query, userID, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return cart, nil
}

func (r *cartRepository) UpdateCart(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	collections, err := marshalCart(cart)
	if err != nil {
		return err
	}

	query := `
		UPDATE carts
		SET meals = $1, products = $2, all_products = $3, protein = $4, carbohydrate = $5, fat = $6, kcal = $7,
			item_counter = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		collections.meals, collections.products, collections.allProducts,
		cart.Protein, cart.Carbohydrate, cart.Fat, cart.Kcal, cart.ItemCounter,
		cart.ID,
	).Scan(&cart.UpdatedAt)
}

func (r *cartRepository) DeleteCartsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM carts WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete carts: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get deleted rows: %w", err)
	}

	return deletedRows, nil
}
