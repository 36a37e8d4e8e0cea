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
)

type MealRepository interface {
	CreateMeal(ctx context.Context, meal *models.Meal) error
	GetMealByID(ctx context.Context, id uuid.UUID) (*models.Meal, error)
	UpdateMeal(ctx context.Context, meal *models.Meal) error
	DeleteMeal(ctx context.Context, id uuid.UUID) error
	ListMealsByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]*models.Meal, int, error)
}

type mealRepository struct {
	DB *sql.DB
}

func NewMealRepo(db *sql.DB) MealRepository {
	return &mealRepository{DB: db}
}

const mealColumns = `id, user_id, name, description, recipe, image_url, products, protein, carbohydrate, fat, fibre, kcal,
	carbohydrate_exchange, protein_and_fat_equivalent, amount, created_at, updated_at`

func scanMeal(row interface{ Scan(dest ...any) error }) (*models.Meal, error) {
	meal := &models.Meal{}

	var productsJSON []byte

	err := row.Scan(&meal.ID, &meal.UserID, &meal.Name, &meal.Description, &meal.Recipe, &meal.ImageURL, &productsJSON,
		&meal.Protein, &meal.Carbohydrate, &meal.Fat, &meal.Fibre, &meal.Kcal,
		&meal.CarbohydrateExchange, &meal.ProteinAndFatEquivalent, &meal.Amount, &meal.CreatedAt, &meal.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(productsJSON, &meal.Products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal meal products: %w", err)
	}

	return meal, nil
}

func marshalProducts(products []models.Product) ([]byte, error) {
	if products == nil {
		products = []models.Product{}
	}

	return json.Marshal(products)
}

func (r *mealRepository) CreateMeal(ctx context.Context, meal *models.Meal) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	productsJSON, err := marshalProducts(meal.Products)
	if err != nil {
		return fmt.Errorf("failed to marshal meal products: %w", err)
	}

	query := `
		INSERT INTO meals (user_id, name, description, recipe, image_url, products, protein, carbohydrate, fat, fibre, kcal,
			carbohydrate_exchange, protein_and_fat_equivalent, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		meal.UserID, meal.Name, meal.Description, meal.Recipe, meal.ImageURL, productsJSON,
		meal.Protein, meal.Carbohydrate, meal.Fat, meal.Fibre, meal.Kcal,
		meal.CarbohydrateExchange, meal.ProteinAndFatEquivalent, meal.Amount,
	).Scan(&meal.ID, &meal.CreatedAt, &meal.UpdatedAt)
}

func (r *mealRepository) GetMealByID(ctx context.Context, id uuid.UUID) (*models.Meal, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + mealColumns + ` FROM meals WHERE id = $1`

	meal, err := scanMeal(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return meal, nil
}

func (r *mealRepository) UpdateMeal(ctx context.Context, meal *models.Meal) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	productsJSON, err := marshalProducts(meal.Products)
	if err != nil {
		return fmt.Errorf("failed to marshal meal products: %w", err)
	}

	query := `
		UPDATE meals
		SET name = $1, description = $2, recipe = $3, image_url = $4, products = $5, protein = $6, carbohydrate = $7,
			fat = $8, fibre = $9, kcal = $10, carbohydrate_exchange = $11, protein_and_fat_equivalent = $12, amount = $13,
			updated_at = NOW()
		WHERE id = $14
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		meal.Name, meal.Description, meal.Recipe, meal.ImageURL, productsJSON, meal.Protein, meal.Carbohydrate,
		meal.Fat, meal.Fibre, meal.Kcal, meal.CarbohydrateExchange, meal.ProteinAndFatEquivalent, meal.Amount,
		meal.ID,
	).Scan(&meal.UpdatedAt)
}

func (r *mealRepository) DeleteMeal(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM meals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deletedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *mealRepository) ListMealsByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]*models.Meal, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM meals WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `SELECT ` + mealColumns + ` FROM meals WHERE user_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, userID, size, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	meals := make([]*models.Meal, 0, size)

	for rows.Next() {
		meal, err := scanMeal(rows)
		if err != nil {
			return nil, 0, err
		}

		meals = append(meals, meal)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return meals, total, nil
}
