package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	models "github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/aaravmahajanofficial/diet-tracker/internal/utils"
	"github.com/google/uuid"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByFacebookID(ctx context.Context, facebookID string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

const userColumns = `id, facebook_id, name, email, image_url, age, height, weight, sex, activity_level,
	calories_per_day, protein_per_day, carbohydrate_per_day, fat_per_day, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*models.User, error) {
	user := &models.User{}

	err := row.Scan(&user.ID, &user.FacebookID, &user.Name, &user.Email, &user.ImageURL,
		&user.Age, &user.Height, &user.Weight, &user.Sex, &user.ActivityLevel,
		&user.CaloriesPerDay, &user.ProteinPerDay, &user.CarbohydratePerDay, &user.FatPerDay,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO users (facebook_id, name, email, image_url, age, height, weight, sex, activity_level,
			calories_per_day, protein_per_day, carbohydrate_per_day, fat_per_day, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		user.FacebookID, user.Name, user.Email, user.ImageURL,
		user.Age, user.Height, user.Weight, user.Sex, user.ActivityLevel,
		user.CaloriesPerDay, user.ProteinPerDay, user.CarbohydratePerDay, user.FatPerDay,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return user, nil

}

func (r *userRepository) GetUserByFacebookID(ctx context.Context, facebookID string) (*models.User, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE facebook_id = $1`

	user, err := scanUser(r.DB.QueryRowContext(dbCtx, query, facebookID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return user, nil

}

func (r *userRepository) UpdateUser(ctx context.Context, user *models.User) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE users
		SET name = $1, email = $2, image_url = $3, age = $4, height = $5, weight = $6, sex = $7, activity_level = $8,
			calories_per_day = $9, protein_per_day = $10, carbohydrate_per_day = $11, fat_per_day = $12, updated_at = NOW()
		WHERE id = $13
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		user.Name, user.Email, user.ImageURL,
		user.Age, user.Height, user.Weight, user.Sex, user.ActivityLevel,
		user.CaloriesPerDay, user.ProteinPerDay, user.CarbohydratePerDay, user.FatPerDay,
		user.ID,
	).Scan(&user.UpdatedAt)

}
