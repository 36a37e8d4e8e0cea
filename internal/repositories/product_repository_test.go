package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	repository "github.com/aaravmahajanofficial/diet-tracker/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{
	"id", "user_id", "name", "description", "image_url", "protein", "carbohydrate", "fat", "fibre", "kcal", "amount",
	"carbohydrate_exchange", "protein_and_fat_equivalent", "created_at", "updated_at",
}

func newTestProduct(userID uuid.UUID) *models.Product {
	return &models.Product{
		UserID:                  userID,
		Name:                    "Oats",
		Description:             "Rolled oats",
		Protein:                 13,
		Carbohydrate:            68,
		Fat:                     7,
		Fibre:                   10,
		Kcal:                    379,
		Amount:                  100,
		CarbohydrateExchange:    6.1,
		ProteinAndFatEquivalent: 1.15,
	}
}

func addProductRow(rows *sqlmock.Rows, id uuid.UUID, p *models.Product, now time.Time) *sqlmock.Rows {
	return rows.AddRow(
		id.String(), p.UserID.String(), p.Name, p.Description, p.ImageURL, p.Protein, p.Carbohydrate, p.Fat, p.Fibre, p.Kcal, p.Amount,
		p.CarbohydrateExchange, p.ProteinAndFatEquivalent, now, now,
	)
}

func TestNewProductRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	assert.NotNil(t, repo, "NewProductRepo should return a non-nil repository")
}

func TestProductRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	ctx := t.Context()
	userID := uuid.New()

	t.Run("CreateProduct", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`INSERT INTO products (user_id, name, description, image_url`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			product := newTestProduct(userID)
			now := time.Now()
			newID := uuid.New()

			mock.ExpectQuery(expectedSQL).
				WithArgs(product.UserID, product.Name, product.Description, product.ImageURL,
					product.Protein, product.Carbohydrate, product.Fat, product.Fibre, product.Kcal, product.Amount,
					product.CarbohydrateExchange, product.ProteinAndFatEquivalent).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(newID.String(), now, now))

			// Act
			err := repo.CreateProduct(ctx, product)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, newID, product.ID)
			assert.WithinDuration(t, now, product.CreatedAt, time.Second)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Database Error", func(t *testing.T) {
			// Arrange
			dbError := errors.New("database insertion error")
			mock.ExpectQuery(expectedSQL).WillReturnError(dbError)

			// Act
			err := repo.CreateProduct(ctx, newTestProduct(userID))

			// Assert
			assert.ErrorIs(t, err, dbError)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetProductByID", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`FROM products WHERE id = $1`)
		productID := uuid.New()

		t.Run("Success", func(t *testing.T) {
			// Arrange
			expected := newTestProduct(userID)
			rows := addProductRow(sqlmock.NewRows(productRowColumns), productID, expected, time.Now())
			mock.ExpectQuery(expectedSQL).WithArgs(productID).WillReturnRows(rows)

			// Act
			product, err := repo.GetProductByID(ctx, productID)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, productID, product.ID)
			assert.Equal(t, userID, product.UserID)
			assert.Equal(t, expected.Kcal, product.Kcal)
			assert.Equal(t, expected.Amount, product.Amount)
			assert.Equal(t, expected.CarbohydrateExchange, product.CarbohydrateExchange)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Not Found", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).WithArgs(productID).WillReturnError(sql.ErrNoRows)

			// Act
			product, err := repo.GetProductByID(ctx, productID)

			// Assert
			assert.Nil(t, product)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetProductsByIDs", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`FROM products WHERE id = ANY($1)`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			first, second := uuid.New(), uuid.New()
			ids := []uuid.UUID{first, second}
			rows := sqlmock.NewRows(productRowColumns)
			addProductRow(rows, first, newTestProduct(userID), time.Now())
			addProductRow(rows, second, newTestProduct(userID), time.Now())

			mock.ExpectQuery(expectedSQL).WithArgs(pq.Array(ids)).WillReturnRows(rows)

			// Act
			products, err := repo.GetProductsByIDs(ctx, ids)

			// Assert
			require.NoError(t, err)
			require.Len(t, products, 2)
			assert.Equal(t, first, products[0].ID)
			assert.Equal(t, second, products[1].ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Database Error", func(t *testing.T) {
			// Arrange
			dbError := errors.New("query failed")
			mock.ExpectQuery(expectedSQL).WillReturnError(dbError)

			// Act
			products, err := repo.GetProductsByIDs(ctx, []uuid.UUID{uuid.New()})

			// Assert
			assert.Nil(t, products)
			assert.ErrorIs(t, err, dbError)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateProduct", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`UPDATE products`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			product := newTestProduct(userID)
			product.ID = uuid.New()
			now := time.Now()

			mock.ExpectQuery(expectedSQL).
				WithArgs(product.Name, product.Description, product.ImageURL,
					product.Protein, product.Carbohydrate, product.Fat, product.Fibre,
					product.Kcal, product.Amount, product.CarbohydrateExchange, product.ProteinAndFatEquivalent,
					product.ID).
				WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

			// Act
			err := repo.UpdateProduct(ctx, product)

			// Assert
			require.NoError(t, err)
			assert.WithinDuration(t, now, product.UpdatedAt, time.Second)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("DeleteProduct", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`DELETE FROM products WHERE id = $1`)
		productID := uuid.New()

		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(expectedSQL).WithArgs(productID).WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			err := repo.DeleteProduct(ctx, productID)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Not Found", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(expectedSQL).WithArgs(productID).WillReturnResult(sqlmock.NewResult(0, 0))

			// Act
			err := repo.DeleteProduct(ctx, productID)

			// Assert
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("ListProductsByUser", func(t *testing.T) {
		countSQL := regexp.QuoteMeta(`SELECT COUNT(*) FROM products WHERE user_id = $1`)
		listSQL := regexp.QuoteMeta(`FROM products WHERE user_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			rows := sqlmock.NewRows(productRowColumns)
			addProductRow(rows, uuid.New(), newTestProduct(userID), time.Now())

			mock.ExpectQuery(countSQL).WithArgs(userID).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
			mock.ExpectQuery(listSQL).WithArgs(userID, 10, 10).WillReturnRows(rows)

			// Act
			products, total, err := repo.ListProductsByUser(ctx, userID, 2, 10)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, 11, total)
			assert.Len(t, products, 1)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Count Error", func(t *testing.T) {
			// Arrange
			dbError := errors.New("count failed")
			mock.ExpectQuery(countSQL).WithArgs(userID).WillReturnError(dbError)

			// Act
			products, total, err := repo.ListProductsByUser(ctx, userID, 1, 10)

			// Assert
			assert.Nil(t, products)
			assert.Zero(t, total)
			assert.ErrorIs(t, err, dbError)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
