package service_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	cacheMocks "github.com/aaravmahajanofficial/diet-tracker/internal/cache/mocks"
	appErrors "github.com/aaravmahajanofficial/diet-tracker/internal/errors"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/aaravmahajanofficial/diet-tracker/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/diet-tracker/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupProductServiceTest(t *testing.T) (service.ProductService, *mocks.ProductRepository, *cacheMocks.Cache) {
	mockRepo := mocks.NewProductRepository(t)
	mockCache := cacheMocks.NewCache(t)

	return service.NewProductService(mockRepo, mockCache), mockRepo, mockCache
}

func productKey(id uuid.UUID) string {
	return "product:" + id.String()
}

func oatsProduct(owner uuid.UUID) *models.Product {
	return &models.Product{
		ID:                      uuid.New(),
		UserID:                  owner,
		Name:                    "Oats",
		Protein:                 13,
		Carbohydrate:            68,
		Fat:                     7,
		Fibre:                   10,
		Kcal:                    379,
		Amount:                  100,
		CarbohydrateExchange:    5.8,
		ProteinAndFatEquivalent: 1.15,
		CreatedAt:               time.Now(),
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	userID := uuid.New()

	t.Run("Success - Derived Fields And Sanitized Text", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := setupProductServiceTest(t)
		req := &models.CreateProductRequest{
			Name:         "<script>alert(1)</script>Oats",
			Description:  "rolled <i>oats</i>",
			Protein:      13,
			Carbohydrate: 68,
			Fat:          7,
			Fibre:        10,
			Kcal:         379,
			Amount:       100,
		}

		mockRepo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Product).ID = uuid.New()
			}).
			Return(nil).Once()

		// Act
		product, err := productService.CreateProduct(t.Context(), userID, req)

		// Assert
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, product.ID)
		assert.Equal(t, userID, product.UserID)
		assert.Equal(t, "Oats", product.Name)
		assert.Equal(t, "rolled oats", product.Description)
		assert.InDelta(t, 5.8, product.CarbohydrateExchange, 0.001)
		assert.InDelta(t, 1.15, product.ProteinAndFatEquivalent, 0.001)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := setupProductServiceTest(t)
		dbErr := errors.New("insert failed")
		mockRepo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).Return(dbErr).Once()

		// Act
		product, err := productService.CreateProduct(t.Context(), userID, &models.CreateProductRequest{Name: "Oats", Amount: 100})

		// Assert
		assert.Nil(t, product)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		assert.Equal(t, "Failed to create product", appErr.Message)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestProductService_GetProduct(t *testing.T) {
	userID := uuid.New()

	t.Run("Success - Cache Hit", func(t *testing.T) {
		// Arrange
		productService, _, mockCache := setupProductServiceTest(t)
		product := oatsProduct(userID)

		mockCache.On("Get", mock.Anything, productKey(product.ID), mock.Anything).
			Run(func(args mock.Arguments) {
				*args.Get(2).(**models.Product) = product
			}).
			Return(true, nil).Once()

		// Act
		got, err := productService.GetProduct(t.Context(), userID, product.ID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("Success - Cache Miss", func(t *testing.T) {
		// Arrange
		productService, mockRepo, mockCache := setupProductServiceTest(t)
		product := oatsProduct(userID)

		mockCache.On("Get", mock.Anything, productKey(product.ID), mock.Anything).Return(false, nil).Once()
		mockRepo.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()
		mockCache.On("Set", mock.Anything, productKey(product.ID), product, time.Duration(0)).Return(nil).Once()

		// Act
		got, err := productService.GetProduct(t.Context(), userID, product.ID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, product.ID, got.ID)
	})

	t.Run("Failure - Not Owner", func(t *testing.T) {
		// Arrange
		productService, mockRepo, mockCache := setupProductServiceTest(t)
		product := oatsProduct(uuid.New())

		mockCache.On("Get", mock.Anything, productKey(product.ID), mock.Anything).Return(false, nil).Once()
		mockRepo.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()
		mockCache.On("Set", mock.Anything, productKey(product.ID), product, time.Duration(0)).Return(nil).Once()

		// Act
		got, err := productService.GetProduct(t.Context(), userID, product.ID)

		// Assert
		assert.Nil(t, got)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeOwnership))
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		productService, mockRepo, mockCache := setupProductServiceTest(t)
		id := uuid.New()

		mockCache.On("Get", mock.Anything, productKey(id), mock.Anything).Return(false, nil).Once()
		mockRepo.On("GetProductByID", mock.Anything, id).Return(nil, sql.ErrNoRows).Once()

		// Act
		_, err := productService.GetProduct(t.Context(), userID, id)

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
	})
}

func TestProductService_UpdateProduct(t *testing.T) {
	userID := uuid.New()

	t.Run("Success - Derived Fields Recomputed", func(t *testing.T) {
		// Arrange
		productService, mockRepo, mockCache := setupProductServiceTest(t)
		product := oatsProduct(userID)
		carbohydrate := 40.0
		name := "Oat bran"

		mockRepo.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()
		mockRepo.On("UpdateProduct", mock.Anything, product).Return(nil).Once()
		mockCache.On("Delete", mock.Anything, productKey(product.ID)).Return(nil).Once()

		// Act
		got, err := productService.UpdateProduct(t.Context(), userID, product.ID, &models.UpdateProductRequest{
			Name:         &name,
			Carbohydrate: &carbohydrate,
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, name, got.Name)
		assert.InDelta(t, 3, got.CarbohydrateExchange, 0.001)
	})

	t.Run("Failure - Not Owner", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := setupProductServiceTest(t)
		product := oatsProduct(uuid.New())

		mockRepo.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()

		// Act
		got, err := productService.UpdateProduct(t.Context(), userID, product.ID, &models.UpdateProductRequest{})

		// Assert
		assert.Nil(t, got)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeOwnership))
		mockRepo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Update Error", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := setupProductServiceTest(t)
		product := oatsProduct(userID)

		mockRepo.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()
		mockRepo.On("UpdateProduct", mock.Anything, product).Return(errors.New("write failed")).Once()

		// Act
		_, err := productService.UpdateProduct(t.Context(), userID, product.ID, &models.UpdateProductRequest{})

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeDatabaseError))
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		productService, mockRepo, mockCache := setupProductServiceTest(t)
		product := oatsProduct(userID)

		mockRepo.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()
		mockRepo.On("DeleteProduct", mock.Anything, product.ID).Return(nil).Once()
		mockCache.On("Delete", mock.Anything, productKey(product.ID)).Return(nil).Once()

		// Act
		err := productService.DeleteProduct(t.Context(), userID, product.ID)

		// Assert
		assert.NoError(t, err)
	})

	t.Run("Failure - Deleted Concurrently", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := setupProductServiceTest(t)
		product := oatsProduct(userID)

		mockRepo.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()
		mockRepo.On("DeleteProduct", mock.Anything, product.ID).Return(sql.ErrNoRows).Once()

		// Act
		err := productService.DeleteProduct(t.Context(), userID, product.ID)

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
	})

	t.Run("Failure - Not Owner", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := setupProductServiceTest(t)
		product := oatsProduct(uuid.New())

		mockRepo.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()

		// Act
		err := productService.DeleteProduct(t.Context(), userID, product.ID)

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeOwnership))
		mockRepo.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything)
	})
}

func TestProductService_ListProducts(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := setupProductServiceTest(t)
		products := []*models.Product{oatsProduct(userID), oatsProduct(userID)}
		mockRepo.On("ListProductsByUser", mock.Anything, userID, 2, 10).Return(products, 12, nil).Once()

		// Act
		got, total, err := productService.ListProducts(t.Context(), userID, 2, 10)

		// Assert
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, 12, total)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := setupProductServiceTest(t)
		mockRepo.On("ListProductsByUser", mock.Anything, userID, 1, 10).Return(nil, 0, errors.New("timeout")).Once()

		// Act
		got, total, err := productService.ListProducts(t.Context(), userID, 1, 10)

		// Assert
		assert.Nil(t, got)
		assert.Zero(t, total)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeDatabaseError))
	})
}
