package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aaravmahajanofficial/diet-tracker/internal/cache"
	appErrors "github.com/aaravmahajanofficial/diet-tracker/internal/errors"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/aaravmahajanofficial/diet-tracker/internal/nutrition"
	repository "github.com/aaravmahajanofficial/diet-tracker/internal/repositories"
	"github.com/google/uuid"
)

type ProductService interface {
	CreateProduct(ctx context.Context, userID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error)
	GetProduct(ctx context.Context, userID, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, userID, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, userID, id uuid.UUID) error
	ListProducts(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Product, int, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
}

func NewProductService(repo repository.ProductRepository, c cache.Cache) ProductService {
	return &productService{repo: repo, cache: c}
}

func (s *productService) CreateProduct(ctx context.Context, userID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		UserID:       userID,
		Name:         stripTags(req.Name),
		Description:  stripTags(req.Description),
		ImageURL:     req.ImageURL,
		Protein:      req.Protein,
		Carbohydrate: req.Carbohydrate,
		Fat:          req.Fat,
		Fibre:        req.Fibre,
		Kcal:         req.Kcal,
		Amount:       req.Amount,
	}
	nutrition.ApplyDerived(product)

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, appErrors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, userID, id uuid.UUID) (*models.Product, error) {

	product, err := cache.GetOrLoad(ctx, s.cache, cache.Key(cache.ProductKeyPrefix, id), 0, func(ctx context.Context) (*models.Product, error) {
		return s.loadProduct(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	if product.UserID != userID {
		return nil, appErrors.OwnershipError("Product")
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, userID, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.loadOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = stripTags(*req.Name)
	}
	if req.Description != nil {
		product.Description = stripTags(*req.Description)
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Protein != nil {
		product.Protein = *req.Protein
	}
	if req.Carbohydrate != nil {
		product.Carbohydrate = *req.Carbohydrate
	}
	if req.Fat != nil {
		product.Fat = *req.Fat
	}
	if req.Fibre != nil {
		product.Fibre = *req.Fibre
	}
	if req.Kcal != nil {
		product.Kcal = *req.Kcal
	}
	if req.Amount != nil {
		product.Amount = *req.Amount
	}
	nutrition.ApplyDerived(product)

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, appErrors.DatabaseError("Failed to update product").WithError(err)
	}

	invalidate(ctx, s.cache, cache.Key(cache.ProductKeyPrefix, id))

	return product, nil
}

// DeleteProduct removes the product. Meals and carts keep their own
// snapshots of it.
func (s *productService) DeleteProduct(ctx context.Context, userID, id uuid.UUID) error {

	if _, err := s.loadOwned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Product not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to delete product").WithError(err)
	}

	invalidate(ctx, s.cache, cache.Key(cache.ProductKeyPrefix, id))

	return nil
}

func (s *productService) ListProducts(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Product, int, error) {

	products, total, err := s.repo.ListProductsByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}

func (s *productService) loadProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return product, nil
}

// loadOwned reads past the cache, mutations always start from the stored row.
func (s *productService) loadOwned(ctx context.Context, userID, id uuid.UUID) (*models.Product, error) {

	product, err := s.loadProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.UserID != userID {
		return nil, appErrors.OwnershipError("Product")
	}

	return product, nil
}
