package service

import (
	"context"
	"fmt"

	"stockroom/internal/logger"
	"stockroom/internal/store"
	"stockroom/models"
)

// productService is the concrete implementation of [ProductService].
//
// Writes follow the owned-write protocol: resolve the owner from the
// presented email, check domain preconditions, authorize the session token,
// then persist. Preconditions are checked before credentials on purpose;
// the API has always answered "Product already exists" ahead of
// "Invalid credentials".
type productService struct {
	products store.ProductRepository
	owners   *ownerResolver
	logger   *logger.Logger
}

// NewProductService constructs a [ProductService].
func NewProductService(products store.ProductRepository, owners *ownerResolver, logger *logger.Logger) ProductService {
	return &productService{
		products: products,
		owners:   owners,
		logger:   logger,
	}
}

// AddProduct registers a new product under the acting owner.
func (s *productService) AddProduct(ctx context.Context, request models.ProductRequest, token string) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	ownerID, err := s.owners.resolve(ctx, request.Email)
	if err != nil {
		return models.ExecResult{}, err
	}

	exists, err := s.products.ProductItemExists(ctx, request.ItemID)
	if err != nil {
		log.Err(err).Int64("item_id", request.ItemID).Msg("product uniqueness check failed")
		return models.ExecResult{}, fmt.Errorf("product uniqueness check failed: %w", err)
	}
	if exists {
		return models.ExecResult{}, ErrProductAlreadyExists
	}

	if err := s.owners.authorize(token, ownerID); err != nil {
		return models.ExecResult{}, err
	}

	result, err := s.products.CreateProduct(ctx, models.Product{
		ItemID:   request.ItemID,
		ItemName: request.ItemName,
		ImageURL: request.ImageURL,
		UserID:   ownerID,
	})
	if err != nil {
		log.Err(err).Int64("item_id", request.ItemID).Msg("product creation ended with error")
		return models.ExecResult{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	return result, nil
}

// ListProducts returns every product owned by the account behind email.
func (s *productService) ListProducts(ctx context.Context, email, token string) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	ownerID, err := s.owners.resolve(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.owners.authorize(token, ownerID); err != nil {
		return nil, err
	}

	products, err := s.products.FindProductsByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner", ownerID).Msg("product listing ended with error")
		return nil, fmt.Errorf("product listing ended with error: %w", err)
	}

	return products, nil
}
