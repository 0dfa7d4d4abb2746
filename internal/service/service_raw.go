package service

import (
	"context"
	"errors"
	"fmt"

	"stockroom/internal/logger"
	"stockroom/internal/store"
	"stockroom/models"
)

// rawService is the concrete implementation of [RawService]. It follows the
// same owned-write protocol as products, with one extra precondition: when
// the request links a product, that product must exist. A link is only
// requested by a JSON number; null, strings and absence all mean "no link".
type rawService struct {
	raws     store.RawRepository
	products store.ProductRepository
	owners   *ownerResolver
	logger   *logger.Logger
}

// NewRawService constructs a [RawService].
func NewRawService(raws store.RawRepository, products store.ProductRepository, owners *ownerResolver, logger *logger.Logger) RawService {
	return &rawService{
		raws:     raws,
		products: products,
		owners:   owners,
		logger:   logger,
	}
}

// AddRaw registers a new raw material under the acting owner.
func (s *rawService) AddRaw(ctx context.Context, request models.RawRequest, token string) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	ownerID, err := s.owners.resolve(ctx, request.Email)
	if err != nil {
		return models.ExecResult{}, err
	}

	exists, err := s.raws.RawItemExists(ctx, request.ItemID)
	if err != nil {
		log.Err(err).Int64("item_id", request.ItemID).Msg("raw uniqueness check failed")
		return models.ExecResult{}, fmt.Errorf("raw uniqueness check failed: %w", err)
	}
	if exists {
		return models.ExecResult{}, ErrRawAlreadyExists
	}

	if err := s.checkProductLink(ctx, request.ProductID); err != nil {
		return models.ExecResult{}, err
	}

	if err := s.owners.authorize(token, ownerID); err != nil {
		return models.ExecResult{}, err
	}

	result, err := s.raws.CreateRaw(ctx, models.Raw{
		ItemID:    request.ItemID,
		ItemName:  request.ItemName,
		ImageURL:  request.ImageURL,
		ProductID: request.ProductID,
		UserID:    ownerID,
	})
	if err != nil {
		log.Err(err).Int64("item_id", request.ItemID).Msg("raw creation ended with error")
		return models.ExecResult{}, fmt.Errorf("raw creation ended with error: %w", err)
	}

	return result, nil
}

// ListRaws returns every raw material owned by the account behind email.
func (s *rawService) ListRaws(ctx context.Context, email, token string) ([]models.Raw, error) {
	log := logger.FromContext(ctx)

	ownerID, err := s.owners.resolve(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.owners.authorize(token, ownerID); err != nil {
		return nil, err
	}

	raws, err := s.raws.FindRawsByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner", ownerID).Msg("raw listing ended with error")
		return nil, fmt.Errorf("raw listing ended with error: %w", err)
	}

	return raws, nil
}

// AssignProduct reassigns (or clears) the product link of a raw. The acting
// owner comes from the raw's own row, not from the request.
func (s *rawService) AssignProduct(ctx context.Context, request models.AssignProductRequest, token string) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	ownerID, err := s.raws.FindOwnerByRawID(ctx, request.RawID)
	if err != nil {
		if errors.Is(err, store.ErrRawNotFound) {
			return models.ExecResult{}, ErrRawNotFound
		}

		log.Err(err).Int64("raw_id", request.RawID).Msg("raw owner lookup failed")
		return models.ExecResult{}, fmt.Errorf("raw owner lookup failed: %w", err)
	}

	if err := s.checkProductLink(ctx, request.ProductID); err != nil {
		return models.ExecResult{}, err
	}

	if err := s.owners.authorize(token, ownerID); err != nil {
		return models.ExecResult{}, err
	}

	result, err := s.raws.AssignProduct(ctx, request.RawID, request.ProductID)
	if err != nil {
		log.Err(err).Int64("raw_id", request.RawID).Msg("raw reassignment ended with error")
		return models.ExecResult{}, fmt.Errorf("raw reassignment ended with error: %w", err)
	}

	return result, nil
}

// checkProductLink verifies the linked product exists, but only when a link
// was actually requested.
func (s *rawService) checkProductLink(ctx context.Context, productID models.LinkID) error {
	if !productID.Valid {
		return nil
	}

	exists, err := s.products.ProductExists(ctx, productID.ID)
	if err != nil {
		return fmt.Errorf("product existence check failed: %w", err)
	}
	if !exists {
		return ErrProductNotFound
	}

	return nil
}
