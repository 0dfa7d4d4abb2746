package service

import (
	"context"
	"fmt"

	"stockroom/internal/logger"
	"stockroom/internal/store"
	"stockroom/models"
)

// purchaseService is the concrete implementation of [PurchaseService].
// Purchases reference a raw material; the referenced raw must exist before
// credentials are checked, matching the other resource services.
type purchaseService struct {
	purchases store.PurchaseRepository
	raws      store.RawRepository
	owners    *ownerResolver
	logger    *logger.Logger
}

// NewPurchaseService constructs a [PurchaseService].
func NewPurchaseService(purchases store.PurchaseRepository, raws store.RawRepository, owners *ownerResolver, logger *logger.Logger) PurchaseService {
	return &purchaseService{
		purchases: purchases,
		raws:      raws,
		owners:    owners,
		logger:    logger,
	}
}

// AddPurchase records a purchase of a raw material by the acting owner.
func (s *purchaseService) AddPurchase(ctx context.Context, request models.PurchaseRequest, token string) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	ownerID, err := s.owners.resolve(ctx, request.Email)
	if err != nil {
		return models.ExecResult{}, err
	}

	exists, err := s.raws.RawExists(ctx, request.RawID)
	if err != nil {
		log.Err(err).Int64("raw_id", request.RawID).Msg("raw existence check failed")
		return models.ExecResult{}, fmt.Errorf("raw existence check failed: %w", err)
	}
	if !exists {
		return models.ExecResult{}, ErrRawNotFound
	}

	if err := s.owners.authorize(token, ownerID); err != nil {
		return models.ExecResult{}, err
	}

	result, err := s.purchases.CreatePurchase(ctx, models.Purchase{
		RawID:            request.RawID,
		UserID:           ownerID,
		PurchaseQuantity: request.PurchaseQuantity,
		PurchaseAmount:   request.PurchaseAmount,
		PurchaseTime:     request.PurchaseTime,
	})
	if err != nil {
		log.Err(err).Int64("raw_id", request.RawID).Msg("purchase creation ended with error")
		return models.ExecResult{}, fmt.Errorf("purchase creation ended with error: %w", err)
	}

	return result, nil
}

// ListPurchases returns every purchase recorded by the account behind email.
func (s *purchaseService) ListPurchases(ctx context.Context, email, token string) ([]models.Purchase, error) {
	log := logger.FromContext(ctx)

	ownerID, err := s.owners.resolve(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.owners.authorize(token, ownerID); err != nil {
		return nil, err
	}

	purchases, err := s.purchases.FindPurchasesByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner", ownerID).Msg("purchase listing ended with error")
		return nil, fmt.Errorf("purchase listing ended with error: %w", err)
	}

	return purchases, nil
}
