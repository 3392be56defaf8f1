package service

import (
	"context"
	"errors"

	"focusflow/internal/catalog"
	"focusflow/internal/domain"
	"focusflow/internal/logger"
	"focusflow/internal/repository"
)

var ErrUnknownProduct = errors.New("unknown product")

// ShopService sells one-off products whose reward payloads land in the
// buyer's inventory.
type ShopService struct {
	payments *repository.PaymentRepository
	catalog  *catalog.Catalog
	provider PaymentProvider
	rewards  *RewardService
	badges   *BadgeService
}

func NewShopService(
	payments *repository.PaymentRepository,
	cat *catalog.Catalog,
	provider PaymentProvider,
	rewards *RewardService,
	badges *BadgeService,
) *ShopService {
	return &ShopService{
		payments: payments,
		catalog:  cat,
		provider: provider,
		rewards:  rewards,
		badges:   badges,
	}
}

// Purchase charges the product through the provider and, once settled,
// records the purchase and applies its reward payload. Badge evaluation runs
// after the purchase so the shop badges (purchase count, unique products)
// see the new row.
func (s *ShopService) Purchase(ctx context.Context, userID, productID string) (*domain.Purchase, error) {
	product := s.catalog.Product(productID)
	if product == nil {
		return nil, ErrUnknownProduct
	}
	session, err := s.provider.CreateCheckout(ctx, CheckoutRequest{
		UserID:      userID,
		Reference:   product.ID,
		Description: product.Name,
		Amount:      product.Amount,
		Currency:    product.Currency,
	})
	if err != nil {
		return nil, err
	}
	status, err := s.provider.CheckStatus(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}
	if status != domain.PaymentCompleted {
		return nil, ErrPaymentPending
	}

	purchase := &domain.Purchase{
		UserID:    userID,
		ProductID: product.ID,
		SessionID: session.SessionID,
		Amount:    product.Amount,
		Status:    domain.PaymentCompleted,
	}
	if err := s.payments.CreatePurchase(ctx, purchase); err != nil {
		return nil, err
	}

	if err := s.rewards.Apply(ctx, userID, product.Reward); err != nil {
		// The purchase row exists; a failed payload application is the one
		// case worth loud logging and support follow-up rather than refusal.
		logger.Error("purchase reward failed", "user_id", userID, "product_id", product.ID, "err", err)
	}
	if _, err := s.badges.Evaluate(ctx, userID); err != nil {
		logger.Error("post-purchase badge evaluation failed", "user_id", userID, "err", err)
	}
	return purchase, nil
}
