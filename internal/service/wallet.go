package service

import (
	"context"
	"errors"
	"time"

	"focusflow/internal/domain"
	"focusflow/internal/logger"
	"focusflow/internal/repository"

	"github.com/shopspring/decimal"
)

// ErrNoBalance means a withdrawal was requested with nothing available.
var ErrNoBalance = errors.New("no balance available")

// WalletService exposes the commission wallet: the available balance and the
// all-or-nothing withdrawal request.
type WalletService struct {
	withdrawals *repository.WithdrawalRepository
}

func NewWalletService(withdrawals *repository.WithdrawalRepository) *WalletService {
	return &WalletService{withdrawals: withdrawals}
}

func (s *WalletService) AvailableBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	return s.withdrawals.AvailableTotal(ctx, userID)
}

// RequestWithdrawal moves the entire available balance to requested. Partial
// withdrawals are not supported. The single status-filtered UPDATE makes a
// concurrent duplicate request claim zero rows and fail with ErrNoBalance.
func (s *WalletService) RequestWithdrawal(ctx context.Context, userID, method string) (decimal.Decimal, error) {
	total, count, err := s.withdrawals.RequestAll(ctx, userID, method, time.Now().UTC())
	if err != nil {
		return decimal.Zero, err
	}
	if count == 0 {
		return decimal.Zero, ErrNoBalance
	}
	logger.Info("withdrawal requested", "user_id", userID, "amount", total.String(), "entries", count, "method", method)
	return total, nil
}

func (s *WalletService) History(ctx context.Context, userID string) ([]*domain.Withdrawal, error) {
	return s.withdrawals.ListByUser(ctx, userID)
}
