package service

import (
	"context"
	"errors"

	"focusflow/internal/catalog"
	"focusflow/internal/domain"
	"focusflow/internal/logger"
	"focusflow/internal/repository"
)

// CommissionOutcome tells the payment path what happened on the referral
// side without ever failing the payment itself.
type CommissionOutcome string

const (
	CommissionApplied           CommissionOutcome = "applied"
	CommissionSkippedNoReferral CommissionOutcome = "skipped_no_referral"
	CommissionDuplicate         CommissionOutcome = "duplicate"
	CommissionFailed            CommissionOutcome = "failed"
)

// CommissionService pays flat referral commissions on completed subscription
// sales. It is a side-channel of payment completion: it logs and reports its
// outcome but never propagates an error, so a commission problem can never
// undo a paid subscription.
type CommissionService struct {
	users       *repository.UserRepository
	referrals   *repository.ReferralRepository
	withdrawals *repository.WithdrawalRepository
	progression *ProgressionService
	badges      *BadgeService
}

func NewCommissionService(
	users *repository.UserRepository,
	referrals *repository.ReferralRepository,
	withdrawals *repository.WithdrawalRepository,
	progression *ProgressionService,
	badges *BadgeService,
) *CommissionService {
	return &CommissionService{
		users:       users,
		referrals:   referrals,
		withdrawals: withdrawals,
		progression: progression,
		badges:      badges,
	}
}

// Process pays a flat commission for one completed sale of pkg. The trigger
// is the referral code the transaction recorded at checkout time, not the
// buyer's signup attribution: no code, no commission, and a code always pays
// its owner. The referrals.payment_session_id unique key is the exactly-once
// guard: a retried payment confirmation reaches the same insert, claims zero
// rows and stops before any counter or ledger write.
func (s *CommissionService) Process(ctx context.Context, buyer *domain.User, pkg *catalog.Package, sessionID, referralCode string) CommissionOutcome {
	outcome := s.process(ctx, buyer, pkg, sessionID, referralCode)
	CommissionsProcessed.WithLabelValues(string(outcome)).Inc()
	return outcome
}

func (s *CommissionService) process(ctx context.Context, buyer *domain.User, pkg *catalog.Package, sessionID, referralCode string) CommissionOutcome {
	if referralCode == "" {
		return CommissionSkippedNoReferral
	}

	referrer, err := s.users.GetByReferralCode(ctx, referralCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// stale or mistyped code on the checkout; nothing to pay
			logger.Warn("referral code unknown", "referral_code", referralCode, "session_id", sessionID)
			return CommissionSkippedNoReferral
		}
		logger.Error("commission referrer lookup failed", "referral_code", referralCode, "err", err)
		return CommissionFailed
	}

	ref := &domain.Referral{
		ReferrerID:       referrer.ID,
		ReferredID:       buyer.ID,
		PaymentSessionID: sessionID,
		PackageID:        pkg.ID,
		Commission:       pkg.Commission,
	}
	inserted, err := s.referrals.InsertReferral(ctx, ref)
	if err != nil {
		logger.Error("referral insert failed", "session_id", sessionID, "err", err)
		return CommissionFailed
	}
	if !inserted {
		return CommissionDuplicate
	}

	// Past this point the sale is claimed. Each remaining write is attempted
	// independently; a partial failure is logged loudly rather than rolled
	// back, because the referral row already marks the session as paid out.
	commission := &domain.Commission{
		ReferralID:       ref.ID,
		ReferrerID:       referrer.ID,
		PaymentSessionID: sessionID,
		Amount:           pkg.Commission,
		Status:           domain.CommissionPaid,
	}
	if err := s.referrals.InsertCommission(ctx, commission); err != nil {
		logger.Error("commission record failed", "referral_id", ref.ID, "err", err)
	}
	if err := s.users.CreditReferral(ctx, referrer.ID, pkg.Commission); err != nil {
		logger.Error("referral counter credit failed", "referrer_id", referrer.ID, "err", err)
	}
	if err := s.withdrawals.CreateAvailable(ctx, referrer.ID, pkg.Commission); err != nil {
		logger.Error("withdrawal credit failed", "referrer_id", referrer.ID, "err", err)
	}

	if _, err := s.progression.EvaluateAchievements(ctx, referrer.ID); err != nil {
		logger.Error("referrer achievement evaluation failed", "referrer_id", referrer.ID, "err", err)
	}
	if _, err := s.badges.Evaluate(ctx, referrer.ID); err != nil {
		logger.Error("referrer badge evaluation failed", "referrer_id", referrer.ID, "err", err)
	}

	logger.Info("commission paid",
		"referrer_id", referrer.ID, "referred_id", buyer.ID,
		"package_id", pkg.ID, "amount", pkg.Commission.String(), "session_id", sessionID)
	return CommissionApplied
}
