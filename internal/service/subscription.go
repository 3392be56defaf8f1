package service

import (
	"context"
	"errors"
	"time"

	"focusflow/internal/catalog"
	"focusflow/internal/domain"
	"focusflow/internal/logger"
	"focusflow/internal/repository"
)

var (
	ErrUnknownPackage = errors.New("unknown package")
	ErrPaymentPending = errors.New("payment not completed")
)

// SubscriptionService runs the checkout/activation lifecycle of premium
// subscriptions and the lazy expiry of lapsed ones.
type SubscriptionService struct {
	users       *repository.UserRepository
	payments    *repository.PaymentRepository
	catalog     *catalog.Catalog
	provider    PaymentProvider
	commissions *CommissionService
	progression *ProgressionService
	badges      *BadgeService
}

func NewSubscriptionService(
	users *repository.UserRepository,
	payments *repository.PaymentRepository,
	cat *catalog.Catalog,
	provider PaymentProvider,
	commissions *CommissionService,
	progression *ProgressionService,
	badges *BadgeService,
) *SubscriptionService {
	return &SubscriptionService{
		users:       users,
		payments:    payments,
		catalog:     cat,
		provider:    provider,
		commissions: commissions,
		progression: progression,
		badges:      badges,
	}
}

// Checkout opens a provider session for the package and records the pending
// transaction. referralCode is carried on the transaction so completion can
// run the commission side-channel without trusting the client again.
func (s *SubscriptionService) Checkout(ctx context.Context, userID, packageID, referralCode string) (*domain.PaymentTransaction, string, error) {
	pkg := s.catalog.Package(packageID)
	if pkg == nil {
		return nil, "", ErrUnknownPackage
	}
	session, err := s.provider.CreateCheckout(ctx, CheckoutRequest{
		UserID:      userID,
		Reference:   pkg.ID,
		Description: pkg.Name,
		Amount:      pkg.Amount,
		Currency:    pkg.Currency,
	})
	if err != nil {
		return nil, "", err
	}
	txn := &domain.PaymentTransaction{
		SessionID:    session.SessionID,
		UserID:       userID,
		PackageID:    pkg.ID,
		Amount:       pkg.Amount,
		Currency:     pkg.Currency,
		ReferralCode: referralCode,
	}
	if err := s.payments.CreateTransaction(ctx, txn); err != nil {
		return nil, "", err
	}
	return txn, session.CheckoutURL, nil
}

// ConfirmPayment polls the provider and, on the first confirmation, fulfills
// the purchase. The conditional pending→completed update on the transaction
// row guarantees fulfillment happens once no matter how many times the
// status endpoint is hit.
func (s *SubscriptionService) ConfirmPayment(ctx context.Context, sessionID string) (*domain.PaymentTransaction, error) {
	txn, err := s.payments.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	if txn.Status == domain.PaymentCompleted {
		return txn, nil
	}

	status, err := s.provider.CheckStatus(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch status {
	case domain.PaymentCompleted:
	case domain.PaymentFailed, domain.PaymentExpired:
		if err := s.payments.MarkStatus(ctx, sessionID, status); err != nil {
			return nil, err
		}
		txn.Status = status
		return txn, nil
	default:
		return txn, ErrPaymentPending
	}

	now := time.Now().UTC()
	first, err := s.payments.MarkCompleted(ctx, sessionID, now)
	if err != nil {
		return nil, err
	}
	if first {
		if err := s.Activate(ctx, txn, now); err != nil {
			return nil, err
		}
	}
	return s.payments.GetBySessionID(ctx, sessionID)
}

// Activate applies a paid package: tier, expiry and badge marker on the user,
// the premium achievement, badge evaluation, then the commission side-channel
// keyed on the referral code the transaction recorded at checkout. Lifetime
// packages get a far-future expiry so the single expiry check covers every
// tier.
func (s *SubscriptionService) Activate(ctx context.Context, txn *domain.PaymentTransaction, now time.Time) error {
	pkg := s.catalog.Package(txn.PackageID)
	if pkg == nil {
		return ErrUnknownPackage
	}
	expiresAt := now.AddDate(0, pkg.DurationMonths, 0)
	if err := s.users.SetSubscription(ctx, txn.UserID, pkg.Tier, expiresAt, pkg.PremiumBadge); err != nil {
		return err
	}

	if _, err := s.progression.EvaluateAchievements(ctx, txn.UserID); err != nil {
		logger.Error("premium achievement evaluation failed", "user_id", txn.UserID, "err", err)
	}
	if _, err := s.badges.Evaluate(ctx, txn.UserID); err != nil {
		logger.Error("subscriber badge evaluation failed", "user_id", txn.UserID, "err", err)
	}

	buyer, err := s.users.GetByID(ctx, txn.UserID)
	if err != nil {
		return err
	}
	s.commissions.Process(ctx, buyer, pkg, txn.SessionID, txn.ReferralCode)

	logger.Info("subscription activated",
		"user_id", txn.UserID, "package_id", pkg.ID, "tier", pkg.Tier, "expires_at", expiresAt)
	return nil
}

// LoadUser is the canonical user read: lapsed subscriptions are downgraded
// in place before the row is returned, and a drifted stored level is
// repaired against the derived value.
func (s *SubscriptionService) LoadUser(ctx context.Context, userID string) (*domain.User, error) {
	now := time.Now().UTC()
	if err := s.users.DowngradeIfExpired(ctx, userID, now); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if want := domain.LevelForXP(user.TotalXP); want != user.Level {
		if err := s.users.FixLevel(ctx, userID, want); err != nil {
			return nil, err
		}
		user.Level = want
	}
	return user, nil
}
