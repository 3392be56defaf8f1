package service

import (
	"context"
	"errors"

	"focusflow/internal/catalog"
	"focusflow/internal/domain"
	"focusflow/internal/logger"
	"focusflow/internal/repository"
)

// BadgeService evaluates badge conditions and applies badge rewards.
type BadgeService struct {
	users     *repository.UserRepository
	badges    *repository.BadgeRepository
	referrals *repository.ReferralRepository
	payments  *repository.PaymentRepository
	catalog   *catalog.Catalog
	rewards   *RewardService
	notifier  Notifier
}

func NewBadgeService(
	users *repository.UserRepository,
	badges *repository.BadgeRepository,
	referrals *repository.ReferralRepository,
	payments *repository.PaymentRepository,
	cat *catalog.Catalog,
	rewards *RewardService,
	notifier Notifier,
) *BadgeService {
	return &BadgeService{
		users:     users,
		badges:    badges,
		referrals: referrals,
		payments:  payments,
		catalog:   cat,
		rewards:   rewards,
		notifier:  notifier,
	}
}

// Evaluate awards every badge whose condition the user now meets. Idempotent
// through the (user_id, badge_id) unique key. A badge's reward payload is
// applied best-effort after the unlock is persisted: if the payload fails the
// badge stays unlocked and the failure is logged.
func (s *BadgeService) Evaluate(ctx context.Context, userID string) ([]*domain.UserBadge, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var unlocked []*domain.UserBadge
	for _, badge := range s.catalog.Badges {
		met, err := s.conditionMet(ctx, user, badge.Condition)
		if err != nil {
			return unlocked, err
		}
		if !met {
			continue
		}
		ub := &domain.UserBadge{
			UserID:      userID,
			BadgeID:     badge.ID,
			Name:        badge.Name,
			Description: badge.Description,
			Icon:        badge.Icon,
		}
		inserted, err := s.badges.Award(ctx, ub)
		if err != nil {
			return unlocked, err
		}
		if !inserted {
			continue
		}
		BadgesUnlocked.Inc()
		unlocked = append(unlocked, ub)
		s.notifier.Publish(userID, BadgeUnlockedEvent{
			Type: "badge_unlocked", BadgeID: ub.BadgeID, Name: ub.Name, Icon: ub.Icon,
		})
		if !badge.Reward.Empty() {
			if err := s.rewards.Apply(ctx, userID, badge.Reward); err != nil {
				logger.Error("badge reward failed", "user_id", userID, "badge_id", badge.ID, "err", err)
			}
		}
	}
	return unlocked, nil
}

func (s *BadgeService) conditionMet(ctx context.Context, u *domain.User, c catalog.Condition) (bool, error) {
	switch c.Type {
	case catalog.CondLevel:
		return int64(u.Level) >= c.Count, nil
	case catalog.CondFocusSessions:
		return u.FocusSessionsCompleted >= c.Count, nil
	case catalog.CondStreak:
		return int64(u.CurrentStreak) >= c.Count, nil
	case catalog.CondSubscriptionTier:
		return u.SubscriptionTier == c.Tier, nil
	case catalog.CondTotalReferrals:
		return u.TotalReferrals >= c.Count, nil
	case catalog.CondCompletedReferrals:
		n, err := s.referrals.CountCompleted(ctx, u.ID)
		if err != nil {
			return false, err
		}
		return n >= c.Count, nil
	case catalog.CondPurchaseCount:
		n, err := s.payments.CountPurchases(ctx, u.ID)
		if err != nil {
			return false, err
		}
		return n >= c.Count, nil
	case catalog.CondUniqueProducts:
		n, err := s.payments.CountDistinctProducts(ctx, u.ID)
		if err != nil {
			return false, err
		}
		return n >= c.Count, nil
	case catalog.CondJoinedBefore:
		return u.CreatedAt.Before(c.Before), nil
	}
	// unknown condition types unlock nothing
	return false, nil
}
