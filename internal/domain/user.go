package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

type SubscriptionTier string

const (
	TierFree SubscriptionTier = "free"
	// TierPremium is the legacy tier kept for grandfathered subscribers.
	TierPremium         SubscriptionTier = "premium"
	TierPremiumMonthly  SubscriptionTier = "premium_monthly"
	TierPremiumYearly   SubscriptionTier = "premium_yearly"
	TierPremiumLifetime SubscriptionTier = "premium_lifetime"
)

// Premium reports whether the tier carries premium entitlements.
func (t SubscriptionTier) Premium() bool {
	return t != "" && t != TierFree
}

// XPPerLevel is the amount of XP needed to advance one level.
const XPPerLevel = 100

// PremiumXPBonus is the multiplier applied to activity XP for premium users.
const PremiumXPBonus = 1.2

type User struct {
	ID                     string           `db:"id" json:"id"`
	Name                   string           `db:"name" json:"name"`
	Email                  string           `db:"email" json:"email"`
	SubscriptionTier       SubscriptionTier `db:"subscription_tier" json:"subscription_tier"`
	SubscriptionExpiresAt  *time.Time       `db:"subscription_expires_at" json:"subscription_expires_at,omitempty"`
	PremiumBadge           string           `db:"premium_badge" json:"premium_badge,omitempty"`
	Title                  string           `db:"title" json:"title,omitempty"`
	TotalXP                int64            `db:"total_xp" json:"total_xp"`
	Level                  int              `db:"level" json:"level"`
	TasksCompleted         int64            `db:"tasks_completed" json:"tasks_completed"`
	FocusSessionsCompleted int64            `db:"focus_sessions_completed" json:"focus_sessions_completed"`
	CurrentStreak          int              `db:"current_streak" json:"current_streak"`
	BestStreak             int              `db:"best_streak" json:"best_streak"`
	LastActivityDate       *time.Time       `db:"last_activity_date" json:"last_activity_date,omitempty"`
	ReferralCode           string           `db:"referral_code" json:"referral_code"`
	ReferredBy             *string          `db:"referred_by" json:"referred_by,omitempty"`
	TotalReferrals         int64            `db:"total_referrals" json:"total_referrals"`
	TotalCommissionEarned  decimal.Decimal  `db:"total_commission_earned" json:"total_commission_earned"`
	CreatedAt              time.Time        `db:"created_at" json:"created_at"`
}

// LevelForXP derives the level from total XP. Level is never stored as
// independent truth; it must always agree with this function.
func LevelForXP(xp int64) int {
	if xp < 0 {
		return 1
	}
	return int(xp/XPPerLevel) + 1
}

// ActivityReward returns the XP credited for an activity with the given base
// reward, applying the premium bonus for the user's current tier. Floored to
// an integer before crediting.
func (u *User) ActivityReward(baseXP int) int {
	if u.SubscriptionTier.Premium() {
		return int(math.Floor(float64(baseXP) * PremiumXPBonus))
	}
	return baseXP
}

// SubscriptionExpired reports whether a premium subscription has lapsed.
func (u *User) SubscriptionExpired(now time.Time) bool {
	if !u.SubscriptionTier.Premium() || u.SubscriptionExpiresAt == nil {
		return false
	}
	return u.SubscriptionExpiresAt.Before(now)
}
