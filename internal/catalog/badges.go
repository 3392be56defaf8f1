package catalog

import (
	"time"

	"focusflow/internal/domain"
)

// ConditionType names a badge unlock rule. Unknown or missing condition
// types unlock nothing.
type ConditionType string

const (
	CondLevel         ConditionType = "level"
	CondFocusSessions ConditionType = "focus_sessions"
	CondStreak        ConditionType = "streak"
	// CondSubscriptionTier matches the user's current tier exactly.
	CondSubscriptionTier ConditionType = "subscription_tier"
	CondTotalReferrals   ConditionType = "total_referrals"
	// CondCompletedReferrals counts completed referral records live instead
	// of reading the cached counter.
	CondCompletedReferrals ConditionType = "completed_referrals"
	CondPurchaseCount      ConditionType = "purchase_count"
	CondUniqueProducts     ConditionType = "unique_products"
	CondJoinedBefore       ConditionType = "joined_before"
)

type Condition struct {
	Type   ConditionType
	Count  int64
	Tier   domain.SubscriptionTier
	Before time.Time
}

type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Condition   Condition
	Reward      domain.Reward
}

func defaultBadges() []Badge {
	return []Badge{
		{
			ID: "rising_star", Name: "Rising Star", Icon: "⭐",
			Description: "Reach level 5",
			Condition:   Condition{Type: CondLevel, Count: 5},
			Reward:      domain.Reward{XP: 50, Themes: []string{"sunrise"}},
		},
		{
			ID: "deep_diver", Name: "Deep Diver", Icon: "🤿",
			Description: "Complete 25 focus sessions",
			Condition:   Condition{Type: CondFocusSessions, Count: 25},
			Reward:      domain.Reward{Sounds: []string{"ocean_waves"}, Powerups: []domain.PowerupGrant{{Type: "double_xp", Count: 1}}},
		},
		{
			ID: "iron_streak", Name: "Iron Streak", Icon: "🔥",
			Description: "Hold a 14-day streak",
			Condition:   Condition{Type: CondStreak, Count: 14},
			Reward:      domain.Reward{StreakProtectionDays: 3, BonusXP: 100},
		},
		{
			ID: "lifetime_legend", Name: "Lifetime Legend", Icon: "👑",
			Description: "Hold a lifetime premium subscription",
			Condition:   Condition{Type: CondSubscriptionTier, Tier: domain.TierPremiumLifetime},
			Reward:      domain.Reward{ExclusiveTheme: "midnight_gold", Title: "Lifetime Legend"},
		},
		{
			ID: "connector", Name: "Connector", Icon: "🔗",
			Description: "Refer 3 users",
			Condition:   Condition{Type: CondTotalReferrals, Count: 3},
			Reward:      domain.Reward{XP: 150},
		},
		{
			ID: "rainmaker", Name: "Rainmaker", Icon: "🌧",
			Description: "5 of your referrals completed a premium purchase",
			Condition:   Condition{Type: CondCompletedReferrals, Count: 5},
			Reward:      domain.Reward{SpecialTheme: "emerald_rain", Powerups: []domain.PowerupGrant{{Type: "streak_freeze", Count: 2}}},
		},
		{
			ID: "collector", Name: "Collector", Icon: "🛍",
			Description: "Make 5 shop purchases",
			Condition:   Condition{Type: CondPurchaseCount, Count: 5},
			Reward:      domain.Reward{Sounds: []string{"cash_register"}, BonusXP: 50},
		},
		{
			ID: "completionist", Name: "Completionist", Icon: "🧩",
			Description: "Own 3 different shop products",
			Condition:   Condition{Type: CondUniqueProducts, Count: 3},
			Reward:      domain.Reward{InstantAchievements: 1, BonusXP: 75},
		},
		{
			ID: "early_adopter", Name: "Early Adopter", Icon: "🚀",
			Description: "Joined during the launch year",
			Condition:   Condition{Type: CondJoinedBefore, Before: date(2026, time.January, 1)},
			Reward:      domain.Reward{SubscriberTheme: "founders_edition", Title: "Early Adopter"},
		},
	}
}
