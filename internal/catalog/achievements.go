package catalog

import "focusflow/internal/domain"

// CounterKind names the user counter an achievement rule reads.
type CounterKind string

const (
	CounterTasks     CounterKind = "tasks_completed"
	CounterSessions  CounterKind = "focus_sessions_completed"
	CounterStreak    CounterKind = "current_streak"
	CounterReferrals CounterKind = "total_referrals"
	// CounterPremium is satisfied while the user holds any premium tier.
	CounterPremium CounterKind = "premium"
)

// AchievementRule maps a counter threshold to a one-time award. Title and
// description become immutable snapshots on the achievement record.
type AchievementRule struct {
	Type        string
	Counter     CounterKind
	Threshold   int64
	Title       string
	Description string
	// LegacyTitle, when set, replaces Title at award time for users on the
	// legacy "premium" tier. The achievement_type stays the same, so only
	// one of the two wordings is ever awarded per user.
	LegacyTitle string
	XP          int
}

// CounterValue reads the rule's counter from the user. Unknown counters
// return 0 and therefore never satisfy a threshold.
func (r AchievementRule) CounterValue(u *domain.User) int64 {
	switch r.Counter {
	case CounterTasks:
		return u.TasksCompleted
	case CounterSessions:
		return u.FocusSessionsCompleted
	case CounterStreak:
		return int64(u.CurrentStreak)
	case CounterReferrals:
		return u.TotalReferrals
	case CounterPremium:
		if u.SubscriptionTier.Premium() {
			return 1
		}
		return 0
	}
	return 0
}

// Satisfied reports whether the user's counter has reached the threshold.
func (r AchievementRule) Satisfied(u *domain.User) bool {
	return r.CounterValue(u) >= r.Threshold
}

// ResolveTitle picks the wording for the award at unlock time.
func (r AchievementRule) ResolveTitle(tier domain.SubscriptionTier) string {
	if r.LegacyTitle != "" && tier == domain.TierPremium {
		return r.LegacyTitle
	}
	return r.Title
}

func defaultAchievements() []AchievementRule {
	return []AchievementRule{
		{Type: "tasks_10", Counter: CounterTasks, Threshold: 10, Title: "Task Warrior", Description: "Complete 10 tasks", XP: 50},
		{Type: "tasks_50", Counter: CounterTasks, Threshold: 50, Title: "Task Master", Description: "Complete 50 tasks", XP: 100},
		{Type: "tasks_100", Counter: CounterTasks, Threshold: 100, Title: "Task Champion", Description: "Complete 100 tasks", XP: 200},
		{Type: "tasks_500", Counter: CounterTasks, Threshold: 500, Title: "Task Legend", Description: "Complete 500 tasks", XP: 500},
		{Type: "tasks_1000", Counter: CounterTasks, Threshold: 1000, Title: "Task Immortal", Description: "Complete 1000 tasks", XP: 1000},
		{Type: "focus_10", Counter: CounterSessions, Threshold: 10, Title: "Focus Apprentice", Description: "Complete 10 focus sessions", XP: 75},
		{Type: "focus_50", Counter: CounterSessions, Threshold: 50, Title: "Focus Master", Description: "Complete 50 focus sessions", XP: 150},
		{Type: "streak_7", Counter: CounterStreak, Threshold: 7, Title: "Week Warrior", Description: "Maintain a 7-day streak", XP: 100},
		{
			Type: "premium_subscriber", Counter: CounterPremium, Threshold: 1,
			Title: "Premium Supporter", LegacyTitle: "Legacy Premium Supporter",
			Description: "Support FocusFlow with a premium subscription", XP: 200,
		},
		{Type: "referrals_1", Counter: CounterReferrals, Threshold: 1, Title: "First Referral", Description: "Refer your first premium subscriber", XP: 100},
		{Type: "referrals_5", Counter: CounterReferrals, Threshold: 5, Title: "Referral Pro", Description: "Refer 5 premium subscribers", XP: 250},
		{Type: "referrals_10", Counter: CounterReferrals, Threshold: 10, Title: "Referral Champion", Description: "Refer 10 premium subscribers", XP: 500},
	}
}
