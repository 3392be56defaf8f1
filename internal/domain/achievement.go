package domain

import "time"

// Achievement is an immutable fact: the user satisfied a condition at a point
// in time, worth a fixed XP reward. Title and description are snapshots taken
// at award time and never re-derived. (user_id, achievement_type) is unique;
// that uniqueness is the only double-award guard.
type Achievement struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	AchievementType string    `db:"achievement_type" json:"achievement_type"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	XPReward        int       `db:"xp_reward" json:"xp_reward"`
	UnlockedAt      time.Time `db:"unlocked_at" json:"unlocked_at"`
}

// UserBadge records a badge unlock. Same idempotency model as Achievement,
// keyed on (user_id, badge_id).
type UserBadge struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	BadgeID     string    `db:"badge_id" json:"badge_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Icon        string    `db:"icon" json:"icon"`
	UnlockedAt  time.Time `db:"unlocked_at" json:"unlocked_at"`
}
