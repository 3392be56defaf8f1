package domain

import "time"

// Inventory is the one-per-user bag of unlocked entitlements. Created lazily
// on first access. All mutations are merges: set-union for themes/sounds,
// additive for powerup counts. Only the streak protection window overwrites.
type Inventory struct {
	UserID                  string         `db:"user_id" json:"user_id"`
	Themes                  []string       `db:"themes" json:"themes"`
	Sounds                  []string       `db:"sounds" json:"sounds"`
	Powerups                map[string]int `db:"powerups" json:"powerups"`
	StreakProtectionUntil   *time.Time     `db:"streak_protection_until" json:"streak_protection_until,omitempty"`
	InstantAchievementsUsed int            `db:"instant_achievements_used" json:"instant_achievements_used"`
	CreatedAt               time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt               time.Time      `db:"updated_at" json:"updated_at"`
}

// HasTheme reports whether the theme is already unlocked.
func (inv *Inventory) HasTheme(name string) bool {
	for _, t := range inv.Themes {
		if t == name {
			return true
		}
	}
	return false
}
