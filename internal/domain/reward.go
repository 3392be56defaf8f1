package domain

// PowerupGrant adds count uses of a powerup type to the inventory.
type PowerupGrant struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Reward is a heterogeneous bag of optional reward keys. Any subset may be
// set; every key is applied independently. XP and BonusXP are merged into a
// single balance update so the level is recomputed once per application.
type Reward struct {
	XP                   int            `json:"xp,omitempty"`
	StreakProtectionDays int            `json:"streak_protection_days,omitempty"`
	Themes               []string       `json:"themes,omitempty"`
	Sounds               []string       `json:"sounds,omitempty"`
	Powerups             []PowerupGrant `json:"powerups,omitempty"`
	InstantAchievements  int            `json:"instant_achievements,omitempty"`
	BonusXP              int            `json:"bonus_xp,omitempty"`
	SpecialTheme         string         `json:"special_theme,omitempty"`
	ExclusiveTheme       string         `json:"exclusive_theme,omitempty"`
	SubscriberTheme      string         `json:"subscriber_theme,omitempty"`
	Title                string         `json:"title,omitempty"`
}

// TotalXP is the combined XP delta of the payload.
func (r Reward) TotalXP() int {
	return r.XP + r.BonusXP
}

// SingleThemes returns the single-theme variant keys that are present.
func (r Reward) SingleThemes() []string {
	var out []string
	for _, t := range []string{r.SpecialTheme, r.ExclusiveTheme, r.SubscriberTheme} {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// TouchesInventory reports whether applying the payload mutates the
// inventory document (as opposed to only the user record).
func (r Reward) TouchesInventory() bool {
	return r.StreakProtectionDays > 0 || len(r.Themes) > 0 || len(r.Sounds) > 0 ||
		len(r.Powerups) > 0 || r.InstantAchievements > 0 || len(r.SingleThemes()) > 0
}

// Empty reports whether the payload has no effect at all.
func (r Reward) Empty() bool {
	return r.TotalXP() == 0 && r.Title == "" && !r.TouchesInventory()
}
