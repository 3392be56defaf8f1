package service

// Notifier delivers progression events to whoever is listening for the user
// (the websocket hub in production). Delivery is best-effort; services never
// block or fail because nobody is connected.
type Notifier interface {
	Publish(userID string, event any)
}

type nopNotifier struct{}

func (nopNotifier) Publish(string, any) {}

// NopNotifier is used in tests and tools that run without a hub.
func NopNotifier() Notifier { return nopNotifier{} }

// Event payloads pushed over the hub.

type XPGainedEvent struct {
	Type    string `json:"type"`
	XP      int    `json:"xp"`
	TotalXP int64  `json:"total_xp"`
	Level   int    `json:"level"`
}

type LevelUpEvent struct {
	Type     string `json:"type"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
}

type AchievementUnlockedEvent struct {
	Type        string `json:"type"`
	Achievement string `json:"achievement_type"`
	Title       string `json:"title"`
	XPReward    int    `json:"xp_reward"`
}

type BadgeUnlockedEvent struct {
	Type    string `json:"type"`
	BadgeID string `json:"badge_id"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
}
