package catalog

import (
	"focusflow/internal/domain"

	"github.com/shopspring/decimal"
)

// Product is a one-off in-app purchase whose reward payload is applied to
// the buyer's inventory on completion.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Reward      domain.Reward   `json:"reward"`
}

func defaultProducts() []Product {
	return []Product{
		{
			ID: "theme_pack_nature", Name: "Nature Theme Pack",
			Description: "Forest, ocean and mountain themes",
			Amount:      money("2.99"), Currency: "usd",
			Reward:      domain.Reward{Themes: []string{"forest", "ocean", "mountain"}},
		},
		{
			ID: "sound_pack_lofi", Name: "Lo-Fi Sound Pack",
			Description: "Four lo-fi focus soundscapes",
			Amount:      money("1.99"), Currency: "usd",
			Reward:      domain.Reward{Sounds: []string{"lofi_rain", "lofi_cafe", "lofi_train", "lofi_night"}},
		},
		{
			ID: "powerup_bundle", Name: "Powerup Bundle",
			Description: "3 double-XP boosts and 2 streak freezes",
			Amount:      money("3.99"), Currency: "usd",
			Reward: domain.Reward{Powerups: []domain.PowerupGrant{
				{Type: "double_xp", Count: 3},
				{Type: "streak_freeze", Count: 2},
			}},
		},
		{
			ID: "streak_shield_week", Name: "Streak Shield",
			Description: "Protect your streak for 7 days",
			Amount:      money("0.99"), Currency: "usd",
			Reward:      domain.Reward{StreakProtectionDays: 7},
		},
		{
			ID: "achievement_boost", Name: "Achievement Boost",
			Description: "Instantly consume 3 achievement grants plus bonus XP",
			Amount:      money("4.99"), Currency: "usd",
			Reward:      domain.Reward{InstantAchievements: 3, BonusXP: 150},
		},
	}
}
