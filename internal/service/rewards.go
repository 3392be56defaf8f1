package service

import (
	"context"
	"time"

	"focusflow/internal/domain"
	"focusflow/internal/repository"
)

// RewardService applies heterogeneous reward payloads. Each payload key is
// applied independently: the XP keys hit the user balance, the title key
// hits the user record, everything else merges into the inventory document
// under a row lock.
type RewardService struct {
	users       *repository.UserRepository
	inventories *repository.InventoryRepository
}

func NewRewardService(users *repository.UserRepository, inventories *repository.InventoryRepository) *RewardService {
	return &RewardService{users: users, inventories: inventories}
}

func (s *RewardService) Apply(ctx context.Context, userID string, r domain.Reward) error {
	if r.Empty() {
		return nil
	}
	// XP and BonusXP collapse into one balance update so the level is
	// recomputed once.
	if xp := r.TotalXP(); xp > 0 {
		if err := s.users.AddXP(ctx, userID, xp); err != nil {
			return err
		}
	}
	if r.Title != "" {
		if err := s.users.SetTitle(ctx, userID, r.Title); err != nil {
			return err
		}
	}
	if r.TouchesInventory() {
		now := time.Now().UTC()
		if _, err := s.inventories.Apply(ctx, userID, func(inv *domain.Inventory) {
			mergeInventory(inv, r, now)
		}); err != nil {
			return err
		}
	}
	return nil
}

// mergeInventory folds a reward payload into an inventory in place.
// Themes and sounds are set-unions, powerup counts are additive, the streak
// protection window overwrites, instant achievement grants accumulate as a
// consumed counter.
func mergeInventory(inv *domain.Inventory, r domain.Reward, now time.Time) {
	for _, t := range r.Themes {
		inv.Themes = appendUnique(inv.Themes, t)
	}
	for _, t := range r.SingleThemes() {
		inv.Themes = appendUnique(inv.Themes, t)
	}
	for _, snd := range r.Sounds {
		inv.Sounds = appendUnique(inv.Sounds, snd)
	}
	if len(r.Powerups) > 0 {
		if inv.Powerups == nil {
			inv.Powerups = map[string]int{}
		}
		for _, p := range r.Powerups {
			inv.Powerups[p.Type] += p.Count
		}
	}
	if r.StreakProtectionDays > 0 {
		until := now.AddDate(0, 0, r.StreakProtectionDays)
		inv.StreakProtectionUntil = &until
	}
	inv.InstantAchievementsUsed += r.InstantAchievements
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
