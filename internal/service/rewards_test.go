package service

import (
	"testing"
	"time"

	"focusflow/internal/domain"
)

func emptyInventory() *domain.Inventory {
	return &domain.Inventory{
		Themes:   []string{},
		Sounds:   []string{},
		Powerups: map[string]int{},
	}
}

func TestMergeInventoryThemesUnion(t *testing.T) {
	inv := emptyInventory()
	inv.Themes = []string{"forest"}
	now := time.Now()

	mergeInventory(inv, domain.Reward{Themes: []string{"forest", "ocean"}}, now)
	if len(inv.Themes) != 2 {
		t.Fatalf("themes = %v, want [forest ocean]", inv.Themes)
	}

	// re-applying the same payload changes nothing
	mergeInventory(inv, domain.Reward{Themes: []string{"forest", "ocean"}}, now)
	if len(inv.Themes) != 2 {
		t.Errorf("themes after re-apply = %v", inv.Themes)
	}
}

func TestMergeInventorySingleThemeVariants(t *testing.T) {
	inv := emptyInventory()
	now := time.Now()

	mergeInventory(inv, domain.Reward{
		SpecialTheme:    "emerald_rain",
		ExclusiveTheme:  "midnight_gold",
		SubscriberTheme: "founders_edition",
	}, now)

	if len(inv.Themes) != 3 {
		t.Fatalf("themes = %v, want 3 entries", inv.Themes)
	}
	if !inv.HasTheme("midnight_gold") {
		t.Error("exclusive theme missing")
	}
}

func TestMergeInventoryPowerupsAdditive(t *testing.T) {
	inv := emptyInventory()
	inv.Powerups["double_xp"] = 2
	now := time.Now()

	mergeInventory(inv, domain.Reward{Powerups: []domain.PowerupGrant{
		{Type: "double_xp", Count: 3},
		{Type: "streak_freeze", Count: 1},
	}}, now)

	if inv.Powerups["double_xp"] != 5 {
		t.Errorf("double_xp = %d, want 5", inv.Powerups["double_xp"])
	}
	if inv.Powerups["streak_freeze"] != 1 {
		t.Errorf("streak_freeze = %d, want 1", inv.Powerups["streak_freeze"])
	}
}

func TestMergeInventoryNilPowerupMap(t *testing.T) {
	inv := &domain.Inventory{}
	now := time.Now()

	mergeInventory(inv, domain.Reward{Powerups: []domain.PowerupGrant{{Type: "double_xp", Count: 1}}}, now)
	if inv.Powerups["double_xp"] != 1 {
		t.Errorf("double_xp = %d, want 1", inv.Powerups["double_xp"])
	}
}

func TestMergeInventoryStreakProtectionOverwrites(t *testing.T) {
	inv := emptyInventory()
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	mergeInventory(inv, domain.Reward{StreakProtectionDays: 3}, now)
	first := *inv.StreakProtectionUntil
	if want := now.AddDate(0, 0, 3); !first.Equal(want) {
		t.Fatalf("protection until %v, want %v", first, want)
	}

	// a later, shorter grant overwrites rather than extends
	later := now.Add(time.Hour)
	mergeInventory(inv, domain.Reward{StreakProtectionDays: 1}, later)
	if want := later.AddDate(0, 0, 1); !inv.StreakProtectionUntil.Equal(want) {
		t.Errorf("protection until %v, want %v", inv.StreakProtectionUntil, want)
	}
}

func TestMergeInventoryInstantAchievementsAccumulate(t *testing.T) {
	inv := emptyInventory()
	now := time.Now()

	mergeInventory(inv, domain.Reward{InstantAchievements: 3}, now)
	mergeInventory(inv, domain.Reward{InstantAchievements: 1}, now)
	if inv.InstantAchievementsUsed != 4 {
		t.Errorf("instant achievements = %d, want 4", inv.InstantAchievementsUsed)
	}
}
