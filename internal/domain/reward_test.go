package domain

import "testing"

func TestRewardTotalXP(t *testing.T) {
	r := Reward{XP: 50, BonusXP: 100}
	if got := r.TotalXP(); got != 150 {
		t.Errorf("TotalXP = %d, want 150", got)
	}
}

func TestRewardSingleThemes(t *testing.T) {
	r := Reward{SpecialTheme: "a", SubscriberTheme: "c"}
	got := r.SingleThemes()
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("SingleThemes = %v", got)
	}

	if themes := (Reward{}).SingleThemes(); len(themes) != 0 {
		t.Errorf("empty reward has themes %v", themes)
	}
}

func TestRewardEmpty(t *testing.T) {
	if !(Reward{}).Empty() {
		t.Error("zero reward should be empty")
	}
	cases := []Reward{
		{XP: 1},
		{BonusXP: 1},
		{Title: "x"},
		{Themes: []string{"t"}},
		{Sounds: []string{"s"}},
		{Powerups: []PowerupGrant{{Type: "p", Count: 1}}},
		{StreakProtectionDays: 1},
		{InstantAchievements: 1},
		{ExclusiveTheme: "e"},
	}
	for i, r := range cases {
		if r.Empty() {
			t.Errorf("case %d should not be empty", i)
		}
	}
}
