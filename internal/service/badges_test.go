package service

import (
	"context"
	"testing"
	"time"

	"focusflow/internal/catalog"
	"focusflow/internal/domain"
)

// static badge conditions need no repositories, so a zero service is enough
func staticBadgeService() *BadgeService {
	return &BadgeService{}
}

func TestConditionMetStatic(t *testing.T) {
	s := staticBadgeService()
	ctx := context.Background()

	cases := []struct {
		name string
		user domain.User
		cond catalog.Condition
		want bool
	}{
		{"level reached", domain.User{Level: 5}, catalog.Condition{Type: catalog.CondLevel, Count: 5}, true},
		{"level short", domain.User{Level: 4}, catalog.Condition{Type: catalog.CondLevel, Count: 5}, false},
		{"sessions reached", domain.User{FocusSessionsCompleted: 25}, catalog.Condition{Type: catalog.CondFocusSessions, Count: 25}, true},
		{"streak short", domain.User{CurrentStreak: 13}, catalog.Condition{Type: catalog.CondStreak, Count: 14}, false},
		{"tier exact match", domain.User{SubscriptionTier: domain.TierPremiumLifetime}, catalog.Condition{Type: catalog.CondSubscriptionTier, Tier: domain.TierPremiumLifetime}, true},
		{"tier mismatch", domain.User{SubscriptionTier: domain.TierPremiumMonthly}, catalog.Condition{Type: catalog.CondSubscriptionTier, Tier: domain.TierPremiumLifetime}, false},
		{"referrals reached", domain.User{TotalReferrals: 3}, catalog.Condition{Type: catalog.CondTotalReferrals, Count: 3}, true},
		{"unknown type never unlocks", domain.User{Level: 99}, catalog.Condition{Type: catalog.ConditionType("bogus"), Count: 1}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.conditionMet(ctx, &tc.user, tc.cond)
			if err != nil {
				t.Fatalf("conditionMet: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestConditionMetJoinedBefore(t *testing.T) {
	s := staticBadgeService()
	ctx := context.Background()
	cutoff := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	cond := catalog.Condition{Type: catalog.CondJoinedBefore, Before: cutoff}

	early := &domain.User{CreatedAt: cutoff.Add(-time.Hour)}
	if got, _ := s.conditionMet(ctx, early, cond); !got {
		t.Error("account created before cutoff should qualify")
	}

	late := &domain.User{CreatedAt: cutoff.Add(time.Hour)}
	if got, _ := s.conditionMet(ctx, late, cond); got {
		t.Error("account created after cutoff should not qualify")
	}
}
