package domain

import (
	"testing"
	"time"
)

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp   int64
		want int
	}{
		{-50, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{101, 2},
		{250, 3},
		{999, 10},
		{1000, 11},
	}
	for _, tc := range cases {
		if got := LevelForXP(tc.xp); got != tc.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestActivityReward(t *testing.T) {
	free := &User{SubscriptionTier: TierFree}
	if got := free.ActivityReward(10); got != 10 {
		t.Errorf("free 10 = %d, want 10", got)
	}
	if got := free.ActivityReward(25); got != 25 {
		t.Errorf("free 25 = %d, want 25", got)
	}

	for _, tier := range []SubscriptionTier{TierPremium, TierPremiumMonthly, TierPremiumYearly, TierPremiumLifetime} {
		u := &User{SubscriptionTier: tier}
		if got := u.ActivityReward(10); got != 12 {
			t.Errorf("%s 10 = %d, want 12", tier, got)
		}
		if got := u.ActivityReward(25); got != 30 {
			t.Errorf("%s 25 = %d, want 30", tier, got)
		}
		// bonus is floored, never rounded up
		if got := u.ActivityReward(11); got != 13 {
			t.Errorf("%s 11 = %d, want 13", tier, got)
		}
	}
}

func TestPremium(t *testing.T) {
	if TierFree.Premium() {
		t.Error("free should not be premium")
	}
	if !TierPremium.Premium() {
		t.Error("legacy premium tier should be premium")
	}
	if !TierPremiumLifetime.Premium() {
		t.Error("lifetime should be premium")
	}
}

func TestSubscriptionExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	u := &User{SubscriptionTier: TierPremiumMonthly, SubscriptionExpiresAt: &past}
	if !u.SubscriptionExpired(now) {
		t.Error("past expiry should be expired")
	}

	u.SubscriptionExpiresAt = &future
	if u.SubscriptionExpired(now) {
		t.Error("future expiry should not be expired")
	}

	free := &User{SubscriptionTier: TierFree, SubscriptionExpiresAt: &past}
	if free.SubscriptionExpired(now) {
		t.Error("free tier never counts as expired")
	}

	noExpiry := &User{SubscriptionTier: TierPremiumMonthly}
	if noExpiry.SubscriptionExpired(now) {
		t.Error("nil expiry should not be expired")
	}
}
