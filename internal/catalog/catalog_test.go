package catalog

import (
	"testing"

	"focusflow/internal/domain"
)

func TestDefaultCatalogIntegrity(t *testing.T) {
	cat := Default()

	types := make(map[string]bool)
	for _, rule := range cat.Achievements {
		if rule.Type == "" || rule.Title == "" || rule.XP <= 0 {
			t.Errorf("incomplete achievement rule %+v", rule)
		}
		if types[rule.Type] {
			t.Errorf("duplicate achievement type %s", rule.Type)
		}
		types[rule.Type] = true
	}

	ids := make(map[string]bool)
	for _, b := range cat.Badges {
		if b.ID == "" || b.Name == "" {
			t.Errorf("incomplete badge %+v", b)
		}
		if ids[b.ID] {
			t.Errorf("duplicate badge id %s", b.ID)
		}
		ids[b.ID] = true
		if b.Condition.Type == "" {
			t.Errorf("badge %s has no condition", b.ID)
		}
	}

	for _, p := range cat.Packages {
		if !p.Amount.IsPositive() || !p.Commission.IsPositive() {
			t.Errorf("package %s has non-positive money", p.ID)
		}
		if p.DurationMonths <= 0 {
			t.Errorf("package %s has no duration", p.ID)
		}
		if !p.Tier.Premium() {
			t.Errorf("package %s grants non-premium tier %s", p.ID, p.Tier)
		}
	}

	for _, pr := range cat.Products {
		if pr.Reward.Empty() {
			t.Errorf("product %s has empty reward", pr.ID)
		}
	}
}

func TestCatalogLookups(t *testing.T) {
	cat := Default()

	if cat.Package("monthly_premium") == nil {
		t.Error("monthly_premium missing")
	}
	if cat.Package("nope") != nil {
		t.Error("unknown package should be nil")
	}
	if cat.Product("theme_pack_nature") == nil {
		t.Error("theme_pack_nature missing")
	}
	if cat.Product("nope") != nil {
		t.Error("unknown product should be nil")
	}
}

func TestAchievementRuleSatisfied(t *testing.T) {
	rule := AchievementRule{Type: "tasks_10", Counter: CounterTasks, Threshold: 10}

	u := &domain.User{TasksCompleted: 9}
	if rule.Satisfied(u) {
		t.Error("9 tasks should not satisfy threshold 10")
	}
	u.TasksCompleted = 10
	if !rule.Satisfied(u) {
		t.Error("10 tasks should satisfy threshold 10")
	}

	premiumRule := AchievementRule{Type: "premium_subscriber", Counter: CounterPremium, Threshold: 1}
	if premiumRule.Satisfied(&domain.User{SubscriptionTier: domain.TierFree}) {
		t.Error("free tier should not satisfy premium rule")
	}
	if !premiumRule.Satisfied(&domain.User{SubscriptionTier: domain.TierPremiumYearly}) {
		t.Error("yearly tier should satisfy premium rule")
	}

	unknown := AchievementRule{Type: "x", Counter: CounterKind("bogus"), Threshold: 1}
	if unknown.Satisfied(&domain.User{TasksCompleted: 100}) {
		t.Error("unknown counter must never satisfy")
	}
}

func TestResolveTitle(t *testing.T) {
	rule := AchievementRule{Title: "Premium Supporter", LegacyTitle: "Legacy Premium Supporter"}

	if got := rule.ResolveTitle(domain.TierPremium); got != "Legacy Premium Supporter" {
		t.Errorf("legacy tier title = %q", got)
	}
	if got := rule.ResolveTitle(domain.TierPremiumMonthly); got != "Premium Supporter" {
		t.Errorf("monthly tier title = %q", got)
	}

	plain := AchievementRule{Title: "Task Warrior"}
	if got := plain.ResolveTitle(domain.TierPremium); got != "Task Warrior" {
		t.Errorf("rule without legacy wording = %q", got)
	}
}
