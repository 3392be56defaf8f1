package catalog

import (
	"focusflow/internal/domain"

	"github.com/shopspring/decimal"
)

// Package is a purchasable subscription tier. Amounts and commissions are
// fixed server-side; the checkout layer must never accept them from clients.
// Commission is a flat per-sale rate, not a percentage.
type Package struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	Tier           domain.SubscriptionTier `json:"tier"`
	Amount         decimal.Decimal         `json:"amount"`
	Currency       string                  `json:"currency"`
	DurationMonths int                     `json:"duration_months"`
	Commission     decimal.Decimal         `json:"commission"`
	PremiumBadge   string                  `json:"premium_badge,omitempty"`
}

// LifetimeDuration stands in for "never expires": lifetime subscriptions get
// a far-future expiry instead of a null one, so the single expiry check
// covers every tier.
const LifetimeDurationMonths = 1200

func defaultPackages() []Package {
	return []Package{
		{
			ID: "monthly_premium", Name: "Premium Monthly",
			Description:    "All premium features, billed monthly",
			Tier:           domain.TierPremiumMonthly,
			Amount:         money("9.99"), Currency: "usd",
			DurationMonths: 1,
			Commission:     money("5.00"),
		},
		{
			ID: "yearly_premium", Name: "Premium Yearly",
			Description:    "All premium features, billed yearly",
			Tier:           domain.TierPremiumYearly,
			Amount:         money("99.99"), Currency: "usd",
			DurationMonths: 12,
			Commission:     money("15.00"),
			PremiumBadge:   "gold_supporter",
		},
		{
			ID: "lifetime_premium", Name: "Premium Lifetime",
			Description:    "All premium features, forever",
			Tier:           domain.TierPremiumLifetime,
			Amount:         money("299.99"), Currency: "usd",
			DurationMonths: LifetimeDurationMonths,
			Commission:     money("25.00"),
			PremiumBadge:   "lifetime_supporter",
		},
	}
}
