package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReferralStatus string

const (
	ReferralCompleted ReferralStatus = "completed"
)

// Referral links a referrer to a completed payment made by a referred user.
// payment_session_id is unique: re-processing the same payment (duplicate
// webhook, retried poll) cannot create a second referral.
type Referral struct {
	ID               string          `db:"id" json:"id"`
	ReferrerID       string          `db:"referrer_id" json:"referrer_id"`
	ReferredID       string          `db:"referred_id" json:"referred_id"`
	PaymentSessionID string          `db:"payment_session_id" json:"payment_session_id"`
	PackageID        string          `db:"package_id" json:"package_id"`
	Commission       decimal.Decimal `db:"commission" json:"commission"`
	Status           ReferralStatus  `db:"status" json:"status"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}

type CommissionStatus string

const (
	CommissionPending   CommissionStatus = "pending"
	CommissionPaid      CommissionStatus = "paid"
	CommissionCancelled CommissionStatus = "cancelled"
)

// Commission is the audit-trail record of a payout. Commissions are
// auto-approved: they are written with status paid, and the spendable
// balance lives in the Withdrawal ledger instead.
type Commission struct {
	ID               string           `db:"id" json:"id"`
	ReferralID       string           `db:"referral_id" json:"referral_id"`
	ReferrerID       string           `db:"referrer_id" json:"referrer_id"`
	PaymentSessionID string           `db:"payment_session_id" json:"payment_session_id"`
	Amount           decimal.Decimal  `db:"amount" json:"amount"`
	Status           CommissionStatus `db:"status" json:"status"`
	CreatedAt        time.Time        `db:"created_at" json:"created_at"`
}
