package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentExpired   PaymentStatus = "expired"
)

// PaymentTransaction tracks one checkout session with the external payment
// provider. Amount and package are recorded server-side at checkout time;
// the provider's session id is the idempotency key for completion.
type PaymentTransaction struct {
	ID           string          `db:"id" json:"id"`
	SessionID    string          `db:"session_id" json:"session_id"`
	UserID       string          `db:"user_id" json:"user_id"`
	PackageID    string          `db:"package_id" json:"package_id"`
	Amount       decimal.Decimal `db:"amount" json:"amount"`
	Currency     string          `db:"currency" json:"currency"`
	ReferralCode string          `db:"referral_code" json:"referral_code,omitempty"`
	Status       PaymentStatus   `db:"status" json:"status"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	CompletedAt  *time.Time      `db:"completed_at" json:"completed_at,omitempty"`
}

// Purchase is a completed in-app product purchase (theme packs, powerups...).
type Purchase struct {
	ID        string          `db:"id" json:"id"`
	UserID    string          `db:"user_id" json:"user_id"`
	ProductID string          `db:"product_id" json:"product_id"`
	SessionID string          `db:"session_id" json:"session_id"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	Status    PaymentStatus   `db:"status" json:"status"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}
