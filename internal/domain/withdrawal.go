package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalAvailable  WithdrawalStatus = "available_for_withdrawal"
	WithdrawalRequested  WithdrawalStatus = "requested"
	WithdrawalProcessing WithdrawalStatus = "processing"
	WithdrawalPaid       WithdrawalStatus = "paid"
)

// Withdrawal is the user-facing cash-out ledger entry, decoupled from the
// Commission audit trail so payout timing is independent of accrual timing.
type Withdrawal struct {
	ID          string           `db:"id" json:"id"`
	UserID      string           `db:"user_id" json:"user_id"`
	Amount      decimal.Decimal  `db:"amount" json:"amount"`
	Status      WithdrawalStatus `db:"status" json:"status"`
	Method      string           `db:"method" json:"method,omitempty"`
	RequestedAt *time.Time       `db:"requested_at" json:"requested_at,omitempty"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
}
