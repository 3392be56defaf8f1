package repository

import (
	"context"
	"time"

	"focusflow/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type WithdrawalRepository struct {
	db *pgxpool.Pool
}

func NewWithdrawalRepository(db *pgxpool.Pool) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

// CreateAvailable credits the wallet with a spendable entry.
func (r *WithdrawalRepository) CreateAvailable(ctx context.Context, userID string, amount decimal.Decimal) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO withdrawals (id, user_id, amount, status)
		 VALUES ($1, $2, $3, $4)`,
		uuid.NewString(), userID, amount, domain.WithdrawalAvailable)
	return err
}

// AvailableTotal sums the spendable balance.
func (r *WithdrawalRepository) AvailableTotal(ctx context.Context, userID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM withdrawals WHERE user_id = $1 AND status = $2`,
		userID, domain.WithdrawalAvailable).Scan(&total)
	return total, err
}

// RequestAll flips every available entry to requested in one statement and
// returns the total moved and the number of entries. A concurrent request
// sees zero rows because the status filter inside the UPDATE already claimed
// them, which is exactly the no-double-payout guarantee we need.
func (r *WithdrawalRepository) RequestAll(ctx context.Context, userID, method string, now time.Time) (decimal.Decimal, int64, error) {
	var total decimal.Decimal
	var count int64
	err := r.db.QueryRow(ctx,
		`WITH updated AS (
			UPDATE withdrawals
			SET status = $3, method = $4, requested_at = $5
			WHERE user_id = $1 AND status = $2
			RETURNING amount
		 )
		 SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM updated`,
		userID, domain.WithdrawalAvailable, domain.WithdrawalRequested, method, now,
	).Scan(&total, &count)
	return total, count, err
}

func (r *WithdrawalRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, amount, status, COALESCE(method, ''), requested_at, created_at
		 FROM withdrawals WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Withdrawal
	for rows.Next() {
		var w domain.Withdrawal
		if err := rows.Scan(&w.ID, &w.UserID, &w.Amount, &w.Status, &w.Method, &w.RequestedAt, &w.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &w)
	}
	return res, rows.Err()
}
