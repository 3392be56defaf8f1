package repository

import (
	"context"
	"errors"
	"time"

	"focusflow/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) CreateTransaction(ctx context.Context, t *domain.PaymentTransaction) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = domain.PaymentPending
	}
	if t.Currency == "" {
		t.Currency = "usd"
	}
	return r.db.QueryRow(ctx,
		`INSERT INTO payment_transactions (id, session_id, user_id, package_id, amount, currency, referral_code, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at`,
		t.ID, t.SessionID, t.UserID, t.PackageID, t.Amount, t.Currency, t.ReferralCode, t.Status,
	).Scan(&t.CreatedAt)
}

func (r *PaymentRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.PaymentTransaction, error) {
	var t domain.PaymentTransaction
	err := r.db.QueryRow(ctx,
		`SELECT id, session_id, user_id, package_id, amount, currency, COALESCE(referral_code, ''), status, created_at, completed_at
		 FROM payment_transactions WHERE session_id = $1`, sessionID,
	).Scan(&t.ID, &t.SessionID, &t.UserID, &t.PackageID, &t.Amount, &t.Currency,
		&t.ReferralCode, &t.Status, &t.CreatedAt, &t.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// MarkCompleted is the exactly-once gate for payment fulfillment. Only the
// caller that flips pending→completed gets true; retried confirmations see
// zero rows and must not re-apply side effects.
func (r *PaymentRepository) MarkCompleted(ctx context.Context, sessionID string, completedAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE payment_transactions SET status = $2, completed_at = $3
		 WHERE session_id = $1 AND status = $4`,
		sessionID, domain.PaymentCompleted, completedAt, domain.PaymentPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkStatus moves a pending transaction to failed or expired.
func (r *PaymentRepository) MarkStatus(ctx context.Context, sessionID string, status domain.PaymentStatus) error {
	_, err := r.db.Exec(ctx,
		`UPDATE payment_transactions SET status = $2 WHERE session_id = $1 AND status = $3`,
		sessionID, status, domain.PaymentPending)
	return err
}

func (r *PaymentRepository) CreatePurchase(ctx context.Context, p *domain.Purchase) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = domain.PaymentCompleted
	}
	return r.db.QueryRow(ctx,
		`INSERT INTO purchases (id, user_id, product_id, session_id, amount, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		p.ID, p.UserID, p.ProductID, p.SessionID, p.Amount, p.Status,
	).Scan(&p.CreatedAt)
}

func (r *PaymentRepository) ListPurchases(ctx context.Context, userID string) ([]*domain.Purchase, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, product_id, session_id, amount, status, created_at
		 FROM purchases WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		if err := rows.Scan(&p.ID, &p.UserID, &p.ProductID, &p.SessionID, &p.Amount, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &p)
	}
	return res, rows.Err()
}

// CountPurchases and CountDistinctProducts feed the shop badge conditions.
func (r *PaymentRepository) CountPurchases(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM purchases WHERE user_id = $1 AND status = $2`,
		userID, domain.PaymentCompleted).Scan(&n)
	return n, err
}

func (r *PaymentRepository) CountDistinctProducts(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(DISTINCT product_id) FROM purchases WHERE user_id = $1 AND status = $2`,
		userID, domain.PaymentCompleted).Scan(&n)
	return n, err
}
