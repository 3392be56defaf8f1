package repository

import (
	"context"

	"focusflow/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReferralRepository struct {
	db *pgxpool.Pool
}

func NewReferralRepository(db *pgxpool.Pool) *ReferralRepository {
	return &ReferralRepository{db: db}
}

// InsertReferral records a qualifying sale for the referrer. The unique
// payment_session_id column absorbs retried payment confirmations: the
// second insert for the same session affects zero rows and returns false,
// so a commission is never paid twice.
func (r *ReferralRepository) InsertReferral(ctx context.Context, ref *domain.Referral) (bool, error) {
	if ref.ID == "" {
		ref.ID = uuid.NewString()
	}
	if ref.Status == "" {
		ref.Status = domain.ReferralCompleted
	}
	tag, err := r.db.Exec(ctx,
		`INSERT INTO referrals (id, referrer_id, referred_id, payment_session_id, package_id, commission, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (payment_session_id) DO NOTHING`,
		ref.ID, ref.ReferrerID, ref.ReferredID, ref.PaymentSessionID, ref.PackageID, ref.Commission, ref.Status)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ReferralRepository) InsertCommission(ctx context.Context, c *domain.Commission) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = domain.CommissionPaid
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO commissions (id, referral_id, referrer_id, payment_session_id, amount, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.ReferralID, c.ReferrerID, c.PaymentSessionID, c.Amount, c.Status)
	return err
}

func (r *ReferralRepository) ListByReferrer(ctx context.Context, referrerID string) ([]*domain.Referral, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, referrer_id, referred_id, payment_session_id, package_id, commission, status, created_at
		 FROM referrals WHERE referrer_id = $1 ORDER BY created_at DESC`, referrerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Referral
	for rows.Next() {
		var ref domain.Referral
		if err := rows.Scan(&ref.ID, &ref.ReferrerID, &ref.ReferredID, &ref.PaymentSessionID,
			&ref.PackageID, &ref.Commission, &ref.Status, &ref.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &ref)
	}
	return res, rows.Err()
}

// CountCompleted counts qualifying referrals from the ledger. Used for badge
// conditions that require the live count rather than the cached user counter.
func (r *ReferralRepository) CountCompleted(ctx context.Context, referrerID string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM referrals WHERE referrer_id = $1 AND status = $2`,
		referrerID, domain.ReferralCompleted).Scan(&n)
	return n, err
}
