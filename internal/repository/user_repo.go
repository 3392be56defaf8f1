package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"focusflow/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("not found")
)

const userColumns = `id, name, email, subscription_tier, subscription_expires_at,
	COALESCE(premium_badge, ''), COALESCE(title, ''), total_xp, level,
	tasks_completed, focus_sessions_completed, current_streak, best_streak,
	last_activity_date, referral_code, referred_by, total_referrals,
	total_commission_earned, created_at`

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GenerateReferralCode generates a short unique referral code.
func GenerateReferralCode() string {
	bytes := make([]byte, 6)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// Create inserts a new user. ID and referral code are generated here;
// referredBy is set once at signup and never after.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.ReferralCode == "" {
		u.ReferralCode = GenerateReferralCode()
	}
	if u.SubscriptionTier == "" {
		u.SubscriptionTier = domain.TierFree
	}
	return r.db.QueryRow(ctx,
		`INSERT INTO users (id, name, email, subscription_tier, referral_code, referred_by)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, level, total_commission_earned`,
		u.ID, u.Name, u.Email, u.SubscriptionTier, u.ReferralCode, u.ReferredBy,
	).Scan(&u.CreatedAt, &u.Level, &u.TotalCommissionEarned)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// GetByReferralCode finds the owner of a referral code.
func (r *UserRepository) GetByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE referral_code = $1`, code))
}

// CreditActivity atomically applies one activity completion: XP delta,
// completed-counter bump, streak roll-over and level recompute, all as a
// single additive update so concurrent completions cannot lose increments.
func (r *UserRepository) CreditActivity(ctx context.Context, userID string, xp int, counter string, now time.Time) error {
	col := "tasks_completed"
	if counter == "focus_sessions_completed" {
		col = "focus_sessions_completed"
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET
			total_xp = total_xp + $2,
			`+col+` = `+col+` + 1,
			level = GREATEST(1, (total_xp + $2) / 100 + 1),
			current_streak = CASE
				WHEN last_activity_date IS NULL THEN 1
				WHEN last_activity_date::date = $3::date THEN current_streak
				WHEN last_activity_date::date = $3::date - 1 THEN current_streak + 1
				ELSE 1
			END,
			best_streak = GREATEST(best_streak, CASE
				WHEN last_activity_date IS NULL THEN 1
				WHEN last_activity_date::date = $3::date THEN current_streak
				WHEN last_activity_date::date = $3::date - 1 THEN current_streak + 1
				ELSE 1
			END),
			last_activity_date = $3
		WHERE id = $1`,
		userID, xp, now)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AddXP adds an XP delta and recomputes the level in the same statement.
func (r *UserRepository) AddXP(ctx context.Context, userID string, delta int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET total_xp = total_xp + $2, level = GREATEST(1, (total_xp + $2) / 100 + 1) WHERE id = $1`,
		userID, delta)
	return err
}

// SetTitle sets the display title (last write wins, no history).
func (r *UserRepository) SetTitle(ctx context.Context, userID, title string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET title = $2 WHERE id = $1`, userID, title)
	return err
}

// SetSubscription activates a tier with its expiry and optional badge marker.
func (r *UserRepository) SetSubscription(ctx context.Context, userID string, tier domain.SubscriptionTier, expiresAt time.Time, premiumBadge string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET subscription_tier = $2, subscription_expires_at = $3,
		        premium_badge = NULLIF($4, '')
		 WHERE id = $1`,
		userID, tier, expiresAt, premiumBadge)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DowngradeIfExpired lazily downgrades a lapsed premium subscription. It is
// called on every user read; when nothing has lapsed it is a no-op.
func (r *UserRepository) DowngradeIfExpired(ctx context.Context, userID string, now time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET subscription_tier = $3, subscription_expires_at = NULL
		 WHERE id = $1 AND subscription_expires_at IS NOT NULL AND subscription_expires_at < $2`,
		userID, now, domain.TierFree)
	return err
}

// FixLevel repairs a drifted stored level. The derived value always wins.
func (r *UserRepository) FixLevel(ctx context.Context, userID string, level int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET level = $2 WHERE id = $1 AND level <> $2`, userID, level)
	return err
}

// CreditReferral bumps the cached referral counters by one qualifying sale.
func (r *UserRepository) CreditReferral(ctx context.Context, userID string, commission decimal.Decimal) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET total_referrals = total_referrals + 1,
		        total_commission_earned = total_commission_earned + $2
		 WHERE id = $1`,
		userID, commission)
	return err
}

func (r *UserRepository) scanOne(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.SubscriptionTier, &u.SubscriptionExpiresAt,
		&u.PremiumBadge, &u.Title, &u.TotalXP, &u.Level,
		&u.TasksCompleted, &u.FocusSessionsCompleted, &u.CurrentStreak, &u.BestStreak,
		&u.LastActivityDate, &u.ReferralCode, &u.ReferredBy, &u.TotalReferrals,
		&u.TotalCommissionEarned, &u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
