package repository

import (
	"context"

	"focusflow/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BadgeRepository struct {
	db *pgxpool.Pool
}

func NewBadgeRepository(db *pgxpool.Pool) *BadgeRepository {
	return &BadgeRepository{db: db}
}

// Award inserts the badge unlock unless (user_id, badge_id) already exists.
// Same unique-key idempotency contract as achievements.
func (r *BadgeRepository) Award(ctx context.Context, b *domain.UserBadge) (bool, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	tag, err := r.db.Exec(ctx,
		`INSERT INTO user_badges (id, user_id, badge_id, name, description, icon)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, badge_id) DO NOTHING`,
		b.ID, b.UserID, b.BadgeID, b.Name, b.Description, b.Icon)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BadgeRepository) ListByUser(ctx context.Context, userID string) ([]*domain.UserBadge, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, badge_id, name, description, icon, unlocked_at
		 FROM user_badges WHERE user_id = $1 ORDER BY unlocked_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.UserBadge
	for rows.Next() {
		var b domain.UserBadge
		if err := rows.Scan(&b.ID, &b.UserID, &b.BadgeID, &b.Name, &b.Description, &b.Icon, &b.UnlockedAt); err != nil {
			return nil, err
		}
		res = append(res, &b)
	}
	return res, rows.Err()
}
