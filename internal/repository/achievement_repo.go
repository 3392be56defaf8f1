package repository

import (
	"context"

	"focusflow/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AchievementRepository struct {
	db *pgxpool.Pool
}

func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// Award inserts the achievement if the (user_id, achievement_type) pair does
// not exist yet. The unique key is the serialization point for concurrent
// evaluations: the losing writer's insert affects zero rows and Award
// returns false.
func (r *AchievementRepository) Award(ctx context.Context, a *domain.Achievement) (bool, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	tag, err := r.db.Exec(ctx,
		`INSERT INTO achievements (id, user_id, achievement_type, title, description, xp_reward)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, achievement_type) DO NOTHING`,
		a.ID, a.UserID, a.AchievementType, a.Title, a.Description, a.XPReward)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AchievementRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Achievement, error) {
	return r.list(ctx,
		`SELECT id, user_id, achievement_type, title, description, xp_reward, unlocked_at
		 FROM achievements WHERE user_id = $1 ORDER BY unlocked_at DESC`, userID)
}

func (r *AchievementRepository) Recent(ctx context.Context, userID string, limit int) ([]*domain.Achievement, error) {
	return r.list(ctx,
		`SELECT id, user_id, achievement_type, title, description, xp_reward, unlocked_at
		 FROM achievements WHERE user_id = $1 ORDER BY unlocked_at DESC LIMIT $2`, userID, limit)
}

func (r *AchievementRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Achievement, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(&a.ID, &a.UserID, &a.AchievementType, &a.Title, &a.Description, &a.XPReward, &a.UnlockedAt); err != nil {
			return nil, err
		}
		res = append(res, &a)
	}
	return res, rows.Err()
}
