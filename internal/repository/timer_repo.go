package repository

import (
	"context"

	"focusflow/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TimerRepository struct {
	db *pgxpool.Pool
}

func NewTimerRepository(db *pgxpool.Pool) *TimerRepository {
	return &TimerRepository{db: db}
}

func (r *TimerRepository) Create(ctx context.Context, t *domain.CustomTimer) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return r.db.QueryRow(ctx,
		`INSERT INTO custom_timers (id, user_id, name, focus_minutes, short_break_minutes, long_break_minutes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		t.ID, t.UserID, t.Name, t.FocusMinutes, t.ShortBreakMinutes, t.LongBreakMinutes,
	).Scan(&t.CreatedAt)
}

func (r *TimerRepository) ListByUser(ctx context.Context, userID string) ([]*domain.CustomTimer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, focus_minutes, short_break_minutes, long_break_minutes, created_at
		 FROM custom_timers WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.CustomTimer
	for rows.Next() {
		var t domain.CustomTimer
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.FocusMinutes, &t.ShortBreakMinutes, &t.LongBreakMinutes, &t.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

func (r *TimerRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM custom_timers WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
