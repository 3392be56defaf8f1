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

type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.FocusSession) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.XPEarned == 0 {
		s.XPEarned = domain.DefaultSessionXP
	}
	return r.db.QueryRow(ctx,
		`INSERT INTO focus_sessions (id, user_id, timer_type, duration_minutes, xp_earned)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING started_at`,
		s.ID, s.UserID, s.TimerType, s.DurationMinutes, s.XPEarned,
	).Scan(&s.StartedAt)
}

func (r *SessionRepository) GetByID(ctx context.Context, id, userID string) (*domain.FocusSession, error) {
	var s domain.FocusSession
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, timer_type, duration_minutes, completed, xp_earned, started_at, completed_at
		 FROM focus_sessions WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&s.ID, &s.UserID, &s.TimerType, &s.DurationMinutes, &s.Completed, &s.XPEarned, &s.StartedAt, &s.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Complete flips the session exactly once; see TaskRepository.Complete.
func (r *SessionRepository) Complete(ctx context.Context, id, userID string, completedAt time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE focus_sessions SET completed = TRUE, completed_at = $3
		 WHERE id = $1 AND user_id = $2 AND NOT completed`,
		id, userID, completedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM focus_sessions WHERE id = $1 AND user_id = $2)`,
			id, userID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		return ErrAlreadyCompleted
	}
	return nil
}

func (r *SessionRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.FocusSession, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, timer_type, duration_minutes, completed, xp_earned, started_at, completed_at
		 FROM focus_sessions WHERE user_id = $1
		 ORDER BY started_at DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.FocusSession
	for rows.Next() {
		var s domain.FocusSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.TimerType, &s.DurationMinutes, &s.Completed, &s.XPEarned, &s.StartedAt, &s.CompletedAt); err != nil {
			return nil, err
		}
		res = append(res, &s)
	}
	return res, rows.Err()
}

// DailyFocusStats returns completed-session count and total focus minutes
// within [from, to).
func (r *SessionRepository) DailyFocusStats(ctx context.Context, userID string, from, to time.Time) (count int64, minutes int64, err error) {
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(duration_minutes), 0)
		 FROM focus_sessions
		 WHERE user_id = $1 AND completed AND completed_at >= $2 AND completed_at < $3`,
		userID, from, to).Scan(&count, &minutes)
	return count, minutes, err
}
