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

// ErrAlreadyCompleted signals a second completion attempt on a finished unit.
var ErrAlreadyCompleted = errors.New("already completed")

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = domain.TaskPending
	}
	if t.XPEarned == 0 {
		t.XPEarned = domain.DefaultTaskXP
	}
	return r.db.QueryRow(ctx,
		`INSERT INTO tasks (id, user_id, title, description, status, xp_earned)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		t.ID, t.UserID, t.Title, t.Description, t.Status, t.XPEarned,
	).Scan(&t.CreatedAt)
}

func (r *TaskRepository) GetByID(ctx context.Context, id, userID string) (*domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, title, description, status, xp_earned, created_at, completed_at
		 FROM tasks WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status, &t.XPEarned, &t.CreatedAt, &t.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string, status domain.TaskStatus) ([]*domain.Task, error) {
	query := `SELECT id, user_id, title, description, status, xp_earned, created_at, completed_at
	          FROM tasks WHERE user_id = $1`
	args := []any{userID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status, &t.XPEarned, &t.CreatedAt, &t.CompletedAt); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

// Complete performs the one-way pending→completed transition. The WHERE
// clause is the concurrency guard: only one writer can flip the row, every
// other attempt affects zero rows and reports ErrAlreadyCompleted.
func (r *TaskRepository) Complete(ctx context.Context, id, userID string, completedAt time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tasks SET status = $4, completed_at = $3
		 WHERE id = $1 AND user_id = $2 AND status = $5`,
		id, userID, completedAt, domain.TaskCompleted, domain.TaskPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// distinguish missing from already-completed
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM tasks WHERE id = $1 AND user_id = $2)`,
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

// UpdateDetails edits title/description; completion goes through Complete.
func (r *TaskRepository) UpdateDetails(ctx context.Context, id, userID string, title, description *string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tasks SET title = COALESCE($3, title), description = COALESCE($4, description)
		 WHERE id = $1 AND user_id = $2`,
		id, userID, title, description)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountCompletedBetween returns completions within [from, to) for dashboards.
func (r *TaskRepository) CountCompletedBetween(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM tasks
		 WHERE user_id = $1 AND status = $2 AND completed_at >= $3 AND completed_at < $4`,
		userID, domain.TaskCompleted, from, to).Scan(&n)
	return n, err
}
