package repository

import (
	"context"
	"encoding/json"
	"time"

	"focusflow/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// rowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type InventoryRepository struct {
	db *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// GetOrCreate returns the user's inventory, creating the empty row on first
// access. Insert races are absorbed by the primary key conflict clause.
func (r *InventoryRepository) GetOrCreate(ctx context.Context, userID string) (*domain.Inventory, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO inventories (user_id, themes, sounds, powerups)
		 VALUES ($1, '{}', '{}', '{}')
		 ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return nil, err
	}
	return r.get(ctx, r.db, userID, false)
}

// Apply runs mutate against the row under a FOR UPDATE lock so concurrent
// reward grants serialize instead of losing each other's merges.
func (r *InventoryRepository) Apply(ctx context.Context, userID string, mutate func(inv *domain.Inventory)) (*domain.Inventory, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO inventories (user_id, themes, sounds, powerups)
		 VALUES ($1, '{}', '{}', '{}')
		 ON CONFLICT (user_id) DO NOTHING`, userID); err != nil {
		return nil, err
	}

	inv, err := r.get(ctx, tx, userID, true)
	if err != nil {
		return nil, err
	}

	mutate(inv)
	inv.UpdatedAt = time.Now().UTC()

	powerups, err := json.Marshal(inv.Powerups)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx,
		`UPDATE inventories SET themes = $2, sounds = $3, powerups = $4,
		        streak_protection_until = $5, instant_achievements_used = $6, updated_at = $7
		 WHERE user_id = $1`,
		userID, inv.Themes, inv.Sounds, powerups,
		inv.StreakProtectionUntil, inv.InstantAchievementsUsed, inv.UpdatedAt); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *InventoryRepository) get(ctx context.Context, q rowQuerier, userID string, forUpdate bool) (*domain.Inventory, error) {
	query := `SELECT user_id, themes, sounds, powerups, streak_protection_until,
	                 instant_achievements_used, created_at, updated_at
	          FROM inventories WHERE user_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var inv domain.Inventory
	var powerups []byte
	err := q.QueryRow(ctx, query, userID).Scan(
		&inv.UserID, &inv.Themes, &inv.Sounds, &powerups,
		&inv.StreakProtectionUntil, &inv.InstantAchievementsUsed,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(powerups) > 0 {
		if err := json.Unmarshal(powerups, &inv.Powerups); err != nil {
			return nil, err
		}
	}
	if inv.Powerups == nil {
		inv.Powerups = map[string]int{}
	}
	if inv.Themes == nil {
		inv.Themes = []string{}
	}
	if inv.Sounds == nil {
		inv.Sounds = []string{}
	}
	return &inv, nil
}
