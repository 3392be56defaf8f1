package domain

import "time"

type TimerType string

const (
	TimerFocus      TimerType = "focus"
	TimerShortBreak TimerType = "short_break"
	TimerLongBreak  TimerType = "long_break"
)

// DefaultSessionXP is the base reward baked into a focus session at creation.
const DefaultSessionXP = 25

type FocusSession struct {
	ID              string     `db:"id" json:"id"`
	UserID          string     `db:"user_id" json:"user_id"`
	TimerType       TimerType  `db:"timer_type" json:"timer_type"`
	DurationMinutes int        `db:"duration_minutes" json:"duration_minutes"`
	Completed       bool       `db:"completed" json:"completed"`
	XPEarned        int        `db:"xp_earned" json:"xp_earned"`
	StartedAt       time.Time  `db:"started_at" json:"started_at"`
	CompletedAt     *time.Time `db:"completed_at" json:"completed_at,omitempty"`
}

// CustomTimer is a premium-only saved timer preset.
type CustomTimer struct {
	ID                string    `db:"id" json:"id"`
	UserID            string    `db:"user_id" json:"user_id"`
	Name              string    `db:"name" json:"name"`
	FocusMinutes      int       `db:"focus_minutes" json:"focus_minutes"`
	ShortBreakMinutes int       `db:"short_break_minutes" json:"short_break_minutes"`
	LongBreakMinutes  int       `db:"long_break_minutes" json:"long_break_minutes"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}
