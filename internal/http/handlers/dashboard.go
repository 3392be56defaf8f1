package handlers

import (
	"errors"
	"net/http"
	"time"

	"focusflow/internal/domain"
	"focusflow/internal/service"

	"github.com/gin-gonic/gin"
)

// dailyThemes is keyed by weekday (Sunday = 0, time.Weekday convention).
var dailyThemes = map[time.Weekday]gin.H{
	time.Monday:    {"name": "Motivation Monday", "primary": "purple", "secondary": "indigo"},
	time.Tuesday:   {"name": "Tranquil Tuesday", "primary": "blue", "secondary": "cyan"},
	time.Wednesday: {"name": "Wonderful Wednesday", "primary": "green", "secondary": "emerald"},
	time.Thursday:  {"name": "Thoughtful Thursday", "primary": "yellow", "secondary": "amber"},
	time.Friday:    {"name": "Fresh Friday", "primary": "pink", "secondary": "rose"},
	time.Saturday:  {"name": "Serene Saturday", "primary": "teal", "secondary": "cyan"},
	time.Sunday:    {"name": "Soulful Sunday", "primary": "violet", "secondary": "purple"},
}

func dailyColorTheme(now time.Time) gin.H {
	return dailyThemes[now.Weekday()]
}

// Theme serves the day-of-week color theme on its own.
func (h *Handler) Theme(c *gin.Context) {
	c.JSON(http.StatusOK, dailyColorTheme(time.Now()))
}

// Dashboard aggregates today's stats, level progress, recent achievements,
// the daily theme and the premium feature flags.
func (h *Handler) Dashboard(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	ctx := c.Request.Context()

	user, err := h.Subscription.LoadUser(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	todayTasks, err := h.Tasks.CountCompletedBetween(ctx, userID, dayStart, dayEnd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats failed"})
		return
	}
	todaySessions, focusMinutes, err := h.Sessions.DailyFocusStats(ctx, userID, dayStart, dayEnd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats failed"})
		return
	}

	recent, err := h.Achievements.Recent(ctx, userID, 3)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "achievements failed"})
		return
	}
	if recent == nil {
		recent = []*domain.Achievement{}
	}

	currentLevelXP := int64(user.Level-1) * domain.XPPerLevel
	nextLevelXP := int64(user.Level) * domain.XPPerLevel
	progress := float64(user.TotalXP-currentLevelXP) / float64(domain.XPPerLevel) * 100
	if progress > 100 {
		progress = 100
	}
	xpToNext := nextLevelXP - user.TotalXP
	if xpToNext < 0 {
		xpToNext = 0
	}

	premium := user.SubscriptionTier.Premium()
	c.JSON(http.StatusOK, gin.H{
		"user": user,
		"today_stats": gin.H{
			"tasks_completed":          todayTasks,
			"focus_sessions_completed": todaySessions,
			"total_focus_time":         focusMinutes,
			"date":                     dayStart.Format("2006-01-02"),
		},
		"level_progress": gin.H{
			"current_level":       user.Level,
			"progress_percentage": progress,
			"xp_to_next_level":    xpToNext,
		},
		"recent_achievements": recent,
		"theme":               dailyColorTheme(now),
		"premium_features": gin.H{
			"custom_timers":       premium,
			"productivity_themes": premium,
			"premium_sounds":      premium,
			"advanced_analytics":  premium,
		},
	})
}
