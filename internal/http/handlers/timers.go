package handlers

import (
	"errors"
	"net/http"

	"focusflow/internal/domain"
	"focusflow/internal/repository"
	"focusflow/internal/service"

	"github.com/gin-gonic/gin"
)

// requirePremium loads the user (with lazy expiry) and rejects free accounts.
func (h *Handler) requirePremium(c *gin.Context) (*domain.User, bool) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}
	user, err := h.Subscription.LoadUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return nil, false
	}
	if !user.SubscriptionTier.Premium() {
		c.JSON(http.StatusForbidden, gin.H{"error": "premium subscription required"})
		return nil, false
	}
	return user, true
}

type createTimerRequest struct {
	Name              string `json:"name" binding:"required"`
	FocusMinutes      int    `json:"focus_minutes" binding:"required,gt=0"`
	ShortBreakMinutes int    `json:"short_break_minutes" binding:"required,gt=0"`
	LongBreakMinutes  int    `json:"long_break_minutes" binding:"required,gt=0"`
}

func (h *Handler) CreateCustomTimer(c *gin.Context) {
	user, ok := h.requirePremium(c)
	if !ok {
		return
	}
	var req createTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and positive durations required"})
		return
	}

	timer := &domain.CustomTimer{
		UserID:            user.ID,
		Name:              req.Name,
		FocusMinutes:      req.FocusMinutes,
		ShortBreakMinutes: req.ShortBreakMinutes,
		LongBreakMinutes:  req.LongBreakMinutes,
	}
	if err := h.Timers.Create(c.Request.Context(), timer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create timer"})
		return
	}
	c.JSON(http.StatusCreated, timer)
}

func (h *Handler) ListCustomTimers(c *gin.Context) {
	user, ok := h.requirePremium(c)
	if !ok {
		return
	}

	timers, err := h.Timers.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list timers"})
		return
	}
	if timers == nil {
		timers = []*domain.CustomTimer{}
	}
	c.JSON(http.StatusOK, timers)
}

func (h *Handler) DeleteCustomTimer(c *gin.Context) {
	user, ok := h.requirePremium(c)
	if !ok {
		return
	}

	if err := h.Timers.Delete(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "timer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete timer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "timer deleted"})
}
