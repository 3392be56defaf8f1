package handlers

import (
	"errors"
	"net/http"

	"focusflow/internal/domain"
	"focusflow/internal/service"

	"github.com/gin-gonic/gin"
)

type createSessionRequest struct {
	TimerType       domain.TimerType `json:"timer_type"`
	DurationMinutes int              `json:"duration_minutes" binding:"required,gt=0"`
}

func (h *Handler) CreateSession(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "positive duration required"})
		return
	}
	if req.TimerType == "" {
		req.TimerType = domain.TimerFocus
	}
	switch req.TimerType {
	case domain.TimerFocus, domain.TimerShortBreak, domain.TimerLongBreak:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timer type"})
		return
	}

	session := &domain.FocusSession{
		UserID:          userID,
		TimerType:       req.TimerType,
		DurationMinutes: req.DurationMinutes,
	}
	if err := h.Sessions.Create(c.Request.Context(), session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *Handler) ListSessions(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	sessions, err := h.Sessions.ListRecent(c.Request.Context(), userID, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list sessions"})
		return
	}
	if sessions == nil {
		sessions = []*domain.FocusSession{}
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *Handler) CompleteSession(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	result, err := h.Progression.CompleteFocusSession(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnitNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		case errors.Is(err, service.ErrAlreadyCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": "session already completed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not complete session"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
