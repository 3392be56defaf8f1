package handlers

import (
	"errors"
	"net/http"

	"focusflow/internal/service"

	"github.com/gin-gonic/gin"
)

// Me returns the authenticated user after lazy subscription expiry.
func (h *Handler) Me(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	user, err := h.Subscription.LoadUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Inventory returns the user's unlocked entitlements (created lazily).
func (h *Handler) Inventory(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	inv, err := h.Inventories.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "inventory lookup failed"})
		return
	}
	c.JSON(http.StatusOK, inv)
}
