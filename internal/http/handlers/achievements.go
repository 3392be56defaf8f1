package handlers

import (
	"net/http"

	"focusflow/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListAchievements(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	achievements, err := h.Achievements.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list achievements"})
		return
	}
	if achievements == nil {
		achievements = []*domain.Achievement{}
	}
	c.JSON(http.StatusOK, achievements)
}

func (h *Handler) ListBadges(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	// re-check conditions before listing so newly-qualified badges appear
	if _, err := h.BadgeService.Evaluate(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "badge evaluation failed"})
		return
	}

	badges, err := h.Badges.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list badges"})
		return
	}
	if badges == nil {
		badges = []*domain.UserBadge{}
	}
	c.JSON(http.StatusOK, badges)
}

// BadgeCatalog lists every defined badge so clients can render locked ones.
func (h *Handler) BadgeCatalog(c *gin.Context) {
	out := make([]gin.H, 0, len(h.Catalog.Badges))
	for _, b := range h.Catalog.Badges {
		out = append(out, gin.H{
			"id":          b.ID,
			"name":        b.Name,
			"description": b.Description,
			"icon":        b.Icon,
		})
	}
	c.JSON(http.StatusOK, out)
}
