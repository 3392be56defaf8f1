package handlers

import (
	"errors"
	"net/http"

	"focusflow/internal/service"

	"github.com/gin-gonic/gin"
)

// Packages lists the purchasable subscription packages. Prices are fixed
// server-side; this is the only place clients learn them.
func (h *Handler) Packages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"packages": h.Catalog.Packages})
}

type checkoutRequest struct {
	PackageID    string `json:"package_id" binding:"required"`
	ReferralCode string `json:"referral_code"`
}

func (h *Handler) Checkout(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "package_id required"})
		return
	}

	txn, checkoutURL, err := h.Subscription.Checkout(c.Request.Context(), userID, req.PackageID, req.ReferralCode)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPackage) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown package"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id":   txn.SessionID,
		"checkout_url": checkoutURL,
		"amount":       txn.Amount,
		"currency":     txn.Currency,
	})
}

// PaymentStatus polls the provider and fulfills the purchase on the first
// completed answer. Safe to call repeatedly.
func (h *Handler) PaymentStatus(c *gin.Context) {
	sessionID := c.Param("session_id")

	txn, err := h.Subscription.ConfirmPayment(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnitNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		case errors.Is(err, service.ErrPaymentPending):
			c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "status": "pending"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "status check failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": txn.SessionID,
		"status":     txn.Status,
		"package_id": txn.PackageID,
		"amount":     txn.Amount,
	})
}
