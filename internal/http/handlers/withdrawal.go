package handlers

import (
	"errors"
	"net/http"

	"focusflow/internal/domain"
	"focusflow/internal/service"

	"github.com/gin-gonic/gin"
)

type withdrawalRequest struct {
	Method string `json:"method"`
}

// RequestWithdrawal moves the entire available commission balance to
// requested. Partial amounts are not supported.
func (h *Handler) RequestWithdrawal(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req withdrawalRequest
	_ = c.ShouldBindJSON(&req)
	if req.Method == "" {
		req.Method = "bank_transfer"
	}

	amount, err := h.Wallet.RequestWithdrawal(c.Request.Context(), userID, req.Method)
	if err != nil {
		if errors.Is(err, service.ErrNoBalance) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No balance available for withdrawal"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "withdrawal failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Withdrawal requested",
		"amount":  amount,
		"method":  req.Method,
		"status":  domain.WithdrawalRequested,
	})
}

func (h *Handler) ListWithdrawals(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	ctx := c.Request.Context()

	withdrawals, err := h.Wallet.History(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list withdrawals"})
		return
	}
	if withdrawals == nil {
		withdrawals = []*domain.Withdrawal{}
	}

	available, err := h.Wallet.AvailableBalance(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "balance lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"withdrawals":              withdrawals,
		"available_for_withdrawal": available,
	})
}
