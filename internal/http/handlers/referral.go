package handlers

import (
	"errors"
	"net/http"

	"focusflow/internal/domain"
	"focusflow/internal/repository"
	"focusflow/internal/service"

	"github.com/gin-gonic/gin"
)

// ReferralStats powers the referral banner: code, link, counters and the
// withdrawable balance.
func (h *Handler) ReferralStats(c *gin.Context) {
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

	available, err := h.Wallet.AvailableBalance(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "balance lookup failed"})
		return
	}

	breakdown := gin.H{}
	for _, pkg := range h.Catalog.Packages {
		breakdown[pkg.ID] = pkg.Commission
	}
	// flat monthly rate kept under the historical key the clients read
	if pkg := h.Catalog.Package("monthly_premium"); pkg != nil {
		breakdown["per_referral"] = pkg.Commission
	}

	c.JSON(http.StatusOK, gin.H{
		"referral_code":            user.ReferralCode,
		"total_referrals":          user.TotalReferrals,
		"total_commission_earned":  user.TotalCommissionEarned,
		"available_for_withdrawal": available,
		"referral_link":            h.ReferralLinkBase + "?ref=" + user.ReferralCode,
		"earnings_breakdown":       breakdown,
	})
}

// ValidateReferral checks a code before signup/checkout. Always 200; the
// valid flag carries the answer.
func (h *Handler) ValidateReferral(c *gin.Context) {
	code := c.Param("code")

	referrer, err := h.Users.GetByReferralCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"valid": false, "message": "Invalid referral code"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	resp := gin.H{
		"valid":         true,
		"referrer_name": referrer.Name,
		"message":       "Valid referral code from " + referrer.Name,
	}
	if pkg := h.Catalog.Package("monthly_premium"); pkg != nil {
		resp["commission_amount"] = pkg.Commission
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ReferralHistory(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	referrals, err := h.Referrals.ListByReferrer(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list referrals"})
		return
	}
	if referrals == nil {
		referrals = []*domain.Referral{}
	}
	c.JSON(http.StatusOK, gin.H{"referrals": referrals})
}
