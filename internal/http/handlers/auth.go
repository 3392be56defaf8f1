package handlers

import (
	"errors"
	"net/http"
	"strings"

	"focusflow/internal/domain"
	"focusflow/internal/logger"
	"focusflow/internal/repository"
	"focusflow/internal/service"

	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	ReferralCode string `json:"referral_code"`
}

// Signup creates the account (or returns the existing one for the email) and
// issues a JWT. A valid referral code pins referred_by once at signup; it is
// never changed afterwards.
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and valid email required"})
		return
	}
	ctx := c.Request.Context()
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if existing, err := h.Users.GetByEmail(ctx, email); err == nil {
		token, err := service.GenerateJWT(existing.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": existing, "token": token})
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	user := &domain.User{Name: req.Name, Email: email}
	if req.ReferralCode != "" {
		referrer, err := h.Users.GetByReferralCode(ctx, req.ReferralCode)
		switch {
		case err == nil:
			user.ReferredBy = &referrer.ID
		case errors.Is(err, repository.ErrNotFound):
			// invalid codes are ignored, signup still succeeds
			logger.Debug("signup with unknown referral code", "code", req.ReferralCode)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "referral lookup failed"})
			return
		}
	}

	if err := h.Users.Create(ctx, user); err != nil {
		logger.Error("user create failed", "email", email, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}

	token, err := service.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

type loginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid email required"})
		return
	}

	user, err := h.Users.GetByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	token, err := service.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}
