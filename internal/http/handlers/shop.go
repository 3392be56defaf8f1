package handlers

import (
	"errors"
	"net/http"

	"focusflow/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Products(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.Catalog.Products})
}

type purchaseRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// PurchaseProduct buys a shop product and applies its reward payload to the
// buyer's inventory.
func (h *Handler) PurchaseProduct(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id required"})
		return
	}

	purchase, err := h.Shop.Purchase(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownProduct):
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown product"})
		case errors.Is(err, service.ErrPaymentPending):
			c.JSON(http.StatusAccepted, gin.H{"status": "pending"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "purchase failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, purchase)
}
