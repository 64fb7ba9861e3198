package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/service"
	"github.com/jafarshop/storefront/pkg/errors"
)

// AddToCartRequest is the add-to-cart payload
type AddToCartRequest struct {
	CartID string                  `json:"cartId"`
	Lines  []service.CartLineInput `json:"lines"`
}

// RemoveFromCartRequest is the remove-from-cart payload
type RemoveFromCartRequest struct {
	CartID  string   `json:"cartId"`
	LineIDs []string `json:"lineIds"`
}

// UpdateCartRequest is the update-cart payload
type UpdateCartRequest struct {
	CartID string                        `json:"cartId"`
	Lines  []service.CartLineUpdateInput `json:"lines"`
}

// HandleGetCart handles GET /api/cart?cartId=<id>
func HandleGetCart(sf service.Storefront, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Query("cartId")
		if cartID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing cartId"})
			return
		}

		cart, err := sf.GetCart(c.Request.Context(), cartID)
		if err != nil {
			if errors.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			logger.Error("Error getting cart", zap.Error(err), zap.String("cart_id", cartID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

// HandleCreateCart handles POST /api/cart/create. Unlike the other cart
// routes, its error body echoes the failure details so the add-to-cart flow
// can surface why cart creation failed.
func HandleCreateCart(sf service.Storefront, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := sf.CreateCart(c.Request.Context())
		if err != nil {
			logger.Error("Error creating cart", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to create cart",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

// HandleAddToCart handles POST /api/cart/add
func HandleAddToCart(sf service.Storefront, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.CartID == "" || len(req.Lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing cartId or lines"})
			return
		}

		cart, err := sf.AddToCart(c.Request.Context(), req.CartID, req.Lines)
		if err != nil {
			logger.Error("Error adding to cart", zap.Error(err), zap.String("cart_id", req.CartID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

// HandleRemoveFromCart handles POST /api/cart/remove
func HandleRemoveFromCart(sf service.Storefront, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RemoveFromCartRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.CartID == "" || len(req.LineIDs) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing cartId or lineIds"})
			return
		}

		cart, err := sf.RemoveFromCart(c.Request.Context(), req.CartID, req.LineIDs)
		if err != nil {
			logger.Error("Error removing from cart", zap.Error(err), zap.String("cart_id", req.CartID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

// HandleUpdateCart handles POST /api/cart/update
func HandleUpdateCart(sf service.Storefront, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCartRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.CartID == "" || len(req.Lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing cartId or lines"})
			return
		}

		cart, err := sf.UpdateCart(c.Request.Context(), req.CartID, req.Lines)
		if err != nil {
			logger.Error("Error updating cart", zap.Error(err), zap.String("cart_id", req.CartID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}
