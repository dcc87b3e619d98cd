// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fifi-bags/storefront-backend/internal/domain/cart"
	"github.com/fifi-bags/storefront-backend/internal/domain/catalog"
	"github.com/fifi-bags/storefront-backend/internal/domain/shell"
	"github.com/fifi-bags/storefront-backend/internal/interfaces/http/middleware"
)

// CartHandler handles shopping bag operations
type CartHandler struct {
	cartService    *cart.Service
	catalogService *catalog.Service
	shellService   *shell.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	cartService *cart.Service,
	catalogService *catalog.Service,
	shellService *shell.Service,
) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		catalogService: catalogService,
		shellService:   shellService,
	}
}

// GetBag returns the session's bag with its derived total
func (h *CartHandler) GetBag(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	c.JSON(http.StatusOK, gin.H{
		"bag": h.cartService.Get(sessionID),
	})
}

// AddToBag snapshots a catalog product into the session's bag
func (h *CartHandler) AddToBag(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	product, err := h.catalogService.Get(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	line, err := h.cartService.Add(sessionID, product)
	if err != nil {
		if errors.Is(err, cart.ErrSoldOut) {
			// Sold-out rejection produces no toast
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Product is sold out",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add product to bag",
		})
		return
	}

	h.shellService.Success(sessionID, fmt.Sprintf("Added %s to bag", product.Name))

	c.JSON(http.StatusOK, gin.H{
		"line": line,
		"bag":  h.cartService.Get(sessionID),
	})
}

// RemoveFromBag deletes one line from the session's bag
func (h *CartHandler) RemoveFromBag(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	h.cartService.Remove(sessionID, c.Param("lineId"))

	c.JSON(http.StatusOK, gin.H{
		"bag": h.cartService.Get(sessionID),
	})
}

// ClearBag empties the session's bag
func (h *CartHandler) ClearBag(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	h.cartService.Clear(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"bag": h.cartService.Get(sessionID),
	})
}
