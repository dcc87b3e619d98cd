// internal/interfaces/http/handlers/shop.go
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fifi-bags/storefront-backend/internal/domain/catalog"
	"github.com/fifi-bags/storefront-backend/internal/domain/shell"
	"github.com/fifi-bags/storefront-backend/internal/interfaces/http/middleware"
)

// ShopHandler handles the public storefront surface: views, the filtered
// product grid, and the newsletter form
type ShopHandler struct {
	catalogService  *catalog.Service
	categoryService *catalog.CategoryService
	shellService    *shell.Service
}

// NewShopHandler creates a new shop handler
func NewShopHandler(
	catalogService *catalog.Service,
	categoryService *catalog.CategoryService,
	shellService *shell.Service,
) *ShopHandler {
	return &ShopHandler{
		catalogService:  catalogService,
		categoryService: categoryService,
		shellService:    shellService,
	}
}

// GetShell returns the session's current view
func (h *ShopHandler) GetShell(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	c.JSON(http.StatusOK, gin.H{
		"view": h.shellService.View(sessionID),
	})
}

// SetView selects the session's current view
func (h *ShopHandler) SetView(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req struct {
		View shell.View `json:"view" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	switch req.View {
	case shell.ViewHome, shell.ViewShop, shell.ViewAbout, shell.ViewAdmin:
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Unknown view: %s", req.View),
		})
		return
	}

	h.shellService.SetView(sessionID, req.View)

	c.JSON(http.StatusOK, gin.H{
		"view": req.View,
	})
}

// ListProducts returns the catalog filtered by the optional free-text query
// and category parameters
func (h *ShopHandler) ListProducts(c *gin.Context) {
	query := c.Query("q")
	category := c.Query("category")

	products := h.catalogService.Filter(query, category)

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct returns a single product by ID
func (h *ShopHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

// ListFilters returns the category filter row: the "All" pseudo-category
// followed by the configured labels
func (h *ShopHandler) ListFilters(c *gin.Context) {
	filters := append([]string{catalog.AllCategories}, h.categoryService.List()...)

	c.JSON(http.StatusOK, gin.H{
		"filters": filters,
	})
}

// Subscribe handles the newsletter form. The address is acknowledged with a
// toast and otherwise discarded; there is no subscriber list.
func (h *ShopHandler) Subscribe(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email is required",
		})
		return
	}

	h.shellService.Success(sessionID, fmt.Sprintf("Subscribed with %s! 🍂", strings.TrimSpace(req.Email)))

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscribed",
	})
}

// CurrentNotification returns the session's live toast, if any
func (h *ShopHandler) CurrentNotification(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	toast := h.shellService.CurrentToast(sessionID)
	if toast == nil {
		c.JSON(http.StatusOK, gin.H{
			"toast": nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"toast": toast,
	})
}
