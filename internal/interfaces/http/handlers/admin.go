// internal/interfaces/http/handlers/admin.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fifi-bags/storefront-backend/internal/config"
	"github.com/fifi-bags/storefront-backend/internal/domain/catalog"
	"github.com/fifi-bags/storefront-backend/internal/domain/payment"
	"github.com/fifi-bags/storefront-backend/internal/domain/shell"
	"github.com/fifi-bags/storefront-backend/internal/domain/upload"
	"github.com/fifi-bags/storefront-backend/internal/interfaces/http/middleware"
	"github.com/fifi-bags/storefront-backend/internal/pkg/auth"
)

// AdminHandler handles the back-office surface: the password gate, product
// and category management, payment settings, and image attachments
type AdminHandler struct {
	config          *config.Config
	jwtManager      *auth.JWTManager
	catalogService  *catalog.Service
	categoryService *catalog.CategoryService
	paymentService  *payment.Service
	uploadService   *upload.Service
	shellService    *shell.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	cfg *config.Config,
	jwtManager *auth.JWTManager,
	catalogService *catalog.Service,
	categoryService *catalog.CategoryService,
	paymentService *payment.Service,
	uploadService *upload.Service,
	shellService *shell.Service,
) *AdminHandler {
	return &AdminHandler{
		config:          cfg,
		jwtManager:      jwtManager,
		catalogService:  catalogService,
		categoryService: categoryService,
		paymentService:  paymentService,
		uploadService:   uploadService,
		shellService:    shellService,
	}
}

// productRequest carries the admin form fields. Name, price, and description
// are the form's required fields; the price arrives loosely typed and is
// coerced to a number after presence is checked.
type productRequest struct {
	Name        string      `json:"name" binding:"required"`
	Price       interface{} `json:"price" binding:"required"`
	Description string      `json:"description" binding:"required"`
	Image       string      `json:"image"`
	Category    string      `json:"category"`
	IsNew       bool        `json:"isNew"`
	SoldOut     bool        `json:"soldOut"`
}

// GetHint returns the password hint shown in the login prompt. The gate is a
// demo affordance, with the answer advertised next to the lock.
func (h *AdminHandler) GetHint(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"hint": h.config.Admin.PasswordHint,
	})
}

// Login checks the submitted password (case-insensitive) and mints a
// back-office token for the session
func (h *AdminHandler) Login(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Password is required",
		})
		return
	}

	if !strings.EqualFold(strings.TrimSpace(req.Password), h.config.Admin.Password) {
		h.shellService.Error(sessionID, "Incorrect password")
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Incorrect password",
		})
		return
	}

	token, err := h.jwtManager.GenerateAdminToken(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	h.shellService.SetView(sessionID, shell.ViewAdmin)
	h.shellService.Success(sessionID, "Welcome back, Fifi!")

	c.JSON(http.StatusOK, gin.H{
		"token": token,
	})
}

// Logout ends the admin session. The token is simply dropped client-side.
func (h *AdminHandler) Logout(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	h.shellService.SetView(sessionID, shell.ViewHome)
	h.shellService.Info(sessionID, "Logged out of Admin")

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}

// CreateProduct adds a product to the top of the catalog
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	product := catalog.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Price:       catalog.CoercePrice(req.Price),
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		IsNew:       req.IsNew,
		SoldOut:     req.SoldOut,
	}

	h.catalogService.Add(product)
	h.uploadService.CloseForm(sessionID)
	h.shellService.Success(sessionID, "Product added successfully")

	c.JSON(http.StatusCreated, gin.H{
		"product": product,
	})
}

// UpdateProduct replaces the catalog entry with the matching ID
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	if _, err := h.catalogService.Get(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	product := catalog.Product{
		ID:          c.Param("id"),
		Name:        req.Name,
		Price:       catalog.CoercePrice(req.Price),
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		IsNew:       req.IsNew,
		SoldOut:     req.SoldOut,
	}

	h.catalogService.Update(product)
	h.uploadService.CloseForm(sessionID)
	h.shellService.Success(sessionID, "Product updated")

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

// DeleteProduct removes a product after an explicit confirmation
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusConflict, gin.H{
			"error":                 "confirmation_required",
			"confirmation_required": true,
		})
		return
	}

	h.catalogService.Delete(c.Param("id"))
	h.shellService.Info(sessionID, "Product deleted")

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted",
	})
}

// ListCategories returns the category labels
func (h *AdminHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.categoryService.List(),
	})
}

// AddCategory appends a label. Adding an existing label is a silent no-op.
func (h *AdminHandler) AddCategory(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Category name is required",
		})
		return
	}

	label := strings.TrimSpace(req.Name)
	if h.categoryService.Add(label) {
		h.shellService.Success(sessionID, fmt.Sprintf("Category %q added", label))
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": h.categoryService.List(),
	})
}

// DeleteCategory removes a label. Products referencing it keep their now
// stale category string.
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusConflict, gin.H{
			"error":                 "confirmation_required",
			"confirmation_required": true,
		})
		return
	}

	label := c.Param("name")
	h.categoryService.Delete(label)
	h.shellService.Info(sessionID, fmt.Sprintf("Category %q removed", label))

	c.JSON(http.StatusOK, gin.H{
		"categories": h.categoryService.List(),
	})
}

// GetPaymentSettings returns the bank-transfer details
func (h *AdminHandler) GetPaymentSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"settings": h.paymentService.Get(),
	})
}

// UpdatePaymentSettings replaces the bank-transfer details as a whole
func (h *AdminHandler) UpdatePaymentSettings(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var settings payment.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	h.paymentService.Update(settings)
	h.shellService.Success(sessionID, "Payment settings saved")

	c.JSON(http.StatusOK, gin.H{
		"settings": h.paymentService.Get(),
	})
}

// OpenProductForm opens the session's product form, clearing any leftover
// attachment
func (h *AdminHandler) OpenProductForm(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	h.uploadService.OpenForm(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Form opened",
	})
}

// CloseProductForm closes the session's product form; an in-flight
// attachment conversion will be dropped
func (h *AdminHandler) CloseProductForm(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	h.uploadService.CloseForm(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Form closed",
	})
}

// AttachImage converts an uploaded image into an inline data URI for the
// open product form
func (h *AdminHandler) AttachImage(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Image file is required",
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to read image",
		})
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := h.uploadService.Attach(sessionID, file.Filename, contentType, src); err != nil {
		switch {
		case errors.Is(err, upload.ErrFormClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No product form is open",
			})
		case errors.Is(err, upload.ErrTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": "Image exceeds the upload size limit",
			})
		case errors.Is(err, upload.ErrUnsupportedType):
			c.JSON(http.StatusUnsupportedMediaType, gin.H{
				"error": "Unsupported image type",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to attach image",
			})
		}
		return
	}

	dataURI, _ := h.uploadService.Pending(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"image": dataURI,
	})
}

// GetPendingImage returns the converted attachment for the open form, if any
func (h *AdminHandler) GetPendingImage(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	dataURI, ok := h.uploadService.Pending(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"image":   dataURI,
		"pending": ok,
	})
}
