// internal/interfaces/http/handlers/handlers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fifi-bags/storefront-backend/internal/config"
	"github.com/fifi-bags/storefront-backend/internal/domain/assistant"
	"github.com/fifi-bags/storefront-backend/internal/domain/cart"
	"github.com/fifi-bags/storefront-backend/internal/domain/catalog"
	"github.com/fifi-bags/storefront-backend/internal/domain/checkout"
	"github.com/fifi-bags/storefront-backend/internal/domain/payment"
	"github.com/fifi-bags/storefront-backend/internal/domain/shell"
	"github.com/fifi-bags/storefront-backend/internal/domain/upload"
	"github.com/fifi-bags/storefront-backend/internal/infrastructure/persistence"
	"github.com/fifi-bags/storefront-backend/internal/interfaces/http/handlers"
	"github.com/fifi-bags/storefront-backend/internal/interfaces/http/routes"
	"github.com/fifi-bags/storefront-backend/internal/pkg/auth"
)

type echoChatter struct{}

func (echoChatter) Reply(_ context.Context, message string, _ []catalog.Product, _ string) (string, error) {
	return "You asked: " + message, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "FIFI-Bags Storefront"
	cfg.Admin.Password = "brown"
	cfg.Admin.PasswordHint = "brown"
	cfg.Admin.JWTSecret = "test-secret-at-least-16"
	cfg.Admin.TokenExpiry = time.Hour
	cfg.Upload.MaxSize = 1024
	cfg.Upload.AllowedExtensions = []string{"jpg", "png"}
	cfg.Notifications.ToastDuration = time.Minute
	return cfg
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	store := persistence.NewMemoryStore()

	catalogService := catalog.NewService(store)
	categoryService := catalog.NewCategoryService(store)
	paymentService := payment.NewService(store)
	cartService := cart.NewService()
	checkoutService := checkout.NewService(cartService, paymentService)
	shellService := shell.NewService(cfg)
	uploadService := upload.NewService(cfg)
	assistantService := assistant.NewService(catalogService, echoChatter{})

	jwtManager := auth.NewJWTManager(cfg)

	router := gin.New()
	routes.Setup(
		router, jwtManager,
		handlers.NewShopHandler(catalogService, categoryService, shellService),
		handlers.NewCartHandler(cartService, catalogService, shellService),
		handlers.NewCheckoutHandler(checkoutService, shellService),
		handlers.NewAssistantHandler(assistantService),
		handlers.NewAdminHandler(cfg, jwtManager, catalogService, categoryService, paymentService, uploadService, shellService),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, session, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func login(t *testing.T, router *gin.Engine, session string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/login", session, "", gin.H{"password": "brown"})
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestFiltersIncludeAllPseudoCategory(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/filters", "s1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, []any{"All", "Women", "Men", "Unisex"}, body["filters"])
}

func TestProductSearchAndCategoryFilter(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/products?q=latte&category=Unisex", "s1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])

	w = doJSON(t, router, http.MethodGet, "/api/v1/products?q=latte&category=Women", "s1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["count"])
}

func TestAddToBagEmitsToast(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "s1", "", gin.H{"product_id": "2"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/notifications/current", "s1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	toast, ok := decode(t, w)["toast"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Added Chestnut Crossbody to bag", toast["message"])
	assert.Equal(t, "success", toast["type"])
}

func TestAddSoldOutToBagProducesNoToast(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "s1", "", gin.H{"product_id": "6"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/notifications/current", "s1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode(t, w)["toast"])
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	// Empty bag cannot proceed
	w := doJSON(t, router, http.MethodPost, "/api/v1/checkout/proceed", "s1", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "s1", "", gin.H{"product_id": "2"})

	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/proceed", "s1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Gift note without a message is blocked
	doJSON(t, router, http.MethodPost, "/api/v1/checkout/gift", "s1", "", gin.H{"isGift": true, "recipientName": "Maya"})
	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/continue", "s1", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	doJSON(t, router, http.MethodPost, "/api/v1/checkout/gift", "s1", "", gin.H{"isGift": true, "recipientName": "Maya", "message": "Enjoy!"})
	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/continue", "s1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/checkout/summary", "s1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode(t, w)["summary"].(map[string]any)
	assert.Equal(t, 65.0, summary["total"])
	assert.Equal(t, true, summary["gift_attached"])

	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/finish", "s1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Order & Gift Note placed successfully! 🎁", decode(t, w)["message"])

	// The bag is empty afterwards
	w = doJSON(t, router, http.MethodGet, "/api/v1/cart", "s1", "", nil)
	bag := decode(t, w)["bag"].(map[string]any)
	assert.Empty(t, bag["lines"])
}

func TestAdminLoginGate(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/admin/login/hint", "s1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "brown", decode(t, w)["hint"])

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/login", "s1", "", gin.H{"password": "beige"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The password check ignores case
	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/login", "s1", "", gin.H{"password": "BROWN"})
	assert.Equal(t, http.StatusOK, w.Code)

	// A successful login lands the session on the admin view
	w = doJSON(t, router, http.MethodGet, "/api/v1/shell", "s1", "", nil)
	assert.Equal(t, "ADMIN", decode(t, w)["view"])
}

func TestAdminCategoryDeleteNeedsConfirmation(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "s1")

	w := doJSON(t, router, http.MethodDelete, "/api/v1/admin/categories/Women", "s1", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/admin/categories/Women?confirm=true", "s1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, decode(t, w)["categories"], "Women")
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/products", "s1", "", gin.H{"name": "Bag"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminProductLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "s1")

	// Create with a string price from the form
	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/products", "s1", token, gin.H{
		"name": "Cocoa Satchel", "price": "110", "description": "Deep cocoa tones.", "category": "Women",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)["product"].(map[string]any)
	assert.Equal(t, 110.0, created["price"])
	id := created["id"].(string)

	// New products land at the top of the grid
	w = doJSON(t, router, http.MethodGet, "/api/v1/products", "s1", "", nil)
	products := decode(t, w)["products"].([]any)
	require.Len(t, products, 7)
	assert.Equal(t, id, products[0].(map[string]any)["id"])

	// Delete needs explicit confirmation
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/admin/products/%s", id), "s1", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/admin/products/%s?confirm=true", id), "s1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/products", "s1", "", nil)
	assert.Equal(t, float64(6), decode(t, w)["count"])
}

func TestAdminProductFormRequiresNamePriceDescription(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "s1")

	incomplete := []gin.H{
		{"name": "Bare Bag"},
		{"name": "Bare Bag", "price": "65"},
		{"name": "Bare Bag", "description": "A bag."},
		{"price": "65", "description": "A bag."},
	}
	for _, body := range incomplete {
		w := doJSON(t, router, http.MethodPost, "/api/v1/admin/products", "s1", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	// Nothing was created
	w := doJSON(t, router, http.MethodGet, "/api/v1/products", "s1", "", nil)
	assert.Equal(t, float64(6), decode(t, w)["count"])

	// Updates enforce the same required fields
	w = doJSON(t, router, http.MethodPut, "/api/v1/admin/products/2", "s1", token, gin.H{"name": "Bare Bag"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// All three present passes; the loose price is still coerced
	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/products", "s1", token, gin.H{
		"name": "Bare Bag", "price": "65", "description": "A bag.",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 65.0, decode(t, w)["product"].(map[string]any)["price"])
}

func TestAdminCategoryDuplicateIsSilent(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "s1")

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/categories", "s1", token, gin.H{"name": "Women"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["categories"].([]any), 3)
}

func TestAssistantConversation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/assistant/messages", "s1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	messages := decode(t, w)["messages"].([]any)
	require.Len(t, messages, 1)

	w = doJSON(t, router, http.MethodPost, "/api/v1/assistant/messages", "s1", "", gin.H{"text": "Any totes?"})
	require.Equal(t, http.StatusOK, w.Code)
	reply := decode(t, w)["reply"].(map[string]any)
	assert.Equal(t, "You asked: Any totes?", reply["text"])

	// Empty turns are rejected
	w = doJSON(t, router, http.MethodPost, "/api/v1/assistant/messages", "s1", "", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewsletterSubscribeToast(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/newsletter/subscribe", "s1", "", gin.H{"email": "maya@example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/notifications/current", "s1", "", nil)
	toast := decode(t, w)["toast"].(map[string]any)
	assert.Equal(t, "Subscribed with maya@example.com! 🍂", toast["message"])
}
