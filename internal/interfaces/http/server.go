// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

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
	"github.com/fifi-bags/storefront-backend/internal/interfaces/http/middleware"
	"github.com/fifi-bags/storefront-backend/internal/interfaces/http/routes"
	"github.com/fifi-bags/storefront-backend/internal/pkg/auth"
)

// Server wraps the HTTP server with all its dependencies
type Server struct {
	config     *config.Config
	router     *gin.Engine
	httpServer *http.Server
	health     func() error
}

// NewServer builds the domain services, handlers, and router
func NewServer(cfg *config.Config, store persistence.Store, health func() error, chatter assistant.Chatter) *Server {
	// Set gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	if len(cfg.Security.TrustedProxies) > 0 {
		if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
			logrus.WithError(err).Warn("Failed to set trusted proxies")
		}
	}

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(cfg))
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.SecurityHeaders())

	// Domain services
	catalogService := catalog.NewService(store)
	categoryService := catalog.NewCategoryService(store)
	paymentService := payment.NewService(store)
	cartService := cart.NewService()
	checkoutService := checkout.NewService(cartService, paymentService)
	shellService := shell.NewService(cfg)
	uploadService := upload.NewService(cfg)
	assistantService := assistant.NewService(catalogService, chatter)

	jwtManager := auth.NewJWTManager(cfg)

	// Handlers
	shopHandler := handlers.NewShopHandler(catalogService, categoryService, shellService)
	cartHandler := handlers.NewCartHandler(cartService, catalogService, shellService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, shellService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	adminHandler := handlers.NewAdminHandler(
		cfg, jwtManager, catalogService, categoryService,
		paymentService, uploadService, shellService,
	)

	server := &Server{
		config: cfg,
		router: router,
		health: health,
	}

	router.GET("/health", server.healthCheck)

	routes.Setup(
		router, jwtManager,
		shopHandler, cartHandler, checkoutHandler, assistantHandler, adminHandler,
	)

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server
}

// Start starts the HTTP server
func (s *Server) Start() error {
	logrus.WithFields(logrus.Fields{
		"port":        s.config.Server.Port,
		"environment": s.config.App.Environment,
	}).Info("Starting HTTP server")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logrus.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// healthCheck reports service and storage health
func (s *Server) healthCheck(c *gin.Context) {
	status := http.StatusOK
	overall := "ok"
	storage := "ok"

	if s.health != nil {
		if err := s.health(); err != nil {
			status = http.StatusServiceUnavailable
			overall = "degraded"
			storage = fmt.Sprintf("unavailable: %v", err)
		}
	}

	c.JSON(status, gin.H{
		"status":    overall,
		"storage":   storage,
		"version":   s.config.App.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
