// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fifi-bags/storefront-backend/internal/interfaces/http/handlers"
	"github.com/fifi-bags/storefront-backend/internal/interfaces/http/middleware"
	"github.com/fifi-bags/storefront-backend/internal/pkg/auth"
)

// Setup registers all API routes
func Setup(
	router *gin.Engine,
	jwtManager *auth.JWTManager,
	shopHandler *handlers.ShopHandler,
	cartHandler *handlers.CartHandler,
	checkoutHandler *handlers.CheckoutHandler,
	assistantHandler *handlers.AssistantHandler,
	adminHandler *handlers.AdminHandler,
) {
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Session())
	{
		// Storefront shell
		shell := v1.Group("/shell")
		{
			shell.GET("", shopHandler.GetShell)
			shell.POST("/view", shopHandler.SetView)
		}

		// Catalog browsing
		v1.GET("/products", shopHandler.ListProducts)
		v1.GET("/products/:id", shopHandler.GetProduct)
		v1.GET("/filters", shopHandler.ListFilters)

		// Newsletter form
		v1.POST("/newsletter/subscribe", shopHandler.Subscribe)

		// Toast notifications
		v1.GET("/notifications/current", shopHandler.CurrentNotification)

		// Shopping bag
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetBag)
			cart.POST("/items", cartHandler.AddToBag)
			cart.DELETE("/items/:lineId", cartHandler.RemoveFromBag)
			cart.DELETE("", cartHandler.ClearBag)
		}

		// Checkout flow
		checkout := v1.Group("/checkout")
		{
			checkout.GET("", checkoutHandler.GetState)
			checkout.POST("/proceed", checkoutHandler.Proceed)
			checkout.POST("/gift", checkoutHandler.SetGift)
			checkout.POST("/continue", checkoutHandler.Continue)
			checkout.POST("/back", checkoutHandler.Back)
			checkout.GET("/summary", checkoutHandler.GetSummary)
			checkout.POST("/finish", checkoutHandler.Finish)
			checkout.POST("/close", checkoutHandler.Close)
		}

		// Chat assistant widget
		assistantGroup := v1.Group("/assistant")
		{
			assistantGroup.GET("/messages", assistantHandler.GetTranscript)
			assistantGroup.POST("/messages", assistantHandler.SendMessage)
		}

		// Back-office gate (public side)
		admin := v1.Group("/admin")
		{
			admin.GET("/login/hint", adminHandler.GetHint)
			admin.POST("/login", adminHandler.Login)
		}

		// Back-office (requires the gate token)
		protected := v1.Group("/admin")
		protected.Use(middleware.AdminAuth(jwtManager))
		{
			protected.POST("/logout", adminHandler.Logout)

			protected.POST("/products", adminHandler.CreateProduct)
			protected.PUT("/products/:id", adminHandler.UpdateProduct)
			protected.DELETE("/products/:id", adminHandler.DeleteProduct)

			protected.GET("/categories", adminHandler.ListCategories)
			protected.POST("/categories", adminHandler.AddCategory)
			protected.DELETE("/categories/:name", adminHandler.DeleteCategory)

			protected.GET("/payment", adminHandler.GetPaymentSettings)
			protected.PUT("/payment", adminHandler.UpdatePaymentSettings)

			protected.POST("/products/form/open", adminHandler.OpenProductForm)
			protected.POST("/products/form/close", adminHandler.CloseProductForm)
			protected.POST("/products/form/image", adminHandler.AttachImage)
			protected.GET("/products/form/image", adminHandler.GetPendingImage)
		}
	}
}
