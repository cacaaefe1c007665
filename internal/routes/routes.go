package routes

import (
	"velour_storefront/internal/handlers"
	"velour_storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Authentification (proxy vers l'API commerce, jetons gardés en session)
	api.POST("/login", handlers.Login)
	api.POST("/signup", handlers.SignUp)
	api.POST("/admin/login", handlers.AdminLogin)
	api.POST("/logout", handlers.Logout)
	api.POST("/forgot-password", handlers.ForgotPassword)
	api.POST("/reset-password", handlers.ResetPassword)

	// Catalogue public
	api.GET("/products", handlers.GetProducts)
	api.GET("/products/:id", handlers.GetProductByID)

	authed := api.Group("", middleware.AuthRequired())
	{
		authed.GET("/me", handlers.Me)

		// Panier
		authed.GET("/cart", handlers.GetCart)
		authed.GET("/cart/ws", handlers.CartWebSocket)
		authed.POST("/cart/add/:productId", handlers.AddToCart)
		authed.PATCH("/cart/reduce/:productId", handlers.ReduceQuantity)
		authed.DELETE("/cart/delete/:productId", handlers.DeleteCartItem)

		// Adresses enregistrées
		authed.GET("/addresses", handlers.ListAddresses)
		authed.POST("/addresses", handlers.AddAddress)
		authed.PATCH("/addresses/:id", handlers.UpdateAddress)

		// Checkout
		authed.GET("/checkout", handlers.GetCheckout)
		authed.POST("/checkout/begin", handlers.BeginCheckout)
		authed.POST("/checkout/address", handlers.SetCheckoutAddress)
		authed.POST("/checkout/confirm", handlers.ConfirmCheckout)
		authed.POST("/checkout/complete", handlers.CompleteCheckout)
		authed.POST("/checkout/dismiss", handlers.DismissCheckout)
		authed.POST("/checkout/cancel", handlers.CancelCheckout)

		// Commandes (lecture seule côté client)
		authed.GET("/orders", handlers.GetMyOrders)
		authed.GET("/orders/:id", handlers.GetOrderByID)

		// Back-office
		admin := authed.Group("/admin", middleware.AdminRequired)
		{
			admin.GET("/orders", handlers.GetAllOrders)
			admin.PATCH("/orders/:id/status", handlers.UpdateOrderStatus)
			admin.POST("/products", handlers.CreateProduct)
			admin.PATCH("/products/:id", handlers.UpdateProduct)
			admin.DELETE("/products/:id", handlers.DeleteProduct)
		}
	}
}
