package routes

import (
	"github.com/gin-gonic/gin"

	bookingControllers "github.com/Sudarshan-939/vimala-2/controllers/booking"
	cartControllers "github.com/Sudarshan-939/vimala-2/controllers/cart"
	checkoutControllers "github.com/Sudarshan-939/vimala-2/controllers/checkout"
	"github.com/Sudarshan-939/vimala-2/gateway"
	"github.com/Sudarshan-939/vimala-2/middleware"
	"github.com/Sudarshan-939/vimala-2/session"
)

// SetupSessionRoutes registers all "/session/*" endpoints. Requires
// the guest session JWT.
func SetupSessionRoutes(r *gin.Engine, gw *gateway.Client, sessions *session.Manager) {
	sessionGroup := r.Group("/session")
	sessionGroup.Use(middleware.ValidateSession)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := sessionGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(sessions))
			cartGroup.POST("", cartControllers.AddCartItem(sessions, gw))
			cartGroup.POST("/increment", cartControllers.IncrementCartItem(sessions, gw))
			cartGroup.POST("/decrement", cartControllers.DecrementCartItem(sessions))
			cartGroup.DELETE("/:equipment_id", cartControllers.RemoveCartItem(sessions))
			cartGroup.DELETE("", cartControllers.ClearCart(sessions))
		}

		// ──────────────── Checkout ────────────────
		checkoutGroup := sessionGroup.Group("/checkout")
		{
			checkoutGroup.POST("/open", checkoutControllers.OpenCart(sessions))
			checkoutGroup.POST("/details", checkoutControllers.ProceedToDetails(sessions))
			checkoutGroup.POST("/submit", checkoutControllers.Submit(sessions, bookingControllers.BroadcastNewBooking))
			checkoutGroup.GET("/receipt", checkoutControllers.GetReceipt(sessions))
			checkoutGroup.POST("/close", checkoutControllers.Close(sessions))
		}

		// ──────────────── My Bookings ────────────────
		sessionGroup.GET("/bookings", bookingControllers.GetUserBookings(gw))
	}
}
