package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/Sudarshan-939/vimala-2/controllers/admin"
	bookingControllers "github.com/Sudarshan-939/vimala-2/controllers/booking"
	"github.com/Sudarshan-939/vimala-2/gateway"
	"github.com/Sudarshan-939/vimala-2/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires
// API-key middleware.
func SetupAdminRoutes(r *gin.Engine, gw *gateway.Client) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Equipment Management ───────────
		equipmentAdmin := adminGroup.Group("/equipment")
		{
			equipmentAdmin.POST("", adminController.CreateEquipment(gw))
			equipmentAdmin.DELETE("/:id", adminController.DeleteEquipment(gw))
		}

		// ─────────── Booking Management ───────────
		bookingAdmin := adminGroup.Group("/bookings")
		{
			bookingAdmin.GET("", bookingControllers.GetAllBookings(gw))
			bookingAdmin.PUT("/:bookingID", bookingControllers.UpdateBookingStatus(gw))
			bookingAdmin.GET("/export", bookingControllers.ExportBookingsToExcel(gw))
			bookingAdmin.GET("/ws", bookingControllers.BookingWebSocketHandler)
		}

		// ─────────── Gallery & Contact ───────────
		adminGroup.POST("/gallery", adminController.UpdateGallery(gw))
		adminGroup.POST("/contact", adminController.UpdateContactInfo(gw))
	}
}
