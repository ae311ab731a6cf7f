package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sudarshan-939/vimala-2/gateway"
	"github.com/Sudarshan-939/vimala-2/session"
)

// SetupRoutes is the single entry-point that wires up the public,
// session and admin route groups.
func SetupRoutes(r *gin.Engine, gw *gateway.Client, sessions *session.Manager) {
	// Public routes (catalog browsing + auth, no middleware)
	SetupPublicRoutes(r, gw)

	// Session routes (guest-JWT-protected cart and checkout)
	SetupSessionRoutes(r, gw, sessions)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, gw)
}
