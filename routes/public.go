package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sudarshan-939/vimala-2/auth"
	catalogControllers "github.com/Sudarshan-939/vimala-2/controllers/catalog"
	"github.com/Sudarshan-939/vimala-2/gateway"
)

// SetupPublicRoutes registers the browse and auth endpoints anyone
// can hit without a session.
func SetupPublicRoutes(r *gin.Engine, gw *gateway.Client) {
	// ──────────────── Browse ────────────────
	r.GET("/catalog", catalogControllers.GetCatalog(gw)) // GET /catalog?type=&q=
	r.GET("/gallery", catalogControllers.GetGallery(gw))
	r.GET("/contact", catalogControllers.GetContactInfo(gw))

	// ──────────────── Auth ────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/session", auth.CreateSession())
		authGroup.POST("/login", auth.Login(gw))
		authGroup.POST("/admin-login", auth.AdminLogin(gw))
		authGroup.POST("/google", auth.GoogleLogin(gw))
		authGroup.POST("/register", auth.Register(gw))
	}
}
