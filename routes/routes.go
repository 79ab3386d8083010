package routes

import (
	"time"

	"oxywell/handlers"
	"oxywell/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDirectoryRoutes registers the public provider directory endpoints.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("", hb.Providers.ListProvidersHandler)
		api.GET("/search", hb.Providers.SearchProvidersHandler)
		api.GET("/nearby", hb.Providers.NearbyProvidersHandler)
		api.GET("/:id", hb.Providers.GetProviderByIDHandler)
	}
}

// RegisterChamberRoutes registers the chamber catalog and checkout endpoints.
func RegisterChamberRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chambers")
	{
		api.GET("", hb.Chambers.ListChambersHandler)
		api.GET("/:id", hb.Chambers.GetChamberHandler)
		api.POST("/:id/checkout", hb.Chambers.ChamberCheckoutHandler)
	}
}

// RegisterContentRoutes registers the guides and blog endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/content")
	{
		api.GET("/guides", hb.Content.ListGuidesHandler)
		api.GET("/guides/:slug", hb.Content.GetGuideHandler)
		api.GET("/posts", hb.Content.ListPostsHandler)
		api.GET("/posts/:slug", hb.Content.GetPostHandler)
	}
}

// RegisterUserRoutes registers profile and bookmark endpoints. These
// require a verified Firebase ID token.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/me")
	api.Use(middleware.FirebaseAuthMiddleware(hb.AuthClient))
	{
		api.POST("/sync", hb.Users.SyncProfileHandler)
		api.GET("", hb.Users.GetProfileHandler)
		api.POST("/bookmarks/:kind/:itemId", hb.Users.AddBookmarkHandler)
		api.DELETE("/bookmarks/:kind/:itemId", hb.Users.RemoveBookmarkHandler)
		api.DELETE("", hb.Users.DeleteAccountHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/login", handlers.AdminLoginHandler)

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.JWTAuthAdminMiddleware())
	{
		adminGroup.POST("/providers", hb.Providers.CreateProviderHandler)
		adminGroup.PATCH("/providers/:id", hb.Providers.UpdateProviderHandler)
		adminGroup.DELETE("/providers/:id", hb.Providers.DeleteProviderHandler)
		adminGroup.POST("/providers/regeocode", handlers.RegeocodeHandler(hb.JobClient))

		adminGroup.POST("/chambers", hb.Chambers.CreateChamberHandler)
		adminGroup.PUT("/chambers/:id", hb.Chambers.UpdateChamberHandler)
		adminGroup.DELETE("/chambers/:id", hb.Chambers.DeleteChamberHandler)

		adminGroup.POST("/posts", hb.Content.CreatePostHandler)
		adminGroup.POST("/media", hb.Media.UploadMediaHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDirectoryRoutes(r, hb)
	RegisterChamberRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
