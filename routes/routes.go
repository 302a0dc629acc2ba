package routes

import (
	"time"

	"dayplanner/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterPageRoutes registers the server rendered page and its live feed.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.PageHandler)
	r.POST("/events", hb.SubmitFormHandler)
	r.GET("/ws", hb.LiveHandler)
}

// RegisterEventRoutes registers the JSON API under /api.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	api := r.Group("/api")
	api.Use(cors.New(corsConfig(allowedOrigins)))
	{
		api.GET("/events", hb.GetEventsHandler)
		api.POST("/events", hb.AddEventHandler)
		api.GET("/events/attempts", hb.GetAttemptsHandler)
	}
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		// Any origin may read the API, but never with the session cookie.
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
		cfg.AllowCredentials = true
	}
	return cfg
}

// RegisterRoutes registers all endpoints.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	RegisterHealthRoute(r, hb)
	RegisterPageRoutes(r, hb)
	RegisterEventRoutes(r, hb, allowedOrigins)
}
