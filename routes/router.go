package routes

import (
	"dayplanner/config"
	"dayplanner/handlers"
	"dayplanner/middleware"
	"dayplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with the full middleware chain and every route.
func NewRouter(cfg config.Config, logger *zap.Logger, hb *handlers.HandlerBundle) *gin.Engine {
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Warn("Invalid TRUSTED_PROXIES, trusting none", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
		router.SetTrustedProxies(nil)
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	router.Use(middleware.SessionMiddleware(cfg.SessionCookie, cfg.SessionTTL, cfg.Env == "production"))

	RegisterRoutes(router, hb, cfg.CORSAllowedOrigins)
	return router
}
