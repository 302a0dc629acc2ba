package handlers

import (
	"dayplanner/middleware"
	"dayplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request logger from the Gin context, tagged with the session.
func getLogger(c *gin.Context) *zap.Logger {
	logger := utils.RequestLogger(c)
	if sid := middleware.SessionID(c); sid != "" {
		logger = logger.With(zap.String("session_id", sid))
	}
	return logger
}
