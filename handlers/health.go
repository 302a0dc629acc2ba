package handlers

import (
	"net/http"

	"dayplanner/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness plus the last dependency check.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"message":      "Hi, I'm dayplanner",
		"dependencies": utils.GetHealthStatus(),
	})
}
