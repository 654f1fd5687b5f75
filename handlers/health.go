package handlers

import (
	"net/http"
	"time"

	"smartmeet/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler is the plain-text liveness probe.
func HealthHandler(c *gin.Context) {
	c.String(http.StatusOK, "SmartMeet Backend is running")
}

// APIHealthHandler also reports the last backend check, when a monitor is running.
func APIHealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"timestamp":    time.Now(),
		"dependencies": utils.GetHealthStatus(),
	})
}
