package handlers

import (
	"net/http"
	"strings"

	"smartmeet/services/calendar"
	"smartmeet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CalendarHandler struct {
	svc         calendar.CalendarService
	frontendURL string
}

func NewCalendarHandler(svc calendar.CalendarService, frontendURL string) *CalendarHandler {
	return &CalendarHandler{svc: svc, frontendURL: strings.TrimRight(frontendURL, "/")}
}

// AuthURLHandler returns the Google consent URL.
func (h *CalendarHandler) AuthURLHandler(c *gin.Context) {
	url, err := h.svc.AuthURL()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate authorization URL", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"authUrl": url})
}

// CallbackHandler finishes the OAuth flow and sends the browser back to the settings page.
func (h *CalendarHandler) CallbackHandler(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.String(http.StatusBadRequest, "Authorization code missing")
		return
	}

	if err := h.svc.HandleCallback(c.Request.Context(), code); err != nil {
		getLogger(c).Error("Error handling OAuth callback", zap.Error(err))
		c.Redirect(http.StatusFound, h.frontendURL+"/settings?calendar=error")
		return
	}
	c.Redirect(http.StatusFound, h.frontendURL+"/settings?calendar=connected")
}

func (h *CalendarHandler) StatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Status(c.Request.Context()))
}

func (h *CalendarHandler) DisconnectHandler(c *gin.Context) {
	if err := h.svc.Disconnect(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to disconnect calendar", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Calendar disconnected"})
}
