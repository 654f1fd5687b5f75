package handlers

import (
	"errors"
	"net/http"

	"smartmeet/models"
	"smartmeet/services/scheduling"
	"smartmeet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MeetingHandler struct {
	svc scheduling.SchedulingService
}

func NewMeetingHandler(svc scheduling.SchedulingService) *MeetingHandler {
	return &MeetingHandler{svc: svc}
}

// ScheduleMeetingHandler handles POST /api/schedule.
func (h *MeetingHandler) ScheduleMeetingHandler(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.svc.Schedule(c.Request.Context(), req.Query, req.Emails)
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidRequest) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		getLogger(c).Error("Error scheduling meeting", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to schedule meeting", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *MeetingHandler) GetMeetingsHandler(c *gin.Context) {
	meetings, err := h.svc.ListMeetings(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch meetings", err.Error())
		return
	}
	if meetings == nil {
		meetings = []models.Meeting{}
	}
	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}

func (h *MeetingHandler) GetEmailLogsHandler(c *gin.Context) {
	logs, err := h.svc.ListEmailLogs(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch email logs", err.Error())
		return
	}
	if logs == nil {
		logs = []models.EmailLog{}
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func (h *MeetingHandler) GetStatsHandler(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
