package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Meeting endpoints
	ScheduleMeetingHandler gin.HandlerFunc
	GetMeetingsHandler     gin.HandlerFunc
	GetEmailLogsHandler    gin.HandlerFunc
	GetStatsHandler        gin.HandlerFunc

	// User endpoints
	SignupHandler gin.HandlerFunc
	LoginHandler  gin.HandlerFunc
	MeHandler     gin.HandlerFunc

	// Calendar endpoints
	CalendarAuthHandler       gin.HandlerFunc
	CalendarCallbackHandler   gin.HandlerFunc
	CalendarStatusHandler     gin.HandlerFunc
	CalendarDisconnectHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handler structs into a bundle.
func NewHandlerBundle(meetings *MeetingHandler, users *UserHandler, cal *CalendarHandler) *HandlerBundle {
	return &HandlerBundle{
		ScheduleMeetingHandler: meetings.ScheduleMeetingHandler,
		GetMeetingsHandler:     meetings.GetMeetingsHandler,
		GetEmailLogsHandler:    meetings.GetEmailLogsHandler,
		GetStatsHandler:        meetings.GetStatsHandler,

		SignupHandler: users.SignupHandler,
		LoginHandler:  users.LoginHandler,
		MeHandler:     users.MeHandler,

		CalendarAuthHandler:       cal.AuthURLHandler,
		CalendarCallbackHandler:   cal.CallbackHandler,
		CalendarStatusHandler:     cal.StatusHandler,
		CalendarDisconnectHandler: cal.DisconnectHandler,
	}
}
