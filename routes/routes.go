package routes

import (
	"time"

	"smartmeet/handlers"
	"smartmeet/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterMeetingRoutes registers the scheduling and dashboard endpoints.
func RegisterMeetingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/schedule", hb.ScheduleMeetingHandler)
		api.GET("/meetings", hb.GetMeetingsHandler)
		api.GET("/email-logs", hb.GetEmailLogsHandler)
		api.GET("/stats", hb.GetStatsHandler)
	}
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.SignupHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.GET("/me", middleware.JWTAuthMiddleware(), hb.MeHandler)
	}
}

// RegisterCalendarRoutes registers the Google Calendar connection endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.GET("/auth", hb.CalendarAuthHandler)
		api.GET("/callback", hb.CalendarCallbackHandler)
		api.GET("/status", hb.CalendarStatusHandler)
		api.POST("/disconnect", hb.CalendarDisconnectHandler)
	}
}

// RegisterHealthRoutes registers the health-check endpoints.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
	r.GET("/api/health", handlers.APIHealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, frontendURL string) {
	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	if frontendURL != "" {
		origins = append(origins, frontendURL)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r)
	RegisterMeetingRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
}
