// File: smartmeet/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartmeet/config"
	"smartmeet/cron"
	"smartmeet/database"
	"smartmeet/database/repository"
	"smartmeet/handlers"
	"smartmeet/middleware"
	"smartmeet/routes"
	"smartmeet/services/calendar"
	ai "smartmeet/services/intelligence"
	"smartmeet/services/notification"
	"smartmeet/services/scheduling"
	"smartmeet/services/tasks"
	"smartmeet/services/user"
	"smartmeet/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	// repositories.
	var db *mongo.Database
	if cfg.StoreBackend == repository.BackendMongo {
		database.InitDB()
		db = database.Database()
	}
	stores, err := repository.NewStores(cfg.StoreBackend, db)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize stores: %v", err)
	}

	// language model. Without a key every request takes the rule-based path.
	var completer ai.Completer
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
		}
		defer gemini.Close()
		completer = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set, using rule-based extraction only")
	}

	clock := ai.NewReferenceClock(cfg.TimezoneOffsetMinutes, cfg.TimezoneLabel)
	interpreter := ai.NewDefaultInterpreter(completer, clock, cfg.LLMTimeout, logger)

	// services.
	var mailer notification.Mailer
	if cfg.SMTPHost != "" {
		mailer = notification.NewSMTPMailer(notification.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.EmailFrom,
		}, logger)
	} else {
		logger.Warn("SMTP_HOST not set, emails will only be logged")
		mailer = notification.NewLogMailer(logger)
	}
	notificationService, err := notification.NewDefaultNotificationService(mailer, clock.Location(), logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	var redisClients []*redis.Client
	var tokenStore calendar.TokenStore
	if cfg.TokenStore == "redis" {
		tokenClient := utils.GetTokenCacheClient()
		redisClients = append(redisClients, tokenClient)
		tokenStore = calendar.NewRedisTokenStore(tokenClient)
	} else {
		tokenStore = calendar.NewMemoryTokenStore()
	}
	calendarService := calendar.NewGoogleCalendarService(calendar.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURI,
	}, tokenStore, clock.Location(), logger)

	schedulingService := scheduling.NewDefaultSchedulingService(
		interpreter,
		notificationService,
		stores.Meetings,
		clock.Location(),
		logger,
	).WithCalendar(calendarService)

	var reminderWorker *asynq.Server
	if cfg.RemindersEnabled {
		client := asynq.NewClient(cron.ReminderQueueOpt())
		defer client.Close()
		schedulingService.WithReminders(tasks.NewAsynqReminderScheduler(client, logger), cfg.ReminderLead)
		reminderWorker = cron.InitReminderWorker(notificationService, stores.Meetings, logger)
	}

	userService := user.NewDefaultUserService(stores.Users, logger)

	utils.StartHealthMonitor(redisClients, database.MongoClient)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin, logger))

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewMeetingHandler(schedulingService),
		handlers.NewUserHandler(userService),
		handlers.NewCalendarHandler(calendarService, cfg.FrontendURL),
	)
	routes.RegisterRoutes(router, handlerBundle, cfg.FrontendURL)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("Starting SmartMeet server",
		zap.String("addr", srv.Addr),
		zap.String("store", cfg.StoreBackend),
		zap.String("timezone", cfg.TimezoneLabel))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if reminderWorker != nil {
		reminderWorker.Shutdown()
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to close database: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
