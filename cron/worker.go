package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"smartmeet/config"
	"smartmeet/database/repository"
	"smartmeet/models"
	"smartmeet/services/notification"
	"smartmeet/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderQueueOpt is the asynq connection for the reminder queue.
func ReminderQueueOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// InitReminderWorker runs the async worker in background. The returned server is used for
// shutdown.
func InitReminderWorker(notifSvc notification.NotificationService, meetings repository.MeetingRepository, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		ReminderQueueOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeMeetingReminder, NewReminderHandler(notifSvc, meetings, logger))

	go monitorRedisConnection(logger)

	go func() {
		logger.Info("[ReminderWorker] Starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil || errors.Is(err, asynq.ErrServerClosed) {
				return
			}
			logger.Error("[ReminderWorker] Failed to start worker",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("[ReminderWorker] Max retry attempts reached")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// NewReminderHandler sends the reminder email to every recipient of the meeting. A deleted
// meeting drops the task; a failed delivery is retried by asynq.
func NewReminderHandler(notifSvc notification.NotificationService, meetings repository.MeetingRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("[ReminderHandler] Invalid payload", zap.Error(err))
			return fmt.Errorf("invalid reminder payload: %v: %w", err, asynq.SkipRetry)
		}

		meeting, err := meetings.GetMeeting(ctx, p.MeetingID)
		if errors.Is(err, repository.ErrMeetingNotFound) {
			logger.Warn("[ReminderHandler] Meeting no longer exists", zap.String("meetingId", p.MeetingID))
			return nil
		}
		if err != nil {
			return err
		}

		logger.Info("[ReminderHandler] Triggering reminder",
			zap.String("meetingId", p.MeetingID),
			zap.String("title", p.Title),
			zap.Int("recipients", len(p.Recipients)))

		failed := 0
		for _, recipient := range p.Recipients {
			if result := notifSvc.SendReminderEmail(ctx, recipient, meeting); !result.Success {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("reminder delivery failed for %d of %d recipients", failed, len(p.Recipients))
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection(logger *zap.Logger) {
	opt := ReminderQueueOpt()
	client := redis.NewClient(&redis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("[ReminderWorker] Redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
