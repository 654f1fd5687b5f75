package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"smartmeet/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeMeetingReminder = "meeting:reminder"

// NewReminderTask builds a reminder task that fires at fireAt. The task ID is derived from
// the meeting so a meeting is never reminded twice.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeMeetingReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID("reminder:" + payload.MeetingID),
		asynq.MaxRetry(3),
	}

	return task, opts, nil
}

// ReminderScheduler queues a reminder for later delivery.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

// AsynqReminderScheduler enqueues reminders on the Redis-backed asynq queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
	logger *zap.Logger
}

func NewAsynqReminderScheduler(client *asynq.Client, logger *zap.Logger) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: client, logger: logger}
}

func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	info, err := s.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder for meeting %s: %w", payload.MeetingID, err)
	}
	s.logger.Info("Reminder scheduled",
		zap.String("meetingId", payload.MeetingID),
		zap.String("taskId", info.ID),
		zap.Time("fireAt", fireAt))
	return nil
}
