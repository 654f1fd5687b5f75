package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smartmeet/database/repository"
	"smartmeet/models"
	"smartmeet/services/calendar"
	ai "smartmeet/services/intelligence"
	"smartmeet/services/notification"
	"smartmeet/services/tasks"
	"smartmeet/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidRequest = errors.New("invalid schedule request")

// SchedulingService turns a request into a stored meeting and notifies its recipients.
type SchedulingService interface {
	Schedule(ctx context.Context, query, emails string) (*models.ScheduleResult, error)
	ListMeetings(ctx context.Context) ([]models.Meeting, error)
	ListEmailLogs(ctx context.Context) ([]models.EmailLog, error)
	Stats(ctx context.Context) (models.Stats, error)
}

type DefaultSchedulingService struct {
	interpreter ai.MeetingInterpreter
	notifier    notification.NotificationService
	meetings    repository.MeetingRepository
	loc         *time.Location
	logger      *zap.Logger
	now         func() time.Time

	calendar     calendar.CalendarService
	reminders    tasks.ReminderScheduler
	reminderLead time.Duration
}

func NewDefaultSchedulingService(
	interpreter ai.MeetingInterpreter,
	notifier notification.NotificationService,
	meetings repository.MeetingRepository,
	loc *time.Location,
	logger *zap.Logger,
) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		interpreter: interpreter,
		notifier:    notifier,
		meetings:    meetings,
		loc:         loc,
		logger:      logger,
		now:         time.Now,
	}
}

// WithCalendar mirrors new meetings into the connected calendar.
func (s *DefaultSchedulingService) WithCalendar(cal calendar.CalendarService) *DefaultSchedulingService {
	s.calendar = cal
	return s
}

// WithReminders queues a reminder lead before each meeting starts.
func (s *DefaultSchedulingService) WithReminders(r tasks.ReminderScheduler, lead time.Duration) *DefaultSchedulingService {
	s.reminders = r
	s.reminderLead = lead
	return s
}

// ParseRecipients splits a comma-separated list, trimming blanks.
func ParseRecipients(emails string) []string {
	var out []string
	for _, e := range strings.Split(emails, ",") {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

func (s *DefaultSchedulingService) Schedule(ctx context.Context, query, emails string) (*models.ScheduleResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidRequest)
	}
	recipients := ParseRecipients(emails)
	if len(recipients) == 0 {
		return nil, fmt.Errorf("%w: at least one email is required", ErrInvalidRequest)
	}

	s.logger.Info("Scheduling meeting request", zap.String("query", query), zap.Strings("emails", recipients))

	meeting := s.interpreter.Interpret(ctx, query)
	meeting.Recipients = recipients

	results := make([]models.EmailResult, 0, len(recipients))
	successful := 0
	for _, recipient := range recipients {
		result := s.notifier.SendMeetingEmail(ctx, recipient, meeting)
		results = append(results, result)
		if result.Success {
			successful++
		}
		if err := s.meetings.AppendEmailLog(ctx, s.emailLog(meeting, result)); err != nil {
			s.logger.Error("Failed to record email log", zap.String("recipient", recipient), zap.Error(err))
		}
	}

	if err := s.meetings.SaveMeeting(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to save meeting: %w", err)
	}
	s.logger.Info("Meeting saved", zap.String("id", meeting.ID), zap.Int("emailsSent", successful))

	s.attachCalendarEvent(ctx, meeting)
	s.scheduleReminder(ctx, meeting)

	return &models.ScheduleResult{
		Meeting:          meeting,
		SuccessfulEmails: successful,
		TotalEmails:      len(recipients),
		EmailResults:     results,
	}, nil
}

func (s *DefaultSchedulingService) ListMeetings(ctx context.Context) ([]models.Meeting, error) {
	return s.meetings.ListMeetings(ctx)
}

func (s *DefaultSchedulingService) ListEmailLogs(ctx context.Context) ([]models.EmailLog, error) {
	return s.meetings.ListEmailLogs(ctx)
}

func (s *DefaultSchedulingService) Stats(ctx context.Context) (models.Stats, error) {
	return s.meetings.Stats(ctx)
}

func (s *DefaultSchedulingService) emailLog(meeting *models.Meeting, result models.EmailResult) models.EmailLog {
	now := s.now().In(s.loc)
	status := result.Status
	if status == "" {
		status = models.EmailStatusSent
	}
	return models.EmailLog{
		ID:        uuid.New().String(),
		Recipient: result.Email,
		Subject:   "Meeting Invitation: " + meeting.Title,
		Status:    status,
		Time:      now.Format("03:04 PM"),
		Date:      now.Format("Jan 2, 2006"),
		Timestamp: now,
		MeetingID: meeting.ID,
		Error:     result.Error,
	}
}

// attachCalendarEvent never fails the request; calendar problems are only logged.
func (s *DefaultSchedulingService) attachCalendarEvent(ctx context.Context, meeting *models.Meeting) {
	if s.calendar == nil {
		return
	}
	ref, err := s.calendar.CreateEvent(ctx, meeting)
	if err != nil {
		s.logger.Warn("Calendar event creation failed", zap.String("meetingId", meeting.ID), zap.Error(err))
		return
	}
	if ref == nil {
		return
	}
	meeting.CalendarEvent = ref
	if err := s.meetings.AttachCalendarEvent(ctx, meeting.ID, *ref); err != nil {
		s.logger.Warn("Failed to record calendar event", zap.String("meetingId", meeting.ID), zap.Error(err))
	}
}

// scheduleReminder skips meetings whose reminder time has already passed.
func (s *DefaultSchedulingService) scheduleReminder(ctx context.Context, meeting *models.Meeting) {
	if s.reminders == nil {
		return
	}
	start, err := utils.MeetingStart(meeting.Date, meeting.Time, s.loc)
	if err != nil {
		s.logger.Warn("Cannot schedule reminder", zap.String("meetingId", meeting.ID), zap.Error(err))
		return
	}
	fireAt := start.Add(-s.reminderLead)
	if !fireAt.After(s.now()) {
		s.logger.Debug("Reminder time already passed", zap.String("meetingId", meeting.ID))
		return
	}

	payload := models.ReminderPayload{
		MeetingID:  meeting.ID,
		Title:      meeting.Title,
		Recipients: meeting.Recipients,
		StartsAt:   start,
	}
	if err := s.reminders.ScheduleReminder(ctx, payload, fireAt); err != nil {
		s.logger.Warn("Failed to schedule reminder", zap.String("meetingId", meeting.ID), zap.Error(err))
	}
}
