package notification

import (
	"context"
	"fmt"
	"time"

	"smartmeet/models"

	"go.uber.org/zap"
)

const inviteFileName = "invite.ics"

// NotificationService delivers meeting emails. Delivery failures are reported in the
// result, never as errors.
type NotificationService interface {
	SendMeetingEmail(ctx context.Context, recipient string, meeting *models.Meeting) models.EmailResult
	SendReminderEmail(ctx context.Context, recipient string, meeting *models.Meeting) models.EmailResult
}

// DefaultNotificationService renders the emails and hands them to a Mailer.
type DefaultNotificationService struct {
	mailer Mailer
	loc    *time.Location
	logger *zap.Logger
	now    func() time.Time
}

// NewDefaultNotificationService returns a notifier. loc is the zone meeting dates and
// times are expressed in.
func NewDefaultNotificationService(mailer Mailer, loc *time.Location, logger *zap.Logger) (*DefaultNotificationService, error) {
	if mailer == nil {
		return nil, fmt.Errorf("notification service initialization error: mailer is nil")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &DefaultNotificationService{mailer: mailer, loc: loc, logger: logger, now: time.Now}, nil
}

// SendMeetingEmail sends the invitation with an invite.ics attachment.
func (s *DefaultNotificationService) SendMeetingEmail(ctx context.Context, recipient string, meeting *models.Meeting) models.EmailResult {
	text, html, err := renderBodies(emailView{
		Heading:    "Meeting Invitation",
		Lead:       "Your meeting",
		LeadSuffix: " has been scheduled.",
		Meeting:    meeting,
	})
	if err != nil {
		return s.failed(recipient, fmt.Errorf("failed to render invitation: %w", err))
	}

	msg := Message{
		To:      recipient,
		Subject: "Meeting Scheduled: " + meeting.Title,
		Text:    text,
		HTML:    html,
	}

	// An unparseable date or time only costs the attachment.
	if invite, err := BuildInvite(meeting, s.loc, s.now()); err != nil {
		s.logger.Warn("Skipping calendar invite", zap.String("meetingId", meeting.ID), zap.Error(err))
	} else {
		msg.Attachments = append(msg.Attachments, Attachment{
			Name:        inviteFileName,
			ContentType: "text/calendar; charset=utf-8; method=PUBLISH",
			Data:        invite,
		})
	}

	return s.deliver(ctx, msg)
}

// SendReminderEmail sends a short reminder shortly before the meeting starts.
func (s *DefaultNotificationService) SendReminderEmail(ctx context.Context, recipient string, meeting *models.Meeting) models.EmailResult {
	text, html, err := renderBodies(emailView{
		Heading:    "Meeting Reminder",
		Lead:       "Reminder: your meeting",
		LeadSuffix: fmt.Sprintf(" starts at %s.", meeting.Time),
		Meeting:    meeting,
	})
	if err != nil {
		return s.failed(recipient, fmt.Errorf("failed to render reminder: %w", err))
	}

	return s.deliver(ctx, Message{
		To:      recipient,
		Subject: fmt.Sprintf("Reminder: %s at %s", meeting.Title, meeting.Time),
		Text:    text,
		HTML:    html,
	})
}

func (s *DefaultNotificationService) deliver(ctx context.Context, msg Message) models.EmailResult {
	if err := s.mailer.Send(ctx, msg); err != nil {
		return s.failed(msg.To, err)
	}
	s.logger.Info("Email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return models.EmailResult{Success: true, Email: msg.To, Status: models.EmailStatusSent}
}

func (s *DefaultNotificationService) failed(recipient string, err error) models.EmailResult {
	s.logger.Error("Error sending email", zap.String("to", recipient), zap.Error(err))
	return models.EmailResult{
		Success: false,
		Email:   recipient,
		Status:  models.EmailStatusFailed,
		Error:   err.Error(),
	}
}
