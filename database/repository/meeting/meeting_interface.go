package meetingRepo

import (
	"context"
	"errors"
	"math"

	"smartmeet/models"
)

var ErrMeetingNotFound = errors.New("meeting not found")

// MeetingRepository stores scheduled meetings and the email attempts made for them.
type MeetingRepository interface {
	// SaveMeeting inserts a new meeting.
	SaveMeeting(ctx context.Context, meeting *models.Meeting) error
	// ListMeetings returns all meetings in insertion order.
	ListMeetings(ctx context.Context) ([]models.Meeting, error)
	// GetMeeting returns a meeting by ID or ErrMeetingNotFound.
	GetMeeting(ctx context.Context, id string) (*models.Meeting, error)
	// AttachCalendarEvent records the calendar event created for a meeting.
	AttachCalendarEvent(ctx context.Context, id string, ref models.CalendarEventRef) error
	// AppendEmailLog records one delivery attempt.
	AppendEmailLog(ctx context.Context, entry models.EmailLog) error
	// ListEmailLogs returns all delivery attempts in insertion order.
	ListEmailLogs(ctx context.Context) ([]models.EmailLog, error)
	// Stats summarises meetings and delivery attempts.
	Stats(ctx context.Context) (models.Stats, error)
}

// computeStats derives the dashboard numbers from the meeting count and the email logs.
func computeStats(meetings int, logs []models.EmailLog) models.Stats {
	sent := 0
	recipients := make(map[string]struct{}, len(logs))
	for _, l := range logs {
		if l.Status == models.EmailStatusSent {
			sent++
		}
		recipients[l.Recipient] = struct{}{}
	}

	rate := 0
	if len(logs) > 0 {
		rate = int(math.Round(float64(sent) / float64(len(logs)) * 100))
	}
	return models.Stats{
		MeetingsScheduled:  meetings,
		EmailsSent:         sent,
		SuccessRate:        rate,
		ActiveParticipants: len(recipients),
	}
}
