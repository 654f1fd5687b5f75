package calendar

import (
	"time"

	"smartmeet/models"
	"smartmeet/utils"

	gcal "google.golang.org/api/calendar/v3"
)

const (
	defaultSummary     = "Scheduled Meeting"
	defaultDescription = "SmartMeet scheduled meeting"
)

// BuildEvent maps a meeting onto a Calendar v3 event. Attendees are the email recipients.
func BuildEvent(meeting *models.Meeting, loc *time.Location) (*gcal.Event, error) {
	start, end, err := utils.MeetingWindow(meeting.Date, meeting.Time, meeting.Duration, loc)
	if err != nil {
		return nil, err
	}

	summary := meeting.Title
	if summary == "" {
		summary = defaultSummary
	}
	description := defaultDescription
	if meeting.MeetingLink != "" {
		description = "Join meeting: " + meeting.MeetingLink
	}

	attendees := make([]*gcal.EventAttendee, 0, len(meeting.Recipients))
	for _, email := range meeting.Recipients {
		attendees = append(attendees, &gcal.EventAttendee{Email: email})
	}

	return &gcal.Event{
		Summary:     summary,
		Description: description,
		Location:    meeting.MeetingLink,
		Start:       &gcal.EventDateTime{DateTime: start.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: end.Format(time.RFC3339)},
		Attendees:   attendees,
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}, nil
}
