package models

import "time"

const MeetingStatusConfirmed = "confirmed"

// Extraction sources. Kept on the record for logs only; never returned to API clients.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// Meeting is the normalized record produced by the interpreter and stored by the
// scheduling service.
type Meeting struct {
	ID     string `bson:"id" json:"id"`
	Status string `bson:"status" json:"status"`

	Title        string   `bson:"title" json:"title"`
	Date         string   `bson:"date" json:"date"`
	Time         string   `bson:"time" json:"time"`
	Duration     string   `bson:"duration" json:"duration"`
	Participants []string `bson:"participants" json:"participants"`
	Platform     string   `bson:"platform" json:"platform"`
	PlatformLink string   `bson:"platform_link" json:"platform_link"`

	MeetingLink     string `bson:"meeting_link,omitempty" json:"meetingLink,omitempty"`
	MeetingID       string `bson:"meeting_id,omitempty" json:"meetingId,omitempty"`
	MeetingPassword string `bson:"meeting_password,omitempty" json:"meetingPassword,omitempty"`
	HostLink        string `bson:"host_link,omitempty" json:"hostLink,omitempty"`
	Instructions    string `bson:"instructions,omitempty" json:"-"`

	// Recipients is the email list supplied with the request. It is never merged with
	// Participants, which holds names extracted from the text.
	Recipients    []string          `bson:"recipients" json:"recipients"`
	CalendarEvent *CalendarEventRef `bson:"calendar_event,omitempty" json:"calendarEvent,omitempty"`
	Source        string            `bson:"source" json:"-"`
	CreatedAt     time.Time         `bson:"created_at" json:"createdAt"`
}

// ApplyExtraction copies the extracted fields onto the meeting.
func (m *Meeting) ApplyExtraction(e Extraction) {
	m.Title = e.Title
	m.Date = e.Date
	m.Time = e.Time
	m.Duration = e.Duration
	m.Participants = e.Participants
	m.Platform = e.Platform
	m.PlatformLink = e.PlatformLink
}

// Extraction returns the extracted fields of the meeting.
func (m *Meeting) Extraction() Extraction {
	return Extraction{
		Title:        m.Title,
		Date:         m.Date,
		Time:         m.Time,
		Duration:     m.Duration,
		Participants: m.Participants,
		Platform:     m.Platform,
		PlatformLink: m.PlatformLink,
	}
}

// PlatformLinkDetails is the output of link synthesis.
type PlatformLinkDetails struct {
	Platform           string `json:"platform"`
	MeetingID          string `json:"meetingId"`
	FormattedMeetingID string `json:"formattedMeetingId,omitempty"`
	Password           string `json:"password,omitempty"`
	JoinURL            string `json:"joinUrl"`
	HostURL            string `json:"hostUrl,omitempty"`
	Instructions       string `json:"instructions"`
}

// CalendarEventRef points at an event created in the user's calendar.
type CalendarEventRef struct {
	EventID   string `bson:"event_id" json:"eventId"`
	EventLink string `bson:"event_link" json:"eventLink"`
	Status    string `bson:"status" json:"status"`
}

// CalendarStatus reports whether a calendar account is connected.
type CalendarStatus struct {
	Connected bool    `json:"connected"`
	Email     *string `json:"email"`
}

// ScheduleRequest is the body of POST /api/schedule.
type ScheduleRequest struct {
	Query  string `json:"query"`
	Emails string `json:"emails"`
}

// ScheduleResult is returned by the scheduling service and serialized as the response.
type ScheduleResult struct {
	Meeting          *Meeting      `json:"meeting"`
	SuccessfulEmails int           `json:"successful_emails"`
	TotalEmails      int           `json:"total_emails"`
	EmailResults     []EmailResult `json:"email_results"`
}

// Stats summarises the stored meetings and email logs.
type Stats struct {
	MeetingsScheduled  int `json:"meetings_scheduled"`
	EmailsSent         int `json:"emails_sent"`
	SuccessRate        int `json:"success_rate"`
	ActiveParticipants int `json:"active_participants"`
}
