package models

import "time"

const (
	EmailStatusSent   = "Sent"
	EmailStatusFailed = "Failed"
)

// EmailResult is the outcome of sending one invitation.
type EmailResult struct {
	Success bool   `json:"success"`
	Email   string `json:"email"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// EmailLog is one recorded delivery attempt.
type EmailLog struct {
	ID        string    `bson:"id" json:"id"`
	Recipient string    `bson:"recipient" json:"recipient"`
	Subject   string    `bson:"subject" json:"subject"`
	Status    string    `bson:"status" json:"status"`
	Time      string    `bson:"time" json:"time"` // 03:04 PM
	Date      string    `bson:"date" json:"date"` // Jan 2, 2006
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	MeetingID string    `bson:"meeting_id" json:"meetingId"`
	Error     string    `bson:"error,omitempty" json:"error,omitempty"`
}

// ReminderPayload is the body of a meeting reminder task.
type ReminderPayload struct {
	MeetingID  string    `json:"meetingId"`
	Title      string    `json:"title"`
	Recipients []string  `json:"recipients"`
	StartsAt   time.Time `json:"startsAt"`
}
