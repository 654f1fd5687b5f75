package notification

import (
	"bytes"
	"fmt"
	"net/url"
	"time"

	"smartmeet/models"
	"smartmeet/utils"

	"github.com/emersion/go-ical"
)

const inviteProductID = "-//SmartMeet//Meeting Scheduler//EN"

// BuildInvite renders a single-event iCalendar file for the meeting. Times are written
// in UTC so no VTIMEZONE block is needed.
func BuildInvite(meeting *models.Meeting, loc *time.Location, now time.Time) ([]byte, error) {
	start, end, err := utils.MeetingWindow(meeting.Date, meeting.Time, meeting.Duration, loc)
	if err != nil {
		return nil, err
	}

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, meeting.ID)
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, start.UTC())
	event.Props.SetDateTime(ical.PropDateTimeEnd, end.UTC())
	event.Props.SetText(ical.PropSummary, meeting.Title)
	event.Props.SetText(ical.PropDescription, inviteDescription(meeting))
	if meeting.MeetingLink != "" {
		if u, err := url.Parse(meeting.MeetingLink); err == nil {
			event.Props.SetURI(ical.PropURL, u)
		}
		event.Props.SetText(ical.PropLocation, meeting.MeetingLink)
	} else {
		event.Props.SetText(ical.PropLocation, meeting.Platform)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, inviteProductID)
	cal.Props.SetText(ical.PropMethod, "PUBLISH")
	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode invite: %w", err)
	}
	return buf.Bytes(), nil
}

func inviteDescription(meeting *models.Meeting) string {
	if meeting.Instructions != "" {
		return meeting.Instructions
	}
	if meeting.MeetingLink != "" {
		return "Join meeting: " + meeting.MeetingLink
	}
	return "SmartMeet scheduled meeting"
}
