package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const defaultMeetingMinutes = 30

var leadingNumber = regexp.MustCompile(`^\s*(\d+)`)

// MeetingStart combines a YYYY-MM-DD date and an HH:MM time in loc.
func MeetingStart(date, clock string, loc *time.Location) (time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid meeting date/time %q %q: %w", date, clock, err)
	}
	return start, nil
}

// DurationMinutes reads durations such as "45 minutes", "1 hour" or "2 hours".
// An hour value without a number counts as one hour; anything unreadable is 30 minutes.
func DurationMinutes(duration string) int {
	lower := strings.ToLower(duration)
	n := 0
	if m := leadingNumber.FindStringSubmatch(lower); m != nil {
		n, _ = strconv.Atoi(m[1])
	}

	switch {
	case strings.Contains(lower, "hour"):
		if n == 0 {
			n = 1
		}
		return n * 60
	case strings.Contains(lower, "minute"):
		if n == 0 {
			return defaultMeetingMinutes
		}
		return n
	default:
		return defaultMeetingMinutes
	}
}

// MeetingWindow returns the start and end of a meeting in loc.
func MeetingWindow(date, clock, duration string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := MeetingStart(date, clock, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.Add(time.Duration(DurationMinutes(duration)) * time.Minute), nil
}
