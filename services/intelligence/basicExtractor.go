package ai

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"smartmeet/models"
)

const (
	defaultDuration = "30 minutes"
	defaultTime     = "10:00"
)

var (
	durationPattern = regexp.MustCompile(`(?i)(\d+)\s*(min|minutes|hour|hours|hr|hrs)`)
	timePattern     = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
	meetWordPattern = regexp.MustCompile(`\bmeet\b`)
)

// ExtractBasicInfo derives platform, duration, time and date from the raw text with
// keyword and pattern rules. It never fails; anything unmatched gets its default.
// Title and participants are left unresolved.
func ExtractBasicInfo(text string, snap ClockSnapshot) models.ExtractionDraft {
	return models.ExtractionDraft{
		Platform:     models.StringPtr(DetectPlatform(text)),
		Duration:     models.StringPtr(extractDuration(text)),
		Time:         models.StringPtr(extractTime(text)),
		Date:         models.StringPtr(extractDate(text, snap)),
		PlatformLink: models.StringPtr(""),
	}
}

// DetectPlatform resolves the platform with a fixed precedence: zoom, then google meet
// (or the word "meet"), then teams/microsoft. Everything else is Online.
func DetectPlatform(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "zoom"):
		return models.PlatformZoom
	case strings.Contains(lower, "google meet") || meetWordPattern.MatchString(lower):
		return models.PlatformMeet
	case strings.Contains(lower, "teams") || strings.Contains(lower, "microsoft"):
		return models.PlatformTeams
	default:
		return models.PlatformOnline
	}
}

func extractDuration(text string) string {
	m := durationPattern.FindStringSubmatch(text)
	if m == nil {
		return defaultDuration
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultDuration
	}
	if strings.HasPrefix(strings.ToLower(m[2]), "h") {
		if n == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", n)
	}
	return fmt.Sprintf("%d minutes", n)
}

// extractTime returns the first time-like match in the text. Numbers that belong to a
// duration ("45 minutes") and hours out of range after conversion are skipped.
func extractTime(text string) string {
	durations := durationPattern.FindAllStringIndex(text, -1)
	for _, idx := range timePattern.FindAllStringSubmatchIndex(text, -1) {
		if withinAny(idx[0], durations) {
			continue
		}

		hourStr := text[idx[2]:idx[3]]
		minutes := ""
		if idx[4] >= 0 {
			minutes = text[idx[4]:idx[5]]
		}
		meridiem := ""
		if idx[6] >= 0 {
			meridiem = strings.ToLower(text[idx[6]:idx[7]])
		}

		if t, ok := toClock(hourStr, minutes, meridiem); ok {
			return t
		}
	}
	return defaultTime
}

func withinAny(pos int, spans [][]int) bool {
	for _, span := range spans {
		if pos >= span[0] && pos < span[1] {
			return true
		}
	}
	return false
}

func toClock(hourStr, minutes, meridiem string) (string, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return "", false
	}
	if minutes == "" {
		minutes = "00"
	}
	mm, err := strconv.Atoi(minutes)
	if err != nil || mm > 59 {
		return "", false
	}

	switch meridiem {
	case "pm":
		if hour < 1 || hour > 12 {
			return "", false
		}
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour < 1 || hour > 12 {
			return "", false
		}
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 {
		return "", false
	}
	return fmt.Sprintf("%02d:%s", hour, minutes), true
}

func extractDate(text string, snap ClockSnapshot) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "today"):
		return snap.Date
	case strings.Contains(lower, "tomorrow"):
		return snap.Now.AddDate(0, 0, 1).Format(dateLayout)
	default:
		return nextBusinessDay(snap.Now).Format(dateLayout)
	}
}

// nextBusinessDay is tomorrow, pushed forward to Monday when it lands on a weekend.
func nextBusinessDay(now time.Time) time.Time {
	d := now.AddDate(0, 0, 1)
	switch d.Weekday() {
	case time.Saturday:
		d = d.AddDate(0, 0, 2)
	case time.Sunday:
		d = d.AddDate(0, 0, 1)
	}
	return d
}
