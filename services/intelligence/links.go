package ai

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"smartmeet/models"

	"go.uber.org/zap"
)

const (
	zoomPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"
	meetAlphabet         = "abcdefghijklmnopqrstuvwxyz"
	teamsAlphabet        = "0123456789abcdefghijklmnopqrstuvwxyz"

	zoomIDMin      = 10000000000
	zoomIDSpan     = 90000000000
	teamsThreadLen = 26
)

// LinkSynthesizer generates plausible join links locally. Nothing is registered with
// the real platforms.
type LinkSynthesizer struct {
	logger *zap.Logger
}

func NewLinkSynthesizer(logger *zap.Logger) *LinkSynthesizer {
	return &LinkSynthesizer{logger: logger}
}

// Synthesize returns link details for the platform, or nil when the platform has no
// link shape (Online and anything unrecognised). Precedence follows DetectPlatform, so
// "Teams meeting" is Teams. title is only logged.
func (l *LinkSynthesizer) Synthesize(platform, title string) *models.PlatformLinkDetails {
	lower := strings.ToLower(platform)
	switch {
	case strings.Contains(lower, "zoom"):
		return l.zoomLink(title)
	case strings.Contains(lower, "google") || meetWordPattern.MatchString(lower):
		return l.meetLink()
	case strings.Contains(lower, "teams") || strings.Contains(lower, "microsoft"):
		return l.teamsLink()
	default:
		return nil
	}
}

func (l *LinkSynthesizer) zoomLink(title string) *models.PlatformLinkDetails {
	id := strconv.FormatInt(zoomIDMin+rand.Int64N(zoomIDSpan), 10)
	formatted := fmt.Sprintf("%s %s %s", id[:3], id[3:7], id[7:])
	password := randomString(zoomPasswordAlphabet, 6)

	joinURL := fmt.Sprintf("https://zoom.us/j/%s?pwd=%s", id, password)
	if title == "" {
		title = defaultTitle
	}
	l.logger.Info("Generated Zoom meeting link",
		zap.String("title", title),
		zap.String("meetingId", formatted))

	return &models.PlatformLinkDetails{
		Platform:           models.PlatformZoom,
		MeetingID:          id,
		FormattedMeetingID: formatted,
		Password:           password,
		JoinURL:            joinURL,
		HostURL:            joinURL + "&role=1",
		Instructions:       fmt.Sprintf("Join Zoom Meeting: %s\n\nMeeting ID: %s\nPassword: %s", joinURL, formatted, password),
	}
}

func (l *LinkSynthesizer) meetLink() *models.PlatformLinkDetails {
	code := fmt.Sprintf("%s-%s-%s",
		randomString(meetAlphabet, 3),
		randomString(meetAlphabet, 4),
		randomString(meetAlphabet, 3))
	joinURL := "https://meet.google.com/" + code
	l.logger.Info("Generated Google Meet link", zap.String("url", joinURL))

	return &models.PlatformLinkDetails{
		Platform:     models.PlatformMeet,
		MeetingID:    code,
		JoinURL:      joinURL,
		Instructions: "Join Google Meet: " + joinURL,
	}
}

func (l *LinkSynthesizer) teamsLink() *models.PlatformLinkDetails {
	threadID := randomString(teamsAlphabet, teamsThreadLen)
	joinURL := "https://teams.microsoft.com/l/meetup-join/19:meeting_" + threadID
	l.logger.Info("Generated Microsoft Teams link", zap.String("url", joinURL))

	return &models.PlatformLinkDetails{
		Platform:     models.PlatformTeams,
		MeetingID:    threadID,
		JoinURL:      joinURL,
		Instructions: "Join Microsoft Teams Meeting: " + joinURL,
	}
}

func randomString(alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}
