package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"smartmeet/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestInterpreter(completer Completer) *DefaultInterpreter {
	return NewDefaultInterpreter(completer, thursdayClock(), time.Second, zap.NewNop())
}

func TestInterpret_ModelSuccess(t *testing.T) {
	interp := newTestInterpreter(&fakeCompleter{response: fencedResponse})

	m := interp.Interpret(context.Background(), "Budget review with Alice and Bob tomorrow 3pm on zoom for an hour")
	require.NotNil(t, m)

	assert.Equal(t, "Budget review", m.Title)
	assert.Equal(t, "2025-01-03", m.Date)
	assert.Equal(t, "15:00", m.Time)
	assert.Equal(t, "1 hour", m.Duration)
	assert.Equal(t, []string{"Alice", "Bob"}, m.Participants)
	assert.Equal(t, models.PlatformZoom, m.Platform)
	assert.Regexp(t, zoomJoinPattern, m.PlatformLink)
	assert.Equal(t, m.PlatformLink, m.MeetingLink)
	assert.Equal(t, m.MeetingLink+"&role=1", m.HostLink)
	assert.NotEmpty(t, m.MeetingPassword)
	assert.Equal(t, models.MeetingStatusConfirmed, m.Status)
	assert.Equal(t, models.SourceModel, m.Source)
	assert.NotEmpty(t, m.ID)
}

func TestInterpret_PartialModelAnswerFilledByRules(t *testing.T) {
	interp := newTestInterpreter(&fakeCompleter{response: `{"title":"Design sync","time":""}`})

	m := interp.Interpret(context.Background(), "Design sync at 4:30 pm on teams for 45 minutes")

	assert.Equal(t, "Design sync", m.Title)
	assert.Equal(t, "16:30", m.Time)
	assert.Equal(t, "45 minutes", m.Duration)
	assert.Equal(t, "2025-01-03", m.Date)
	assert.Equal(t, models.PlatformTeams, m.Platform)
	assert.Equal(t, []string{}, m.Participants)
	assert.Regexp(t, teamsJoinPattern, m.MeetingLink)
}

func TestInterpret_ModelLinkIsKept(t *testing.T) {
	interp := newTestInterpreter(&fakeCompleter{
		response: `{"title":"Sync","platform":"Zoom","platform_link":"https://zoom.us/j/11111111111"}`,
	})

	m := interp.Interpret(context.Background(), "Sync on zoom")

	assert.Equal(t, "https://zoom.us/j/11111111111", m.PlatformLink)
	assert.Equal(t, "https://zoom.us/j/11111111111", m.MeetingLink)
	assert.Empty(t, m.MeetingPassword)
}

func TestInterpret_FallbackCases(t *testing.T) {
	query := "Quarterly planning with the whole product org on google meet tomorrow at 11:15 am for 2 hours"

	tests := []struct {
		name      string
		completer Completer
	}{
		{"network error", &fakeCompleter{err: errors.New("dial tcp: i/o timeout")}},
		{"invalid json", &fakeCompleter{response: "I think the meeting is tomorrow."}},
		{"not an object", &fakeCompleter{response: `["Quarterly planning"]`}},
		{"unrepairable object", &fakeCompleter{response: "{this is garbage"}},
		{"panic", &fakeCompleter{panicMsg: "boom"}},
		{"no model", nil},
	}

	basic := ExtractBasicInfo(query, thursdayClock().Snapshot())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestInterpreter(tt.completer).Interpret(context.Background(), query)
			require.NotNil(t, m)

			assert.Equal(t, string([]rune(query)[:50]), m.Title)
			assert.Equal(t, *basic.Date, m.Date)
			assert.Equal(t, *basic.Time, m.Time)
			assert.Equal(t, *basic.Duration, m.Duration)
			assert.Equal(t, *basic.Platform, m.Platform)
			assert.Equal(t, "11:15", m.Time)
			assert.Equal(t, "2 hours", m.Duration)
			assert.Equal(t, models.PlatformMeet, m.Platform)
			assert.Equal(t, []string{}, m.Participants)
			assert.Regexp(t, meetJoinPattern, m.MeetingLink)
			assert.Equal(t, models.SourceFallback, m.Source)
			assert.Equal(t, models.MeetingStatusConfirmed, m.Status)
		})
	}
}

func TestInterpret_TeamsMeetingPlatformGetsTeamsLink(t *testing.T) {
	interp := newTestInterpreter(&fakeCompleter{response: `{"title":"Sync","platform":"Teams meeting"}`})

	m := interp.Interpret(context.Background(), "Sync on teams")

	assert.Equal(t, "Teams meeting", m.Platform)
	assert.Regexp(t, teamsJoinPattern, m.MeetingLink)
}

func TestInterpret_OnlineHasNoLink(t *testing.T) {
	interp := newTestInterpreter(&fakeCompleter{err: errors.New("unavailable")})

	m := interp.Interpret(context.Background(), "Coffee chat")

	assert.Equal(t, "Coffee chat", m.Title)
	assert.Equal(t, models.PlatformOnline, m.Platform)
	assert.Empty(t, m.PlatformLink)
	assert.Empty(t, m.MeetingLink)
}

func TestInterpret_EmptyQuery(t *testing.T) {
	interp := newTestInterpreter(&fakeCompleter{err: errors.New("unavailable")})

	m := interp.Interpret(context.Background(), "")

	assert.Equal(t, "Meeting", m.Title)
	assert.Equal(t, "10:00", m.Time)
	assert.Equal(t, "30 minutes", m.Duration)
	assert.Equal(t, "2025-01-03", m.Date)
}

func TestInterpret_IDsAreUnique(t *testing.T) {
	interp := newTestInterpreter(&fakeCompleter{response: fencedResponse})

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		seen[interp.Interpret(context.Background(), "Sync").ID] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestInterpret_PromptSeesQuery(t *testing.T) {
	completer := &fakeCompleter{response: fencedResponse}
	interp := newTestInterpreter(completer)

	interp.Interpret(context.Background(), "Roadmap review Friday")

	require.Len(t, completer.prompts, 1)
	assert.True(t, strings.Contains(completer.prompts[0], "Roadmap review Friday"))
}

type panickingClock struct{}

func (panickingClock) Snapshot() ClockSnapshot { panic("clock unavailable") }
func (panickingClock) Location() *time.Location { return time.UTC }

type panickingLinks struct{}

func (panickingLinks) Synthesize(string, string) *models.PlatformLinkDetails {
	panic("link synthesis failed")
}

func TestInterpret_PanicInClockIsRecovered(t *testing.T) {
	interp := NewDefaultInterpreter(&fakeCompleter{response: fencedResponse}, panickingClock{}, time.Second, zap.NewNop())

	var m *models.Meeting
	require.NotPanics(t, func() {
		m = interp.Interpret(context.Background(), "Budget review tomorrow at 3pm")
	})
	require.NotNil(t, m)
	assert.Equal(t, "Budget review tomorrow at 3pm", m.Title)
	assert.Equal(t, models.SourceFallback, m.Source)
	assert.Equal(t, models.MeetingStatusConfirmed, m.Status)
	assert.NotEmpty(t, m.ID)
	assert.NotEmpty(t, m.Date)
}

func TestInterpret_PanicInLinkSynthesisIsRecovered(t *testing.T) {
	query := "Budget review with Alice and Bob tomorrow 3pm on zoom for an hour"
	interp := newTestInterpreter(&fakeCompleter{response: fencedResponse})
	interp.links = panickingLinks{}

	var m *models.Meeting
	require.NotPanics(t, func() {
		m = interp.Interpret(context.Background(), query)
	})
	require.NotNil(t, m)
	assert.Equal(t, string([]rune(query)[:50]), m.Title)
	assert.Equal(t, "2025-01-03", m.Date)
	assert.Equal(t, "15:00", m.Time)
	assert.Equal(t, "30 minutes", m.Duration)
	assert.Equal(t, models.PlatformZoom, m.Platform)
	assert.Empty(t, m.MeetingLink)
	assert.Equal(t, models.SourceFallback, m.Source)
}
