package ai

import (
	"testing"
	"time"

	"smartmeet/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testOffsetMinutes = 330
	testOffsetLabel   = "IST (UTC+5:30)"
)

var testZone = time.FixedZone("IST", testOffsetMinutes*60)

// 2025-01-02 is a Thursday.
func thursdayClock() *ReferenceClock {
	return NewStaticClock(time.Date(2025, 1, 2, 9, 0, 0, 0, testZone), testOffsetMinutes, testOffsetLabel)
}

func clockOn(year int, month time.Month, day int) *ReferenceClock {
	return NewStaticClock(time.Date(year, month, day, 9, 0, 0, 0, testZone), testOffsetMinutes, testOffsetLabel)
}

func TestExtractDuration(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Sync in 45 minutes", "45 minutes"},
		{"Design review for 2 hours", "2 hours"},
		{"Design review for 1 hour", "1 hour"},
		{"Planning 3 hrs", "3 hours"},
		{"Quick chat 1 hr", "1 hour"},
		{"Catch-up 90 min", "90 minutes"},
		{"Retro for 20 MINUTES", "20 minutes"},
		{"No length given", "30 minutes"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDuration(tt.input))
		})
	}
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Call at 3pm", "15:00"},
		{"Call at 3 PM", "15:00"},
		{"Late sync 12am", "00:00"},
		{"Lunch 12pm", "12:00"},
		{"Standup 9:30", "09:30"},
		{"Review 11:15 am", "11:15"},
		{"Review 4:45pm", "16:45"},
		{"Sync at 4", "04:00"},
		{"Standup 9 tomorrow", "09:00"},
		{"Sync in 45 minutes at 3pm", "15:00"},
		{"Sync for 45 minutes", "10:00"},
		{"Review 2 hours", "10:00"},
		{"Invalid 13pm then 2pm", "14:00"},
		{"Nothing here", "10:00"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTime(tt.input))
		})
	}
}

func TestExtractDate_NextBusinessDay(t *testing.T) {
	tests := []struct {
		name  string
		clock *ReferenceClock
		want  string
	}{
		{"thursday rolls to friday", clockOn(2025, time.January, 2), "2025-01-03"},
		{"friday skips the weekend", clockOn(2025, time.January, 3), "2025-01-06"},
		{"saturday rolls to monday", clockOn(2025, time.January, 4), "2025-01-06"},
		{"sunday rolls to monday", clockOn(2025, time.January, 5), "2025-01-06"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDate("Sync with the team", tt.clock.Snapshot()))
		})
	}
}

func TestExtractDate_Keywords(t *testing.T) {
	snap := thursdayClock().Snapshot()

	assert.Equal(t, "2025-01-02", extractDate("Call today at 5pm", snap))
	assert.Equal(t, "2025-01-03", extractDate("Call Tomorrow at 5pm", snap))
}

func TestExtractDate_WeekdayNamesUseBusinessDayDefault(t *testing.T) {
	snap := thursdayClock().Snapshot()

	assert.Equal(t, "2025-01-03", extractDate("Review monday", snap))
	assert.Equal(t, "2025-01-03", extractDate("Planning on Sunday on zoom", snap))

	for _, input := range []string{"Planning on Sunday", "Retro saturday"} {
		d, err := time.Parse(dateLayout, extractDate(input, clockOn(2025, time.January, 3).Snapshot()))
		require.NoError(t, err)
		assert.NotEqual(t, time.Saturday, d.Weekday(), input)
		assert.NotEqual(t, time.Sunday, d.Weekday(), input)
	}
}

func TestExtractDate_UsesFixedOffset(t *testing.T) {
	// 20:00 UTC on Thursday is already Friday 01:30 in UTC+5:30.
	clock := NewStaticClock(time.Date(2025, 1, 2, 20, 0, 0, 0, time.UTC), testOffsetMinutes, testOffsetLabel)
	snap := clock.Snapshot()

	assert.Equal(t, "2025-01-03", snap.Date)
	assert.Equal(t, "Friday", snap.Weekday)
	assert.Equal(t, "2025-01-06", extractDate("Sync", snap))
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Zoom call, or teams if zoom is down", models.PlatformZoom},
		{"Teams call, fallback to Zoom", models.PlatformZoom},
		{"Sync on Google Meet", models.PlatformMeet},
		{"Let's meet tomorrow", models.PlatformMeet},
		{"Sync on Microsoft Teams", models.PlatformTeams},
		{"teams meeting at 3pm", models.PlatformTeams},
		{"Microsoft partner review", models.PlatformTeams},
		{"Team meeting at 3pm", models.PlatformOnline},
		{"Coffee chat", models.PlatformOnline},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPlatform(tt.input))
		})
	}
}

func TestExtractBasicInfo(t *testing.T) {
	draft := ExtractBasicInfo("Budget review tomorrow at 3pm on Zoom for 1 hour", thursdayClock().Snapshot())

	require.NotNil(t, draft.Platform)
	require.NotNil(t, draft.Duration)
	require.NotNil(t, draft.Time)
	require.NotNil(t, draft.Date)
	require.NotNil(t, draft.PlatformLink)

	assert.Equal(t, models.PlatformZoom, *draft.Platform)
	assert.Equal(t, "1 hour", *draft.Duration)
	assert.Equal(t, "15:00", *draft.Time)
	assert.Equal(t, "2025-01-03", *draft.Date)
	assert.Empty(t, *draft.PlatformLink)
	assert.Nil(t, draft.Title)
	assert.Nil(t, draft.Participants)
}

func TestExtractBasicInfo_AllDefaults(t *testing.T) {
	draft := ExtractBasicInfo("hello", thursdayClock().Snapshot())

	assert.Equal(t, models.PlatformOnline, *draft.Platform)
	assert.Equal(t, "30 minutes", *draft.Duration)
	assert.Equal(t, "10:00", *draft.Time)
	assert.Equal(t, "2025-01-03", *draft.Date)
}
