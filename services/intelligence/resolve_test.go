package ai

import (
	"strings"
	"testing"

	"smartmeet/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveExtraction_Priority(t *testing.T) {
	defaults := LiteralDefaults(thursdayClock().Snapshot())
	model := models.ExtractionDraft{
		Title: models.StringPtr("Model title"),
		Time:  models.StringPtr("   "),
	}
	fallback := models.ExtractionDraft{
		Title: models.StringPtr("Fallback title"),
		Time:  models.StringPtr("15:00"),
		Date:  models.StringPtr("2025-01-09"),
	}

	got := ResolveExtraction(model, fallback, defaults)

	assert.Equal(t, "Model title", got.Title)
	assert.Equal(t, "15:00", got.Time, "blank model value falls through")
	assert.Equal(t, "2025-01-09", got.Date)
	assert.Equal(t, "30 minutes", got.Duration)
	assert.Equal(t, models.PlatformOnline, got.Platform)
	assert.Equal(t, []string{}, got.Participants)
	assert.Empty(t, got.PlatformLink)
}

func TestResolveExtraction_EmptyParticipantsWin(t *testing.T) {
	defaults := LiteralDefaults(thursdayClock().Snapshot())
	model := models.ExtractionDraft{Participants: []string{}}
	fallback := models.ExtractionDraft{Participants: []string{"Alice"}}

	got := ResolveExtraction(model, fallback, defaults)
	assert.Empty(t, got.Participants)
	assert.NotNil(t, got.Participants)
}

func TestResolveExtraction_RoundTrip(t *testing.T) {
	ext := models.Extraction{
		Title:        "Budget review",
		Date:         "2025-01-03",
		Time:         "15:00",
		Duration:     "1 hour",
		Participants: []string{"Alice"},
		Platform:     models.PlatformZoom,
		PlatformLink: "https://zoom.us/j/12345678901",
	}

	got := ResolveExtraction(ext.Draft(), models.ExtractionDraft{}, LiteralDefaults(thursdayClock().Snapshot()))
	assert.Equal(t, ext, got)
}

func TestLiteralDefaults(t *testing.T) {
	// Friday rolls over the weekend.
	d := LiteralDefaults(clockOn(2025, 1, 3).Snapshot())

	assert.Equal(t, "Meeting", d.Title)
	assert.Equal(t, "2025-01-06", d.Date)
	assert.Equal(t, "10:00", d.Time)
	assert.Equal(t, "30 minutes", d.Duration)
	assert.Equal(t, models.PlatformOnline, d.Platform)
	assert.Equal(t, []string{}, d.Participants)
}

func TestTruncateTitle(t *testing.T) {
	long := strings.Repeat("a", 60)

	assert.Equal(t, strings.Repeat("a", 50), truncateTitle(long))
	assert.Equal(t, "Short", truncateTitle("Short"))
	assert.Equal(t, "Meeting", truncateTitle("   "))
	assert.Equal(t, 50, len([]rune(truncateTitle(strings.Repeat("é", 70)))))
}
