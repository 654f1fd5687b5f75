package ai

import (
	"strings"

	"smartmeet/models"
)

const defaultTitle = "Meeting"

// LiteralDefaults is the last-resort value for every field.
func LiteralDefaults(snap ClockSnapshot) models.Extraction {
	return models.Extraction{
		Title:        defaultTitle,
		Date:         nextBusinessDay(snap.Now).Format(dateLayout),
		Time:         defaultTime,
		Duration:     defaultDuration,
		Participants: []string{},
		Platform:     models.PlatformOnline,
		PlatformLink: "",
	}
}

// ResolveExtraction picks each field from the model draft, then the fallback draft, then
// the defaults. A blank string counts as unresolved; an empty participants list does not.
func ResolveExtraction(model, fallback models.ExtractionDraft, defaults models.Extraction) models.Extraction {
	return models.Extraction{
		Title:        firstString(defaults.Title, model.Title, fallback.Title),
		Date:         firstString(defaults.Date, model.Date, fallback.Date),
		Time:         firstString(defaults.Time, model.Time, fallback.Time),
		Duration:     firstString(defaults.Duration, model.Duration, fallback.Duration),
		Participants: firstList(defaults.Participants, model.Participants, fallback.Participants),
		Platform:     firstString(defaults.Platform, model.Platform, fallback.Platform),
		PlatformLink: firstString(defaults.PlatformLink, model.PlatformLink, fallback.PlatformLink),
	}
}

func firstString(def string, candidates ...*string) string {
	for _, c := range candidates {
		if c != nil && strings.TrimSpace(*c) != "" {
			return *c
		}
	}
	return def
}

func firstList(def []string, candidates ...[]string) []string {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	if def == nil {
		return []string{}
	}
	return def
}

// truncateTitle keeps the first 50 characters of the request.
func truncateTitle(query string) string {
	runes := []rune(query)
	if len(runes) > 50 {
		runes = runes[:50]
	}
	if strings.TrimSpace(string(runes)) == "" {
		return defaultTitle
	}
	return string(runes)
}
