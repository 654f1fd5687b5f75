package models

// Platform names recognised by the extractors and the link synthesizer.
const (
	PlatformZoom   = "Zoom"
	PlatformMeet   = "Google Meet"
	PlatformTeams  = "Microsoft Teams"
	PlatformOnline = "Online"
)

// Extraction is a fully populated set of meeting fields. Every field is set once the
// interpreter has finished defaulting.
type Extraction struct {
	Title        string   `json:"title"`
	Date         string   `json:"date"`     // YYYY-MM-DD
	Time         string   `json:"time"`     // HH:MM, 24-hour
	Duration     string   `json:"duration"` // "45 minutes", "1 hour", "2 hours"
	Participants []string `json:"participants"`
	Platform     string   `json:"platform"`
	PlatformLink string   `json:"platform_link"`
}

// ExtractionDraft is what a single extractor produced. A nil field was not resolved by
// that extractor.
type ExtractionDraft struct {
	Title        *string
	Date         *string
	Time         *string
	Duration     *string
	Participants []string
	Platform     *string
	PlatformLink *string
}

// Draft converts a finalized extraction back into a draft with every field present.
func (e Extraction) Draft() ExtractionDraft {
	participants := e.Participants
	if participants == nil {
		participants = []string{}
	}
	return ExtractionDraft{
		Title:        StringPtr(e.Title),
		Date:         StringPtr(e.Date),
		Time:         StringPtr(e.Time),
		Duration:     StringPtr(e.Duration),
		Participants: participants,
		Platform:     StringPtr(e.Platform),
		PlatformLink: StringPtr(e.PlatformLink),
	}
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
