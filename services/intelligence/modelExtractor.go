package ai

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"smartmeet/models"

	"github.com/kaptinlin/jsonrepair"
	"go.uber.org/zap"
)

var codeFencePattern = regexp.MustCompile("(?i)```(?:json)?\\s*")

// ModelExtractor asks the language model for the meeting fields and parses its answer.
type ModelExtractor struct {
	completer Completer
	timeout   time.Duration
	logger    *zap.Logger
}

// NewModelExtractor returns an extractor. A nil completer makes every call fail with
// ErrModelUnavailable. A zero timeout leaves the caller's deadline alone.
func NewModelExtractor(completer Completer, timeout time.Duration, logger *zap.Logger) *ModelExtractor {
	return &ModelExtractor{completer: completer, timeout: timeout, logger: logger}
}

// Extract returns the fields the model resolved. Values are not validated here; the
// interpreter decides what to keep.
func (m *ModelExtractor) Extract(ctx context.Context, query string, snap ClockSnapshot) (models.ExtractionDraft, error) {
	if m.completer == nil {
		return models.ExtractionDraft{}, newExtractionError(ErrModelUnavailable, errors.New("no completer configured"))
	}

	prompt, err := BuildExtractionPrompt(query, snap)
	if err != nil {
		return models.ExtractionDraft{}, newExtractionError(ErrModelUnavailable, err)
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	raw, err := m.completer.Complete(ctx, prompt)
	if err != nil {
		return models.ExtractionDraft{}, newExtractionError(ErrModelUnavailable, err)
	}
	m.logger.Debug("model raw response", zap.String("response", raw))

	return ParseModelResponse(raw)
}

// ParseModelResponse strips code fences and decodes a single JSON object. A truncated
// object gets one repair attempt; prose and other garbage are rejected.
func ParseModelResponse(raw string) (models.ExtractionDraft, error) {
	text := strings.TrimSpace(codeFencePattern.ReplaceAllString(raw, ""))

	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		if !strings.HasPrefix(text, "{") {
			return models.ExtractionDraft{}, newExtractionError(ErrInvalidJSON, err)
		}
		repaired, repairErr := jsonrepair.JSONRepair(text)
		if repairErr != nil {
			return models.ExtractionDraft{}, newExtractionError(ErrInvalidJSON, err)
		}
		if err := json.Unmarshal([]byte(repaired), &value); err != nil {
			return models.ExtractionDraft{}, newExtractionError(ErrInvalidJSON, err)
		}
		if obj, ok := value.(map[string]any); !ok || !hasKnownField(obj) {
			return models.ExtractionDraft{}, newExtractionError(ErrInvalidJSON, err)
		}
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return models.ExtractionDraft{}, newExtractionError(ErrNotObject, nil)
	}
	return draftFromObject(obj), nil
}

var knownFields = []string{"title", "date", "time", "duration", "participants", "platform", "platform_link"}

// hasKnownField reports whether a repaired object kept any recognized field with a string
// value. Repair turns any text starting with "{" into some object.
func hasKnownField(obj map[string]any) bool {
	for _, key := range knownFields {
		switch v := obj[key].(type) {
		case string:
			return true
		case []any:
			for _, item := range v {
				if _, ok := item.(string); ok {
					return true
				}
			}
		}
	}
	return false
}

func draftFromObject(obj map[string]any) models.ExtractionDraft {
	return models.ExtractionDraft{
		Title:        stringField(obj, "title"),
		Date:         stringField(obj, "date"),
		Time:         stringField(obj, "time"),
		Duration:     stringField(obj, "duration"),
		Participants: stringsField(obj, "participants"),
		Platform:     stringField(obj, "platform"),
		PlatformLink: stringField(obj, "platform_link"),
	}
}

// stringField returns nil when the key is missing or not a string.
func stringField(obj map[string]any, key string) *string {
	s, ok := obj[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// stringsField returns nil unless the key holds an array; non-string items are skipped.
func stringsField(obj map[string]any, key string) []string {
	items, ok := obj[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
