// File: services/intelligence/interface.go
package ai

import (
	"context"
	"time"

	"smartmeet/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MeetingInterpreter turns a free-text request into a normalized meeting. It never fails.
type MeetingInterpreter interface {
	Interpret(ctx context.Context, query string) *models.Meeting
}

type linkSource interface {
	Synthesize(platform, title string) *models.PlatformLinkDetails
}

// DefaultInterpreter asks the model first and falls back to the rule-based extractor.
type DefaultInterpreter struct {
	clock     Clock
	extractor *ModelExtractor
	links     linkSource
	logger    *zap.Logger
}

func NewDefaultInterpreter(completer Completer, clock Clock, llmTimeout time.Duration, logger *zap.Logger) *DefaultInterpreter {
	return &DefaultInterpreter{
		clock:     clock,
		extractor: NewModelExtractor(completer, llmTimeout, logger),
		links:     NewLinkSynthesizer(logger),
		logger:    logger,
	}
}

func (s *DefaultInterpreter) Interpret(ctx context.Context, query string) (meeting *models.Meeting) {
	var (
		snap  ClockSnapshot
		basic models.ExtractionDraft
	)
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Interpreter panicked, using fallback record", zap.Any("panic", r))
			meeting = s.recoveredMeeting(query, basic, snap)
		}
	}()

	s.logger.Info("Parsing meeting request", zap.String("query", query))

	snap = s.clock.Snapshot()
	basic = ExtractBasicInfo(query, snap)

	draft, err := s.extractor.Extract(ctx, query, snap)
	if err != nil {
		s.logger.Warn("Model extraction failed, using fallback extraction", zap.Error(err))
		return s.finalize(fallbackExtraction(query, basic, snap), models.SourceFallback)
	}

	return s.finalize(ResolveExtraction(draft, basic, LiteralDefaults(snap)), models.SourceModel)
}

// recoveredMeeting is the fallback record built after a panic, from whatever of snap and
// basic was computed. Link synthesis runs under its own recover, so a fault there leaves
// the record without a link instead of escaping.
func (s *DefaultInterpreter) recoveredMeeting(query string, basic models.ExtractionDraft, snap ClockSnapshot) *models.Meeting {
	if snap.Now.IsZero() {
		snap.Now = time.Now()
	}
	m := &models.Meeting{
		ID:        uuid.New().String(),
		Status:    models.MeetingStatusConfirmed,
		Source:    models.SourceFallback,
		CreatedAt: time.Now(),
	}
	m.ApplyExtraction(fallbackExtraction(query, basic, snap))
	m.MeetingLink = m.PlatformLink
	if m.PlatformLink == "" {
		applyLink(m, s.safeSynthesize(m.Platform, m.Title))
	}
	return m
}

func (s *DefaultInterpreter) safeSynthesize(platform, title string) (link *models.PlatformLinkDetails) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Link synthesis panicked, record has no link", zap.Any("panic", r))
			link = nil
		}
	}()
	return s.links.Synthesize(platform, title)
}

func applyLink(m *models.Meeting, link *models.PlatformLinkDetails) {
	if link == nil {
		return
	}
	m.PlatformLink = link.JoinURL
	m.MeetingLink = link.JoinURL
	m.MeetingID = link.MeetingID
	m.MeetingPassword = link.Password
	m.HostLink = link.HostURL
	m.Instructions = link.Instructions
}

// fallbackExtraction builds the record from the rule-based result alone, titled with
// the start of the request.
func fallbackExtraction(query string, basic models.ExtractionDraft, snap ClockSnapshot) models.Extraction {
	defaults := LiteralDefaults(snap)
	defaults.Title = truncateTitle(query)
	return ResolveExtraction(models.ExtractionDraft{}, basic, defaults)
}

func (s *DefaultInterpreter) finalize(ext models.Extraction, source string) *models.Meeting {
	m := &models.Meeting{
		ID:        uuid.New().String(),
		Status:    models.MeetingStatusConfirmed,
		Source:    source,
		CreatedAt: time.Now(),
	}
	m.ApplyExtraction(ext)

	if m.PlatformLink != "" {
		m.MeetingLink = m.PlatformLink
	} else if m.Platform != "" {
		applyLink(m, s.links.Synthesize(m.Platform, m.Title))
	}

	s.logger.Info("Meeting details prepared",
		zap.String("id", m.ID),
		zap.String("source", source),
		zap.String("title", m.Title),
		zap.String("date", m.Date),
		zap.String("time", m.Time),
		zap.String("duration", m.Duration),
		zap.String("platform", m.Platform))
	return m
}
