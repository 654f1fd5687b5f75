package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartmeet/models"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	primaryCalendar = "primary"
	oauthState      = "smartmeet-calendar"
)

var ErrCalendarNotConfigured = errors.New("google calendar client credentials are not configured")

// CalendarService connects one Google account and mirrors scheduled meetings into it.
type CalendarService interface {
	AuthURL() (string, error)
	HandleCallback(ctx context.Context, code string) error
	Status(ctx context.Context) models.CalendarStatus
	Disconnect(ctx context.Context) error
	CreateEvent(ctx context.Context, meeting *models.Meeting) (*models.CalendarEventRef, error)
}

// Config holds the OAuth client settings.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type GoogleCalendarService struct {
	oauth  *oauth2.Config
	tokens TokenStore
	loc    *time.Location
	logger *zap.Logger

	// extra client options, appended after the token source
	apiOptions []option.ClientOption
}

// NewGoogleCalendarService returns the service. Missing credentials are not an error here;
// AuthURL reports them.
func NewGoogleCalendarService(cfg Config, tokens TokenStore, loc *time.Location, logger *zap.Logger) *GoogleCalendarService {
	s := &GoogleCalendarService{tokens: tokens, loc: loc, logger: logger}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		logger.Warn("Google Calendar credentials not configured")
		return s
	}
	s.oauth = &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{gcal.CalendarScope, gcal.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}
	return s
}

// AuthURL asks for offline access and forces the consent screen so a refresh token is issued.
func (s *GoogleCalendarService) AuthURL() (string, error) {
	if s.oauth == nil {
		return "", ErrCalendarNotConfigured
	}
	return s.oauth.AuthCodeURL(oauthState, oauth2.AccessTypeOffline, oauth2.ApprovalForce), nil
}

func (s *GoogleCalendarService) HandleCallback(ctx context.Context, code string) error {
	if s.oauth == nil {
		return ErrCalendarNotConfigured
	}
	tok, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	if err := s.tokens.Save(ctx, tok); err != nil {
		return err
	}
	s.logger.Info("Google Calendar access granted")
	return nil
}

// Status reports the connected account. Any failure reads as disconnected.
func (s *GoogleCalendarService) Status(ctx context.Context) models.CalendarStatus {
	srv, err := s.service(ctx)
	if err != nil || srv == nil {
		if err != nil {
			s.logger.Warn("Error checking calendar status", zap.Error(err))
		}
		return models.CalendarStatus{Connected: false}
	}

	entry, err := srv.CalendarList.Get(primaryCalendar).Context(ctx).Do()
	if err != nil {
		s.logger.Warn("Error checking calendar status", zap.Error(err))
		return models.CalendarStatus{Connected: false}
	}
	email := entry.Id
	return models.CalendarStatus{Connected: true, Email: &email}
}

func (s *GoogleCalendarService) Disconnect(ctx context.Context) error {
	if err := s.tokens.Delete(ctx); err != nil {
		return err
	}
	s.logger.Info("Google Calendar disconnected")
	return nil
}

// CreateEvent inserts the meeting into the primary calendar and invites the recipients.
// It returns nil, nil when no account is connected.
func (s *GoogleCalendarService) CreateEvent(ctx context.Context, meeting *models.Meeting) (*models.CalendarEventRef, error) {
	srv, err := s.service(ctx)
	if err != nil {
		return nil, err
	}
	if srv == nil {
		s.logger.Debug("Calendar not connected, skipping event creation")
		return nil, nil
	}

	event, err := BuildEvent(meeting, s.loc)
	if err != nil {
		return nil, err
	}

	created, err := srv.Events.Insert(primaryCalendar, event).SendUpdates("all").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}
	s.logger.Info("Calendar event created", zap.String("meetingId", meeting.ID), zap.String("link", created.HtmlLink))

	return &models.CalendarEventRef{
		EventID:   created.Id,
		EventLink: created.HtmlLink,
		Status:    created.Status,
	}, nil
}

// service returns nil, nil when there is no stored token.
func (s *GoogleCalendarService) service(ctx context.Context) (*gcal.Service, error) {
	if s.oauth == nil {
		return nil, nil
	}
	tok, err := s.tokens.Load(ctx)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}

	opts := append([]option.ClientOption{option.WithTokenSource(s.oauth.TokenSource(ctx, tok))}, s.apiOptions...)
	srv, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar client: %w", err)
	}
	return srv, nil
}
