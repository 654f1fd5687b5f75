package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smartmeet/middleware"
	"smartmeet/models"
	"smartmeet/services/calendar"
	"smartmeet/services/scheduling"
	"smartmeet/services/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubScheduler struct {
	result *models.ScheduleResult
	err    error
	query  string
	emails string
}

func (s *stubScheduler) Schedule(_ context.Context, query, emails string) (*models.ScheduleResult, error) {
	s.query, s.emails = query, emails
	return s.result, s.err
}

func (s *stubScheduler) ListMeetings(context.Context) ([]models.Meeting, error) { return nil, nil }

func (s *stubScheduler) ListEmailLogs(context.Context) ([]models.EmailLog, error) {
	return []models.EmailLog{{ID: "l1", Recipient: "a@example.com", Status: models.EmailStatusSent}}, nil
}

func (s *stubScheduler) Stats(context.Context) (models.Stats, error) {
	return models.Stats{MeetingsScheduled: 2, EmailsSent: 3, SuccessRate: 75, ActiveParticipants: 4}, nil
}

type stubUsers struct {
	signupErr error
	loginErr  error
	getErr    error
	lastID    string
}

func (s *stubUsers) Signup(_ context.Context, name, email, _ string) (*models.AuthResponse, error) {
	if s.signupErr != nil {
		return nil, s.signupErr
	}
	return &models.AuthResponse{Token: "tok", User: &models.User{ID: "u1", Name: name, Email: email}}, nil
}

func (s *stubUsers) Login(_ context.Context, email, _ string) (*models.AuthResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &models.AuthResponse{Token: "tok", User: &models.User{ID: "u1", Email: email}}, nil
}

func (s *stubUsers) GetUser(_ context.Context, id string) (*models.User, error) {
	s.lastID = id
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &models.User{ID: id, Name: "Asha"}, nil
}

type stubCalendar struct {
	authErr     error
	callbackErr error
	code        string
}

func (s *stubCalendar) AuthURL() (string, error) {
	if s.authErr != nil {
		return "", s.authErr
	}
	return "https://accounts.google.com/o/oauth2/auth?state=x", nil
}

func (s *stubCalendar) HandleCallback(_ context.Context, code string) error {
	s.code = code
	return s.callbackErr
}

func (s *stubCalendar) Status(context.Context) models.CalendarStatus {
	email := "owner@example.com"
	return models.CalendarStatus{Connected: true, Email: &email}
}

func (s *stubCalendar) Disconnect(context.Context) error { return nil }

func (s *stubCalendar) CreateEvent(context.Context, *models.Meeting) (*models.CalendarEventRef, error) {
	return nil, nil
}

var (
	_ scheduling.SchedulingService = (*stubScheduler)(nil)
	_ user.UserService             = (*stubUsers)(nil)
	_ calendar.CalendarService     = (*stubCalendar)(nil)
)

func perform(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestScheduleMeetingHandler(t *testing.T) {
	result := &models.ScheduleResult{
		Meeting:          &models.Meeting{ID: "m1", Title: "Sync", Participants: []string{}},
		SuccessfulEmails: 1,
		TotalEmails:      1,
		EmailResults:     []models.EmailResult{{Email: "a@example.com", Status: models.EmailStatusSent}},
	}

	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{"ok", `{"query":"Sync tomorrow","emails":"a@example.com"}`, nil, http.StatusOK},
		{"malformed body", `{"query":`, nil, http.StatusBadRequest},
		{"invalid request", `{"query":"","emails":""}`, scheduling.ErrInvalidRequest, http.StatusBadRequest},
		{"internal error", `{"query":"Sync","emails":"a@example.com"}`, errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubScheduler{result: result, err: tt.err}
			r := gin.New()
			r.POST("/api/schedule", NewMeetingHandler(svc).ScheduleMeetingHandler)

			w := perform(r, http.MethodPost, "/api/schedule", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)

			if tt.wantCode == http.StatusOK {
				assert.Equal(t, "Sync tomorrow", svc.query)
				assert.Equal(t, "a@example.com", svc.emails)
				body := decode(t, w)
				assert.EqualValues(t, 1, body["successful_emails"])
				assert.EqualValues(t, 1, body["total_emails"])
				meeting := body["meeting"].(map[string]any)
				assert.Equal(t, "Sync", meeting["title"])
			} else {
				assert.Contains(t, decode(t, w), "error")
			}
		})
	}
}

func TestMeetingListHandlers(t *testing.T) {
	h := NewMeetingHandler(&stubScheduler{})
	r := gin.New()
	r.GET("/api/meetings", h.GetMeetingsHandler)
	r.GET("/api/email-logs", h.GetEmailLogsHandler)
	r.GET("/api/stats", h.GetStatsHandler)

	w := perform(r, http.MethodGet, "/api/meetings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"meetings":[]}`, w.Body.String())

	w = perform(r, http.MethodGet, "/api/email-logs", "")
	require.Equal(t, http.StatusOK, w.Code)
	logs := decode(t, w)["logs"].([]any)
	require.Len(t, logs, 1)

	w = perform(r, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"stats":{"meetings_scheduled":2,"emails_sent":3,"success_rate":75,"active_participants":4}}`,
		w.Body.String())
}

func TestUserHandlers(t *testing.T) {
	tests := []struct {
		name     string
		users    *stubUsers
		path     string
		body     string
		wantCode int
	}{
		{"signup ok", &stubUsers{}, "/signup", `{"name":"Asha","email":"asha@example.com","password":"secret1"}`, http.StatusCreated},
		{"signup invalid", &stubUsers{signupErr: user.ErrInvalidSignup}, "/signup", `{"name":"","email":"x","password":"1"}`, http.StatusBadRequest},
		{"signup taken", &stubUsers{signupErr: user.ErrEmailTaken}, "/signup", `{"name":"Asha","email":"asha@example.com","password":"secret1"}`, http.StatusConflict},
		{"login ok", &stubUsers{}, "/login", `{"email":"asha@example.com","password":"secret1"}`, http.StatusOK},
		{"login bad credentials", &stubUsers{loginErr: user.ErrInvalidCredentials}, "/login", `{"email":"asha@example.com","password":"nope"}`, http.StatusUnauthorized},
		{"login malformed", &stubUsers{}, "/login", `not json`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewUserHandler(tt.users)
			r := gin.New()
			r.POST("/signup", h.SignupHandler)
			r.POST("/login", h.LoginHandler)

			w := perform(r, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			if w.Code < 300 {
				body := decode(t, w)
				assert.Equal(t, "tok", body["token"])
				assert.NotEmpty(t, body["message"])
			}
		})
	}
}

func TestMeHandler(t *testing.T) {
	withUser := func(id string) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(middleware.ContextUserID, id)
			c.Next()
		}
	}

	users := &stubUsers{}
	r := gin.New()
	r.GET("/me", withUser("u42"), NewUserHandler(users).MeHandler)

	w := perform(r, http.MethodGet, "/me", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u42", users.lastID)
	assert.Equal(t, "u42", decode(t, w)["user"].(map[string]any)["id"])

	missing := &stubUsers{getErr: user.ErrUserNotFound}
	r = gin.New()
	r.GET("/me", withUser("gone"), NewUserHandler(missing).MeHandler)
	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodGet, "/me", "").Code)
}

func TestCalendarHandlers(t *testing.T) {
	cal := &stubCalendar{}
	h := NewCalendarHandler(cal, "http://localhost:5173/")
	r := gin.New()
	r.GET("/auth", h.AuthURLHandler)
	r.GET("/callback", h.CallbackHandler)
	r.GET("/status", h.StatusHandler)
	r.POST("/disconnect", h.DisconnectHandler)

	w := perform(r, http.MethodGet, "/auth", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w)["authUrl"], "accounts.google.com")

	w = perform(r, http.MethodGet, "/callback", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Authorization code missing", w.Body.String())

	w = perform(r, http.MethodGet, "/callback?code=abc", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "http://localhost:5173/settings?calendar=connected", w.Header().Get("Location"))
	assert.Equal(t, "abc", cal.code)

	cal.callbackErr = errors.New("exchange failed")
	w = perform(r, http.MethodGet, "/callback?code=abc", "")
	assert.Equal(t, "http://localhost:5173/settings?calendar=error", w.Header().Get("Location"))

	w = perform(r, http.MethodGet, "/status", "")
	assert.JSONEq(t, `{"connected":true,"email":"owner@example.com"}`, w.Body.String())

	w = perform(r, http.MethodPost, "/disconnect", "")
	assert.JSONEq(t, `{"success":true,"message":"Calendar disconnected"}`, w.Body.String())
}

func TestCalendarAuthNotConfigured(t *testing.T) {
	r := gin.New()
	r.GET("/auth", NewCalendarHandler(&stubCalendar{authErr: calendar.ErrCalendarNotConfigured}, "").AuthURLHandler)

	w := perform(r, http.MethodGet, "/auth", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthHandlers(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthHandler)
	r.GET("/api/health", APIHealthHandler)

	w := perform(r, http.MethodGet, "/health", "")
	assert.Equal(t, "SmartMeet Backend is running", w.Body.String())

	w = perform(r, http.MethodGet, "/api/health", "")
	body := decode(t, w)
	assert.Equal(t, "healthy", body["status"])
	ts, err := time.Parse(time.RFC3339Nano, body["timestamp"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}
