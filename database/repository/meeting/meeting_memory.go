package meetingRepo

import (
	"context"
	"sync"

	"smartmeet/models"
)

// MemoryMeetingRepo keeps everything in process memory. Data is lost on restart.
type MemoryMeetingRepo struct {
	mu       sync.Mutex
	meetings []models.Meeting
	logs     []models.EmailLog
}

func NewMemoryMeetingRepo() *MemoryMeetingRepo {
	return &MemoryMeetingRepo{}
}

func (r *MemoryMeetingRepo) SaveMeeting(_ context.Context, meeting *models.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meetings = append(r.meetings, *meeting)
	return nil
}

func (r *MemoryMeetingRepo) ListMeetings(_ context.Context) ([]models.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Meeting, len(r.meetings))
	copy(out, r.meetings)
	return out, nil
}

func (r *MemoryMeetingRepo) GetMeeting(_ context.Context, id string) (*models.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.meetings {
		if r.meetings[i].ID == id {
			m := r.meetings[i]
			return &m, nil
		}
	}
	return nil, ErrMeetingNotFound
}

func (r *MemoryMeetingRepo) AttachCalendarEvent(_ context.Context, id string, ref models.CalendarEventRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.meetings {
		if r.meetings[i].ID == id {
			r.meetings[i].CalendarEvent = &ref
			return nil
		}
	}
	return ErrMeetingNotFound
}

func (r *MemoryMeetingRepo) AppendEmailLog(_ context.Context, entry models.EmailLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, entry)
	return nil
}

func (r *MemoryMeetingRepo) ListEmailLogs(_ context.Context) ([]models.EmailLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.EmailLog, len(r.logs))
	copy(out, r.logs)
	return out, nil
}

func (r *MemoryMeetingRepo) Stats(_ context.Context) (models.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return computeStats(len(r.meetings), r.logs), nil
}
