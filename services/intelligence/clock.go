package ai

import (
	"fmt"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	displayTime    = "03:04 PM"
	fullDateLayout = "Monday, January 2, 2006 at 3:04 PM"
)

// Clock is the reference clock that relative dates and times are resolved against.
type Clock interface {
	Snapshot() ClockSnapshot
	Location() *time.Location
}

// ClockSnapshot is one reading of the reference clock, already formatted.
type ClockSnapshot struct {
	Now          time.Time
	Date         string // YYYY-MM-DD
	Time         string // 03:04 PM
	Weekday      string
	FullDateTime string
	OffsetLabel  string
}

// ReferenceClock reads the process clock in a single fixed UTC offset.
type ReferenceClock struct {
	loc   *time.Location
	label string
	now   func() time.Time
}

// NewReferenceClock returns a clock in the given fixed offset. label is shown to the model.
func NewReferenceClock(offsetMinutes int, label string) *ReferenceClock {
	return &ReferenceClock{
		loc:   time.FixedZone(zoneName(offsetMinutes), offsetMinutes*60),
		label: label,
		now:   time.Now,
	}
}

// NewStaticClock returns a clock frozen at the given instant.
func NewStaticClock(at time.Time, offsetMinutes int, label string) *ReferenceClock {
	c := NewReferenceClock(offsetMinutes, label)
	c.now = func() time.Time { return at }
	return c
}

func (c *ReferenceClock) Location() *time.Location {
	return c.loc
}

func (c *ReferenceClock) Snapshot() ClockSnapshot {
	now := c.now().In(c.loc)
	return ClockSnapshot{
		Now:          now,
		Date:         now.Format(dateLayout),
		Time:         now.Format(displayTime),
		Weekday:      now.Weekday().String(),
		FullDateTime: now.Format(fullDateLayout),
		OffsetLabel:  c.label,
	}
}

func zoneName(offsetMinutes int) string {
	sign := "+"
	if offsetMinutes < 0 {
		sign = "-"
		offsetMinutes = -offsetMinutes
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, offsetMinutes/60, offsetMinutes%60)
}
