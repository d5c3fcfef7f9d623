package datemath

import (
	"fmt"
	"time"
)

// Calendar performs civil-date arithmetic in a single fixed time zone.
type Calendar struct {
	location *time.Location
}

// New creates a Calendar for loc. A nil loc means the default UTC+9 zone.
func New(loc *time.Location) *Calendar {
	if loc == nil {
		loc = FixedZone(DefaultUTCOffsetHours)
	}
	return &Calendar{location: loc}
}

// FixedZone returns a zone with the given whole-hour offset from UTC.
func FixedZone(offsetHours int) *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*60*60)
}

// Location returns the calendar's time zone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// StartOfDay returns local midnight of the day containing t.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// EndOfDay returns 23:59:59.999 of the day containing t.
func (c *Calendar) EndOfDay(t time.Time) time.Time {
	return c.StartOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// AddDays moves t by n calendar days and returns local midnight of that day.
func (c *Calendar) AddDays(t time.Time, n int) time.Time {
	return c.StartOfDay(t).AddDate(0, 0, n)
}

// CivilDate formats t as YYYY-MM-DD in the calendar's zone.
func (c *Calendar) CivilDate(t time.Time) string {
	return t.In(c.location).Format(DateFormat)
}

// ParseCivilDate parses a YYYY-MM-DD string as local midnight.
func (c *Calendar) ParseCivilDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, s, c.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid civil date %q: %w", s, err)
	}
	return t, nil
}

// CompareCivil compares the civil dates of a and b: -1 when a is earlier, 0 when equal, 1 when later.
func (c *Calendar) CompareCivil(a, b time.Time) int {
	return c.StartOfDay(a).Compare(c.StartOfDay(b))
}

// SameDay reports whether a and b fall on the same civil date.
func (c *Calendar) SameDay(a, b time.Time) bool {
	return c.CompareCivil(a, b) == 0
}

// WeekBounds returns Monday 00:00:00 and Sunday 23:59:59.999 of the week containing now.
func (c *Calendar) WeekBounds(now time.Time) (time.Time, time.Time) {
	weekday := int(now.In(c.location).Weekday())
	offset := 1 - weekday
	if weekday == int(time.Sunday) {
		offset = -6
	}
	monday := c.AddDays(now, offset)
	sunday := c.EndOfDay(monday.AddDate(0, 0, 6))
	return monday, sunday
}

// NextWeekday returns the next occurrence of target strictly after today.
// When today already is target, the result is one week later.
func (c *Calendar) NextWeekday(now time.Time, target time.Weekday) time.Time {
	current := now.In(c.location).Weekday()
	daysUntil := int(target - current)
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return c.AddDays(now, daysUntil)
}

// Resolve derives the relative date references for now.
func (c *Calendar) Resolve(now time.Time) References {
	local := now.In(c.location)
	return References{
		Now:              local,
		Today:            c.StartOfDay(local),
		Tomorrow:         c.AddDays(local, 1),
		DayAfterTomorrow: c.AddDays(local, 2),
		ThisFriday:       c.NextWeekday(local, time.Friday),
		NextMonday:       c.NextWeekday(local, time.Monday),
		Weekday:          WeekdayNames[local.Weekday()],
	}
}
