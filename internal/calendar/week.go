// Package calendar holds the date arithmetic shared by the rota engine.
// Weeks are ISO-8601 style: Monday 00:00:00 through Sunday 23:59:59.999 UTC.
package calendar

import (
	"strings"
	"time"

	apperrors "github.com/salmanakber/mayaopps-sub001/internal/errors"
)

const (
	DateLayout = "2006-01-02"
	Day        = 24 * time.Hour
	Week       = 7 * Day
)

// EndOfDay is the offset of the last representable instant of a day at
// millisecond precision.
const EndOfDay = Day - time.Millisecond

type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Shift moves both boundaries by days.
func (w Window) Shift(days int) Window {
	return Window{Start: AddDays(w.Start, days), End: AddDays(w.End, days)}
}

// TruncateDay drops the time-of-day, normalising to UTC.
func TruncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayIndex maps a date onto Monday=0 .. Sunday=6.
func DayIndex(t time.Time) int {
	return (int(t.UTC().Weekday()) + 6) % 7
}

func WeekStart(t time.Time) time.Time {
	day := TruncateDay(t)
	return day.AddDate(0, 0, -DayIndex(day))
}

func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 6).Add(EndOfDay)
}

func WeekOf(t time.Time) Window {
	return Window{Start: WeekStart(t), End: WeekEnd(t)}
}

func SameDay(a, b time.Time) bool {
	return TruncateDay(a).Equal(TruncateDay(b))
}

// DayKey formats the calendar day of t, suitable as a grouping key.
func DayKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// HasTimeOfDay reports whether t carries a clock time beyond midnight.
func HasTimeOfDay(t time.Time) bool {
	u := t.UTC()
	return u.Hour() != 0 || u.Minute() != 0 || u.Second() != 0 || u.Nanosecond() != 0
}

func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// DaysBetween counts whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(TruncateDay(b).Sub(TruncateDay(a)) / Day)
}

// ParseDate accepts either a bare date or an RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, apperrors.ErrInvalidDate
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDate
	}
	return t.UTC(), nil
}

// ParseOptionalDate returns nil for an empty string.
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseClock parses an "HH:MM" availability boundary into minutes after midnight.
func ParseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// MinuteOfDay is the UTC clock time of t in minutes after midnight.
func MinuteOfDay(t time.Time) int {
	u := t.UTC()
	return u.Hour()*60 + u.Minute()
}
