package rota

import (
	"fmt"
	"sort"
	"time"

	"github.com/salmanakber/mayaopps-sub001/internal/calendar"
	model "github.com/salmanakber/mayaopps-sub001/internal/models"
)

// AvailabilityWarning checks a scheduled instant against recurring weekly
// windows. A day with no records is unknown and never warns. Any unavailable
// record for the day warns. A timed task must also start inside one of the
// day's available windows; a date-only task (midnight) skips that test.
func AvailabilityWarning(scheduled time.Time, windows []model.Availability) string {
	weekday := scheduled.UTC().Weekday()

	var open []model.Availability
	matched := false
	for _, w := range windows {
		if w.DayOfWeek != int(weekday) {
			continue
		}
		matched = true
		if !w.IsAvailable {
			return fmt.Sprintf("Worker is marked unavailable on %s", weekday)
		}
		open = append(open, w)
	}
	if !matched || !calendar.HasTimeOfDay(scheduled) {
		return ""
	}

	minute := calendar.MinuteOfDay(scheduled)
	for _, w := range open {
		if covers(w, minute) {
			return ""
		}
	}
	return fmt.Sprintf(
		"Task at %s on %s is outside the worker's availability (%s)",
		scheduled.UTC().Format("15:04"), weekday, describeWindows(open),
	)
}

// LeaveWarning reports the first approved leave range that contains the
// scheduled calendar day, inclusive at both ends.
func LeaveWarning(scheduled time.Time, leave []model.LeaveRequest) string {
	day := calendar.TruncateDay(scheduled)

	approved := make([]model.LeaveRequest, 0, len(leave))
	for _, l := range leave {
		if l.Status == model.LeaveApproved {
			approved = append(approved, l)
		}
	}
	sort.Slice(approved, func(i, j int) bool {
		return approved[i].StartDate.Before(approved[j].StartDate)
	})

	for _, l := range approved {
		start, end := calendar.TruncateDay(l.StartDate), calendar.TruncateDay(l.EndDate)
		if day.Before(start) || day.After(end) {
			continue
		}
		return fmt.Sprintf(
			"Worker is on approved leave from %s to %s",
			calendar.DayKey(start), calendar.DayKey(end),
		)
	}
	return ""
}

// covers treats unparsable bounds as the whole day and end <= start as a
// window that runs past midnight.
func covers(w model.Availability, minute int) bool {
	start, okStart := calendar.ParseClock(w.StartTime)
	end, okEnd := calendar.ParseClock(w.EndTime)
	if !okStart || !okEnd {
		return true
	}
	if end <= start {
		return minute >= start || minute < end
	}
	return minute >= start && minute < end
}

func describeWindows(windows []model.Availability) string {
	sort.Slice(windows, func(i, j int) bool { return windows[i].StartTime < windows[j].StartTime })
	out := ""
	for i, w := range windows {
		if i > 0 {
			out += ", "
		}
		out += w.StartTime + "-" + w.EndTime
	}
	return out
}
