package rota

import (
	"strings"
	"testing"
	"time"

	model "github.com/salmanakber/mayaopps-sub001/internal/models"
)

func TestAvailabilityWarning(t *testing.T) {
	wednesday := int(time.Wednesday)
	windows := []model.Availability{
		{DayOfWeek: wednesday, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
		{DayOfWeek: wednesday, StartTime: "13:00", EndTime: "17:00", IsAvailable: true},
		{DayOfWeek: int(time.Thursday), StartTime: "00:00", EndTime: "23:59", IsAvailable: false},
		{DayOfWeek: int(time.Friday), StartTime: "12:00", EndTime: "13:00", IsAvailable: false},
		{DayOfWeek: int(time.Sunday), StartTime: "08:00", EndTime: "18:00", IsAvailable: true},
		{DayOfWeek: int(time.Sunday), StartTime: "14:00", EndTime: "15:00", IsAvailable: false},
	}

	tests := []struct {
		name      string
		scheduled time.Time
		warn      bool
	}{
		{"inside morning window", at(2024, 1, 3, 10, 0), false},
		{"inside afternoon window", at(2024, 1, 3, 13, 0), false},
		{"lunch gap", at(2024, 1, 3, 12, 30), true},
		{"end is exclusive", at(2024, 1, 3, 17, 0), true},
		{"date only with open windows", day(2024, 1, 3), false},
		{"explicitly unavailable day", day(2024, 1, 4), true},
		{"explicitly unavailable day with time", at(2024, 1, 4, 10, 0), true},
		{"blocked slot", at(2024, 1, 5, 12, 15), true},
		{"unavailable record outside its hours", at(2024, 1, 5, 9, 0), true},
		{"unavailable record date only", day(2024, 1, 5), true},
		{"no record for the day", at(2024, 1, 6, 22, 0), false},
		{"unavailable beside an open window", at(2024, 1, 7, 10, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailabilityWarning(tt.scheduled, windows)
			if (got != "") != tt.warn {
				t.Errorf("expected warn=%v, got %q", tt.warn, got)
			}
		})
	}
}

func TestAvailabilityWarningOvernight(t *testing.T) {
	windows := []model.Availability{
		{DayOfWeek: int(time.Monday), StartTime: "22:00", EndTime: "06:00", IsAvailable: true},
	}
	if w := AvailabilityWarning(at(2024, 1, 1, 23, 0), windows); w != "" {
		t.Errorf("expected overnight window to cover 23:00, got %q", w)
	}
	if w := AvailabilityWarning(at(2024, 1, 1, 12, 0), windows); w == "" {
		t.Error("expected midday to fall outside the overnight window")
	}
}

func TestLeaveWarning(t *testing.T) {
	leave := []model.LeaveRequest{
		{StartDate: day(2024, 1, 10), EndDate: day(2024, 1, 12), Status: model.LeaveApproved},
		{StartDate: day(2024, 1, 1), EndDate: day(2024, 1, 31), Status: model.LeavePending},
	}

	tests := []struct {
		scheduled time.Time
		warn      bool
	}{
		{day(2024, 1, 10), true},
		{at(2024, 1, 12, 23, 30), true},
		{day(2024, 1, 13), false},
		{day(2024, 1, 9), false},
	}

	for _, tt := range tests {
		got := LeaveWarning(tt.scheduled, leave)
		if (got != "") != tt.warn {
			t.Errorf("%s: expected warn=%v, got %q", tt.scheduled, tt.warn, got)
		}
		if tt.warn && !strings.Contains(got, "2024-01-10 to 2024-01-12") {
			t.Errorf("warning should name the leave range, got %q", got)
		}
	}
}
