package validators

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	dto "github.com/salmanakber/mayaopps-sub001/internal/data_models"
)

func httpMessage(t *testing.T, err error) (int, string) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	msg, _ := he.Message.(string)
	return he.Code, msg
}

func TestValidateBatchRequest_SizeMessages(t *testing.T) {
	_, err := ValidateBatchRequest(&dto.ValidateBatchRequest{Assignments: []dto.ValidateAssignmentRequest{}})
	code, msg := httpMessage(t, err)
	if code != http.StatusBadRequest || msg != "assignments must hold at least 1 entries" {
		t.Fatalf("unexpected min error: %d %q", code, msg)
	}

	big := make([]dto.ValidateAssignmentRequest, 501)
	for i := range big {
		big[i] = dto.ValidateAssignmentRequest{WorkerID: "w", TaskID: "t"}
	}
	_, err = ValidateBatchRequest(&dto.ValidateBatchRequest{Assignments: big})
	_, msg = httpMessage(t, err)
	if msg != "assignments must hold at most 500 entries" {
		t.Fatalf("unexpected max error: %q", msg)
	}
}

func TestValidateBatchRequest_ItemErrors(t *testing.T) {
	_, err := ValidateBatchRequest(&dto.ValidateBatchRequest{Assignments: []dto.ValidateAssignmentRequest{
		{WorkerID: "w", TaskID: "t"},
		{TaskID: "t"},
	}})
	_, msg := httpMessage(t, err)
	if msg != "assignments[1].worker_id is required" {
		t.Fatalf("unexpected message %q", msg)
	}

	_, err = ValidateBatchRequest(&dto.ValidateBatchRequest{Assignments: []dto.ValidateAssignmentRequest{
		{WorkerID: "w", TaskID: "t", WeekEnd: "soon"},
	}})
	_, msg = httpMessage(t, err)
	if !strings.HasPrefix(msg, "assignments[0].week_end") {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestValidateAssignTaskRequest(t *testing.T) {
	zero := 0
	_, err := ValidateAssignTaskRequest(&dto.AssignTaskRequest{ValidateAssignmentRequest: dto.ValidateAssignmentRequest{
		WorkerID: "w", TaskID: "t", EstimatedDurationMinutes: &zero,
	}})
	_, msg := httpMessage(t, err)
	if msg != "estimated_duration_minutes must be greater than 0" {
		t.Fatalf("unexpected message %q", msg)
	}

	in, err := ValidateAssignTaskRequest(&dto.AssignTaskRequest{
		ValidateAssignmentRequest: dto.ValidateAssignmentRequest{
			WorkerID:      "w",
			TaskID:        "t",
			ScheduledDate: "2025-06-11T10:30:00Z",
			WeekStart:     "2025-06-09",
			WeekEnd:       "2025-06-15",
		},
		IgnoreWarnings: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in.IgnoreWarnings || in.ScheduledDate.Hour() != 10 {
		t.Fatalf("unexpected input: %+v", in)
	}
	wantEnd := time.Date(2025, 6, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if !in.WeekEnd.Equal(wantEnd) {
		t.Fatalf("expected bare week_end to cover the day, got %s", in.WeekEnd)
	}
}
