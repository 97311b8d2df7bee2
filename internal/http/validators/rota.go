package validators

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/salmanakber/mayaopps-sub001/internal/calendar"
	dto "github.com/salmanakber/mayaopps-sub001/internal/data_models"
)

// ValidateWindowQuery parses optional from/to bounds. Either may be nil.
func ValidateWindowQuery(q *dto.WindowQuery) (*time.Time, *time.Time, error) {
	from, err := parseDate("from", q.From)
	if err != nil {
		return nil, nil, err
	}
	to, err := parseEnd("to", q.To)
	if err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "to must not be before from")
	}
	return from, to, nil
}

// ValidateConflictWindow is ValidateWindowQuery with missing bounds filled from
// the week containing now.
func ValidateConflictWindow(q *dto.WindowQuery, now time.Time) (time.Time, time.Time, error) {
	from, to, err := ValidateWindowQuery(q)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	week := calendar.WeekOf(now)
	if from != nil {
		week.Start = *from
	}
	if to != nil {
		week.End = *to
	}
	if week.End.Before(week.Start) {
		return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "to must not be before from")
	}
	return week.Start, week.End, nil
}

func ValidateCloneWeekRequest(r *dto.CloneWeekRequest) (time.Time, time.Time, error) {
	if err := check(r); err != nil {
		return time.Time{}, time.Time{}, err
	}
	start, err := parseDate("week_start", r.WeekStart)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseEnd("week_end", r.WeekEnd)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(*start) {
		return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "week_end must not be before week_start")
	}
	return *start, *end, nil
}
