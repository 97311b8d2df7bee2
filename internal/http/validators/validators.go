package validators

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/salmanakber/mayaopps-sub001/internal/calendar"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// check runs the struct tags and turns the first failure into a 400.
func check(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	fe := fieldErrs[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is required", field))
	case "min":
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s must hold at least %s entries", field, fe.Param()))
	case "max":
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s must hold at most %s entries", field, fe.Param()))
	case "gt":
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s must be greater than %s", field, fe.Param()))
	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is invalid", field))
	}
}

func parseDate(field, value string) (*time.Time, error) {
	t, err := calendar.ParseOptionalDate(value)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s: %v", field, err))
	}
	return t, nil
}

// parseEnd reads an inclusive upper bound. A bare date covers the whole day.
func parseEnd(field, value string) (*time.Time, error) {
	t, err := parseDate(field, value)
	if err != nil || t == nil {
		return t, err
	}
	if len(strings.TrimSpace(value)) == len(calendar.DateLayout) {
		end := t.Add(calendar.EndOfDay)
		return &end, nil
	}
	return t, nil
}
