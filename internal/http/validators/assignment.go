package validators

import (
	"fmt"

	dto "github.com/salmanakber/mayaopps-sub001/internal/data_models"
	"github.com/salmanakber/mayaopps-sub001/internal/services"
)

func ValidateAssignmentRequest(r *dto.ValidateAssignmentRequest) (services.AssignmentInput, error) {
	if err := check(r); err != nil {
		return services.AssignmentInput{}, err
	}
	return toAssignmentInput("", r)
}

func ValidateAssignTaskRequest(r *dto.AssignTaskRequest) (services.AssignInput, error) {
	if err := check(&r.ValidateAssignmentRequest); err != nil {
		return services.AssignInput{}, err
	}
	in, err := toAssignmentInput("", &r.ValidateAssignmentRequest)
	if err != nil {
		return services.AssignInput{}, err
	}
	return services.AssignInput{
		AssignmentInput: in,
		IgnoreWarnings:  r.IgnoreWarnings,
		Additional:      r.Additional,
	}, nil
}

func ValidateBatchRequest(r *dto.ValidateBatchRequest) ([]services.AssignmentInput, error) {
	if err := check(r); err != nil {
		return nil, err
	}
	inputs := make([]services.AssignmentInput, 0, len(r.Assignments))
	for i := range r.Assignments {
		in, err := toAssignmentInput(fmt.Sprintf("assignments[%d].", i), &r.Assignments[i])
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func toAssignmentInput(prefix string, r *dto.ValidateAssignmentRequest) (services.AssignmentInput, error) {
	scheduled, err := parseDate(prefix+"scheduled_date", r.ScheduledDate)
	if err != nil {
		return services.AssignmentInput{}, err
	}
	weekStart, err := parseDate(prefix+"week_start", r.WeekStart)
	if err != nil {
		return services.AssignmentInput{}, err
	}
	weekEnd, err := parseEnd(prefix+"week_end", r.WeekEnd)
	if err != nil {
		return services.AssignmentInput{}, err
	}

	return services.AssignmentInput{
		WorkerID:                 r.WorkerID,
		TaskID:                   r.TaskID,
		ScheduledDate:            scheduled,
		PropertyID:               r.PropertyID,
		EstimatedDurationMinutes: r.EstimatedDurationMinutes,
		WeekStart:                weekStart,
		WeekEnd:                  weekEnd,
	}, nil
}
