package rota

import (
	"fmt"
	"time"

	model "github.com/salmanakber/mayaopps-sub001/internal/models"
)

// Assessment is everything needed to judge one proposed assignment of Worker
// to Task on ScheduledDate.
type Assessment struct {
	Worker          model.User
	Task            model.Task
	ScheduledDate   time.Time
	DurationMinutes int

	// WeekTasks are the tasks already on the worker's calendar for the week
	// window. The task under assessment may be among them.
	WeekTasks    []model.Task
	Availability []model.Availability
	Leave        []model.LeaveRequest
	Required     []model.PropertySkill
	WorkerSkills []model.Skill
}

// Warnings runs every check and returns the findings in a fixed order:
// conflicts, availability, leave, skills, capacity. No check short-circuits
// another.
func (a Assessment) Warnings() []string {
	warnings := []string{}
	add := func(w string) {
		if w != "" {
			warnings = append(warnings, w)
		}
	}

	add(conflictWarning(CollidingTasks(a.Task, a.Worker.ID, a.ScheduledDate, a.WeekTasks), a.ScheduledDate))
	add(AvailabilityWarning(a.ScheduledDate, a.Availability))
	add(LeaveWarning(a.ScheduledDate, a.Leave))
	add(SkillWarning(MissingSkills(a.Required, a.WorkerSkills)))
	add(a.capacityWarning())
	return warnings
}

// ProjectedHours is the worker's weekly hours if the assignment goes ahead.
func (a Assessment) ProjectedHours() float64 {
	others := make([]model.Task, 0, len(a.WeekTasks))
	for _, t := range a.WeekTasks {
		if t.ID != a.Task.ID {
			others = append(others, t)
		}
	}

	current := 0.0
	if loads := ComputeWorkload([]model.User{a.Worker}, others); len(loads) == 1 {
		current = loads[0].HoursWorked
	}
	return Round2(current + float64(a.DurationMinutes)/60)
}

func (a Assessment) capacityWarning() string {
	if a.Worker.MaxHoursPerWeek == nil {
		return ""
	}
	limit := *a.Worker.MaxHoursPerWeek
	projected := a.ProjectedHours()
	if projected <= limit {
		return ""
	}
	return fmt.Sprintf(
		"Assignment brings worker to %.2f hours this week, above the %.2f hour maximum",
		projected, limit,
	)
}
