package rota

import (
	"time"

	"github.com/salmanakber/mayaopps-sub001/internal/constants"
	model "github.com/salmanakber/mayaopps-sub001/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hour, minute int) time.Time {
	return time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
}

func newTask(id string, status constants.TaskStatus, date *time.Time, workers ...string) model.Task {
	task := model.Task{ID: id, Status: status, ScheduledDate: date}
	for _, w := range workers {
		task.Assignees = append(task.Assignees, model.TaskAssignment{TaskID: id, WorkerID: w})
	}
	return task
}

func ptr[T any](v T) *T {
	return &v
}
