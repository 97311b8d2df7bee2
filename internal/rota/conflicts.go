package rota

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/salmanakber/mayaopps-sub001/internal/calendar"
	"github.com/salmanakber/mayaopps-sub001/internal/constants"
	model "github.com/salmanakber/mayaopps-sub001/internal/models"
)

type Conflict struct {
	TaskID   string    `json:"task_id"`
	WorkerID string    `json:"worker_id"`
	Date     time.Time `json:"date"`
	Reason   string    `json:"reason"`
}

type slotKey struct {
	workerID string
	day      string
}

// DetectConflicts groups active tasks by (worker, calendar day) and reports
// every task in a group holding more than one task. Tasks without a date or
// without a worker never conflict. Output is ordered by worker, day, task id.
func DetectConflicts(tasks []model.Task) []Conflict {
	groups := make(map[slotKey][]string)
	for i := range tasks {
		task := &tasks[i]
		if task.ScheduledDate == nil || !task.Status.IsActive() {
			continue
		}
		day := calendar.DayKey(*task.ScheduledDate)
		for _, workerID := range task.WorkerIDs() {
			key := slotKey{workerID: workerID, day: day}
			groups[key] = appendUnique(groups[key], task.ID)
		}
	}

	conflicts := []Conflict{}
	for key, ids := range groups {
		if len(ids) < 2 {
			continue
		}
		sort.Strings(ids)
		date, _ := time.Parse(calendar.DateLayout, key.day)
		for _, id := range ids {
			conflicts = append(conflicts, Conflict{
				TaskID:   id,
				WorkerID: key.workerID,
				Date:     date,
				Reason:   fmt.Sprintf("worker is double-booked on %s (%d tasks)", key.day, len(ids)),
			})
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		a, b := conflicts[i], conflicts[j]
		if a.WorkerID != b.WorkerID {
			return a.WorkerID < b.WorkerID
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.TaskID < b.TaskID
	})
	return conflicts
}

// CollidingTasks projects task onto workerID at date and returns the ids of the
// other tasks it would share that day with.
func CollidingTasks(task model.Task, workerID string, date time.Time, existing []model.Task) []string {
	candidate := task
	candidate.ScheduledDate = &date
	candidate.Status = constants.StatusAssigned
	candidate.WorkerID = &workerID
	candidate.Assignees = []model.TaskAssignment{{TaskID: task.ID, WorkerID: workerID}}

	pool := make([]model.Task, 0, len(existing)+1)
	for _, t := range existing {
		if t.ID == task.ID {
			continue
		}
		pool = append(pool, t)
	}
	pool = append(pool, candidate)

	day := calendar.TruncateDay(date)
	var ids []string
	for _, c := range DetectConflicts(pool) {
		if c.WorkerID != workerID || !c.Date.Equal(day) || c.TaskID == task.ID {
			continue
		}
		ids = append(ids, c.TaskID)
	}
	return ids
}

func conflictWarning(ids []string, date time.Time) string {
	if len(ids) == 0 {
		return ""
	}
	return fmt.Sprintf(
		"Worker already has %d other task(s) on %s: %s",
		len(ids), calendar.DayKey(date), strings.Join(ids, ", "),
	)
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
