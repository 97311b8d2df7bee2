package rota

import (
	"math"
	"sort"

	model "github.com/salmanakber/mayaopps-sub001/internal/models"
)

type WorkerLoad struct {
	WorkerID        string   `json:"worker_id"`
	Name            string   `json:"name"`
	TaskCount       int      `json:"task_count"`
	HoursWorked     float64  `json:"hours_worked"`
	MaxHoursPerWeek *float64 `json:"max_hours_per_week,omitempty"`
}

type TeamStats struct {
	Average      float64 `json:"average"`
	Max          int     `json:"max"`
	Min          int     `json:"min"`
	AverageHours float64 `json:"average_hours"`
	MaxHours     float64 `json:"max_hours"`
	MinHours     float64 `json:"min_hours"`
}

// TaskHours converts a task's duration estimate into hours.
func TaskHours(t *model.Task) float64 {
	return float64(t.DurationMinutes()) / 60
}

// ComputeWorkload totals active tasks per worker. Every worker gets an entry,
// including those with nothing scheduled. Tasks for workers outside the list
// are ignored. Hours are rounded to two decimals.
func ComputeWorkload(workers []model.User, tasks []model.Task) []WorkerLoad {
	index := make(map[string]int, len(workers))
	loads := make([]WorkerLoad, len(workers))
	raw := make([]float64, len(workers))
	for i, w := range workers {
		index[w.ID] = i
		loads[i] = WorkerLoad{WorkerID: w.ID, Name: w.Name, MaxHoursPerWeek: w.MaxHoursPerWeek}
	}

	for i := range tasks {
		task := &tasks[i]
		if !task.Status.IsActive() {
			continue
		}
		for _, workerID := range task.WorkerIDs() {
			pos, ok := index[workerID]
			if !ok {
				continue
			}
			loads[pos].TaskCount++
			raw[pos] += TaskHours(task)
		}
	}

	for i := range loads {
		loads[i].HoursWorked = Round2(raw[i])
	}
	sort.SliceStable(loads, func(i, j int) bool {
		if loads[i].Name != loads[j].Name {
			return loads[i].Name < loads[j].Name
		}
		return loads[i].WorkerID < loads[j].WorkerID
	})
	return loads
}

// ComputeTeamStats aggregates per-worker figures. An empty team yields zeros.
func ComputeTeamStats(loads []WorkerLoad) TeamStats {
	if len(loads) == 0 {
		return TeamStats{}
	}

	stats := TeamStats{
		Max:      loads[0].TaskCount,
		Min:      loads[0].TaskCount,
		MaxHours: loads[0].HoursWorked,
		MinHours: loads[0].HoursWorked,
	}
	var tasks int
	var hours float64
	for _, l := range loads {
		tasks += l.TaskCount
		hours += l.HoursWorked
		stats.Max = max(stats.Max, l.TaskCount)
		stats.Min = min(stats.Min, l.TaskCount)
		stats.MaxHours = max(stats.MaxHours, l.HoursWorked)
		stats.MinHours = min(stats.MinHours, l.HoursWorked)
	}

	n := float64(len(loads))
	stats.Average = Round2(float64(tasks) / n)
	stats.AverageHours = Round2(hours / n)
	return stats
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
