package tasks

import (
	"math"

	"github.com/crewroster/crewroster/pkg/core/model"
)

// Stats is a derived read-only view over a set of tasks
type Stats struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int

	// CompletionRate is Completed/Total as a rounded percentage, 0 when
	// there are no tasks
	CompletionRate int
}

// ComputeStats counts tasks by status and derives the completion rate
func ComputeStats(taskList []model.Task) Stats {
	stats := Stats{Total: len(taskList)}
	for _, task := range taskList {
		switch task.Status {
		case model.TaskPending:
			stats.Pending++
		case model.TaskInProgress:
			stats.InProgress++
		case model.TaskCompleted:
			stats.Completed++
		}
	}
	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	return stats
}
