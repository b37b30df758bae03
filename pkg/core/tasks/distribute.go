package tasks

import (
	"sort"

	"github.com/crewroster/crewroster/pkg/core/model"
)

// DistributeTasksEqually greedily assigns the tasks across the roster in
// descending order of priority weight plus difficulty weight, calling
// AssignTask for each. The result maps every roster employee ID to their
// assigned tasks (possibly empty). Tasks with no eligible employee are
// silently dropped from the distribution and returned separately for
// reporting.
func (a *Assigner) DistributeTasksEqually(taskList []model.Task) (map[string][]model.Task, []model.Task) {
	distribution := make(map[string][]model.Task, len(a.roster))
	for _, emp := range a.roster {
		distribution[emp.ID] = []model.Task{}
	}

	sorted := append([]model.Task(nil), taskList...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return distributionWeight(sorted[i]) > distributionWeight(sorted[j])
	})

	var dropped []model.Task
	for _, task := range sorted {
		employeeID, ok := a.AssignTask(task)
		if !ok {
			dropped = append(dropped, task)
			continue
		}
		distribution[employeeID] = append(distribution[employeeID], task)
	}

	return distribution, dropped
}

func distributionWeight(task model.Task) int {
	return model.PriorityWeight(task.Priority) + model.DifficultyWeight(task.Difficulty)
}
