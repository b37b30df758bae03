// Package tasks implements the skill-scored task assignment heuristic: it
// matches tasks to employees by required skill, scores candidates on
// difficulty fit and load, and selects the best one.
package tasks

import (
	"math/rand"
	"sort"

	"github.com/crewroster/crewroster/pkg/core/model"
)

// Assigner scores and assigns tasks over a roster snapshot. The random
// tie-break source is injected so callers that need reproducible outcomes
// can seed it.
type Assigner struct {
	roster []model.Employee
	rng    *rand.Rand
}

// NewAssigner creates an assigner over the roster. A nil rng falls back to a
// fixed-seed source, which keeps outcomes reproducible by default.
func NewAssigner(roster []model.Employee, rng *rand.Rand) *Assigner {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Assigner{roster: roster, rng: rng}
}

// AssignTask picks the best-scoring employee whose skill set contains the
// task's required skill. The second return is false when nobody is eligible;
// that is a reportable outcome, not an error.
func (a *Assigner) AssignTask(task model.Task) (string, bool) {
	var best string
	bestScore := -1.0

	for i := range a.roster {
		emp := &a.roster[i]
		if !emp.HasSkill(task.SkillRequired) {
			continue
		}
		score := a.score(emp, task)
		if score > bestScore {
			bestScore = score
			best = emp.ID
		}
	}

	return best, best != ""
}

// score computes the assignment score for one employee/task pair:
// difficulty fit (Hard+Senior 30, Medium+Senior 25, Easy 20), a load bonus
// decaying with the estimated current task count, a growth bias steering
// non-Hard tasks toward juniors, and a bounded random tie-breaker in [0,5).
func (a *Assigner) score(emp *model.Employee, task model.Task) float64 {
	var score float64

	switch {
	case task.Difficulty == model.DifficultyHard && emp.SkillLevel == model.LevelSenior:
		score += 30
	case task.Difficulty == model.DifficultyMedium && emp.SkillLevel == model.LevelSenior:
		score += 25
	case task.Difficulty == model.DifficultyEasy:
		score += 20
	}

	// Load proxy: floor(tasksCompleted/10) stands in for the live in-flight
	// count. Kept as-is; changing it changes assignment outcomes.
	load := emp.TasksCompleted / 10
	if bonus := 10 - 2*load; bonus > 0 {
		score += float64(bonus)
	}

	if emp.SkillLevel == model.LevelJunior && task.Difficulty != model.DifficultyHard {
		score += 15
	}

	score += a.rng.Float64() * 5

	return score
}

// GetTaskRecommendations returns up to 5 of the given tasks matching the
// employee's skills, ordered by descending assignment score for that
// employee. Unknown employee IDs yield an empty list.
func (a *Assigner) GetTaskRecommendations(employeeID string, availableTasks []model.Task) []model.Task {
	var emp *model.Employee
	for i := range a.roster {
		if a.roster[i].ID == employeeID {
			emp = &a.roster[i]
			break
		}
	}
	if emp == nil {
		return nil
	}

	var matching []model.Task
	for _, task := range availableTasks {
		if emp.HasSkill(task.SkillRequired) {
			matching = append(matching, task)
		}
	}

	scores := make(map[string]float64, len(matching))
	for _, task := range matching {
		scores[task.ID] = a.score(emp, task)
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return scores[matching[i].ID] > scores[matching[j].ID]
	})

	if len(matching) > 5 {
		matching = matching[:5]
	}
	return matching
}
