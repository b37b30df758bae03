package scheduler

import (
	"fmt"
	"time"

	"github.com/crewroster/crewroster/pkg/core/model"
)

func date(s string) time.Time {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// makeRoster builds an active roster with the given number of seniors and
// juniors, IDs s1..sN then j1..jM
func makeRoster(seniors, juniors int) []model.Employee {
	var roster []model.Employee
	for i := 1; i <= seniors; i++ {
		roster = append(roster, model.Employee{
			ID:         fmt.Sprintf("s%d", i),
			SkillLevel: model.LevelSenior,
			Active:     true,
		})
	}
	for i := 1; i <= juniors; i++ {
		roster = append(roster, model.Employee{
			ID:         fmt.Sprintf("j%d", i),
			SkillLevel: model.LevelJunior,
			Active:     true,
		})
	}
	return roster
}

func shiftByType(shifts []model.Shift, shiftType model.ShiftType) *model.Shift {
	for i := range shifts {
		if shifts[i].Type == shiftType {
			return &shifts[i]
		}
	}
	return nil
}
