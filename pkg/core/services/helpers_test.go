package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/crewroster/crewroster/pkg/core/model"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}

// testRoster builds an active roster big enough to fill every weekday quota
func testRoster() []model.Employee {
	return []model.Employee{
		{ID: "s1", Name: "Senior One", Email: "s1@example.com", SkillLevel: model.LevelSenior, Active: true},
		{ID: "s2", Name: "Senior Two", Email: "s2@example.com", SkillLevel: model.LevelSenior, Active: true},
		{ID: "s3", Name: "Senior Three", Email: "s3@example.com", SkillLevel: model.LevelSenior, Active: true},
		{ID: "s4", Name: "Senior Four", Email: "s4@example.com", SkillLevel: model.LevelSenior, Active: true},
		{ID: "s5", Name: "Senior Five", Email: "s5@example.com", SkillLevel: model.LevelSenior, Active: true},
		{ID: "j1", Name: "Junior One", Email: "j1@example.com", SkillLevel: model.LevelJunior, Active: true},
		{ID: "j2", Name: "Junior Two", Email: "j2@example.com", SkillLevel: model.LevelJunior, Active: true},
		{ID: "j3", Name: "Junior Three", Email: "j3@example.com", SkillLevel: model.LevelJunior, Active: true},
		{ID: "j4", Name: "Junior Four", Email: "j4@example.com", SkillLevel: model.LevelJunior, Active: true},
		{ID: "j5", Name: "Junior Five", Email: "j5@example.com", SkillLevel: model.LevelJunior, Active: true},
		{ID: "j6", Name: "Junior Six", Email: "j6@example.com", SkillLevel: model.LevelJunior, Active: true},
	}
}
