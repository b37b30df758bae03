package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crewroster/crewroster/pkg/core/services"
)

// CompleteTaskCmd creates the completeTask command
func CompleteTaskCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "completeTask <task_id> <employee_id>",
		Short: "Mark a task completed by its assignee and award skill points",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.CompleteTask(app.Ctx, app.Database, app.Logger, args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Task completed\n\n")
			fmt.Printf("Task:            %s (%s)\n", result.Task.Title, result.Task.ID)
			fmt.Printf("Reward:          %d skill points\n", result.Task.SkillPointsReward)
			fmt.Printf("Skill points:    %d\n", result.SkillPoints)
			fmt.Printf("Tasks completed: %d\n\n", result.TasksCompleted)

			return nil
		},
	}
}
