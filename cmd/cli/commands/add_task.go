package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crewroster/crewroster/pkg/core/model"
	"github.com/crewroster/crewroster/pkg/core/services"
)

// AddTaskCmd creates the addTask command
func AddTaskCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addTask <title>",
		Short: "Create a new task in Pending status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")
			difficulty, _ := cmd.Flags().GetString("difficulty")
			skill, _ := cmd.Flags().GetString("skill")
			priority, _ := cmd.Flags().GetString("priority")
			reward, _ := cmd.Flags().GetInt("reward")

			task, err := services.AddTask(app.Ctx, app.Database, app.Logger, services.AddTaskInput{
				Title:             args[0],
				Description:       description,
				Difficulty:        model.TaskDifficulty(difficulty),
				SkillRequired:     skill,
				Priority:          model.TaskPriority(priority),
				SkillPointsReward: reward,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Task created\n\n")
			fmt.Printf("Task ID:    %s\n", task.ID)
			fmt.Printf("Title:      %s\n", task.Title)
			fmt.Printf("Difficulty: %s (%s)\n", task.Difficulty, task.SkillRequired)
			fmt.Printf("Priority:   %s\n", task.Priority)
			fmt.Printf("Reward:     %d skill points\n\n", task.SkillPointsReward)

			return nil
		},
	}

	cmd.Flags().String("description", "", "Task description")
	cmd.Flags().String("difficulty", "", "Difficulty (Easy, Medium, Hard)")
	cmd.Flags().String("skill", "", "Required skill")
	cmd.Flags().String("priority", "Medium", "Priority (Low, Medium, High)")
	cmd.Flags().Int("reward", 0, "Skill point reward (1-100)")
	cmd.MarkFlagRequired("difficulty")
	cmd.MarkFlagRequired("skill")
	cmd.MarkFlagRequired("reward")

	return cmd
}
