package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crewroster/crewroster/pkg/core/services"
)

// RecommendTasksCmd creates the recommendTasks command
func RecommendTasksCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommendTasks <employee_id>",
		Short: "List the best open tasks for an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recommendations, err := services.RecommendTasks(app.Ctx, app.Database, app.Logger, args[0], rngFromSeedFlag(cmd))
			if err != nil {
				return err
			}

			if len(recommendations) == 0 {
				fmt.Printf("\nNo open tasks match %s's skills.\n", args[0])
				return nil
			}

			fmt.Printf("\nRecommended tasks for %s:\n\n", args[0])
			for i, task := range recommendations {
				fmt.Printf("  %d. %s (%s, %s, reward %d)\n",
					i+1, task.Title, task.Difficulty, task.SkillRequired, task.SkillPointsReward)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "Seed for the random tie-break component")

	return cmd
}
