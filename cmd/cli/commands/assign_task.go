package commands

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/crewroster/crewroster/pkg/core/services"
)

// rngFromSeedFlag builds a seeded random source when --seed was given, nil
// otherwise so the service falls back to its default
func rngFromSeedFlag(cmd *cobra.Command) *rand.Rand {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	seed, _ := cmd.Flags().GetInt64("seed")
	return rand.New(rand.NewSource(seed))
}

// AssignTaskCmd creates the assignTask command
func AssignTaskCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assignTask <task_id>",
		Short: "Assign a task to the best-scoring eligible employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.AssignTask(app.Ctx, app.Database, app.Logger, args[0], rngFromSeedFlag(cmd))
			if err != nil {
				return err
			}

			if !result.Assigned {
				fmt.Printf("\nNo eligible employee for task %s (requires %s).\n", result.Task.ID, result.Task.SkillRequired)
				return nil
			}

			fmt.Printf("\n✓ Task assigned\n\n")
			fmt.Printf("Task:        %s (%s)\n", result.Task.Title, result.Task.ID)
			fmt.Printf("Difficulty:  %s\n", result.Task.Difficulty)
			fmt.Printf("Assigned to: %s\n\n", result.AssignedTo)

			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "Seed for the random tie-break component")

	return cmd
}
