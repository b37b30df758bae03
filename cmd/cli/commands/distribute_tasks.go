package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crewroster/crewroster/pkg/core/services"
)

// DistributeTasksCmd creates the distributeTasks command
func DistributeTasksCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distributeTasks",
		Short: "Distribute all unassigned pending tasks across the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			result, err := services.DistributeTasks(app.Ctx, app.Database, app.Logger, rngFromSeedFlag(cmd), dryRun)
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Printf("\nDry run - distribution not saved\n\n")
			} else {
				fmt.Printf("\n✓ Tasks distributed\n\n")
			}

			for employeeID, assigned := range result.Distribution {
				fmt.Printf("%s: %d task(s)\n", employeeID, len(assigned))
				for _, task := range assigned {
					fmt.Printf("  - %s (%s, %s)\n", task.Title, task.Difficulty, task.SkillRequired)
				}
			}
			fmt.Println()

			if len(result.Dropped) > 0 {
				fmt.Printf("⚠ %d task(s) had no eligible employee:\n", len(result.Dropped))
				for _, task := range result.Dropped {
					fmt.Printf("  - %s (requires %s)\n", task.Title, task.SkillRequired)
				}
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Distribute without saving to the database")
	cmd.Flags().Int64("seed", 0, "Seed for the random tie-break component")

	return cmd
}
