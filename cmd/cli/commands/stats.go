package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/crewroster/crewroster/pkg/core/model"
	"github.com/crewroster/crewroster/pkg/core/services"
)

// StatsCmd creates the stats command
func StatsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <start_date> <end_date>",
		Short: "Show workload, coverage, weekend fairness and task figures",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ScheduleStats(app.Ctx, app.Database, app.Logger, args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("\nSchedule statistics %s to %s\n\n",
				result.Start.Format(model.DateLayout), result.End.Format(model.DateLayout))

			fmt.Printf("Shifts:  %d total (%d weekday, %d weekend)\n\n",
				result.Schedule.TotalShifts, result.Schedule.WeekdayShifts, result.Schedule.WeekendShifts)

			fmt.Println("Workload per employee:")
			for _, id := range sortedKeys(result.Schedule.EmployeeWorkload) {
				fmt.Printf("  %-12s %3d shifts (%d weekend)\n",
					id, result.Schedule.EmployeeWorkload[id], result.Schedule.WeekendWorkload[id])
			}
			fmt.Println()

			fmt.Println("Weekend shift history:")
			for _, id := range sortedKeys(result.Weekends) {
				breakdown := result.Weekends[id]
				fmt.Printf("  %-12s %3d total (%d as Senior, %d as Junior)\n",
					id, breakdown.Total, breakdown.Senior, breakdown.Junior)
			}
			fmt.Println()

			fmt.Printf("Tasks: %d total, %d pending, %d in progress, %d completed (%d%%)\n\n",
				result.Tasks.Total, result.Tasks.Pending, result.Tasks.InProgress,
				result.Tasks.Completed, result.Tasks.CompletionRate)

			return nil
		},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
