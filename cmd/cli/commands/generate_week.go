package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crewroster/crewroster/pkg/core/services"
)

// GenerateWeekCmd creates the generateWeek command
func GenerateWeekCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateWeek <week_start>",
		Short: "Generate all shifts for the week starting on the given Monday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			result, err := services.GenerateWeek(app.Ctx, app.Database, app.Cfg, app.Logger, args[0], dryRun)
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Printf("\nDry run - week of %s (not saved)\n\n", args[0])
			} else {
				fmt.Printf("\nWeek of %s generated\n\n", args[0])
			}

			for _, warning := range result.HolidayWarnings {
				fmt.Printf("  ⚠ %s\n", warning)
			}
			if len(result.HolidayWarnings) > 0 {
				fmt.Println()
			}

			fmt.Printf("%-12s  %-18s  %-30s  %s\n", "Date", "Shift", "Employees", "Status")
			fmt.Println("------------  ------------------  ------------------------------  ------------")
			for _, shift := range result.Shifts {
				employees := "—"
				if len(shift.EmployeeIDs) > 0 {
					employees = fmt.Sprintf("%d assigned", len(shift.EmployeeIDs))
				}
				fmt.Printf("%-12s  %-18s  %-30s  %s\n",
					shift.Date.Format("2006-01-02"),
					shift.Type,
					employees,
					shift.StaffingStatus(),
				)
			}
			fmt.Println()

			if len(result.Unfilled) > 0 {
				fmt.Printf("⚠ %d quota slots could not be filled.\n", len(result.Unfilled))
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Generate without saving to the database")

	return cmd
}
