package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ListEmployeesCmd creates the listEmployees command
func ListEmployeesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listEmployees",
		Short: "List all employees in the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := app.Database.GetEmployees(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list employees: %w", err)
			}

			fmt.Printf("\nFound %d employees:\n\n", len(employees))
			for _, emp := range employees {
				status := "active"
				if !emp.Active {
					status = "inactive"
				}
				fmt.Printf("- %s (%s) - %s - %s - skills: %s - %d weekend shifts, %d tasks done\n",
					emp.Name,
					emp.ID,
					emp.SkillLevel,
					status,
					strings.Join(emp.Skills, ", "),
					emp.WeekendShiftsWorked,
					emp.TasksCompleted,
				)
			}

			return nil
		},
	}
}
