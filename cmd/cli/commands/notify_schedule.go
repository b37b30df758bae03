package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crewroster/crewroster/pkg/core/services"
)

// NotifyScheduleCmd creates the notifySchedule command
func NotifyScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifySchedule <week_start>",
		Short: "Email each employee their shifts for the week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			gmail, err := app.Gmail()
			if err != nil {
				return err
			}

			sent, failed, err := services.NotifySchedule(app.Ctx, app.Database, gmail, app.Logger, args[0], dryRun)
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Printf("\nDry run - no emails sent\n\n")
			} else {
				fmt.Printf("\n✓ Notifications sent\n\n")
			}

			for _, n := range sent {
				fmt.Printf("  ✓ %s (%s): %d shift(s)\n", n.EmployeeName, n.Email, n.ShiftCount)
			}
			if len(failed) > 0 {
				fmt.Println()
				fmt.Printf("⚠ Failed to notify %d employee(s):\n", len(failed))
				for _, n := range failed {
					fmt.Printf("  ✗ %s (%s): %s\n", n.EmployeeName, n.Email, n.Error)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Report who would be emailed without sending")

	return cmd
}
