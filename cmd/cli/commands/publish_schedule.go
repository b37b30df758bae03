package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crewroster/crewroster/pkg/core/services"
)

// PublishScheduleCmd creates the publishSchedule command
func PublishScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishSchedule <week_start>",
		Short: "Publish a week's schedule to the configured Google Sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheets, err := app.Sheets()
			if err != nil {
				return err
			}

			rows, err := services.PublishSchedule(app.Ctx, app.Database, sheets, app.Cfg, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Schedule published\n\n")
			fmt.Printf("Week:     %s\n", args[0])
			fmt.Printf("Sheet ID: %s\n", app.Cfg.ScheduleSheetID)
			fmt.Printf("Rows:     %d\n\n", rows)

			return nil
		},
	}
}
