package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crewroster/crewroster/pkg/core/model"
	"github.com/crewroster/crewroster/pkg/core/services"
)

// ReplaceEmployeeCmd creates the replaceEmployee command
func ReplaceEmployeeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replaceEmployee <shift_id> <original_id> <replacement_id>",
		Short: "Swap one assigned employee for another on a shift",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			reason, _ := cmd.Flags().GetString("reason")

			shift, err := services.ReplaceEmployee(app.Ctx, app.Database, app.Logger, args[0], args[1], args[2], reason)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Replacement recorded\n\n")
			fmt.Printf("Shift:       %s %s (%s)\n", shift.Date.Format(model.DateLayout), shift.Type, shift.ID)
			fmt.Printf("Replaced:    %s -> %s\n", args[1], args[2])
			if reason != "" {
				fmt.Printf("Reason:      %s\n", reason)
			}
			fmt.Printf("Now on duty: %v\n\n", shift.EmployeeIDs)

			return nil
		},
	}

	cmd.Flags().String("reason", "", "Reason for the replacement")

	return cmd
}
