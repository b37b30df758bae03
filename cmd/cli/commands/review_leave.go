package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crewroster/crewroster/pkg/core/services"
)

// ReviewLeaveCmd creates the reviewLeave command
func ReviewLeaveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviewLeave <leave_id> <approve|reject>",
		Short: "Approve or reject a pending leave request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reviewer, _ := cmd.Flags().GetString("reviewer")
			comment, _ := cmd.Flags().GetString("comment")

			var approve bool
			switch args[1] {
			case "approve":
				approve = true
			case "reject":
				approve = false
			default:
				return fmt.Errorf("decision must be approve or reject, got %q", args[1])
			}

			l, err := services.ReviewLeave(app.Ctx, app.Database, app.Logger, args[0], approve, reviewer, comment)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Leave %s\n\n", l.Status)
			fmt.Printf("Request ID: %s\n", l.ID)
			fmt.Printf("Employee:   %s\n", l.EmployeeID)
			if l.Comment != "" {
				fmt.Printf("Comment:    %s\n", l.Comment)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("reviewer", "", "ID of the reviewing manager")
	cmd.Flags().String("comment", "", "Review comment")
	cmd.MarkFlagRequired("reviewer")

	return cmd
}
