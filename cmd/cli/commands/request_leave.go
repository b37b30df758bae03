package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crewroster/crewroster/pkg/core/leave"
	"github.com/crewroster/crewroster/pkg/core/model"
	"github.com/crewroster/crewroster/pkg/core/services"
)

func parseLeaveType(s string) (model.LeaveType, error) {
	switch s {
	case "vacation":
		return model.LeaveVacation, nil
	case "sick":
		return model.LeaveSick, nil
	case "personal":
		return model.LeavePersonal, nil
	case "emergency":
		return model.LeaveEmergency, nil
	default:
		return "", fmt.Errorf("unknown leave type %q (expected vacation, sick, personal or emergency)", s)
	}
}

// RequestLeaveCmd creates the requestLeave command
func RequestLeaveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requestLeave <employee_id> <start_date> <end_date> <type>",
		Short: "File a leave request for review",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			reason, _ := cmd.Flags().GetString("reason")

			leaveType, err := parseLeaveType(args[3])
			if err != nil {
				return err
			}

			startDate, err := model.ParseDate(args[1])
			if err != nil {
				return fmt.Errorf("invalid start date: %w", err)
			}
			endDate, err := model.ParseDate(args[2])
			if err != nil {
				return fmt.Errorf("invalid end date: %w", err)
			}

			l, err := services.RequestLeave(app.Ctx, app.Database, app.Logger, leave.Request{
				EmployeeID: args[0],
				StartDate:  startDate,
				EndDate:    endDate,
				Reason:     reason,
				Type:       leaveType,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Leave request filed\n\n")
			fmt.Printf("Request ID: %s\n", l.ID)
			fmt.Printf("Employee:   %s\n", l.EmployeeID)
			fmt.Printf("Dates:      %s to %s\n", l.StartDate.Format(model.DateLayout), l.EndDate.Format(model.DateLayout))
			fmt.Printf("Type:       %s\n", l.Type)
			fmt.Printf("Status:     %s\n\n", l.Status)

			return nil
		},
	}

	cmd.Flags().String("reason", "", "Reason for the leave request")

	return cmd
}
