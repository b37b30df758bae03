package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crewroster/crewroster/pkg/core/services"
)

// ImportRosterCmd creates the importRoster command
func ImportRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "importRoster",
		Short: "Import new employees from the roster spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			sheetDB, err := app.RosterSheetDB()
			if err != nil {
				return err
			}

			imported, err := services.ImportRoster(app.Ctx, app.Database, sheetDB, app.Cfg, app.Logger, dryRun)
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Printf("\nDry run - %d new employee(s) found (not saved)\n\n", len(imported))
			} else {
				fmt.Printf("\n✓ Imported %d new employee(s)\n\n", len(imported))
			}

			for _, emp := range imported {
				fmt.Printf("  %-12s %-20s %-8s %v\n", emp.ID, emp.Name, emp.SkillLevel, emp.Skills)
			}
			if len(imported) > 0 {
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Read the sheet without saving to the database")

	return cmd
}
