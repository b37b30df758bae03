package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crewroster/crewroster/cmd/cli/commands"
	"github.com/crewroster/crewroster/internal/config"
	"github.com/crewroster/crewroster/pkg/postgres"
	"github.com/crewroster/crewroster/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
	db  *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crewroster",
		Short: "Crewroster CLI - Manage shift schedules, tasks and leave",
		Long:  `A CLI tool for generating weekly shift schedules, assigning tasks by skill, and handling leave requests.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if db != nil {
				db.Close()
			}
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.ImportRosterCmd(appRef()))
	rootCmd.AddCommand(commands.ListEmployeesCmd(appRef()))
	rootCmd.AddCommand(commands.GenerateWeekCmd(appRef()))
	rootCmd.AddCommand(commands.AddTaskCmd(appRef()))
	rootCmd.AddCommand(commands.ReplaceEmployeeCmd(appRef()))
	rootCmd.AddCommand(commands.AssignTaskCmd(appRef()))
	rootCmd.AddCommand(commands.DistributeTasksCmd(appRef()))
	rootCmd.AddCommand(commands.RecommendTasksCmd(appRef()))
	rootCmd.AddCommand(commands.CompleteTaskCmd(appRef()))
	rootCmd.AddCommand(commands.RequestLeaveCmd(appRef()))
	rootCmd.AddCommand(commands.ReviewLeaveCmd(appRef()))
	rootCmd.AddCommand(commands.StatsCmd(appRef()))
	rootCmd.AddCommand(commands.PublishScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.NotifyScheduleCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, which is populated by initApp before
// any command runs
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, and database
func initApp() error {
	appRef()
	app.Ctx = context.Background()
	app.Env = env

	var err error
	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Logger.Info("Connecting to database")
	db, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Database = db
	app.Logger.Info("Database initialized successfully")

	return nil
}
