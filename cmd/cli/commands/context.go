package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/crewroster/crewroster/internal/config"
	"github.com/crewroster/crewroster/pkg/clients/gmailclient"
	"github.com/crewroster/crewroster/pkg/clients/sheetsclient"
	"github.com/crewroster/crewroster/pkg/core/services"
	"github.com/crewroster/crewroster/pkg/db"
	"github.com/crewroster/crewroster/pkg/sheetssql"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context
	Env      string

	// Google clients are created on first use so that database-only
	// commands never trigger the OAuth flow
	sheetsClient *sheetsclient.Client
	gmailClient  *gmailclient.Client
	sheetDB      *sheetssql.DB
}

// Sheets returns the Google Sheets client, running the OAuth flow on first
// use
func (app *AppContext) Sheets() (*sheetsclient.Client, error) {
	if app.sheetsClient != nil {
		return app.sheetsClient, nil
	}

	oauthCfg, err := config.LoadOAuthClientWithEnv(app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	client, err := sheetsclient.NewClient(app.Ctx, oauthCfg, app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	app.sheetsClient = client
	return client, nil
}

// Gmail returns the Gmail client, reusing the sheets client's OAuth token
func (app *AppContext) Gmail() (*gmailclient.Client, error) {
	if app.gmailClient != nil {
		return app.gmailClient, nil
	}

	sheets, err := app.Sheets()
	if err != nil {
		return nil, err
	}

	oauthCfg, err := config.LoadOAuthClientWithEnv(app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	client, err := gmailclient.NewClient(app.Ctx, oauthCfg, sheets.Token())
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail client: %w", err)
	}

	app.gmailClient = client
	return client, nil
}

// RosterSheetDB returns the sheetssql connection to the roster spreadsheet
func (app *AppContext) RosterSheetDB() (*sheetssql.DB, error) {
	if app.sheetDB != nil {
		return app.sheetDB, nil
	}

	if app.Cfg.RosterSheetID == "" {
		return nil, fmt.Errorf("rosterSheetID is not configured")
	}

	sheets, err := app.Sheets()
	if err != nil {
		return nil, err
	}

	schema, err := sheetssql.SchemaFromModels(services.RosterEntry{})
	if err != nil {
		return nil, fmt.Errorf("failed to build roster schema: %w", err)
	}

	sheetDB, err := sheetssql.NewDB(sheets, app.Cfg.RosterSheetID, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to roster sheet: %w", err)
	}

	app.sheetDB = sheetDB
	return sheetDB, nil
}
