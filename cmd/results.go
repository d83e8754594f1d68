package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/worthyretail/xray/core"
	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/internal/store"
	"github.com/worthyretail/xray/schema"
)

// loadStoreConfig reads only the store settings into cfg.
func loadStoreConfig() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(viper.GetString("store-backend"))))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", backend)
	}
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// resultsSetup loads minimal configuration and opens the result store.
// This is used by commands that need store access without full shared setup.
func resultsSetup(_ *cobra.Command, _ []string) error {
	if err := loadStoreConfig(); err != nil {
		return err
	}
	if err := store.InitStore(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return fmt.Errorf("failed to initialize result store: %w", err)
	}
	return nil
}

// resultsMigrateSetup loads store settings but does NOT open the store or
// create tables, allowing migrations to run on a fresh database.
func resultsMigrateSetup(_ *cobra.Command, _ []string) error {
	if err := loadStoreConfig(); err != nil {
		return err
	}
	// For SQLite backend with empty connection string, use default path
	if cfg.StoreBackend == schema.SQLiteBackend && cfg.StoreDBConnect == "" {
		cfg.StoreDBConnect = contract.GetDBFilePath()
	}
	return nil
}

// resultsCmd focused on result store management.
//
// Note: results subcommands use minimal initialization instead of the full
// sharedSetup. They never need the catalog or answer inputs.
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Manage recorded submissions",
	Long: `Manage the result store that backs team dashboards.

Every recorded submission keeps the user, team code, pillar percentages,
archetype, weakest pillar and confidence.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (discard)

Subcommands:
  status  - Show store statistics and connection info
  clear   - Remove all recorded submissions
  export  - Export submissions and team averages to Parquet
  migrate - Run database schema migrations

Examples:
  # Check store status
  xray results status

  # Export for analysis in pandas/DuckDB
  xray results export --output-file xray-data`,
}

// resultsStatusCmd shows store status.
var resultsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display result store statistics and connection details",
	Long: `Show the backend, connection state, submission and team counts, and the
newest and oldest submission times.

Examples:
  xray results status
  XRAY_STORE_BACKEND=postgresql XRAY_STORE_DB_CONNECT="..." xray results status`,
	PreRunE: resultsSetup,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := store.Manager.GetSubmissionStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		store.PrintStoreStatus(os.Stdout, status)
	},
}

// resultsClearCmd clears the store.
var resultsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded submissions",
	Long: `Delete every recorded submission from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the submissions table

Examples:
  # Clear SQLite store (default)
  xray results clear

  # Clear MySQL store (set connection string via env variable)
  XRAY_STORE_BACKEND=mysql XRAY_STORE_DB_CONNECT="..." xray results clear`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return loadStoreConfig()
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := store.ClearStore(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear result store", err)
		}
		fmt.Println("Result store cleared successfully.")
	},
}

// resultsExportCmd exports submissions to Parquet.
var resultsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export submissions and team averages to Parquet files",
	Long: `Write two Parquet files next to --output-file:

  <output-file>.submissions.parquet  one row per submission
  <output-file>.teams.parquet        one row per team with pillar averages

Examples:
  xray results export --output-file xray-data
  duckdb -c "SELECT * FROM 'xray-data.teams.parquet'"`,
	PreRunE: resultsSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, store.Manager, cfg.OutputFile, os.Stdout); err != nil {
			contract.LogFatal("Failed to export results", err)
		}
	},
}

// resultsMigrateCmd runs schema migrations.
var resultsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run result store schema migrations",
	Long: `Apply or roll back the versioned schema migrations for the result store.

Examples:
  # Migrate to the latest version
  xray results migrate

  # Roll back everything
  xray results migrate --target-version 0`,
	PreRunE: resultsMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := store.Migrate(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion, os.Stdout); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
