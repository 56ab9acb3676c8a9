package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dreamecho/feed-api/internal/database"
	"github.com/dreamecho/feed-api/internal/models"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema for the Feed API.

The schema is managed with GORM auto migration over the application
models (feed cache entries and listening history records).

Available subcommands:
  up      - Create or update all application tables
  down    - Drop all application tables
  status  - Show which tables exist`,
}

// migrateUpCmd applies pending migrations
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update all application tables",
	Long: `Apply the current schema to the configured database.

Tables and columns for the application models are created or altered
in place; existing data is preserved.`,
	RunE: runMigrateUp,
}

// migrateDownCmd drops the application tables
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Drop all application tables",
	Long: `Drop the application tables from the configured database.

This removes the feed cache and the entire listening history.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display which application tables currently exist in the
configured database.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

// migrationModels lists every model the schema covers, in creation order.
func migrationModels() []any {
	return []any{&models.FeedCacheEntry{}, &models.HistoryRecord{}}
}

func openDatabase() (*database.DB, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		return nil, fmt.Errorf("database path is not configured")
	}
	return database.Initialize(dbPath, viper.GetBool("database.log_queries"))
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		for _, model := range migrationModels() {
			fmt.Printf("Would migrate %T\n", model)
		}
		return nil
	}

	db, err := openDatabase()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(migrationModels()...); err != nil {
		return err
	}

	fmt.Println("Migrations applied")
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		for _, model := range migrationModels() {
			fmt.Printf("Would drop table for %T\n", model)
		}
		return nil
	}

	// Confirmation prompt for destructive action
	fmt.Print("WARNING: This will drop all application tables. Continue? (y/N): ")
	var response string
	_, _ = fmt.Scanln(&response)
	if !strings.EqualFold(response, "y") {
		fmt.Println("Migration rollback cancelled")
		return nil
	}

	db, err := openDatabase()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Migrator().DropTable(migrationModels()...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}

	fmt.Println("Tables dropped")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	fmt.Println("Database Migration Status")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Database: %s\n\n", viper.GetString("database.path"))

	for _, model := range migrationModels() {
		state := "missing"
		if db.Migrator().HasTable(model) {
			state = "present"
		}
		fmt.Printf("  %-40T %s\n", model, state)
	}

	return nil
}
