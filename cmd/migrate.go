package cmd

import (
	"fmt"

	"github.com/castpage/catalog-api/internal/database"
	"github.com/castpage/catalog-api/internal/models"
	"github.com/castpage/catalog-api/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Bring the catalog database schema up to date.

The schema is managed with GORM auto-migration: the episode and
featured-episode tables are created or altered in place to match the
current model definitions. Only the sqlite backend has a schema; the
in-memory backend needs no migration.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.Database.Backend == "memory" {
		fmt.Fprintln(cmd.OutOrStdout(), "In-memory backend selected; nothing to migrate")
		return nil
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Episode{}, &models.FeaturedEpisode{}); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Schema up to date at %s\n", cfg.Database.Path)
	return nil
}
