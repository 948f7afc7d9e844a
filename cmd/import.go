package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/castpage/catalog-api/internal/models"
	"github.com/castpage/catalog-api/pkg/config"
	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a catalog from a JSON file",
	Long: `Load an exported catalog document and upsert its episodes into
the configured store. Episodes are matched by slug; the featured list
is replaced by the document's featuredSlugs, skipping slugs that do
not exist after the import.

Records that fail validation are reported and skipped; the rest of the
document still imports.

Example:
  catalog-api import catalog.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	var doc struct {
		Episodes      []models.Episode `json:"episodes"`
		FeaturedSlugs []string         `json:"featuredSlugs"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	deps, db, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	result, err := deps.EpisodeService.Import(context.Background(), doc.Episodes, doc.FeaturedSlugs)
	if err != nil {
		return fmt.Errorf("importing catalog: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Imported %d episodes\n", result.Imported)
	for _, importErr := range result.Errors {
		fmt.Fprintf(out, "  skipped %q: %s\n", importErr.Slug, importErr.Message)
	}
	return nil
}
