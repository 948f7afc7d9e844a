package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/castpage/catalog-api/pkg/config"
	"github.com/spf13/cobra"
)

var exportOutput string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to a JSON file",
	Long: `Write the full episode catalog and the featured slug list to a
JSON document. The document is the same shape the admin export endpoint
produces and can be fed back to the import command.

Example:
  catalog-api export --output catalog.json`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "catalog.json", "output file path")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	deps, db, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	doc, err := deps.EpisodeService.Export(context.Background())
	if err != nil {
		return fmt.Errorf("exporting catalog: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}

	if err := os.WriteFile(exportOutput, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", exportOutput, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d episodes to %s\n", len(doc.Episodes), exportOutput)
	return nil
}
