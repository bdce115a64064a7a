package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/otzar-labs/otzar-cli/internal/adapters/driven/esword"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Manage the modern Hebrew dictionary dataset",
}

var dictImportCmd = &cobra.Command{
	Use:   "import <module-file>",
	Short: "Import dictionary entries from an e-Sword module",
	Long: `Imports dictionary entries from an e-Sword module file.
Supported formats: .dctx/.lexx (RTF definitions) and .dcti/.lexi (HTML
definitions). Markup is stripped to plain text and entries receive
sequential MH identifiers in module row order.`,
	Args: cobra.ExactArgs(1),
	RunE: runDictImport,
}

func init() {
	dictCmd.AddCommand(dictImportCmd)
	rootCmd.AddCommand(dictCmd)
}

func runDictImport(cmd *cobra.Command, args []string) error {
	if importerSvc == nil {
		return errors.New("importer service not configured")
	}

	entries, err := esword.New(args[0]).Extract(cmd.Context())
	if err != nil {
		return fmt.Errorf("extracting %s: %w", args[0], err)
	}

	n, err := importerSvc.ImportModern(cmd.Context(), entries)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	cmd.Printf("Imported %d dictionary entries.\n", n)
	return nil
}
